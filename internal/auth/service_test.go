package auth_test

import (
	"errors"
	"testing"
	"time"

	internal "github.com/nattawut/office-management/internal"
	"github.com/nattawut/office-management/internal/auth"
	userDatamodel "github.com/nattawut/office-management/internal/core/datamodel/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

const testSecret = "test-secret-that-is-long-enough-for-hmac"

// MockCredentialRepository implements auth.CredentialRepository for testing
type MockCredentialRepository struct {
	users      map[string]*userDatamodel.User
	shouldFail bool
	failError  error
}

func NewMockCredentialRepository() *MockCredentialRepository {
	return &MockCredentialRepository{
		users: make(map[string]*userDatamodel.User),
	}
}

func (m *MockCredentialRepository) GetByUsername(username string) (*userDatamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	u, exists := m.users[username]
	if !exists {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func (m *MockCredentialRepository) AddUser(u *userDatamodel.User) {
	m.users[u.Username] = u
}

func (m *MockCredentialRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

var _ = Describe("PasswordHasher", func() {
	var hasher *auth.PasswordHasher

	BeforeEach(func() {
		hasher = auth.NewPasswordHasher(bcrypt.MinCost)
	})

	It("should produce distinct hashes for the same password", func() {
		hash1, err := hasher.Hash("admin123")
		Expect(err).NotTo(HaveOccurred())
		hash2, err := hasher.Hash("admin123")
		Expect(err).NotTo(HaveOccurred())

		// Each hash embeds a fresh salt
		Expect(hash1).NotTo(Equal(hash2))

		ok, err := hasher.Verify("admin123", hash1)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())

		ok, err = hasher.Verify("admin123", hash2)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	It("should reject the wrong password without error", func() {
		hash, err := hasher.Hash("admin123")
		Expect(err).NotTo(HaveOccurred())

		ok, err := hasher.Verify("wrong-password", hash)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should report malformed stored hashes as errors", func() {
		ok, err := hasher.Verify("admin123", "not-a-bcrypt-hash")
		Expect(err).To(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("should fall back to the default cost for out-of-range values", func() {
		bad := auth.NewPasswordHasher(99)
		hash, err := bad.Hash("admin123")
		Expect(err).NotTo(HaveOccurred())

		cost, err := bcrypt.Cost([]byte(hash))
		Expect(err).NotTo(HaveOccurred())
		Expect(cost).To(Equal(bcrypt.DefaultCost))
	})
})

var _ = Describe("JWTTokenGenerator", func() {
	var tokenGen *auth.JWTTokenGenerator

	BeforeEach(func() {
		tokenGen = auth.NewJWTTokenGenerator(testSecret, 8*time.Hour)
	})

	It("should round-trip identity claims", func() {
		token, err := tokenGen.Generate(42, "sales01", auth.RoleSales, "Sales Person")
		Expect(err).NotTo(HaveOccurred())
		Expect(token).NotTo(BeEmpty())

		claims, err := tokenGen.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.UserID).To(Equal(int64(42)))
		Expect(claims.Username).To(Equal("sales01"))
		Expect(claims.Role).To(Equal(auth.RoleSales))
		Expect(claims.FullName).To(Equal("Sales Person"))
	})

	It("should set the expiry at the configured horizon", func() {
		token, err := tokenGen.Generate(1, "admin", auth.RoleAdmin, "System Administrator")
		Expect(err).NotTo(HaveOccurred())

		claims, err := tokenGen.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.ExpiresAt.Time).To(BeTemporally("~", time.Now().Add(8*time.Hour), time.Minute))
	})

	It("should report expired tokens distinctly", func() {
		expiredGen := auth.NewJWTTokenGenerator(testSecret, -time.Minute)
		token, err := expiredGen.Generate(1, "admin", auth.RoleAdmin, "System Administrator")
		Expect(err).NotTo(HaveOccurred())

		_, err = expiredGen.Validate(token)
		Expect(err).To(Equal(internal.ErrTokenExpired))

		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Expired).To(BeTrue())
		Expect(appErr.RequireLogin).To(BeTrue())
	})

	It("should reject tokens signed with a different secret", func() {
		otherGen := auth.NewJWTTokenGenerator("another-secret-also-long-enough-to-sign", 8*time.Hour)
		token, err := otherGen.Generate(1, "admin", auth.RoleAdmin, "System Administrator")
		Expect(err).NotTo(HaveOccurred())

		_, err = tokenGen.Validate(token)
		Expect(err).To(Equal(internal.ErrInvalidToken))

		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Expired).To(BeFalse())
		Expect(appErr.RequireLogin).To(BeTrue())
	})

	It("should reject garbage tokens", func() {
		_, err := tokenGen.Validate("not.a.token")
		Expect(err).To(Equal(internal.ErrInvalidToken))
	})
})

var _ = Describe("Auth Service", func() {
	var (
		mockRepo *MockCredentialRepository
		service  *auth.Service
		hasher   *auth.PasswordHasher
	)

	BeforeEach(func() {
		mockRepo = NewMockCredentialRepository()
		hasher = auth.NewPasswordHasher(bcrypt.MinCost)
		tokenGen := auth.NewJWTTokenGenerator(testSecret, 8*time.Hour)
		service = auth.NewService(mockRepo, tokenGen, hasher)

		hash, err := hasher.Hash("admin123")
		Expect(err).NotTo(HaveOccurred())
		mockRepo.AddUser(&userDatamodel.User{
			ID:           1,
			Username:     "admin",
			Email:        "admin@company.com",
			PasswordHash: hash,
			Role:         "admin",
			FullName:     "System Administrator",
		})
	})

	Describe("Authenticate", func() {
		It("should return a token and sanitized user info on success", func() {
			resp, err := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "admin123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Token).NotTo(BeEmpty())
			Expect(resp.User.ID).To(Equal(int64(1)))
			Expect(resp.User.Username).To(Equal("admin"))
			Expect(resp.User.Role).To(Equal(auth.RoleAdmin))
			Expect(resp.User.FullName).To(Equal("System Administrator"))

			claims, err := service.ValidateAccessToken(resp.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(int64(1)))
		})

		It("should fail generically for an unknown username", func() {
			resp, err := service.Authenticate(auth.LoginDTO{Username: "ghost", Password: "admin123"})
			Expect(resp).To(BeNil())
			Expect(err).To(Equal(internal.ErrInvalidCredentials))
		})

		It("should fail generically for a wrong password", func() {
			resp, err := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "wrong"})
			Expect(resp).To(BeNil())
			Expect(err).To(Equal(internal.ErrInvalidCredentials))
		})

		It("should not distinguish unknown username from wrong password", func() {
			_, unknownErr := service.Authenticate(auth.LoginDTO{Username: "ghost", Password: "admin123"})
			_, wrongErr := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "wrong"})
			Expect(unknownErr).To(Equal(wrongErr))
		})

		It("should fail generically when the store errors", func() {
			mockRepo.SetShouldFail(true, errors.New("connection refused"))
			_, err := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "admin123"})
			Expect(err).To(Equal(internal.ErrInvalidCredentials))
		})

		It("should reject empty credentials before touching the store", func() {
			mockRepo.SetShouldFail(true, errors.New("should not be called"))
			_, err := service.Authenticate(auth.LoginDTO{Username: "", Password: ""})
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})
	})
})
