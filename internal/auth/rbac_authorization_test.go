package auth_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/nattawut/office-management/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

type errorBody struct {
	Error struct {
		Type         string `json:"type"`
		Code         string `json:"code"`
		Message      string `json:"message"`
		RequireLogin bool   `json:"require_login"`
		Expired      bool   `json:"expired"`
		Details      struct {
			YourRole      string   `json:"your_role"`
			RequiredRoles []string `json:"required_roles"`
		} `json:"details"`
	} `json:"error"`
}

func decodeError(rec *httptest.ResponseRecorder) errorBody {
	var body errorBody
	Expect(json.NewDecoder(rec.Body).Decode(&body)).To(Succeed())
	return body
}

var _ = Describe("RBACAuthorization", func() {
	var (
		rbac    *auth.RBACAuthorization
		okNext  http.Handler
		slogger *slog.Logger
	)

	requestAs := func(role auth.Role, mw func(http.Handler) http.Handler) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		user := &auth.AuthUser{ID: 7, Username: "someone", Role: role, FullName: "Some One"}
		req = req.WithContext(auth.ContextWithUser(req.Context(), user))
		rec := httptest.NewRecorder()
		mw(okNext).ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		rbac = auth.NewRBACAuthorization(slogger)
		okNext = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	Describe("role matrix", func() {
		type routeCase struct {
			name    string
			allowed []auth.Role
			granted map[auth.Role]bool
		}

		cases := []routeCase{
			{
				name:    "users routes",
				allowed: []auth.Role{auth.RoleAdmin},
				granted: map[auth.Role]bool{auth.RoleAdmin: true, auth.RoleSales: false, auth.RoleHR: false},
			},
			{
				name:    "customers routes",
				allowed: []auth.Role{auth.RoleSales, auth.RoleAdmin},
				granted: map[auth.Role]bool{auth.RoleAdmin: true, auth.RoleSales: true, auth.RoleHR: false},
			},
			{
				name:    "employees routes",
				allowed: []auth.Role{auth.RoleHR, auth.RoleAdmin},
				granted: map[auth.Role]bool{auth.RoleAdmin: true, auth.RoleSales: false, auth.RoleHR: true},
			},
			{
				name:    "any authenticated user",
				allowed: auth.AllRoles(),
				granted: map[auth.Role]bool{auth.RoleAdmin: true, auth.RoleSales: true, auth.RoleHR: true},
			},
		}

		for _, tc := range cases {
			tc := tc
			Context(tc.name, func() {
				for _, role := range auth.AllRoles() {
					role := role
					expected := tc.granted[role]
					if expected {
						It("should grant access to "+string(role), func() {
							rec := requestAs(role, rbac.Require(tc.allowed...))
							Expect(rec.Code).To(Equal(http.StatusOK))
						})
					} else {
						It("should deny access to "+string(role), func() {
							rec := requestAs(role, rbac.Require(tc.allowed...))
							Expect(rec.Code).To(Equal(http.StatusForbidden))

							body := decodeError(rec)
							Expect(body.Error.Code).To(Equal("INSUFFICIENT_ROLE"))
							Expect(body.Error.Details.YourRole).To(Equal(string(role)))
						})
					}
				}
			})
		}
	})

	It("should reject a request without an authenticated user", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		rbac.Require(auth.RoleAdmin)(okNext).ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(decodeError(rec).Error.Code).To(Equal("AUTH_REQUIRED"))
	})

	It("should reject a token that carries no role", func() {
		rec := requestAs("", rbac.Require(auth.RoleAdmin))
		Expect(rec.Code).To(Equal(http.StatusForbidden))
		Expect(decodeError(rec).Error.Code).To(Equal("ROLE_MISSING"))
	})

	It("should echo the required role set on rejection", func() {
		rec := requestAs(auth.RoleHR, rbac.Require(auth.RoleSales, auth.RoleAdmin))
		body := decodeError(rec)
		Expect(body.Error.Details.RequiredRoles).To(ConsistOf("sales", "admin"))
	})
})

var _ = Describe("AuthMiddleware", func() {
	var (
		handler  *auth.Handler
		mockRepo *MockCredentialRepository
		tokenGen *auth.JWTTokenGenerator
	)

	serve := func(authorization string) (*httptest.ResponseRecorder, *auth.AuthUser) {
		var captured *auth.AuthUser
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = auth.UserFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		handler.AuthMiddleware(next).ServeHTTP(rec, req)
		return rec, captured
	}

	BeforeEach(func() {
		mockRepo = NewMockCredentialRepository()
		tokenGen = auth.NewJWTTokenGenerator(testSecret, 8*time.Hour)
		hasher := auth.NewPasswordHasher(bcrypt.MinCost)
		handler = auth.NewHandler(auth.NewService(mockRepo, tokenGen, hasher))
	})

	It("should attach the resolved identity for a valid token", func() {
		token, err := tokenGen.Generate(9, "hr01", auth.RoleHR, "HR Manager")
		Expect(err).NotTo(HaveOccurred())

		rec, captured := serve("Bearer " + token)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(captured).NotTo(BeNil())
		Expect(captured.ID).To(Equal(int64(9)))
		Expect(captured.Role).To(Equal(auth.RoleHR))
	})

	It("should reject a request without a token", func() {
		rec, captured := serve("")
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(captured).To(BeNil())

		body := decodeError(rec)
		Expect(body.Error.Code).To(Equal("AUTH_REQUIRED"))
		Expect(body.Error.RequireLogin).To(BeTrue())
	})

	It("should treat a malformed authorization header as no token", func() {
		rec, _ := serve("Token abcdef")
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(decodeError(rec).Error.Code).To(Equal("AUTH_REQUIRED"))
	})

	It("should flag expired tokens so clients re-authenticate", func() {
		expiredGen := auth.NewJWTTokenGenerator(testSecret, -time.Minute)
		token, err := expiredGen.Generate(9, "hr01", auth.RoleHR, "HR Manager")
		Expect(err).NotTo(HaveOccurred())

		rec, captured := serve("Bearer " + token)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(captured).To(BeNil())

		body := decodeError(rec)
		Expect(body.Error.Code).To(Equal("TOKEN_EXPIRED"))
		Expect(body.Error.Expired).To(BeTrue())
		Expect(body.Error.RequireLogin).To(BeTrue())
	})

	It("should reject tampered tokens without the expired flag", func() {
		otherGen := auth.NewJWTTokenGenerator("another-secret-also-long-enough-to-sign", 8*time.Hour)
		token, err := otherGen.Generate(9, "hr01", auth.RoleHR, "HR Manager")
		Expect(err).NotTo(HaveOccurred())

		rec, _ := serve("Bearer " + token)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))

		body := decodeError(rec)
		Expect(body.Error.Code).To(Equal("INVALID_TOKEN"))
		Expect(body.Error.Expired).To(BeFalse())
		Expect(body.Error.RequireLogin).To(BeTrue())
	})
})
