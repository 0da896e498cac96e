package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	internal "github.com/nattawut/office-management/internal"
	userDatamodel "github.com/nattawut/office-management/internal/core/datamodel/user"
)

// CredentialRepository is the lookup the login path needs from the store.
type CredentialRepository interface {
	GetByUsername(username string) (*userDatamodel.User, error)
}

// Service owns the login path: credential lookup, password verification and
// token issuance.
type Service struct {
	repo     CredentialRepository
	tokenGen TokenGenerator
	hasher   *PasswordHasher
}

func NewService(repo CredentialRepository, tokenGen TokenGenerator, hasher *PasswordHasher) *Service {
	return &Service{
		repo:     repo,
		tokenGen: tokenGen,
		hasher:   hasher,
	}
}

// Authenticate validates credentials and returns a signed token plus a
// sanitized user projection. Unknown username and wrong password collapse
// into the same generic failure so usernames cannot be enumerated.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(dto.Username)
	if err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(dto.Password, u.PasswordHash)
	if err != nil || !ok {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokenGen.Generate(u.ID, u.Username, Role(u.Role), u.FullName)
	if err != nil {
		return nil, internal.NewInternalError("failed to issue token", err)
	}

	return &LoginResponse{
		Token: token,
		User: UserInfo{
			ID:       u.ID,
			Username: u.Username,
			Role:     Role(u.Role),
			FullName: u.FullName,
		},
	}, nil
}

// ValidateAccessToken verifies signature and expiry and returns the embedded
// claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.Validate(tokenString)
}

// Hasher exposes the password hasher so the user management path can hash new
// and updated passwords with the same work factor.
func (s *Service) Hasher() *PasswordHasher {
	return s.hasher
}

// Generate issues a signed token carrying the identity claims with an expiry
// at a fixed horizon from now.
func (j *JWTTokenGenerator) Generate(userID int64, username string, role Role, fullName string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Validate parses and verifies a token. Expiry is reported distinctly from
// every other failure so clients can prompt for re-authentication.
func (j *JWTTokenGenerator) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}

	return claims, nil
}
