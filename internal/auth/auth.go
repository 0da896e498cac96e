package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of back-office roles. There is no hierarchy beyond
// admin being included in every route's allowed set.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleSales Role = "sales"
	RoleHR    Role = "hr"
)

func AllRoles() []Role {
	return []Role{RoleAdmin, RoleSales, RoleHR}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleHR:
		return true
	}
	return false
}

// Claims are the identity attributes embedded in every issued token.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// AuthUser is the resolved identity attached to the request context after the
// authentication gate.
type AuthUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name"`
}

// TokenGenerator issues and verifies bearer tokens.
type TokenGenerator interface {
	Generate(userID int64, username string, role Role, fullName string) (string, error)
	Validate(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

type ctxKey string

const ContextUserKey ctxKey = "authUser"

func UserFromContext(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(ContextUserKey).(*AuthUser)
	return user, ok
}

func ContextWithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, ContextUserKey, user)
}
