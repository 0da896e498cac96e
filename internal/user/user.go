package user

import (
	"time"

	"github.com/nattawut/office-management/internal/auth"
	userDatamodel "github.com/nattawut/office-management/internal/core/datamodel/user"
)

// User is the domain model. The password hash is carried internally but never
// serialized into any response.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         auth.Role `json:"role"`
	FullName     string    `json:"full_name"`
	Phone        *string   `json:"phone,omitempty"`
	Department   *string   `json:"department,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		FullName:     u.FullName,
		Phone:        u.Phone,
		Department:   u.Department,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         auth.Role(u.Role),
		FullName:     u.FullName,
		Phone:        u.Phone,
		Department:   u.Department,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
