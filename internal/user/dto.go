package user

import (
	"github.com/nattawut/office-management/internal/auth"
	"github.com/nattawut/office-management/internal/core/common/validation"
)

type CreateUserDTO struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	FullName   string  `json:"full_name"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (dto CreateUserDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required().MaxLength(100)
	v.Field("email", dto.Email).Required().MaxLength(255)
	v.Field("password", dto.Password).Required().MinLength(6)
	v.Field("role", dto.Role).Required().OneOf(roleNames()...)
	v.Field("full_name", dto.FullName).Required().MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateUserDTO is a partial update: nil means leave unchanged. A supplied
// password is re-hashed before storage.
type UpdateUserDTO struct {
	Username   *string `json:"username,omitempty"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	Role       *string `json:"role,omitempty"`
	FullName   *string `json:"full_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
}

func (dto UpdateUserDTO) Validate() error {
	v := validation.NewValidator()
	if dto.Username != nil {
		v.Field("username", *dto.Username).Required().MaxLength(100)
	}
	if dto.Email != nil {
		v.Field("email", *dto.Email).Required().MaxLength(255)
	}
	if dto.Password != nil {
		v.Field("password", *dto.Password).Required().MinLength(6)
	}
	if dto.Role != nil {
		v.Field("role", *dto.Role).Required().OneOf(roleNames()...)
	}
	if dto.FullName != nil {
		v.Field("full_name", *dto.FullName).Required().MaxLength(255)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func roleNames() []string {
	roles := auth.AllRoles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}
