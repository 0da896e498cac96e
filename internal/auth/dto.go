package auth

import (
	"github.com/nattawut/office-management/internal/core/common/validation"
)

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required()
	v.Field("password", dto.Password).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UserInfo is the sanitized projection returned alongside a token. The
// password hash never leaves the credential store.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
