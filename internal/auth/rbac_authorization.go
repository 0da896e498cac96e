package auth

import (
	"log/slog"
	"net/http"

	internal "github.com/nattawut/office-management/internal"
	"github.com/nattawut/office-management/internal/transport"
)

// RBACAuthorization is the authorization stage of the access guard. Each
// protected route declares its allowed role set at registration time.
type RBACAuthorization struct {
	base   *transport.BaseHandler
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{
		base:   transport.NewBaseHandler(logger),
		logger: logger,
	}
}

// roleDetails is echoed on rejection. The caller already knows its own role,
// so this is an auditability aid, not a secrecy leak.
type roleDetails struct {
	YourRole      Role   `json:"your_role"`
	RequiredRoles []Role `json:"required_roles"`
}

// Require gates the wrapped handler on the authenticated identity's role
// being a member of the allowed set. A token without any role is rejected
// distinctly: it denotes a malformed token and should never happen for tokens
// issued here.
func (ra *RBACAuthorization) Require(allowed ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				ra.logger.Warn("authorization check without authenticated user")
				ra.base.WriteAppError(w, internal.ErrAuthRequired)
				return
			}

			if user.Role == "" {
				ra.logger.Warn("access denied: token carries no role", "user_id", user.ID)
				ra.base.WriteAppError(w, internal.ErrRoleMissing)
				return
			}

			for _, role := range allowed {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			ra.logger.Warn("access denied: insufficient role",
				"user_id", user.ID,
				"role", user.Role,
				"required_roles", allowed)

			err := internal.NewForbiddenError("insufficient permissions", internal.ErrCodeInsufficientRole).
				WithDetails(roleDetails{YourRole: user.Role, RequiredRoles: allowed})
			ra.base.WriteAppError(w, err)
		})
	}
}
