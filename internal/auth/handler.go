package auth

import (
	"encoding/json"
	"net/http"

	internal "github.com/nattawut/office-management/internal"
	"github.com/nattawut/office-management/internal/transport"
	"github.com/nattawut/office-management/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*LoginResponse, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Warn("login failed", "username", dto.Username, "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.Logger.Info("login succeeded", "user_id", resp.User.ID, "role", resp.User.Role)
	h.WriteJSON(w, http.StatusOK, resp)
}

// Me returns the identity resolved by the authentication gate.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteAppError(w, internal.ErrAuthRequired)
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}

// AuthMiddleware is the authentication stage of the access guard: it resolves
// the bearer token into claims and attaches them to the request context. A
// missing or malformed authorization header is treated the same as no token.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteAppError(w, internal.ErrAuthRequired)
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteServiceError(w, err)
			return
		}

		user := &AuthUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
			FullName: claims.FullName,
		}

		ctx := ContextWithUser(r.Context(), user)
		ctx = internal.ContextWithActorID(ctx, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
