package customer

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	internal "github.com/nattawut/office-management/internal"
	"github.com/nattawut/office-management/internal/auth"
	"github.com/nattawut/office-management/internal/transport"
	"github.com/nattawut/office-management/pkg/logger"
)

type ServiceAPI interface {
	List() ([]*Customer, error)
	Create(dto CreateCustomerDTO, actorID int64) (*Customer, error)
	Update(id int64, dto UpdateCustomerDTO) (*Customer, error)
	Delete(id int64, actorID int64) error
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

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.List()
	if err != nil {
		h.Logger.Error("ListCustomers: service error", "error", err)
		h.WriteServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, customers)
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteAppError(w, internal.ErrAuthRequired)
		return
	}

	var dto CreateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(dto, actor.ID)
	if err != nil {
		h.Logger.Error("CreateCustomer: service error", "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	var dto UpdateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(id, dto)
	if err != nil {
		h.Logger.Error("UpdateCustomer: service error", "error", err, "customer_id", id)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteAppError(w, internal.ErrAuthRequired)
		return
	}

	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	if err := h.Service.Delete(id, actor.ID); err != nil {
		h.Logger.Error("DeleteCustomer: service error", "error", err, "customer_id", id)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "customer deleted successfully"})
}

func (h *Handler) idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
