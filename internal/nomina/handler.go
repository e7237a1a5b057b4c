package nomina

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/nominahr/payroll-management/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Nomina, error)
	GetByID(id string) (*Nomina, error)
	GetByEmpleado(empleadoID string) ([]*Nomina, error)
	GetByPeriodo(periodo string) ([]*Nomina, error)
	Create(ctx context.Context, dto NominaDTO) (*Nomina, error)
	Update(ctx context.Context, id string, dto NominaDTO) (*Nomina, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if empleadoID := query.Get("empleado_id"); empleadoID != "" {
		nominas, err := h.Service.GetByEmpleado(empleadoID)
		if err != nil {
			h.WriteAppError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, nominas)
		return
	}
	if periodo := query.Get("periodo"); periodo != "" {
		nominas, err := h.Service.GetByPeriodo(periodo)
		if err != nil {
			h.WriteAppError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, nominas)
		return
	}

	nominas, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, nominas)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	n, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto NominaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, n)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto NominaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
