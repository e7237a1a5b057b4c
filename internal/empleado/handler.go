package empleado

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/nominahr/payroll-management/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Empleado, error)
	GetByID(id string) (*Empleado, error)
	GetByPersona(personaID string) (*Empleado, error)
	Create(dto EmpleadoDTO) (*Empleado, error)
	Update(id string, dto EmpleadoDTO) (*Empleado, error)
	Delete(id string) error
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
	if personaID := r.URL.Query().Get("persona_id"); personaID != "" {
		e, err := h.Service.GetByPersona(personaID)
		if err != nil {
			h.WriteAppError(w, err)
			return
		}
		if e == nil {
			h.WriteJSON(w, http.StatusOK, []*Empleado{})
			return
		}
		h.WriteJSON(w, http.StatusOK, []*Empleado{e})
		return
	}

	empleados, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, empleados)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto EmpleadoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto EmpleadoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Update(chi.URLParam(r, "id"), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
