package staffhandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrtracker/internal/domain/staff"
	"hrtracker/internal/transport/http/api"
)

type Handler struct {
	Store *staff.Store
}

func NewHandler(store *staff.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/admin/employees", h.handleListEmployees)
	r.Get("/admin/departments", h.handleListDepartments)
	r.Get("/admin/positions", h.handleListPositions)
	r.Get("/admin/organizations", h.handleListOrganizations)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		slog.Error("list employees failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка получения списка сотрудников")
		return
	}
	api.Success(w, employees)
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Store.ListDepartments(r.Context())
	if err != nil {
		slog.Error("list departments failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка получения списка отделов")
		return
	}
	api.Success(w, departments)
}

func (h *Handler) handleListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Store.ListPositions(r.Context())
	if err != nil {
		slog.Error("list positions failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка получения списка должностей")
		return
	}
	api.Success(w, positions)
}

func (h *Handler) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	organizations, err := h.Store.ListOrganizations(r.Context())
	if err != nil {
		slog.Error("list organizations failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка получения списка организаций")
		return
	}
	api.Success(w, organizations)
}
