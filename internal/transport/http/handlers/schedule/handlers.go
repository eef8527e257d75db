package schedulehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrtracker/internal/domain/schedule"
	"hrtracker/internal/transport/http/api"
	"hrtracker/internal/transport/http/shared"
)

type Handler struct {
	Service *schedule.Service
}

func NewHandler(service *schedule.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin/schedules", func(r chi.Router) {
		r.Post("/assign", h.handleAssign)
		r.Get("/available-employees", h.handleAvailableEmployees)
		r.Get("/templates", h.handleTemplates)
		r.Get("/1c/list", h.handleScheduleList)
		r.Get("/1c", h.handleScheduleCalendar)
		r.Post("/assign-employee", h.handleAssignEmployee)
	})
	r.Route("/admin/employees/{employeeNumber}", func(r chi.Router) {
		r.Get("/current-schedule", h.handleCurrentSchedule)
		r.Get("/schedule-history", h.handleScheduleHistory)
		r.Get("/schedule-history/pdf", h.handleScheduleHistoryPDF)
	})
}

type assignPayload struct {
	TemplateID  *int64  `json:"template_id"`
	EmployeeIDs []int64 `json:"employee_ids"`
	StartDate   string  `json:"start_date"`
	AssignedBy  string  `json:"assigned_by"`
}

type assignResponse struct {
	Success       bool   `json:"success"`
	AssignedCount int    `json:"assignedCount"`
	SkippedCount  int    `json:"skippedCount"`
	Message       string `json:"message"`
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	var payload assignPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}

	if payload.TemplateID == nil {
		api.Fail(w, http.StatusBadRequest, "Необходимо указать шаблон графика")
		return
	}
	if len(payload.EmployeeIDs) == 0 {
		api.Fail(w, http.StatusBadRequest, "Необходимо указать сотрудников")
		return
	}
	if strings.TrimSpace(payload.StartDate) == "" {
		api.Fail(w, http.StatusBadRequest, "Необходимо указать дату начала")
		return
	}
	startDate, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Некорректная дата начала")
		return
	}

	result, err := h.Service.Assign(r.Context(), schedule.AssignRequest{
		TemplateID:  *payload.TemplateID,
		EmployeeIDs: payload.EmployeeIDs,
		StartDate:   startDate,
		AssignedBy:  payload.AssignedBy,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrTemplateNotFound) {
			api.Fail(w, http.StatusBadRequest, "Шаблон графика не найден")
			return
		}
		slog.Error("schedule assign failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка назначения графика")
		return
	}

	api.Success(w, assignResponse{
		Success:       true,
		AssignedCount: result.AssignedCount,
		SkippedCount:  result.SkippedCount,
		Message:       result.Message,
	})
}

func (h *Handler) handleAvailableEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListAvailableEmployees(r.Context())
	if err != nil {
		slog.Error("list available employees failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка получения списка сотрудников")
		return
	}
	api.Success(w, employees)
}

func (h *Handler) handleTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.Service.ListTemplates(r.Context())
	if err != nil {
		slog.Error("list templates failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка получения шаблонов графиков")
		return
	}
	api.Success(w, templates)
}

func (h *Handler) handleScheduleList(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.ListScheduleSummaries(r.Context())
	if err != nil {
		slog.Error("list 1c schedules failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка получения графиков из 1С")
		return
	}
	api.Success(w, summaries)
}

type calendarResponse struct {
	Schedules  []schedule.ScheduleDay `json:"schedules"`
	Statistics schedule.DayStatistics `json:"statistics"`
}

func (h *Handler) handleScheduleCalendar(w http.ResponseWriter, r *http.Request) {
	scheduleCode := strings.TrimSpace(r.URL.Query().Get("scheduleCode"))
	if scheduleCode == "" {
		api.Fail(w, http.StatusBadRequest, "Необходимо указать код графика")
		return
	}

	days, stats, err := h.Service.ScheduleCalendar(r.Context(), scheduleCode)
	if err != nil {
		slog.Error("schedule calendar failed", "err", err, "scheduleCode", scheduleCode)
		api.Fail(w, http.StatusInternalServerError, "Ошибка получения графика из 1С")
		return
	}
	api.Success(w, calendarResponse{Schedules: days, Statistics: stats})
}

type assignEmployeePayload struct {
	EmployeeNumber string `json:"employee_number"`
	ScheduleCode   string `json:"schedule_code"`
	StartDate      string `json:"start_date"`
	AssignedBy     string `json:"assigned_by"`
}

func (h *Handler) handleAssignEmployee(w http.ResponseWriter, r *http.Request) {
	var payload assignEmployeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}

	if payload.EmployeeNumber == "" || payload.ScheduleCode == "" || payload.StartDate == "" {
		api.Fail(w, http.StatusBadRequest, "Необходимо указать номер сотрудника, код графика и дату начала")
		return
	}
	startDate, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Некорректная дата начала")
		return
	}

	assignment, err := h.Service.AssignByNumber(r.Context(), schedule.NumberAssignRequest{
		EmployeeNumber: payload.EmployeeNumber,
		ScheduleCode:   payload.ScheduleCode,
		StartDate:      startDate,
		AssignedBy:     payload.AssignedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrEmployeeNotFound):
			api.Fail(w, http.StatusBadRequest, "Сотрудник не найден")
		case errors.Is(err, schedule.ErrScheduleNotFound):
			api.Fail(w, http.StatusBadRequest, "График не найден")
		case errors.Is(err, schedule.ErrBackdated):
			api.Fail(w, http.StatusBadRequest, "Дата начала должна быть позже даты начала текущего графика")
		default:
			slog.Error("assign employee failed", "err", err)
			api.Fail(w, http.StatusInternalServerError, "Ошибка назначения графика")
		}
		return
	}

	api.Success(w, map[string]any{"success": true, "assignment": assignment})
}

func (h *Handler) handleCurrentSchedule(w http.ResponseWriter, r *http.Request) {
	employeeNumber := chi.URLParam(r, "employeeNumber")

	current, err := h.Service.CurrentSchedule(r.Context(), employeeNumber)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrEmployeeNotFound):
			api.Fail(w, http.StatusNotFound, "Сотрудник не найден")
		case errors.Is(err, schedule.ErrNoActiveSchedule):
			api.Fail(w, http.StatusNotFound, "У сотрудника нет активного графика")
		default:
			slog.Error("current schedule failed", "err", err)
			api.Fail(w, http.StatusInternalServerError, "Ошибка получения текущего графика")
		}
		return
	}

	api.Success(w, map[string]any{"success": true, "schedule": current})
}

func (h *Handler) handleScheduleHistory(w http.ResponseWriter, r *http.Request) {
	employeeNumber := chi.URLParam(r, "employeeNumber")

	history, err := h.Service.ScheduleHistory(r.Context(), employeeNumber)
	if err != nil {
		if errors.Is(err, schedule.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "Сотрудник не найден")
			return
		}
		slog.Error("schedule history failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка получения истории графиков")
		return
	}

	api.Success(w, map[string]any{"success": true, "history": history})
}

func (h *Handler) handleScheduleHistoryPDF(w http.ResponseWriter, r *http.Request) {
	employeeNumber := chi.URLParam(r, "employeeNumber")

	data, err := h.Service.HistoryPDF(r.Context(), employeeNumber)
	if err != nil {
		if errors.Is(err, schedule.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "Сотрудник не найден")
			return
		}
		slog.Error("schedule history pdf failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Ошибка формирования PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=schedule-history.pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
