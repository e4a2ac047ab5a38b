package taskshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"farmops/internal/domain/auth"
	"farmops/internal/domain/tasks"
	"farmops/internal/transport/http/api"
	"farmops/internal/transport/http/middleware"
	"farmops/internal/transport/http/shared"
)

type Handler struct {
	Service *tasks.Service
}

func NewHandler(service *tasks.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermTasksRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermTasksWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermTasksRead)).Get("/productivity", h.handleProductivity)
		r.Route("/{taskID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermTasksRead)).Get("/", h.handleGet)
			r.With(middleware.RequirePermission(auth.PermTasksWrite)).Patch("/status", h.handleChangeStatus)
			r.With(middleware.RequirePermission(auth.PermTasksWrite)).Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	query := r.URL.Query()

	status := strings.ToUpper(strings.TrimSpace(query.Get("status")))
	v := shared.NewValidator()
	v.Enum("status", status, []string{tasks.StatusPending, tasks.StatusInProgress, tasks.StatusCompleted}, "unknown task status")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	list, total, err := h.Service.List(r.Context(), status, query.Get("assignee"), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_list_failed", "failed to list tasks", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"tasks":  list,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	task, err := h.Service.Get(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		if errors.Is(err, tasks.ErrTaskNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "task not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "task_get_failed", "failed to load task", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, task, middleware.GetRequestID(r.Context()))
}

type createTaskRequest struct {
	Title      string `json:"title"`
	Assignee   string `json:"assignee"`
	Priority   string `json:"priority"`
	Due        string `json:"due"`
	FlockID    string `json:"flockId"`
	Department string `json:"department"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("title", payload.Title, "title is required")
	v.Required("assignee", payload.Assignee, "assignee is required")
	v.Enum("priority", payload.Priority, []string{tasks.PriorityHigh, tasks.PriorityMedium, tasks.PriorityLow}, "must be HIGH, MEDIUM, or LOW")

	task := tasks.Task{
		Title:      strings.TrimSpace(payload.Title),
		Assignee:   strings.TrimSpace(payload.Assignee),
		Priority:   strings.ToUpper(strings.TrimSpace(payload.Priority)),
		FlockID:    strings.TrimSpace(payload.FlockID),
		Department: strings.TrimSpace(payload.Department),
	}
	if payload.Due != "" {
		due, err := shared.ParseDate(payload.Due)
		if err != nil {
			v.Add("due", "must be a valid date in YYYY-MM-DD format")
		} else {
			task.Due = &due
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.Create(r.Context(), task)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_create_failed", "failed to create task", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]string{"id": id, "status": tasks.StatusPending}, middleware.GetRequestID(r.Context()))
}

type taskStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	var payload taskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	task, err := h.Service.ChangeStatus(r.Context(), chi.URLParam(r, "taskID"), strings.ToUpper(strings.TrimSpace(payload.Status)))
	switch {
	case err == nil:
		api.Success(w, task, middleware.GetRequestID(r.Context()))
	case errors.Is(err, tasks.ErrTaskNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, tasks.ErrUnknownStatus):
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown task status", middleware.GetRequestID(r.Context()))
	case errors.Is(err, tasks.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", err.Error(), middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "task_status_failed", "failed to change task status", middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), chi.URLParam(r, "taskID"))
	switch {
	case err == nil:
		api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
	case errors.Is(err, tasks.ErrTaskNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "task_delete_failed", "failed to delete task", middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleProductivity(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.Productivity(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "productivity_failed", "failed to build productivity report", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, report, middleware.GetRequestID(r.Context()))
}
