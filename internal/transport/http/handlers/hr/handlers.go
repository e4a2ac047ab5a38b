package hrhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmops/internal/domain/auth"
	"farmops/internal/domain/hr"
	"farmops/internal/transport/http/api"
	"farmops/internal/transport/http/middleware"
	"farmops/internal/transport/http/shared"
)

type Handler struct {
	Service *hr.Service
}

func NewHandler(service *hr.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermEmployeesRead)).Get("/", h.handleGet)
			r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Put("/", h.handleUpdate)
			r.With(middleware.RequirePermission(auth.PermEmployeesWrite)).Patch("/status", h.handleChangeStatus)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	status := r.URL.Query().Get("status")

	if status != "" && !hr.ValidStatus(status) {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown employee status", middleware.GetRequestID(r.Context()))
		return
	}

	employees, total, err := h.Service.List(r.Context(), status, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"employees": employees,
		"total":     total,
		"limit":     page.Limit,
		"offset":    page.Offset,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, hr.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload hr.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("fullName", payload.FullName, "full name is required")
	v.Required("structure", payload.Structure, "compensation structure is required")
	v.Enum("structure", payload.Structure, []string{hr.StructureMonthly, hr.StructureDaily}, "must be MONTHLY or DAILY")
	if payload.Status != "" {
		v.Enum("status", payload.Status, []string{hr.EmployeeStatusActive, hr.EmployeeStatusSuspended, hr.EmployeeStatusTerminated}, "unknown employee status")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		if errors.Is(err, hr.ErrNegativeAmount) {
			api.Fail(w, http.StatusBadRequest, "negative_amount", "monetary fields must not be negative", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload hr.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Service.Update(r.Context(), chi.URLParam(r, "employeeID"), payload)
	switch {
	case err == nil:
		api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
	case errors.Is(err, hr.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, hr.ErrNegativeAmount), errors.Is(err, hr.ErrInvalidStatus), errors.Is(err, hr.ErrInvalidStructure):
		api.Fail(w, http.StatusBadRequest, "invalid_employee", err.Error(), middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
	}
}

type statusChangeRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	var payload statusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Service.ChangeStatus(r.Context(), chi.URLParam(r, "employeeID"), payload.Status)
	switch {
	case err == nil:
		api.Success(w, map[string]string{"status": payload.Status}, middleware.GetRequestID(r.Context()))
	case errors.Is(err, hr.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, hr.ErrInvalidStatus):
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown employee status", middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "employee_status_failed", "failed to change employee status", middleware.GetRequestID(r.Context()))
	}
}
