package payrollhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmops/internal/domain/auth"
	"farmops/internal/domain/hr"
	"farmops/internal/domain/payroll"
	"farmops/internal/platform/metrics"
	"farmops/internal/transport/http/api"
	"farmops/internal/transport/http/middleware"
	"farmops/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Metrics *metrics.Collector
}

func NewHandler(service *payroll.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPayrollRun)).Post("/runs", h.handleRun)
		r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/runs", h.handleListRuns)
		r.Route("/periods/{period}", func(r chi.Router) {
			r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/summary", h.handleSummary)
			r.With(middleware.RequirePermission(auth.PermPayrollRead)).Get("/register", h.handleRegister)
		})
	})
}

type runRequest struct {
	Period string `json:"period"`
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	var payload runRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	period, ok := v.Period("period", payload.Period)
	if !ok {
		v.Reject(w, middleware.GetRequestID(r.Context()))
		return
	}

	outcome, err := h.Service.RunPeriod(r.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrRunConflict):
			api.Fail(w, http.StatusConflict, "run_conflict", "a concurrent run already processed this period; retry to pick up leftovers", middleware.GetRequestID(r.Context()))
		case errors.Is(err, hr.ErrNegativeAmount):
			api.Fail(w, http.StatusUnprocessableEntity, "invalid_compensation", err.Error(), middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "payroll_run_failed", "payroll run failed", middleware.GetRequestID(r.Context()))
		}
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordPayrollRun(outcome.NoOp)
	}
	api.Success(w, outcome, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)

	v := shared.NewValidator()
	period, ok := v.Period("period", r.URL.Query().Get("period"))
	if !ok {
		v.Reject(w, middleware.GetRequestID(r.Context()))
		return
	}

	runs, total, err := h.Service.Runs(r.Context(), period, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_list_failed", "failed to list payroll runs", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"runs":   runs,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	period, ok := v.Period("period", chi.URLParam(r, "period"))
	if !ok {
		v.Reject(w, middleware.GetRequestID(r.Context()))
		return
	}

	summary, err := h.Service.Summary(r.Context(), period)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_summary_failed", "failed to build period summary", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	period, ok := v.Period("period", chi.URLParam(r, "period"))
	if !ok {
		v.Reject(w, middleware.GetRequestID(r.Context()))
		return
	}

	rows, err := h.Service.Register(r.Context(), period)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_register_failed", "failed to build payroll register", middleware.GetRequestID(r.Context()))
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		writeRegisterCSV(w, period, rows)
	case "pdf":
		writeRegisterPDF(w, period, rows)
	default:
		api.Success(w, map[string]any{"period": period, "rows": rows}, middleware.GetRequestID(r.Context()))
	}
}
