package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmops/internal/domain/auth"
	"farmops/internal/domain/reports"
	"farmops/internal/platform/metrics"
	"farmops/internal/transport/http/api"
	"farmops/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
	Metrics *metrics.Collector
}

func NewHandler(service *reports.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/reports/dashboard", h.handleDashboard)
	r.With(middleware.RequirePermission(auth.PermAdminMetrics)).Get("/admin/metrics", h.handleMetrics)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Service.Dashboard(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, dashboard, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if h.Metrics == nil {
		api.Fail(w, http.StatusNotFound, "metrics_disabled", "metrics collection is disabled", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, h.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
}
