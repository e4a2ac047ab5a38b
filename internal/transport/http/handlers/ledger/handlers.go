package ledgerhandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"farmops/internal/domain/auth"
	"farmops/internal/domain/ledger"
	"farmops/internal/transport/http/api"
	"farmops/internal/transport/http/middleware"
	"farmops/internal/transport/http/shared"
)

type Handler struct {
	Store *ledger.Store
}

func NewHandler(store *ledger.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/ledger", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermLedgerRead)).Get("/transactions", h.handleList)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	query := r.URL.Query()

	v := shared.NewValidator()
	category := strings.ToUpper(strings.TrimSpace(query.Get("category")))
	v.Enum("category", category, []string{ledger.CategoryLabor, ledger.CategoryOther}, "unknown ledger category")
	status := strings.ToUpper(strings.TrimSpace(query.Get("status")))
	v.Enum("status", status, []string{ledger.StatusCompleted, ledger.StatusPending}, "unknown transaction status")
	period := strings.TrimSpace(query.Get("period"))
	if period != "" {
		period, _ = v.Period("period", period)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	transactions, total, err := h.Store.ListTransactions(r.Context(), ledger.ListFilter{
		Category: category,
		Status:   status,
		Period:   period,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "ledger_list_failed", "failed to list transactions", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"transactions": transactions,
		"total":        total,
		"limit":        page.Limit,
		"offset":       page.Offset,
	}, middleware.GetRequestID(r.Context()))
}
