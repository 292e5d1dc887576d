package handlers

import (
	"net/http"

	"github.com/billingbricks/app/internal/httpx"
	"github.com/billingbricks/app/internal/services"
)

// DashboardHandler serves the aggregate report. Stats are recomputed from the
// fixed invoice set on every request; per-screen edits never influence them.
type DashboardHandler struct {
	Stats *services.StatsService
}

func NewDashboardHandler(stats *services.StatsService) *DashboardHandler {
	return &DashboardHandler{Stats: stats}
}

const recentInvoiceLimit = 3

// Show: GET /dashboard
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Compute()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_compute_stats", nil)
		return
	}
	recent, err := h.Stats.RecentInvoices(recentInvoiceLimit)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_recent_invoices", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"stats":          stats,
		"recentInvoices": recent,
	})
}
