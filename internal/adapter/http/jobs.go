package httpadapter

import (
	"log/slog"
	"net/http"
)

// The /jobs routes are the on-demand face of the trigger source: each one
// invokes the same synchronous usecase method the scheduler runs on a
// timer.

func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Sweep(r.Context())
	if err != nil {
		// per-campaign failures: the pass still completed, so return the
		// report alongside a 207-style partial status
		h.logger.Error("sweep finished with failures", slog.Any("error", err))
		h.writeJSON(w, http.StatusMultiStatus, report)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleDailyReset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DailyReset(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMonthlyReset(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"
	if err := h.svc.MonthlyReset(r.Context(), force); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetAllBudgets(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
