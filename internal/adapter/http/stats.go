package httpadapter

import (
	"net/http"
)

// handleStatusSummary returns campaign counts grouped by status, with a
// per-reason breakdown of the paused ones. On success it writes a JSON
// representation of the summary.
func (h *Handler) handleStatusSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.StatusSummary(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
