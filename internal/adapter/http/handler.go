package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: the trigger source and the read-only presentation layer both go
// through it, and every route delegates to port.BudgetUseCase.
type Handler struct {
	svc    port.BudgetUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// BudgetUseCase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.BudgetUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/brands", h.handleCreateBrand)
		r.Get("/brands/{id}/spend", h.handleBrandSpend)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Post("/campaigns/{id}/schedules", h.handleCreateSchedule)
		r.Post("/campaigns/{id}/spend", h.handleTrackSpend)
		r.Post("/campaigns/{id}/budget-check", h.handleBudgetCheck)
		r.Get("/campaigns/{id}/dayparting", h.handleDayparting)
		r.Get("/campaigns/{id}/budget", h.handleCampaignBudget)
		r.Post("/campaigns/{id}/pause", h.handlePauseCampaign)
		r.Post("/campaigns/{id}/activate", h.handleActivateCampaign)

		r.Get("/stats/summary", h.handleStatusSummary)

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/sweep", h.handleSweep)
			r.Post("/daily-reset", h.handleDailyReset)
			r.Post("/monthly-reset", h.handleMonthlyReset)
			r.Post("/reset-all", h.handleResetAll)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func campaignID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto HTTP statuses: unknown entities are
// 404, rejected writes are 400, everything else is a 500 with the detail
// kept in the log rather than the response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &verr):
		http.Error(w, verr.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
