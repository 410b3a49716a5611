package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
)

type createCampaignRequest struct {
	BrandID       int64           `json:"brand_id"`
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c := domain.Campaign{
		BrandID:       req.BrandID,
		Name:          req.Name,
		DailyBudget:   req.DailyBudget,
		MonthlyBudget: req.MonthlyBudget,
	}
	if err := h.svc.CreateCampaign(r.Context(), &c); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

type createScheduleRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  *bool  `json:"is_active"`
}

// handleCreateSchedule adds a recurring weekly active window. Overlap with
// an existing active window on the same weekday is rejected with 400.
func (h *Handler) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req createScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	start, err := domain.ParseClockTime(req.StartTime)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	end, err := domain.ParseClockTime(req.EndTime)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	s := domain.DaypartingSchedule{
		CampaignID: id,
		DayOfWeek:  req.DayOfWeek,
		Start:      start,
		End:        end,
		IsActive:   true,
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if err := h.svc.CreateSchedule(r.Context(), &s); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, s)
}

type trackSpendRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// handleTrackSpend accrues an externally reported spend amount against the
// campaign, then runs the budget check.
func (h *Handler) handleTrackSpend(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req trackSpendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.TrackSpend(r.Context(), id, req.Amount); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleBudgetCheck(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.svc.CheckBudgetLimits(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDayparting reports whether the campaign is inside its active hours
// right now. Unknown campaigns report false rather than 404.
func (h *Handler) handleDayparting(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	within := h.svc.CheckDayparting(r.Context(), id)
	h.writeJSON(w, http.StatusOK, map[string]bool{"within_hours": within})
}

func (h *Handler) handleCampaignBudget(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	status, err := h.svc.CampaignBudget(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, status)
}

func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.svc.PauseCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.svc.ActivateCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
