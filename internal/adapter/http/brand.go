package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
)

type createBrandRequest struct {
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

// handleCreateBrand registers a new advertiser account. Budget validation
// failures produce HTTP 400; nothing is persisted for a rejected brand.
func (h *Handler) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var req createBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	b := domain.Brand{
		Name:          req.Name,
		DailyBudget:   req.DailyBudget,
		MonthlyBudget: req.MonthlyBudget,
	}
	if err := h.svc.CreateBrand(r.Context(), &b); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, b)
}

// handleBrandSpend returns the brand's current-day spend summed over its
// campaigns. This is a read-only presentation endpoint.
func (h *Handler) handleBrandSpend(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid brand id", http.StatusBadRequest)
		return
	}
	spend, err := h.svc.BrandSpend(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"daily_spend":   spend.DailySpend.StringFixed(2),
		"monthly_spend": spend.MonthlySpend.StringFixed(2),
	})
}
