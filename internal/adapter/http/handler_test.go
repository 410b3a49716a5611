package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpacer/internal/adapter/usecase"
	"adpacer/internal/core/port"
	"adpacer/internal/core/port/mocks"
)

func newTestHandler(repo port.CampaignRepository) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(usecase.NewBudgetUseCase(repo, logger), logger)
}

func do(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestCreateCampaignRejectsBadBudget(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	h := newTestHandler(repo)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns",
		`{"brand_id": 1, "name": "spring", "daily_budget": "0", "monthly_budget": "100"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestTrackSpendRejectsNegativeAmount(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	h := newTestHandler(repo)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/7/spend", `{"amount": "-1.00"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCampaignBudgetUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(404)).Return(nil, port.ErrNotFound)
	h := newTestHandler(repo)

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/404/budget", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestInvalidCampaignID(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	h := newTestHandler(repo)

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/abc/budget", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDaypartingUnknownCampaignReportsFalse(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(9)).Return(nil, port.ErrNotFound)
	h := newTestHandler(repo)

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/9/dayparting", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"within_hours":false}` {
		t.Fatalf("body = %q", got)
	}
}

func TestMonthlyResetForced(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ResetMonthly(mock.Anything, mock.Anything).
		Return(port.ResetResult{SpendRows: 3, Reactivated: 2}, nil)
	h := newTestHandler(repo)

	rec := do(t, h, http.MethodPost, "/api/v1/jobs/monthly-reset?force=true", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
