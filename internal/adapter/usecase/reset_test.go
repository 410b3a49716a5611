package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adpacer/internal/core/port"
	"adpacer/internal/core/port/mocks"
)

func TestDailyReset(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ResetDaily(mock.Anything, monday).
		Return(port.ResetResult{SpendRows: 4, Reactivated: 2}, nil)

	u := newTestUseCase(repo, monday)
	if err := u.DailyReset(context.Background()); err != nil {
		t.Fatalf("DailyReset error: %v", err)
	}
}

func TestDailyResetSurfacesFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ResetDaily(mock.Anything, monday).
		Return(port.ResetResult{}, errors.New("deadlock detected"))

	u := newTestUseCase(repo, monday)
	if err := u.DailyReset(context.Background()); err == nil {
		t.Fatal("expected reset failure to surface")
	}
}

// TestMonthlyResetGuard: on any day but the first of the month nothing is
// touched unless force is set.
func TestMonthlyResetGuard(t *testing.T) {
	secondOfMonth := time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC)

	t.Run("skipped without force", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		u := newTestUseCase(repo, secondOfMonth)
		if err := u.MonthlyReset(context.Background(), false); err != nil {
			t.Fatalf("MonthlyReset error: %v", err)
		}
		// no ResetMonthly expectation: a call would fail the mock
	})

	t.Run("force bypasses the guard", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		repo.EXPECT().ResetMonthly(mock.Anything, secondOfMonth).
			Return(port.ResetResult{SpendRows: 4, Reactivated: 1}, nil)
		u := newTestUseCase(repo, secondOfMonth)
		if err := u.MonthlyReset(context.Background(), true); err != nil {
			t.Fatalf("MonthlyReset error: %v", err)
		}
	})

	t.Run("runs on the first", func(t *testing.T) {
		firstOfMonth := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)
		repo := mocks.NewMockCampaignRepository(t)
		repo.EXPECT().ResetMonthly(mock.Anything, firstOfMonth).
			Return(port.ResetResult{}, nil)
		u := newTestUseCase(repo, firstOfMonth)
		if err := u.MonthlyReset(context.Background(), false); err != nil {
			t.Fatalf("MonthlyReset error: %v", err)
		}
	})
}

// TestMonthlyResetRepeatOnFirstIsIdempotent: the guard alone does not stop
// a second invocation on day one; the reset must be idempotent to zero.
func TestMonthlyResetRepeatOnFirstIsIdempotent(t *testing.T) {
	firstOfMonth := time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC)
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ResetMonthly(mock.Anything, firstOfMonth).
		Return(port.ResetResult{SpendRows: 4, Reactivated: 1}, nil).Once()
	repo.EXPECT().ResetMonthly(mock.Anything, firstOfMonth).
		Return(port.ResetResult{SpendRows: 4, Reactivated: 0}, nil).Once()

	u := newTestUseCase(repo, firstOfMonth)
	for i := 0; i < 2; i++ {
		if err := u.MonthlyReset(context.Background(), false); err != nil {
			t.Fatalf("run %d: MonthlyReset error: %v", i, err)
		}
	}
}

func TestResetAllBudgets(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ResetAll(mock.Anything).
		Return(port.ResetResult{SpendRows: 10, Reactivated: 3}, nil)

	u := newTestUseCase(repo, monday)
	if err := u.ResetAllBudgets(context.Background()); err != nil {
		t.Fatalf("ResetAllBudgets error: %v", err)
	}
}
