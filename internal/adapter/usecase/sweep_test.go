package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port/mocks"
)

// TestSweepDaypartingThenAccrual: campaign 1 has a Monday window that has
// not opened yet and gets paused without accruing; campaign 2 has no
// schedules and accrues the synthetic amount. The budget pass then runs
// over the same snapshot.
func TestSweepDaypartingThenAccrual(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	early := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC) // Monday 08:00

	c1 := domain.Campaign{ID: 1, State: domain.Active(),
		DailyBudget: dec("50.00"), MonthlyBudget: dec("500.00")}
	c2 := domain.Campaign{ID: 2, State: domain.Active(),
		DailyBudget: dec("50.00"), MonthlyBudget: dec("500.00")}

	repo.EXPECT().ListByStatus(mock.Anything, domain.StatusActive).
		Return([]domain.Campaign{c1, c2}, nil)

	repo.EXPECT().ListSchedules(mock.Anything, int64(1)).Return([]domain.DaypartingSchedule{{
		CampaignID: 1, DayOfWeek: 0, IsActive: true,
		Start: domain.NewClockTime(9, 0), End: domain.NewClockTime(17, 0),
	}}, nil)
	repo.EXPECT().SetState(mock.Anything, int64(1), domain.Paused(domain.PauseOutsideDayparting)).Return(nil)

	repo.EXPECT().ListSchedules(mock.Anything, int64(2)).Return(nil, nil)
	accrued := &domain.Spend{CampaignID: 2, DailySpend: dec("1.00"), MonthlySpend: dec("1.00")}
	repo.EXPECT().AddSpend(mock.Anything, int64(2), early, dec("1.00")).Return(accrued, nil)

	// budget pass re-reads the snapshot campaigns
	paused1 := c1
	paused1.State = domain.Paused(domain.PauseOutsideDayparting)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&paused1, nil)
	repo.EXPECT().GetSpend(mock.Anything, int64(1), early).Return(nil, nil)
	repo.EXPECT().GetCampaign(mock.Anything, int64(2)).Return(&c2, nil)
	repo.EXPECT().GetSpend(mock.Anything, int64(2), early).Return(accrued, nil)

	u := newTestUseCase(repo, early)
	report, err := u.Sweep(context.Background())
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if report.Snapshot != 2 || report.PausedDayparting != 1 || report.Accrued != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.PausedBudget != 0 || report.Failures != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

// TestSweepContinuesPastFailingCampaign: an error on one campaign is
// collected and the rest of the pass still runs, including the budget pass
// that pauses an over-budget campaign.
func TestSweepContinuesPastFailingCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	c1 := domain.Campaign{ID: 1, State: domain.Active(),
		DailyBudget: dec("50.00"), MonthlyBudget: dec("500.00")}
	c2 := domain.Campaign{ID: 2, State: domain.Active(),
		DailyBudget: dec("50.00"), MonthlyBudget: dec("500.00")}

	repo.EXPECT().ListByStatus(mock.Anything, domain.StatusActive).
		Return([]domain.Campaign{c1, c2}, nil)

	dbDown := errors.New("connection reset")
	repo.EXPECT().ListSchedules(mock.Anything, int64(1)).Return(nil, dbDown).Once()

	repo.EXPECT().ListSchedules(mock.Anything, int64(2)).Return(nil, nil)
	overshoot := &domain.Spend{CampaignID: 2, DailySpend: dec("50.00"), MonthlySpend: dec("50.00")}
	repo.EXPECT().AddSpend(mock.Anything, int64(2), monday, dec("1.00")).Return(overshoot, nil)

	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&c1, nil)
	repo.EXPECT().GetSpend(mock.Anything, int64(1), monday).Return(nil, nil)
	repo.EXPECT().GetCampaign(mock.Anything, int64(2)).Return(&c2, nil)
	repo.EXPECT().GetSpend(mock.Anything, int64(2), monday).Return(overshoot, nil)
	repo.EXPECT().SetState(mock.Anything, int64(2), domain.Paused(domain.PauseDailyBudgetExceeded)).Return(nil)

	u := newTestUseCase(repo, monday)
	report, err := u.Sweep(context.Background())
	if err == nil {
		t.Fatal("expected the collected campaign error to surface")
	}
	if report.Failures != 1 {
		t.Fatalf("expected 1 failure, got %d", report.Failures)
	}
	if report.Accrued != 1 || report.PausedBudget != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

// TestSweepSnapshotError aborts the pass when the snapshot itself cannot
// be read.
func TestSweepSnapshotError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListByStatus(mock.Anything, domain.StatusActive).
		Return(nil, errors.New("unavailable"))

	u := newTestUseCase(repo, monday)
	if _, err := u.Sweep(context.Background()); err == nil {
		t.Fatal("expected snapshot error")
	}
}
