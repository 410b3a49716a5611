package port

import (
	"context"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
)

// BudgetUseCase defines the business operations exposed by the admission
// engine. This interface is the primary port into the application domain:
// the HTTP layer and the scheduler both invoke it and nothing else. Mock
// implementations can be generated from this interface for testing.
type BudgetUseCase interface {
	// TrackSpend accrues amount (> 0) against the campaign's spend for
	// today, then runs the budget check. The accrual itself never clamps:
	// overshoot past the budget is what the check detects.
	TrackSpend(ctx context.Context, campaignID int64, amount decimal.Decimal) error

	// CheckBudgetLimits applies the admission rules to one campaign:
	// pause on daily overrun first, then monthly, else re-admit a
	// budget-paused campaign whose spend is back under both budgets.
	CheckBudgetLimits(ctx context.Context, campaignID int64) error

	// CheckDayparting reports whether the campaign is inside its active
	// hours right now. Unknown campaigns report false rather than an error.
	CheckDayparting(ctx context.Context, campaignID int64) bool

	// PauseCampaign is the operator's manual pause. It is never cleared
	// automatically; only ActivateCampaign lifts it.
	PauseCampaign(ctx context.Context, campaignID int64) error
	// ActivateCampaign sets the campaign ACTIVE and clears any pause reason.
	ActivateCampaign(ctx context.Context, campaignID int64) error

	// Sweep runs one full evaluation pass over all ACTIVE campaigns:
	// dayparting, synthetic accrual, then budget checks. Individual
	// campaign failures are collected and do not abort the pass.
	Sweep(ctx context.Context) (*SweepReport, error)

	// DailyReset zeroes all daily spend and re-admits eligible campaigns
	// paused for the daily budget.
	DailyReset(ctx context.Context) error
	// MonthlyReset is a no-op unless today is the first of the month or
	// force is set; otherwise it mirrors DailyReset for monthly spend.
	MonthlyReset(ctx context.Context, force bool) error
	// ResetAllBudgets zeroes everything and reactivates every paused
	// campaign. Not part of normal budget logic.
	ResetAllBudgets(ctx context.Context) error

	// StatusSummary returns campaign counts by status and pause reason.
	StatusSummary(ctx context.Context) (*StatusSummary, error)
	// BrandSpend returns the brand's aggregated current-day spend.
	BrandSpend(ctx context.Context, brandID int64) (*domain.BrandSpend, error)
	// CampaignBudget returns the campaign's budgets, spend and remainder.
	CampaignBudget(ctx context.Context, campaignID int64) (*BudgetStatus, error)

	// Write paths for the administrative surface.
	CreateBrand(ctx context.Context, b *domain.Brand) error
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	CreateSchedule(ctx context.Context, s *domain.DaypartingSchedule) error
}

// SweepReport summarises one sweep pass. Failures counts campaigns whose
// evaluation errored; their errors are joined into the error returned
// alongside the report.
type SweepReport struct {
	RunID            string
	Snapshot         int
	PausedDayparting int
	Accrued          int
	PausedBudget     int
	Failures         int
}

// BudgetStatus is a read model with a campaign's budgets, its current-day
// spend and the remaining headroom (clamped at zero for display).
type BudgetStatus struct {
	CampaignID       int64
	Status           domain.Status
	PauseReason      domain.PauseReason
	DailyBudget      decimal.Decimal
	MonthlyBudget    decimal.Decimal
	DailySpend       decimal.Decimal
	MonthlySpend     decimal.Decimal
	DailyRemaining   decimal.Decimal
	MonthlyRemaining decimal.Decimal
}
