package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// BudgetUseCase implements the admission rules deciding whether a campaign
// may keep spending. It orchestrates the repository to implement the
// port.BudgetUseCase interface. All state transitions go through the pause
// and activate helpers so status and pause reason always change together.
type BudgetUseCase struct {
	repo   port.CampaignRepository
	logger *slog.Logger

	// spender supplies the synthetic accrual amount used by the sweep.
	spender SpendSource

	// now is replaceable in tests to pin the clock. The default is UTC,
	// matching the calendar used for spend date keys and day boundaries.
	now func() time.Time

	// campaignTimeout bounds one campaign's evaluation inside a sweep so
	// a stuck campaign cannot stall the rest of the pass.
	campaignTimeout time.Duration
}

// Option configures a BudgetUseCase.
type Option func(*BudgetUseCase)

// WithSpendSource replaces the synthetic spend source used by the sweep.
func WithSpendSource(s SpendSource) Option {
	return func(u *BudgetUseCase) { u.spender = s }
}

// WithCampaignTimeout bounds per-campaign evaluation inside a sweep.
func WithCampaignTimeout(d time.Duration) Option {
	return func(u *BudgetUseCase) { u.campaignTimeout = d }
}

// NewBudgetUseCase creates a new usecase with the provided repository.
func NewBudgetUseCase(repo port.CampaignRepository, logger *slog.Logger, opts ...Option) *BudgetUseCase {
	u := &BudgetUseCase{
		repo:            repo,
		logger:          logger,
		spender:         NewSimulatedSpend(),
		now:             func() time.Time { return time.Now().UTC() },
		campaignTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// TrackSpend accrues amount against the campaign's spend for today and then
// runs the budget check. The accrual never clamps; overshoot past the
// budget is exactly what the check detects.
func (u *BudgetUseCase) TrackSpend(ctx context.Context, campaignID int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	spend, err := u.repo.AddSpend(ctx, campaignID, u.now(), amount)
	if err != nil {
		u.logger.Error("track spend failed",
			slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return err
	}
	u.logger.Info("spend tracked",
		slog.Int64("campaign_id", campaignID),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("daily_spend", spend.DailySpend.StringFixed(2)),
		slog.String("monthly_spend", spend.MonthlySpend.StringFixed(2)))
	return u.CheckBudgetLimits(ctx, campaignID)
}

// CheckBudgetLimits applies the admission rules to one campaign. The daily
// check runs first and wins; the monthly check runs only when the daily
// budget still has headroom. A campaign paused for either budget reason is
// re-admitted once both budgets are strictly under their limits. Manual
// pauses and dayparting pauses are never lifted here.
func (u *BudgetUseCase) CheckBudgetLimits(ctx context.Context, campaignID int64) error {
	_, err := u.evaluateBudget(ctx, campaignID)
	return err
}

// evaluateBudget runs the budget rules and reports whether they paused the
// campaign during this evaluation.
func (u *BudgetUseCase) evaluateBudget(ctx context.Context, campaignID int64) (paused bool, err error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return false, err
	}
	spend, err := u.repo.GetSpend(ctx, campaignID, u.now())
	if err != nil {
		return false, err
	}
	if spend == nil {
		return false, nil // nothing accrued today, nothing to check
	}

	if spend.DailySpend.GreaterThanOrEqual(c.DailyBudget) {
		if c.State.Status == domain.StatusActive {
			return true, u.pause(ctx, c, domain.PauseDailyBudgetExceeded)
		}
		return false, nil
	}
	if spend.MonthlySpend.GreaterThanOrEqual(c.MonthlyBudget) {
		if c.State.Status == domain.StatusActive {
			return true, u.pause(ctx, c, domain.PauseMonthlyBudgetExceeded)
		}
		return false, nil
	}

	if c.State.PausedFor(domain.PauseDailyBudgetExceeded, domain.PauseMonthlyBudgetExceeded) &&
		c.BudgetAvailable(spend) {
		return false, u.activate(ctx, c)
	}
	return false, nil
}

// CheckDayparting reports whether the campaign is inside its active hours
// right now. An unknown campaign reports false rather than an error.
func (u *BudgetUseCase) CheckDayparting(ctx context.Context, campaignID int64) bool {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		u.logger.Error("dayparting check failed",
			slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return false
	}
	schedules, err := u.repo.ListSchedules(ctx, c.ID)
	if err != nil {
		u.logger.Error("dayparting check failed",
			slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		return false
	}
	return domain.WithinHours(schedules, u.now())
}

// PauseCampaign is the operator's manual pause. Budget and dayparting logic
// never clear it.
func (u *BudgetUseCase) PauseCampaign(ctx context.Context, campaignID int64) error {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	return u.pause(ctx, c, domain.PauseManual)
}

// ActivateCampaign sets the campaign ACTIVE and clears any pause reason.
func (u *BudgetUseCase) ActivateCampaign(ctx context.Context, campaignID int64) error {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	return u.activate(ctx, c)
}

// pause and activate are the only two paths that mutate campaign state.

func (u *BudgetUseCase) pause(ctx context.Context, c *domain.Campaign, reason domain.PauseReason) error {
	if err := u.repo.SetState(ctx, c.ID, domain.Paused(reason)); err != nil {
		return err
	}
	u.logger.Info("campaign paused",
		slog.Int64("campaign_id", c.ID), slog.String("reason", string(reason)))
	return nil
}

func (u *BudgetUseCase) activate(ctx context.Context, c *domain.Campaign) error {
	if err := u.repo.SetState(ctx, c.ID, domain.Active()); err != nil {
		return err
	}
	u.logger.Info("campaign activated", slog.Int64("campaign_id", c.ID))
	return nil
}

// StatusSummary returns campaign counts by status and pause reason.
func (u *BudgetUseCase) StatusSummary(ctx context.Context) (*port.StatusSummary, error) {
	return u.repo.StatusSummary(ctx)
}

// BrandSpend returns the brand's aggregated current-day spend.
func (u *BudgetUseCase) BrandSpend(ctx context.Context, brandID int64) (*domain.BrandSpend, error) {
	return u.repo.BrandSpend(ctx, brandID, u.now())
}

// CampaignBudget returns the campaign's budgets, current-day spend and the
// remaining headroom, clamped at zero for display.
func (u *BudgetUseCase) CampaignBudget(ctx context.Context, campaignID int64) (*port.BudgetStatus, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	spend, err := u.repo.GetSpend(ctx, campaignID, u.now())
	if err != nil {
		return nil, err
	}
	status := &port.BudgetStatus{
		CampaignID:    c.ID,
		Status:        c.State.Status,
		PauseReason:   c.State.Reason,
		DailyBudget:   c.DailyBudget,
		MonthlyBudget: c.MonthlyBudget,
		DailySpend:    decimal.Zero,
		MonthlySpend:  decimal.Zero,
	}
	if spend != nil {
		status.DailySpend = spend.DailySpend
		status.MonthlySpend = spend.MonthlySpend
	}
	status.DailyRemaining, status.MonthlyRemaining = c.RemainingBudget(spend)
	return status, nil
}

// CreateBrand validates and persists a brand.
func (u *BudgetUseCase) CreateBrand(ctx context.Context, b *domain.Brand) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return u.repo.CreateBrand(ctx, b)
}

// CreateCampaign validates and persists a campaign. New campaigns default
// to INACTIVE until an operator activates them.
func (u *BudgetUseCase) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.State == (domain.State{}) {
		c.State = domain.Inactive()
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return u.repo.CreateCampaign(ctx, c)
}

// CreateSchedule validates a dayparting window, including the no-overlap
// rule against the campaign's existing active windows, and persists it.
func (u *BudgetUseCase) CreateSchedule(ctx context.Context, s *domain.DaypartingSchedule) error {
	if err := s.Validate(); err != nil {
		return err
	}
	existing, err := u.repo.ListSchedules(ctx, s.CampaignID)
	if err != nil {
		return err
	}
	if err := domain.CheckOverlap(*s, existing); err != nil {
		return err
	}
	return u.repo.CreateSchedule(ctx, s)
}
