package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// Sweep runs one full evaluation pass over all ACTIVE campaigns. The
// snapshot is taken once at pass start; campaigns paused mid-pass are not
// re-visited. Pass one applies dayparting and accrues synthetic spend for
// campaigns still in hours; pass two runs the budget check over the same
// snapshot. A failing campaign is logged and collected; it never aborts
// the pass for the rest.
func (u *BudgetUseCase) Sweep(ctx context.Context) (*port.SweepReport, error) {
	report := &port.SweepReport{RunID: uuid.NewString()}

	snapshot, err := u.repo.ListByStatus(ctx, domain.StatusActive)
	if err != nil {
		return report, fmt.Errorf("sweep snapshot: %w", err)
	}
	report.Snapshot = len(snapshot)
	u.logger.Info("sweep started",
		slog.String("run_id", report.RunID), slog.Int("campaigns", report.Snapshot))

	var errs *multierror.Error

	for i := range snapshot {
		c := &snapshot[i]
		if err := u.sweepCampaign(ctx, c, report); err != nil {
			report.Failures++
			u.logger.Error("sweep campaign failed",
				slog.String("run_id", report.RunID),
				slog.Int64("campaign_id", c.ID), slog.Any("error", err))
			errs = multierror.Append(errs, fmt.Errorf("campaign %d: %w", c.ID, err))
		}
	}

	for i := range snapshot {
		c := &snapshot[i]
		paused, err := u.checkCampaignBudget(ctx, c.ID)
		if err != nil {
			report.Failures++
			u.logger.Error("sweep budget check failed",
				slog.String("run_id", report.RunID),
				slog.Int64("campaign_id", c.ID), slog.Any("error", err))
			errs = multierror.Append(errs, fmt.Errorf("campaign %d: %w", c.ID, err))
			continue
		}
		if paused {
			report.PausedBudget++
		}
	}

	u.logger.Info("sweep finished",
		slog.String("run_id", report.RunID),
		slog.Int("paused_dayparting", report.PausedDayparting),
		slog.Int("accrued", report.Accrued),
		slog.Int("paused_budget", report.PausedBudget),
		slog.Int("failures", report.Failures))
	return report, errs.ErrorOrNil()
}

// sweepCampaign evaluates one campaign in pass one: dayparting first, then
// synthetic accrual. The evaluation is time-boxed so a stuck campaign
// cannot stall the rest of the pass.
func (u *BudgetUseCase) sweepCampaign(ctx context.Context, c *domain.Campaign, report *port.SweepReport) error {
	ctx, cancel := context.WithTimeout(ctx, u.campaignTimeout)
	defer cancel()

	schedules, err := u.repo.ListSchedules(ctx, c.ID)
	if err != nil {
		return err
	}
	if !domain.WithinHours(schedules, u.now()) {
		if err := u.pause(ctx, c, domain.PauseOutsideDayparting); err != nil {
			return err
		}
		report.PausedDayparting++
		return nil
	}

	amount := u.spender.Amount()
	if _, err := u.repo.AddSpend(ctx, c.ID, u.now(), amount); err != nil {
		return err
	}
	report.Accrued++
	return nil
}

func (u *BudgetUseCase) checkCampaignBudget(ctx context.Context, campaignID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, u.campaignTimeout)
	defer cancel()
	return u.evaluateBudget(ctx, campaignID)
}
