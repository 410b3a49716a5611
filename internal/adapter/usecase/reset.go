package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// DailyReset zeroes daily spend across all spend rows and re-admits
// campaigns paused for the daily budget whose budgets are available again.
// The repository runs the whole reset in one transaction, so a failure
// leaves nothing half-reset. Running it twice is idempotent: the second
// pass finds daily spend already at zero and nothing left to reactivate.
func (u *BudgetUseCase) DailyReset(ctx context.Context) error {
	res, err := u.repo.ResetDaily(ctx, u.now())
	if err != nil {
		u.logger.Error("daily reset failed", slog.Any("error", err))
		return fmt.Errorf("daily reset: %w", err)
	}
	u.logger.Info("daily reset completed",
		slog.Int64("spend_rows", res.SpendRows),
		slog.Int64("reactivated", res.Reactivated))
	return nil
}

// MonthlyReset zeroes monthly spend and re-admits campaigns paused for the
// monthly budget. The day-of-month guard makes it a no-op except on the
// first calendar day; force bypasses the guard for operational recovery.
func (u *BudgetUseCase) MonthlyReset(ctx context.Context, force bool) error {
	if !force && u.now().Day() != 1 {
		u.logger.Info("monthly reset skipped", slog.Int("day_of_month", u.now().Day()))
		return nil
	}
	res, err := u.repo.ResetMonthly(ctx, u.now())
	if err != nil {
		u.logger.Error("monthly reset failed", slog.Any("error", err))
		return fmt.Errorf("monthly reset: %w", err)
	}
	u.logger.Info("monthly reset completed",
		slog.Bool("forced", force),
		slog.Int64("spend_rows", res.SpendRows),
		slog.Int64("reactivated", res.Reactivated))
	return nil
}

// ResetAllBudgets zeroes both spend fields on every row and reactivates
// every paused campaign, manual pauses included. This is an operational
// escape hatch, not part of the normal budget cycle.
func (u *BudgetUseCase) ResetAllBudgets(ctx context.Context) error {
	res, err := u.repo.ResetAll(ctx)
	if err != nil {
		u.logger.Error("reset all budgets failed", slog.Any("error", err))
		return fmt.Errorf("reset all budgets: %w", err)
	}
	u.logger.Info("reset all budgets completed",
		slog.Int64("spend_rows", res.SpendRows),
		slog.Int64("reactivated", res.Reactivated))
	return nil
}
