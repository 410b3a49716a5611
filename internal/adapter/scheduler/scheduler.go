package scheduler

import (
	"context"
	"log/slog"
	"time"

	"adpacer/internal/config/configs"
	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// Scheduler drives the periodic jobs: the sweep on its own interval, and a
// calendar check that fires the daily reset once per calendar day and the
// monthly reset once per day (the usecase's day-of-month guard decides
// whether it actually runs). The admission logic itself stays synchronous
// inside the usecase; this is only the timer transport around it.
type Scheduler struct {
	svc    port.BudgetUseCase
	logger *slog.Logger
	cfg    configs.Scheduler

	// now is replaceable in tests.
	now func() time.Time

	lastReset time.Time // calendar day of the last daily/monthly firing
}

// New returns a scheduler. Nothing runs until Run is called.
func New(svc port.BudgetUseCase, logger *slog.Logger, cfg configs.Scheduler) *Scheduler {
	return &Scheduler{svc: svc, logger: logger, cfg: cfg,
		now: func() time.Time { return time.Now().UTC() }}
}

// Run blocks until ctx is cancelled, firing jobs on their cadence. Job
// errors are logged and the ticker keeps going; a broken sweep at 10:00
// must not cancel the one at 10:01.
func (s *Scheduler) Run(ctx context.Context) {
	sweep := time.NewTicker(s.cfg.SweepInterval)
	defer sweep.Stop()
	resets := time.NewTicker(s.cfg.ResetCheckInterval)
	defer resets.Stop()

	// a restart mid-day must not re-fire that day's resets
	if s.lastReset.IsZero() {
		s.lastReset = domain.Day(s.now())
	}

	s.logger.Info("scheduler started",
		slog.Duration("sweep_interval", s.cfg.SweepInterval),
		slog.Duration("reset_check_interval", s.cfg.ResetCheckInterval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-sweep.C:
			if _, err := s.svc.Sweep(ctx); err != nil {
				s.logger.Error("scheduled sweep failed", slog.Any("error", err))
			}
		case <-resets.C:
			s.fireResets(ctx)
		}
	}
}

// fireResets runs the daily and monthly resets the first time a tick lands
// on a new calendar day. The monthly reset is invoked without force; its
// own guard keeps it a no-op outside the first of the month.
func (s *Scheduler) fireResets(ctx context.Context) {
	today := domain.Day(s.now())
	if today.Equal(s.lastReset) {
		return
	}
	s.lastReset = today

	if err := s.svc.DailyReset(ctx); err != nil {
		s.logger.Error("scheduled daily reset failed", slog.Any("error", err))
	}
	if err := s.svc.MonthlyReset(ctx, false); err != nil {
		s.logger.Error("scheduled monthly reset failed", slog.Any("error", err))
	}
}
