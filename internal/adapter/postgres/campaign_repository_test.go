package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
	"adpacer/internal/db"
)

// These tests run against a real PostgreSQL instance: the upsert and reset
// semantics live in SQL and cannot be exercised through mocks. Set
// TEST_PSQL_ADDRESS to a connection string to enable them; the embedded
// migrations are applied once and tables are truncated per test.

var (
	testInit sync.Once
	testPool *pgxpool.Pool
)

var monday = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestRepository(t *testing.T) *CampaignRepository {
	t.Helper()
	addr := os.Getenv("TEST_PSQL_ADDRESS")
	if addr == "" {
		t.Skip("TEST_PSQL_ADDRESS not set")
	}

	testInit.Do(func() {
		if err := db.Migrate(addr); err != nil {
			t.Fatalf("migrate: %v", err)
		}
		pool, err := pgxpool.New(context.Background(), addr)
		if err != nil {
			t.Fatalf("connect: %v", err)
		}
		testPool = pool
	})

	_, err := testPool.Exec(context.Background(),
		`TRUNCATE brands, campaigns, spends, dayparting_schedules RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewCampaignRepository(testPool)
}

// seedCampaign creates a brand and one campaign under it in the given
// state, with a 50.00 daily and 500.00 monthly budget.
func seedCampaign(t *testing.T, repo *CampaignRepository, name string, state domain.State) *domain.Campaign {
	t.Helper()
	ctx := context.Background()

	b := &domain.Brand{Name: "brand-" + name,
		DailyBudget: dec("500.00"), MonthlyBudget: dec("10000.00")}
	if err := repo.CreateBrand(ctx, b); err != nil {
		t.Fatalf("CreateBrand: %v", err)
	}
	c := &domain.Campaign{BrandID: b.ID, Name: name, State: state,
		DailyBudget: dec("50.00"), MonthlyBudget: dec("500.00")}
	if err := repo.CreateCampaign(ctx, c); err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	return c
}

// setSpend writes a spend row directly so daily and monthly values can
// diverge, which AddSpend alone never produces.
func setSpend(t *testing.T, campaignID int64, day time.Time, daily, monthly string) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
        INSERT INTO spends (campaign_id, date, daily_spend, monthly_spend, created_at, updated_at)
        VALUES ($1, $2, $3, $4, now(), now())
        ON CONFLICT (campaign_id, date) DO UPDATE
            SET daily_spend = EXCLUDED.daily_spend, monthly_spend = EXCLUDED.monthly_spend`,
		campaignID, domain.Day(day), daily, monthly)
	if err != nil {
		t.Fatalf("setSpend: %v", err)
	}
}

// TestAddSpendAccumulates: repeated accruals against the same campaign and
// day add up on one row, and the total does not depend on accrual order.
func TestAddSpendAccumulates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	c1 := seedCampaign(t, repo, "first", domain.Active())
	c2 := seedCampaign(t, repo, "second", domain.Active())

	first, err := repo.AddSpend(ctx, c1.ID, monday, dec("0.01"))
	if err != nil {
		t.Fatalf("AddSpend: %v", err)
	}
	second, err := repo.AddSpend(ctx, c1.ID, monday, dec("0.02"))
	if err != nil {
		t.Fatalf("AddSpend: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected one row per campaign and day, got ids %d and %d", first.ID, second.ID)
	}
	if !second.DailySpend.Equal(dec("0.03")) || !second.MonthlySpend.Equal(dec("0.03")) {
		t.Fatalf("unexpected totals: %s / %s", second.DailySpend, second.MonthlySpend)
	}

	// same amounts in the opposite order reach the same totals
	if _, err = repo.AddSpend(ctx, c2.ID, monday, dec("0.02")); err != nil {
		t.Fatalf("AddSpend: %v", err)
	}
	reversed, err := repo.AddSpend(ctx, c2.ID, monday, dec("0.01"))
	if err != nil {
		t.Fatalf("AddSpend: %v", err)
	}
	if !reversed.DailySpend.Equal(second.DailySpend) {
		t.Fatalf("order changed the total: %s vs %s", reversed.DailySpend, second.DailySpend)
	}

	// a different day starts its own row
	tuesday := monday.AddDate(0, 0, 1)
	next, err := repo.AddSpend(ctx, c1.ID, tuesday, dec("0.05"))
	if err != nil {
		t.Fatalf("AddSpend: %v", err)
	}
	if next.ID == first.ID || !next.DailySpend.Equal(dec("0.05")) {
		t.Fatalf("expected a fresh row for the next day, got %+v", next)
	}
}

// TestAddSpendUnknownCampaign maps the foreign-key violation onto
// port.ErrNotFound.
func TestAddSpendUnknownCampaign(t *testing.T) {
	repo := newTestRepository(t)
	if _, err := repo.AddSpend(context.Background(), 999, monday, dec("0.01")); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestResetDailyReadmits zeroes daily spend everywhere and reactivates only
// campaigns paused for the daily budget whose monthly budget still has
// headroom. Manual pauses and monthly-exhausted campaigns stay paused.
func TestResetDailyReadmits(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	eligible := seedCampaign(t, repo, "eligible", domain.Paused(domain.PauseDailyBudgetExceeded))
	setSpend(t, eligible.ID, monday, "50.00", "120.00")

	monthlyOut := seedCampaign(t, repo, "monthly-out", domain.Paused(domain.PauseDailyBudgetExceeded))
	setSpend(t, monthlyOut.ID, monday, "50.00", "500.00")

	manual := seedCampaign(t, repo, "manual", domain.Paused(domain.PauseManual))
	setSpend(t, manual.ID, monday, "50.00", "120.00")

	res, err := repo.ResetDaily(ctx, monday)
	if err != nil {
		t.Fatalf("ResetDaily: %v", err)
	}
	if res.SpendRows != 3 || res.Reactivated != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	got, err := repo.GetCampaign(ctx, eligible.ID)
	if err != nil {
		t.Fatalf("GetCampaign: %v", err)
	}
	if got.State != domain.Active() {
		t.Fatalf("eligible campaign not reactivated: %+v", got.State)
	}

	got, _ = repo.GetCampaign(ctx, monthlyOut.ID)
	if got.State != domain.Paused(domain.PauseDailyBudgetExceeded) {
		t.Fatalf("monthly-exhausted campaign must stay paused: %+v", got.State)
	}
	got, _ = repo.GetCampaign(ctx, manual.ID)
	if got.State != domain.Paused(domain.PauseManual) {
		t.Fatalf("manual pause must survive the reset: %+v", got.State)
	}

	// daily spend zeroed, monthly accrual preserved
	spend, err := repo.GetSpend(ctx, eligible.ID, monday)
	if err != nil {
		t.Fatalf("GetSpend: %v", err)
	}
	if !spend.DailySpend.IsZero() || !spend.MonthlySpend.Equal(dec("120.00")) {
		t.Fatalf("unexpected spend after reset: %s / %s", spend.DailySpend, spend.MonthlySpend)
	}
}

// TestResetDailyTwiceIsIdempotent: a second reset on the same day finds
// daily spend already at zero and nothing left to reactivate.
func TestResetDailyTwiceIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	c := seedCampaign(t, repo, "repeat", domain.Paused(domain.PauseDailyBudgetExceeded))
	setSpend(t, c.ID, monday, "50.00", "120.00")

	res, err := repo.ResetDaily(ctx, monday)
	if err != nil {
		t.Fatalf("first ResetDaily: %v", err)
	}
	if res.Reactivated != 1 {
		t.Fatalf("expected 1 reactivation, got %+v", res)
	}

	res, err = repo.ResetDaily(ctx, monday)
	if err != nil {
		t.Fatalf("second ResetDaily: %v", err)
	}
	if res.Reactivated != 0 {
		t.Fatalf("second reset must reactivate nothing, got %+v", res)
	}
	spend, err := repo.GetSpend(ctx, c.ID, monday)
	if err != nil {
		t.Fatalf("GetSpend: %v", err)
	}
	if !spend.DailySpend.IsZero() {
		t.Fatalf("daily spend must stay zero, got %s", spend.DailySpend)
	}
	got, _ := repo.GetCampaign(ctx, c.ID)
	if got.State != domain.Active() {
		t.Fatalf("campaign must stay active, got %+v", got.State)
	}
}

// TestResetMonthlyReadmits mirrors the daily reset on the monthly axis.
func TestResetMonthlyReadmits(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	c := seedCampaign(t, repo, "monthly", domain.Paused(domain.PauseMonthlyBudgetExceeded))
	setSpend(t, c.ID, monday, "10.00", "500.00")

	res, err := repo.ResetMonthly(ctx, monday)
	if err != nil {
		t.Fatalf("ResetMonthly: %v", err)
	}
	if res.Reactivated != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	spend, err := repo.GetSpend(ctx, c.ID, monday)
	if err != nil {
		t.Fatalf("GetSpend: %v", err)
	}
	if !spend.MonthlySpend.IsZero() || !spend.DailySpend.Equal(dec("10.00")) {
		t.Fatalf("unexpected spend after reset: %s / %s", spend.DailySpend, spend.MonthlySpend)
	}
}

// TestScheduleOverlapConstraint: the exclusion constraint rejects an
// overlapping active window even when the write bypasses the usecase.
func TestScheduleOverlapConstraint(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	c := seedCampaign(t, repo, "windows", domain.Active())
	first := &domain.DaypartingSchedule{CampaignID: c.ID, DayOfWeek: 0,
		Start: domain.NewClockTime(9, 0), End: domain.NewClockTime(17, 0), IsActive: true}
	if err := repo.CreateSchedule(ctx, first); err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}

	clash := &domain.DaypartingSchedule{CampaignID: c.ID, DayOfWeek: 0,
		Start: domain.NewClockTime(16, 0), End: domain.NewClockTime(18, 0), IsActive: true}
	err := repo.CreateSchedule(ctx, clash)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error from the exclusion constraint, got %v", err)
	}
}
