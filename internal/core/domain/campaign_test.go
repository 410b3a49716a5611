package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStateValid(t *testing.T) {
	valid := []State{
		Active(),
		Inactive(),
		Paused(PauseDailyBudgetExceeded),
		Paused(PauseMonthlyBudgetExceeded),
		Paused(PauseOutsideDayparting),
		Paused(PauseManual),
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Fatalf("expected valid: %+v", s)
		}
	}

	invalid := []State{
		{Status: StatusPaused},                      // paused without reason
		{Status: StatusActive, Reason: PauseManual}, // reason without pause
		{Status: StatusInactive, Reason: PauseManual},
		{Status: StatusPaused, Reason: PauseReason("UNKNOWN")},
		{},
	}
	for _, s := range invalid {
		if s.Valid() {
			t.Fatalf("expected invalid: %+v", s)
		}
	}
}

func TestStatePausedFor(t *testing.T) {
	s := Paused(PauseDailyBudgetExceeded)
	if !s.PausedFor(PauseDailyBudgetExceeded, PauseMonthlyBudgetExceeded) {
		t.Fatal("expected match on daily reason")
	}
	if s.PausedFor(PauseManual) {
		t.Fatal("manual must not match")
	}
	if Active().PausedFor(PauseDailyBudgetExceeded) {
		t.Fatal("active is never paused-for")
	}
}

// TestBudgetAvailableBoundary: spend exactly equal to budget counts as
// exhausted; a cent under is available; a missing spend row is available.
func TestBudgetAvailableBoundary(t *testing.T) {
	c := Campaign{DailyBudget: money("50.00"), MonthlyBudget: money("500.00")}

	if !c.BudgetAvailable(nil) {
		t.Fatal("no spend row must be available")
	}
	if !c.BudgetAvailable(&Spend{DailySpend: money("49.99"), MonthlySpend: money("499.99")}) {
		t.Fatal("a cent under both budgets must be available")
	}
	if c.BudgetAvailable(&Spend{DailySpend: money("50.00"), MonthlySpend: money("0.00")}) {
		t.Fatal("daily equality must count as exhausted")
	}
	if c.BudgetAvailable(&Spend{DailySpend: money("0.00"), MonthlySpend: money("500.00")}) {
		t.Fatal("monthly equality must count as exhausted")
	}
}

func TestRemainingBudgetClamps(t *testing.T) {
	c := Campaign{DailyBudget: money("50.00"), MonthlyBudget: money("500.00")}

	daily, monthly := c.RemainingBudget(nil)
	if !daily.Equal(money("50.00")) || !monthly.Equal(money("500.00")) {
		t.Fatalf("full budgets expected, got %s / %s", daily, monthly)
	}

	daily, monthly = c.RemainingBudget(&Spend{DailySpend: money("51.00"), MonthlySpend: money("120.00")})
	if !daily.IsZero() {
		t.Fatalf("overshoot must clamp to zero, got %s", daily)
	}
	if !monthly.Equal(money("380.00")) {
		t.Fatalf("unexpected monthly remainder: %s", monthly)
	}
}

func TestCampaignValidate(t *testing.T) {
	ok := Campaign{Name: "c", State: Active(),
		DailyBudget: money("1.00"), MonthlyBudget: money("1.00")}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid campaign rejected: %v", err)
	}

	bad := ok
	bad.DailyBudget = money("0")
	if err := bad.Validate(); err == nil {
		t.Fatal("zero daily budget must be rejected")
	}

	bad = ok
	bad.MonthlyBudget = money("-5.00")
	if err := bad.Validate(); err == nil {
		t.Fatal("negative monthly budget must be rejected")
	}

	bad = ok
	bad.State = State{Status: StatusPaused}
	if err := bad.Validate(); err == nil {
		t.Fatal("paused without reason must be rejected")
	}
}

func TestBrandValidate(t *testing.T) {
	ok := Brand{Name: "acme", DailyBudget: money("100.00"), MonthlyBudget: money("1000.00")}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid brand rejected: %v", err)
	}
	bad := ok
	bad.DailyBudget = money("0")
	if err := bad.Validate(); err == nil {
		t.Fatal("zero daily budget must be rejected")
	}
}
