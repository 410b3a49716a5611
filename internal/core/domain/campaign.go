package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status of a campaign. INACTIVE is an operator resting state and is never
// entered or left automatically.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusPaused   Status = "PAUSED"
)

// PauseReason explains why a campaign is PAUSED.
type PauseReason string

const (
	PauseDailyBudgetExceeded   PauseReason = "DAILY_BUDGET_EXCEEDED"
	PauseMonthlyBudgetExceeded PauseReason = "MONTHLY_BUDGET_EXCEEDED"
	PauseOutsideDayparting     PauseReason = "OUTSIDE_DAYPARTING_HOURS"
	PauseManual                PauseReason = "MANUAL_PAUSE"
)

// State couples status and pause reason into one value so that a PAUSED
// state without a reason, or a reason on a non-paused state, cannot be
// represented. Construct states through Active, Inactive and Paused.
type State struct {
	Status Status
	Reason PauseReason // set iff Status == StatusPaused
}

func Active() State   { return State{Status: StatusActive} }
func Inactive() State { return State{Status: StatusInactive} }

func Paused(reason PauseReason) State {
	return State{Status: StatusPaused, Reason: reason}
}

// Valid reports whether the status/reason combination is representable.
func (s State) Valid() bool {
	switch s.Status {
	case StatusPaused:
		switch s.Reason {
		case PauseDailyBudgetExceeded, PauseMonthlyBudgetExceeded, PauseOutsideDayparting, PauseManual:
			return true
		}
		return false
	case StatusActive, StatusInactive:
		return s.Reason == ""
	}
	return false
}

// PausedFor reports whether the state is PAUSED with one of the given reasons.
func (s State) PausedFor(reasons ...PauseReason) bool {
	if s.Status != StatusPaused {
		return false
	}
	for _, r := range reasons {
		if s.Reason == r {
			return true
		}
	}
	return false
}

// Campaign is the unit whose spend is tracked and whose admission is
// controlled. Budgets are fixed-point decimals with two fractional digits.
type Campaign struct {
	ID            int64
	BrandID       int64
	Name          string
	State         State
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the write-time constraints on a campaign.
func (c Campaign) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if !c.DailyBudget.IsPositive() {
		return &ValidationError{Field: "daily_budget", Msg: "must be positive"}
	}
	if !c.MonthlyBudget.IsPositive() {
		return &ValidationError{Field: "monthly_budget", Msg: "must be positive"}
	}
	if !c.State.Valid() {
		return &ValidationError{Field: "state", Msg: "invalid status/reason combination"}
	}
	return nil
}

// BudgetAvailable reports whether the campaign may keep spending given its
// accrued spend. A nil spend row means nothing was accrued today. Equality
// counts as exhausted, so the comparison is strictly less-than on both
// budgets.
func (c Campaign) BudgetAvailable(s *Spend) bool {
	if s == nil {
		return true
	}
	return s.DailySpend.LessThan(c.DailyBudget) && s.MonthlySpend.LessThan(c.MonthlyBudget)
}

// RemainingBudget returns how much of each budget is left. Values are
// clamped at zero for presentation; stored spend is never clamped.
func (c Campaign) RemainingBudget(s *Spend) (daily, monthly decimal.Decimal) {
	daily, monthly = c.DailyBudget, c.MonthlyBudget
	if s != nil {
		daily = daily.Sub(s.DailySpend)
		monthly = monthly.Sub(s.MonthlySpend)
	}
	if daily.IsNegative() {
		daily = decimal.Zero
	}
	if monthly.IsNegative() {
		monthly = decimal.Zero
	}
	return daily, monthly
}
