package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Brand is an advertiser account. It owns its campaigns exclusively;
// deleting a brand cascades to them. Brand budgets are informational and
// not separately enforced by the admission rules.
type Brand struct {
	ID            int64
	Name          string
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the write-time constraints on a brand.
func (b Brand) Validate() error {
	if b.Name == "" {
		return &ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if !b.DailyBudget.IsPositive() {
		return &ValidationError{Field: "daily_budget", Msg: "must be positive"}
	}
	if !b.MonthlyBudget.IsPositive() {
		return &ValidationError{Field: "monthly_budget", Msg: "must be positive"}
	}
	return nil
}

// BrandSpend is the current-day spend aggregated over a brand's campaigns.
type BrandSpend struct {
	BrandID      int64
	DailySpend   decimal.Decimal
	MonthlySpend decimal.Decimal
}
