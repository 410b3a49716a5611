package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Spend accrues money spent by one campaign on one calendar date. Exactly
// one row exists per (campaign, date); it is created lazily on first
// accrual and never deleted. DailySpend is zeroed by the daily reset,
// MonthlySpend by the monthly reset; outside resets both fields only grow.
type Spend struct {
	ID           int64
	CampaignID   int64
	Date         time.Time // calendar date, midnight UTC
	DailySpend   decimal.Decimal
	MonthlySpend decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Day truncates t to its calendar date in UTC. Spend rows are keyed on the
// result so that two accruals within the same day address the same row.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
