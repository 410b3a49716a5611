package port

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
)

// ErrNotFound is returned when a referenced brand, campaign or spend row
// does not exist. It is surfaced to the caller and never retried.
var ErrNotFound = errors.New("not found")

// ResetResult reports what a bulk reset touched.
type ResetResult struct {
	SpendRows   int64
	Reactivated int64
}

// StatusSummary counts campaigns by state, with a per-reason breakdown of
// the paused ones. It is a read model for the presentation layer.
type StatusSummary struct {
	Active       int64
	Inactive     int64
	Paused       int64
	Total        int64
	PauseReasons map[domain.PauseReason]int64
}

// CampaignRepository defines the persistence layer for the admission
// engine. It is an outbound port in hexagonal architecture. Implementations
// must be concurrency-safe: AddSpend is an atomic get-or-create plus
// increment per campaign, SetState writes status and pause reason in one
// statement, and the Reset* methods run as a single all-or-nothing
// transaction each.
type CampaignRepository interface {
	// CreateBrand persists a brand and fills in its id.
	CreateBrand(ctx context.Context, b *domain.Brand) error
	// GetBrand returns a brand by id, or ErrNotFound.
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	// BrandSpend sums daily and monthly spend over the brand's campaigns
	// for the given calendar day.
	BrandSpend(ctx context.Context, brandID int64, day time.Time) (*domain.BrandSpend, error)

	// CreateCampaign persists a campaign and fills in its id.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or ErrNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListByStatus returns all campaigns in the given status.
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error)
	// SetState atomically updates a campaign's status and pause reason.
	SetState(ctx context.Context, id int64, state domain.State) error
	// StatusSummary counts campaigns by status and pause reason.
	StatusSummary(ctx context.Context) (*StatusSummary, error)

	// CreateSchedule persists a dayparting window and fills in its id.
	CreateSchedule(ctx context.Context, s *domain.DaypartingSchedule) error
	// ListSchedules returns every schedule of a campaign.
	ListSchedules(ctx context.Context, campaignID int64) ([]domain.DaypartingSchedule, error)

	// AddSpend increments both spend fields of the (campaign, day) row by
	// amount, creating the row at zero first when absent. The whole
	// operation is one atomic unit; the updated row is returned.
	AddSpend(ctx context.Context, campaignID int64, day time.Time, amount decimal.Decimal) (*domain.Spend, error)
	// GetSpend returns the (campaign, day) spend row, or nil when no
	// accrual has happened on that day yet.
	GetSpend(ctx context.Context, campaignID int64, day time.Time) (*domain.Spend, error)

	// ResetDaily zeroes daily_spend on every spend row, then reactivates
	// campaigns paused for DAILY_BUDGET_EXCEEDED whose budgets are
	// available again for the given day. One transaction.
	ResetDaily(ctx context.Context, day time.Time) (ResetResult, error)
	// ResetMonthly is ResetDaily's monthly counterpart: monthly_spend and
	// MONTHLY_BUDGET_EXCEEDED.
	ResetMonthly(ctx context.Context, day time.Time) (ResetResult, error)
	// ResetAll zeroes both spend fields on every row and reactivates every
	// paused campaign regardless of reason. Operational escape hatch.
	ResetAll(ctx context.Context) (ResetResult, error)
}
