package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Spend accrual and the bulk resets run inside transactions so
// concurrent readers never observe a half-applied mutation.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgExclusionViolation  = "23P01"
)

// constraintErr maps database constraint violations onto the domain error
// kinds: missing parents become ErrNotFound, uniqueness and CHECK failures
// become validation errors.
func constraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", port.ErrNotFound, pgErr.ConstraintName)
	case pgUniqueViolation:
		return &domain.ValidationError{Field: pgErr.ConstraintName, Msg: "already exists"}
	case pgCheckViolation:
		return &domain.ValidationError{Field: pgErr.ConstraintName, Msg: "constraint violated"}
	case pgExclusionViolation:
		return &domain.ValidationError{Field: pgErr.ConstraintName, Msg: "overlaps with an existing active window"}
	}
	return err
}

// CreateBrand persists a brand and fills in its id.
func (r *CampaignRepository) CreateBrand(ctx context.Context, b *domain.Brand) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO brands (name, daily_budget, monthly_budget, created_at, updated_at)
        VALUES ($1, $2, $3, now(), now())
        RETURNING id, created_at, updated_at`,
		b.Name, b.DailyBudget, b.MonthlyBudget,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return constraintErr(err)
}

// GetBrand returns a brand by id, or port.ErrNotFound.
func (r *CampaignRepository) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	var b domain.Brand
	err := r.pool.QueryRow(ctx, `
        SELECT id, name, daily_budget, monthly_budget, created_at, updated_at
        FROM brands WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("brand %d: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BrandSpend sums current-day spend over the brand's campaigns.
func (r *CampaignRepository) BrandSpend(ctx context.Context, brandID int64, day time.Time) (*domain.BrandSpend, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM brands WHERE id = $1)`, brandID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("brand %d: %w", brandID, port.ErrNotFound)
	}
	bs := domain.BrandSpend{BrandID: brandID}
	err := r.pool.QueryRow(ctx, `
        SELECT COALESCE(sum(s.daily_spend), 0), COALESCE(sum(s.monthly_spend), 0)
        FROM spends s
        JOIN campaigns c ON c.id = s.campaign_id
        WHERE c.brand_id = $1 AND s.date = $2`,
		brandID, domain.Day(day),
	).Scan(&bs.DailySpend, &bs.MonthlySpend)
	if err != nil {
		return nil, err
	}
	return &bs, nil
}

// CreateCampaign persists a campaign and fills in its id.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (brand_id, name, status, pause_reason, daily_budget, monthly_budget, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, now(), now())
        RETURNING id, created_at, updated_at`,
		c.BrandID, c.Name, c.State.Status, nullReason(c.State.Reason), c.DailyBudget, c.MonthlyBudget,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return constraintErr(err)
}

// GetCampaign returns a campaign by id, or port.ErrNotFound.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id, brand_id, name, status, pause_reason, daily_budget, monthly_budget, created_at, updated_at
        FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByStatus returns all campaigns in the given status, ordered by id so
// sweep passes visit campaigns in a stable order.
func (r *CampaignRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, brand_id, name, status, pause_reason, daily_budget, monthly_budget, created_at, updated_at
        FROM campaigns WHERE status = $1 ORDER BY id`, status)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// SetState atomically updates a campaign's status and pause reason.
func (r *CampaignRepository) SetState(ctx context.Context, id int64, state domain.State) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET status = $1, pause_reason = $2, updated_at = now()
        WHERE id = $3`,
		state.Status, nullReason(state.Reason), id)
	if err != nil {
		return constraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	return nil
}

// StatusSummary counts campaigns by status and pause reason.
func (r *CampaignRepository) StatusSummary(ctx context.Context) (*port.StatusSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT status, pause_reason, count(*) FROM campaigns GROUP BY status, pause_reason`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &port.StatusSummary{PauseReasons: map[domain.PauseReason]int64{}}
	for rows.Next() {
		var (
			status domain.Status
			reason *domain.PauseReason
			count  int64
		)
		if err = rows.Scan(&status, &reason, &count); err != nil {
			return nil, err
		}
		summary.Total += count
		switch status {
		case domain.StatusActive:
			summary.Active += count
		case domain.StatusInactive:
			summary.Inactive += count
		case domain.StatusPaused:
			summary.Paused += count
			if reason != nil {
				summary.PauseReasons[*reason] += count
			}
		}
	}
	return summary, rows.Err()
}

// CreateSchedule persists a dayparting window. Overlap between active
// windows of the same campaign and weekday is rejected both here (via the
// exclusion constraint) and at the usecase layer.
func (r *CampaignRepository) CreateSchedule(ctx context.Context, s *domain.DaypartingSchedule) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO dayparting_schedules (campaign_id, day_of_week, start_minute, end_minute, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, now(), now())
        RETURNING id, created_at, updated_at`,
		s.CampaignID, s.DayOfWeek, int(s.Start), int(s.End), s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return constraintErr(err)
}

// ListSchedules returns every schedule of a campaign ordered by weekday and
// start time.
func (r *CampaignRepository) ListSchedules(ctx context.Context, campaignID int64) ([]domain.DaypartingSchedule, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, day_of_week, start_minute, end_minute, is_active, created_at, updated_at
        FROM dayparting_schedules WHERE campaign_id = $1
        ORDER BY day_of_week, start_minute`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DaypartingSchedule, error) {
		var (
			s          domain.DaypartingSchedule
			start, end int
		)
		err := row.Scan(&s.ID, &s.CampaignID, &s.DayOfWeek, &start, &end, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		s.Start, s.End = domain.ClockTime(start), domain.ClockTime(end)
		return s, err
	})
}

// AddSpend increments both spend fields for (campaign, day), creating the
// row first when absent. The upsert is a single statement, so concurrent
// accruals against the same campaign and day serialize on the row without
// ever producing a duplicate.
func (r *CampaignRepository) AddSpend(ctx context.Context, campaignID int64, day time.Time, amount decimal.Decimal) (*domain.Spend, error) {
	var s domain.Spend
	err := r.pool.QueryRow(ctx, `
        INSERT INTO spends (campaign_id, date, daily_spend, monthly_spend, created_at, updated_at)
        VALUES ($1, $2, $3, $3, now(), now())
        ON CONFLICT (campaign_id, date) DO UPDATE
            SET daily_spend   = spends.daily_spend + EXCLUDED.daily_spend,
                monthly_spend = spends.monthly_spend + EXCLUDED.monthly_spend,
                updated_at    = now()
        RETURNING id, campaign_id, date, daily_spend, monthly_spend, created_at, updated_at`,
		campaignID, domain.Day(day), amount,
	).Scan(&s.ID, &s.CampaignID, &s.Date, &s.DailySpend, &s.MonthlySpend, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, constraintErr(err)
	}
	return &s, nil
}

// GetSpend returns the (campaign, day) spend row, or nil when nothing has
// been accrued on that day.
func (r *CampaignRepository) GetSpend(ctx context.Context, campaignID int64, day time.Time) (*domain.Spend, error) {
	var s domain.Spend
	err := r.pool.QueryRow(ctx, `
        SELECT id, campaign_id, date, daily_spend, monthly_spend, created_at, updated_at
        FROM spends WHERE campaign_id = $1 AND date = $2`,
		campaignID, domain.Day(day),
	).Scan(&s.ID, &s.CampaignID, &s.Date, &s.DailySpend, &s.MonthlySpend, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ResetDaily zeroes daily spend across all rows, then reactivates campaigns
// paused for the daily budget whose spend for the given day is back under
// both budgets. Everything happens in one transaction; a failure rolls the
// whole reset back.
func (r *CampaignRepository) ResetDaily(ctx context.Context, day time.Time) (port.ResetResult, error) {
	return r.reset(ctx, `UPDATE spends SET daily_spend = 0, updated_at = now()`,
		domain.PauseDailyBudgetExceeded, day)
}

// ResetMonthly mirrors ResetDaily for monthly spend.
func (r *CampaignRepository) ResetMonthly(ctx context.Context, day time.Time) (port.ResetResult, error) {
	return r.reset(ctx, `UPDATE spends SET monthly_spend = 0, updated_at = now()`,
		domain.PauseMonthlyBudgetExceeded, day)
}

func (r *CampaignRepository) reset(ctx context.Context, zeroQuery string, reason domain.PauseReason, day time.Time) (res port.ResetResult, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return res, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, zeroQuery)
	if err != nil {
		return res, err
	}
	res.SpendRows = tag.RowsAffected()

	// Re-admission predicate mirrors Campaign.BudgetAvailable: strict
	// less-than on both budgets, absent spend row counts as available.
	tag, err = tx.Exec(ctx, `
        UPDATE campaigns c SET status = $1, pause_reason = NULL, updated_at = now()
        WHERE c.status = $2 AND c.pause_reason = $3
          AND NOT EXISTS (
              SELECT 1 FROM spends s
              WHERE s.campaign_id = c.id AND s.date = $4
                AND (s.daily_spend >= c.daily_budget OR s.monthly_spend >= c.monthly_budget))`,
		domain.StatusActive, domain.StatusPaused, reason, domain.Day(day))
	if err != nil {
		return res, err
	}
	res.Reactivated = tag.RowsAffected()
	return res, nil
}

// ResetAll zeroes both spend fields everywhere and reactivates every paused
// campaign, manual pauses included.
func (r *CampaignRepository) ResetAll(ctx context.Context) (res port.ResetResult, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return res, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE spends SET daily_spend = 0, monthly_spend = 0, updated_at = now()`)
	if err != nil {
		return res, err
	}
	res.SpendRows = tag.RowsAffected()

	tag, err = tx.Exec(ctx, `
        UPDATE campaigns SET status = $1, pause_reason = NULL, updated_at = now()
        WHERE status = $2`,
		domain.StatusActive, domain.StatusPaused)
	if err != nil {
		return res, err
	}
	res.Reactivated = tag.RowsAffected()
	return res, nil
}

func nullReason(r domain.PauseReason) *domain.PauseReason {
	if r == "" {
		return nil
	}
	return &r
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c      domain.Campaign
		reason *domain.PauseReason
	)
	err := row.Scan(&c.ID, &c.BrandID, &c.Name, &c.State.Status, &reason,
		&c.DailyBudget, &c.MonthlyBudget, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		c.State.Reason = *reason
	}
	return &c, nil
}
