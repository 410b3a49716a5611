package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a couple of brands, a handful of campaigns with
// budgets in a realistic range, and office-hours dayparting windows on the
// even-numbered campaigns.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	brands := []string{"Acme Outdoors", "Northwind Coffee"}
	for i, name := range brands {
		brandID := int64(i + 1)
		_, err := db.Exec(ctx, `INSERT INTO brands
    (id, name, daily_budget, monthly_budget, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now()) ON CONFLICT DO NOTHING`,
			brandID, name, "500.00", "10000.00")
		if err != nil {
			return err
		}

		for j := 1; j <= 3; j++ {
			campaignID := brandID*10 + int64(j)
			name := fmt.Sprintf("Campaign %d-%d", brandID, j)
			daily := fmt.Sprintf("%d.00", 20+r.Intn(80))
			monthly := fmt.Sprintf("%d.00", 500+r.Intn(1500))
			_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, brand_id, name, status, daily_budget, monthly_budget, created_at, updated_at)
VALUES ($1, $2, $3, 'ACTIVE', $4, $5, now(), now()) ON CONFLICT DO NOTHING`,
				campaignID, brandID, name, daily, monthly)
			if err != nil {
				return err
			}

			if j%2 != 0 {
				continue
			}
			// weekday office hours, 09:00-17:00
			for day := 0; day < 5; day++ {
				_, err = db.Exec(ctx, `INSERT INTO dayparting_schedules
    (campaign_id, day_of_week, start_minute, end_minute, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, true, now(), now()) ON CONFLICT DO NOTHING`,
					campaignID, day, 9*60, 17*60)
				if err != nil {
					return err
				}
			}
		}
	}

	// bump the sequences past the fixed ids used above
	for _, q := range []string{
		`SELECT setval('brands_id_seq', (SELECT max(id) FROM brands))`,
		`SELECT setval('campaigns_id_seq', (SELECT max(id) FROM campaigns))`,
	} {
		if _, err := db.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
