package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"repair-ads/internal/core/domain"
)

// Seed inserts demo reference data and a few campaigns for operator 1. It
// is idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	basePrices := []struct {
		currency string
		perDay   string
	}{
		{"USD", "10.00"},
		{"EUR", "9.00"},
		{"NGN", "15000.00"},
	}
	for _, bp := range basePrices {
		_, err := db.Exec(ctx, `INSERT INTO base_prices (currency, price_per_day)
VALUES ($1, $2::numeric) ON CONFLICT DO NOTHING`, bp.currency, bp.perDay)
		if err != nil {
			return fmt.Errorf("seed base price %s: %w", bp.currency, err)
		}
	}

	for i, name := range []string{"Lagos", "Abuja", "Port Harcourt", "Berlin", "New York"} {
		_, err := db.Exec(ctx, `INSERT INTO cities (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`, i+1, name)
		if err != nil {
			return fmt.Errorf("seed city %s: %w", name, err)
		}
	}

	profiles := []struct {
		id, operatorID int64
		name           string
	}{
		{1, 1, "Ade's Phone Clinic"},
		{2, 2, "Kiez Repair Berlin"},
	}
	for _, p := range profiles {
		_, err := db.Exec(ctx, `INSERT INTO profiles (id, operator_id, display_name)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, p.id, p.operatorID, p.name)
		if err != nil {
			return fmt.Errorf("seed profile %d: %w", p.id, err)
		}
	}

	services := []domain.ServiceRef{
		{ID: 1, Title: "Screen replacement", Price: decimal.NewFromInt(25000), Currency: "NGN"},
		{ID: 2, Title: "Battery swap", Price: decimal.NewFromInt(12000), Currency: "NGN"},
		{ID: 3, Title: "Water damage diagnostics", Price: decimal.NewFromInt(15), Currency: "USD"},
		{ID: 4, Title: "Laptop keyboard repair", Price: decimal.NewFromInt(40), Currency: "EUR"},
	}
	owners := map[int64]int64{1: 1, 2: 1, 3: 1, 4: 2}
	for _, s := range services {
		_, err := db.Exec(ctx, `INSERT INTO operator_services (id, operator_id, title, price, currency)
VALUES ($1, $2, $3, $4::numeric, $5) ON CONFLICT DO NOTHING`,
			s.ID, owners[s.ID], s.Title, s.Price.String(), s.Currency)
		if err != nil {
			return fmt.Errorf("seed service %d: %w", s.ID, err)
		}
	}

	start := domain.DateOf(time.Now()).AddDays(14)
	bundled, _ := json.Marshal(services[:1])
	campaigns := []struct {
		id        int64
		typ       domain.CampaignType
		title     string
		profileID *int64
		bundled   []byte
		days      int
		currency  string
		price     string
		status    domain.Status
		reason    string
	}{
		{1, domain.TypeService, "Cracked screen? Fixed in an hour", nil, bundled, 7, "NGN", "130000.00", domain.StatusRejected, "image does not show the shop"},
		{2, domain.TypeProfile, "", ptr(int64(1)), []byte("[]"), 30, "NGN", "450000.00", domain.StatusApproved, ""},
		{3, domain.TypeService, "Same-day battery swaps", nil, bundled, 10, "NGN", "175000.00", domain.StatusPending, ""},
	}
	for _, c := range campaigns {
		description, city, image := "", "", ""
		if c.typ == domain.TypeService {
			description = "Genuine parts and a 90 day warranty."
			city = "Lagos"
			image = fmt.Sprintf("https://cdn.example.com/campaigns/%d.jpg", c.id)
		}
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, operator_id, type, title, description, city, image, profile_id, bundled_services,
     start_date, end_date, total_days, currency, total_price, status, rejection_reason)
VALUES ($1,1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13::numeric,$14,$15) ON CONFLICT DO NOTHING`,
			c.id, string(c.typ), c.title, description, city, image, c.profileID, c.bundled,
			start.Time(), domain.EndDate(start, c.days).Time(), c.days, c.currency, c.price, string(c.status), c.reason)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", c.id, err)
		}
	}

	// Explicit ids leave the serial sequences behind.
	for _, table := range []string{"cities", "profiles", "operator_services", "campaigns"} {
		_, err := db.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT COALESCE(max(id), 1) FROM %[1]s))`, table))
		if err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
