package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"repair-ads/internal/core/domain"
	"repair-ads/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.CampaignRecord, error) {
	var (
		c                  domain.CampaignRecord
		typ, status        string
		bundledRaw         []byte
		startDate, endDate time.Time
		totalPrice         string
	)
	err := r.pool.QueryRow(ctx, `
        SELECT id, operator_id, type, title, description, city, image, profile_id,
               bundled_services, start_date, end_date, total_days, currency,
               total_price::text, status, rejection_reason, updated_at
        FROM campaigns
        WHERE id = $1`, id).
		Scan(&c.ID, &c.OperatorID, &typ, &c.Title, &c.Description, &c.City, &c.Image, &c.ProfileRef,
			&bundledRaw, &startDate, &endDate, &c.TotalDays, &c.Currency,
			&totalPrice, &status, &c.RejectionReason, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.Type = domain.CampaignType(typ)
	c.Status = domain.Status(status)
	c.StartDate = domain.DateOf(startDate)
	c.EndDate = domain.DateOf(endDate)
	if c.TotalPrice, err = parseMoney(totalPrice); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(bundledRaw, &c.BundledServices); err != nil {
		return nil, fmt.Errorf("campaign %d bundled services: %w", id, err)
	}
	return &c, nil
}

// UpdateCampaign overwrites the editable fields of rec. The row is locked
// for the duration of the transaction and handoff runs before commit, so
// the record changes only when the hand-off succeeded.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, rec domain.CampaignRecord, handoff func(ctx context.Context) error) (err error) {
	bundled := rec.BundledServices
	if bundled == nil {
		bundled = []domain.ServiceRef{}
	}
	bundledRaw, err := json.Marshal(bundled)
	if err != nil {
		return err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var current string
	err = tx.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1 FOR UPDATE`, rec.ID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrCampaignNotFound
	}
	if err != nil {
		return err
	}
	if domain.Status(current).Terminal() {
		return domain.ErrCampaignLocked
	}

	updatedAt := rec.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	_, err = tx.Exec(ctx, `
        UPDATE campaigns
        SET title = $2, description = $3, city = $4, image = $5, profile_id = $6,
            bundled_services = $7, start_date = $8, end_date = $9, total_days = $10,
            currency = $11, total_price = $12::numeric, status = $13,
            rejection_reason = '', updated_at = $14
        WHERE id = $1`,
		rec.ID, rec.Title, rec.Description, rec.City, rec.Image, rec.ProfileRef,
		bundledRaw, rec.StartDate.Time(), rec.EndDate.Time(), rec.TotalDays,
		rec.Currency, rec.TotalPrice.String(), string(rec.Status), updatedAt)
	if err != nil {
		return err
	}

	if handoff != nil {
		if err = handoff(ctx); err != nil {
			return err
		}
	}
	return nil
}
