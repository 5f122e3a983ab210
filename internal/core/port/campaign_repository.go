package port

import (
	"context"
	"errors"

	"repair-ads/internal/core/domain"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository reads and writes campaign records for the edit flow.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.CampaignRecord, error)
	// UpdateCampaign overwrites the editable fields and status of rec
	// inside a transaction. handoff runs before commit; when it fails the
	// update is rolled back. An approved record is never overwritten and
	// yields domain.ErrCampaignLocked.
	UpdateCampaign(ctx context.Context, rec domain.CampaignRecord, handoff func(ctx context.Context) error) error
}
