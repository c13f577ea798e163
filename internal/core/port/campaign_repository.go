package port

import (
	"context"

	"fundflow/internal/core/domain"
)

// CampaignRepository is the outbound port for campaign rows. The raised
// amount is never written through this interface; only the disbursement
// engine moves balances.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)
	UpdateStatus(ctx context.Context, id int64, status string, isActive bool) error

	// Delete removes a campaign and its dependent rows. Per the platform
	// lifecycle a campaign is deleted once its payout is recorded; deletion
	// is the terminal state, not a soft delete.
	Delete(ctx context.Context, id int64) error
}
