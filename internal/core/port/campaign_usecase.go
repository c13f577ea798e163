package port

import (
	"context"

	"fundflow/internal/core/domain"
)

// CampaignUseCase is the primary port for campaign lifecycle operations.
type CampaignUseCase interface {
	Create(ctx context.Context, ownerID int64, title, description string, goalAmount int64) (*domain.Campaign, error)
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)

	// Approve is the moderation action moving a PENDING campaign to APPROVED
	// and marking it active for funding.
	Approve(ctx context.Context, id int64) error

	// Close deletes a COMPLETED campaign after payout; deleting a campaign
	// that has not completed returns ErrConflict unless forced by its owner.
	Close(ctx context.Context, id int64, requesterID int64) error
}
