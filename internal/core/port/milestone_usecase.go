package port

import (
	"context"

	"fundflow/internal/core/domain"
)

// MilestoneUpdate carries the mutable milestone fields for Update. Nil
// pointers leave the current value in place.
type MilestoneUpdate struct {
	Title      *string
	GoalAmount *int64
	Status     *string
}

// MilestoneUseCase is the primary port for milestone lifecycle operations.
// Update and Delete enforce the vote lock: once any vote exists for a
// milestone it is frozen and both return ErrConflict.
type MilestoneUseCase interface {
	Create(ctx context.Context, campaignID int64, title string, goalAmount int64) (*domain.Milestone, error)
	Update(ctx context.Context, id int64, upd MilestoneUpdate) (*domain.Milestone, error)
	Delete(ctx context.Context, id int64) error
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Milestone, error)

	// Vote casts one user's vote on a milestone. A second vote by the same
	// user returns ErrConflict and leaves the first untouched.
	Vote(ctx context.Context, userID, milestoneID int64, approve bool) error
}
