package port

import (
	"context"

	"fundflow/internal/core/domain"
)

// MilestoneRepository is the outbound port for milestone rows and votes.
// ListByCampaign must return milestones in ascending creation order; the
// sequencer depends on that ordering.
type MilestoneRepository interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id int64) (*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id int64) error
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Milestone, error)

	// ActivateFirst marks the campaign's earliest milestone active, provided
	// no milestone of the campaign is active yet. It returns the activated
	// milestone, or nil when one was already active or none exist.
	ActivateFirst(ctx context.Context, campaignID int64) (*domain.Milestone, error)

	// SwapActive atomically deactivates fromID and activates toID within one
	// campaign. It returns ErrConflict when fromID is no longer the active
	// milestone, so concurrent advances cannot activate two milestones.
	SwapActive(ctx context.Context, campaignID, fromID, toID int64) error

	// AddVote stores a vote; a duplicate (user, milestone) pair returns
	// ErrConflict and leaves the existing vote untouched.
	AddVote(ctx context.Context, v *domain.MilestoneVote) error
	CountVotes(ctx context.Context, milestoneID int64) (int64, error)

	// ListCampaignsWithFundedActive returns ids of campaigns whose active
	// milestone has reached its goal. Used by the reconciliation worker to
	// re-run advances lost to post-commit sequencer failures.
	ListCampaignsWithFundedActive(ctx context.Context) ([]int64, error)
}
