package usecase

import (
	"context"
	"fmt"
	"strings"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// MilestoneUseCase implements port.MilestoneUseCase. Structural changes are
// blocked once voting has started: the first vote on a milestone freezes it.
type MilestoneUseCase struct {
	milestones port.MilestoneRepository
	campaigns  port.CampaignRepository
}

// NewMilestoneUseCase creates the usecase with its outbound ports.
func NewMilestoneUseCase(milestones port.MilestoneRepository, campaigns port.CampaignRepository) *MilestoneUseCase {
	return &MilestoneUseCase{milestones: milestones, campaigns: campaigns}
}

// Create adds a milestone to a campaign. New milestones start PENDING,
// inactive and with a zero balance; activation is the sequencer's job.
func (u *MilestoneUseCase) Create(ctx context.Context, campaignID int64, title string, goalAmount int64) (*domain.Milestone, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("milestone title is required: %w", port.ErrValidation)
	}
	if goalAmount <= 0 {
		return nil, fmt.Errorf("milestone goal must be positive: %w", port.ErrValidation)
	}
	if _, err := u.campaigns.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}

	m := &domain.Milestone{
		CampaignID: campaignID,
		Title:      title,
		GoalAmount: goalAmount,
		Amount:     0,
		Status:     domain.MilestoneStatusPending,
		IsActive:   false,
	}
	if err := u.milestones.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update changes the mutable milestone fields. It fails with ErrConflict
// once any vote exists for the milestone.
func (u *MilestoneUseCase) Update(ctx context.Context, id int64, upd port.MilestoneUpdate) (*domain.Milestone, error) {
	m, err := u.milestones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = u.ensureUnvoted(ctx, id); err != nil {
		return nil, err
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, fmt.Errorf("milestone title is required: %w", port.ErrValidation)
		}
		m.Title = title
	}
	if upd.GoalAmount != nil {
		if *upd.GoalAmount <= 0 {
			return nil, fmt.Errorf("milestone goal must be positive: %w", port.ErrValidation)
		}
		m.GoalAmount = *upd.GoalAmount
	}
	if upd.Status != nil {
		switch *upd.Status {
		case domain.MilestoneStatusPending, domain.MilestoneStatusApproved, domain.MilestoneStatusRejected:
			m.Status = *upd.Status
		default:
			return nil, fmt.Errorf("unknown milestone status %q: %w", *upd.Status, port.ErrValidation)
		}
	}

	if err = u.milestones.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a milestone, unless voting has started.
func (u *MilestoneUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.milestones.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.ensureUnvoted(ctx, id); err != nil {
		return err
	}
	return u.milestones.Delete(ctx, id)
}

// ListByCampaign returns the campaign's milestones in creation order.
func (u *MilestoneUseCase) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Milestone, error) {
	if _, err := u.campaigns.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.milestones.ListByCampaign(ctx, campaignID)
}

// Vote casts one user's vote. The storage uniqueness constraint turns a
// repeat vote into ErrConflict; the first vote is left untouched.
func (u *MilestoneUseCase) Vote(ctx context.Context, userID, milestoneID int64, approve bool) error {
	if _, err := u.milestones.GetByID(ctx, milestoneID); err != nil {
		return err
	}
	return u.milestones.AddVote(ctx, &domain.MilestoneVote{
		UserID:      userID,
		MilestoneID: milestoneID,
		Approve:     approve,
	})
}

func (u *MilestoneUseCase) ensureUnvoted(ctx context.Context, milestoneID int64) error {
	n, err := u.milestones.CountVotes(ctx, milestoneID)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("milestone %d has votes and is locked: %w", milestoneID, port.ErrConflict)
	}
	return nil
}
