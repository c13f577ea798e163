package usecase

import (
	"context"
	"fmt"
	"strings"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase.
type CampaignUseCase struct {
	campaigns  port.CampaignRepository
	milestones port.MilestoneRepository
}

// NewCampaignUseCase creates the usecase with its outbound ports.
func NewCampaignUseCase(campaigns port.CampaignRepository, milestones port.MilestoneRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, milestones: milestones}
}

// Create registers a campaign. New campaigns start PENDING and inactive
// until moderation approves them.
func (u *CampaignUseCase) Create(ctx context.Context, ownerID int64, title, description string, goalAmount int64) (*domain.Campaign, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("campaign title is required: %w", port.ErrValidation)
	}
	if goalAmount <= 0 {
		return nil, fmt.Errorf("campaign goal must be positive: %w", port.ErrValidation)
	}

	c := &domain.Campaign{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		GoalAmount:  goalAmount,
		Status:      domain.CampaignStatusPending,
		IsActive:    false,
	}
	if err := u.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a campaign by id.
func (u *CampaignUseCase) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.campaigns.GetByID(ctx, id)
}

// List returns all campaigns.
func (u *CampaignUseCase) List(ctx context.Context) ([]domain.Campaign, error) {
	return u.campaigns.List(ctx)
}

// Approve moves a PENDING campaign to APPROVED, opens it for funding and
// unlocks its first milestone when none is active yet.
func (u *CampaignUseCase) Approve(ctx context.Context, id int64) error {
	c, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == domain.CampaignStatusCompleted {
		return fmt.Errorf("campaign %d already completed: %w", id, port.ErrConflict)
	}

	if err = u.campaigns.UpdateStatus(ctx, id, domain.CampaignStatusApproved, true); err != nil {
		return err
	}
	_, err = u.milestones.ActivateFirst(ctx, id)
	return err
}

// Close deletes a campaign. A COMPLETED campaign may be closed by anyone
// recording the payout; an unfinished campaign only by its owner.
func (u *CampaignUseCase) Close(ctx context.Context, id int64, requesterID int64) error {
	c, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Status != domain.CampaignStatusCompleted && c.OwnerID != requesterID {
		return fmt.Errorf("campaign %d is still running: %w", id, port.ErrConflict)
	}
	return u.campaigns.Delete(ctx, id)
}
