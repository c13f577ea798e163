package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
	"fundflow/internal/core/port/mocks"
)

// TestApproveActivatesFirstMilestone ensures approval opens the campaign and
// unlocks the earliest milestone.
func TestApproveActivatesFirstMilestone(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)

	campaigns.EXPECT().
		GetByID(mock.Anything, int64(1)).
		Return(&domain.Campaign{ID: 1, Status: domain.CampaignStatusPending}, nil)
	campaigns.EXPECT().
		UpdateStatus(mock.Anything, int64(1), domain.CampaignStatusApproved, true).
		Return(nil)
	milestones.EXPECT().
		ActivateFirst(mock.Anything, int64(1)).
		Return(&domain.Milestone{ID: 10, CampaignID: 1, IsActive: true}, nil)

	svc := NewCampaignUseCase(campaigns, milestones)

	if err := svc.Approve(context.Background(), 1); err != nil {
		t.Fatalf("Approve error: %v", err)
	}
}

// TestApproveCompletedCampaignConflicts ensures a finished campaign cannot
// be reopened.
func TestApproveCompletedCampaignConflicts(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)

	campaigns.EXPECT().
		GetByID(mock.Anything, int64(1)).
		Return(&domain.Campaign{ID: 1, Status: domain.CampaignStatusCompleted}, nil)

	svc := NewCampaignUseCase(campaigns, milestones)

	err := svc.Approve(context.Background(), 1)
	if !errors.Is(err, port.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

// TestCloseRunningCampaignByStranger ensures only the owner can close an
// unfinished campaign.
func TestCloseRunningCampaignByStranger(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)

	campaigns.EXPECT().
		GetByID(mock.Anything, int64(1)).
		Return(&domain.Campaign{ID: 1, OwnerID: 2, Status: domain.CampaignStatusApproved}, nil)

	svc := NewCampaignUseCase(campaigns, milestones)

	err := svc.Close(context.Background(), 1, 99)
	if !errors.Is(err, port.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

// TestCloseCompletedCampaign ensures the payout terminal state deletes the
// campaign.
func TestCloseCompletedCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)

	campaigns.EXPECT().
		GetByID(mock.Anything, int64(1)).
		Return(&domain.Campaign{ID: 1, OwnerID: 2, Status: domain.CampaignStatusCompleted}, nil)
	campaigns.EXPECT().
		Delete(mock.Anything, int64(1)).
		Return(nil)

	svc := NewCampaignUseCase(campaigns, milestones)

	if err := svc.Close(context.Background(), 1, 99); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}

// TestCreateCampaignValidation covers the input guards.
func TestCreateCampaignValidation(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)

	svc := NewCampaignUseCase(campaigns, milestones)

	if _, err := svc.Create(context.Background(), 1, "   ", "d", 100); !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error for empty title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 1, "t", "d", 0); !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error for zero goal, got %v", err)
	}
}
