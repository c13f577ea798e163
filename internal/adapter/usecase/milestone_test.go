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

// TestCreateMilestoneDefaults ensures new milestones start pending, inactive
// and with a zero balance.
func TestCreateMilestoneDefaults(t *testing.T) {
	milestones := mocks.NewMockMilestoneRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	campaigns.EXPECT().
		GetByID(mock.Anything, int64(1)).
		Return(&domain.Campaign{ID: 1, Status: domain.CampaignStatusApproved}, nil)

	milestones.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Milestone")).
		Run(func(ctx context.Context, m *domain.Milestone) {
			m.ID = 10
		}).
		Return(nil)

	svc := NewMilestoneUseCase(milestones, campaigns)

	m, err := svc.Create(context.Background(), 1, "  Phase one ", 500)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if m.Status != domain.MilestoneStatusPending {
		t.Fatalf("expected PENDING, got %s", m.Status)
	}
	if m.IsActive {
		t.Fatal("new milestone must not be active")
	}
	if m.Amount != 0 {
		t.Fatalf("new milestone must start at zero, got %d", m.Amount)
	}
	if m.Title != "Phase one" {
		t.Fatalf("expected trimmed title, got %q", m.Title)
	}
}

// TestVoteDuplicateConflict ensures a second vote by the same user fails
// with a conflict and the first vote stands.
func TestVoteDuplicateConflict(t *testing.T) {
	milestones := mocks.NewMockMilestoneRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	milestones.EXPECT().
		GetByID(mock.Anything, int64(10)).
		Return(&domain.Milestone{ID: 10, CampaignID: 1}, nil).
		Twice()

	votes := 0
	milestones.EXPECT().
		AddVote(mock.Anything, mock.AnythingOfType("*domain.MilestoneVote")).
		RunAndReturn(func(ctx context.Context, v *domain.MilestoneVote) error {
			if votes > 0 {
				return port.ErrConflict
			}
			votes++
			return nil
		}).
		Twice()

	svc := NewMilestoneUseCase(milestones, campaigns)

	if err := svc.Vote(context.Background(), 7, 10, true); err != nil {
		t.Fatalf("first vote error: %v", err)
	}
	err := svc.Vote(context.Background(), 7, 10, false)
	if !errors.Is(err, port.ErrConflict) {
		t.Fatalf("expected conflict on duplicate vote, got %v", err)
	}
	if votes != 1 {
		t.Fatalf("expected vote count 1, got %d", votes)
	}
}

// TestUpdateLockedAfterVote ensures the first vote freezes the milestone
// against edits.
func TestUpdateLockedAfterVote(t *testing.T) {
	milestones := mocks.NewMockMilestoneRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	milestones.EXPECT().
		GetByID(mock.Anything, int64(10)).
		Return(&domain.Milestone{ID: 10, CampaignID: 1, Title: "Phase one", GoalAmount: 500}, nil)
	milestones.EXPECT().
		CountVotes(mock.Anything, int64(10)).
		Return(int64(1), nil)

	svc := NewMilestoneUseCase(milestones, campaigns)

	title := "Phase one, revised"
	_, err := svc.Update(context.Background(), 10, port.MilestoneUpdate{Title: &title})
	if !errors.Is(err, port.ErrConflict) {
		t.Fatalf("expected conflict on voted milestone, got %v", err)
	}
}

// TestDeleteLockedAfterVote mirrors the update lock for deletion.
func TestDeleteLockedAfterVote(t *testing.T) {
	milestones := mocks.NewMockMilestoneRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	milestones.EXPECT().
		GetByID(mock.Anything, int64(10)).
		Return(&domain.Milestone{ID: 10, CampaignID: 1}, nil)
	milestones.EXPECT().
		CountVotes(mock.Anything, int64(10)).
		Return(int64(3), nil)

	svc := NewMilestoneUseCase(milestones, campaigns)

	err := svc.Delete(context.Background(), 10)
	if !errors.Is(err, port.ErrConflict) {
		t.Fatalf("expected conflict on voted milestone, got %v", err)
	}
}

// TestDeleteUnvotedMilestone ensures deletion works while no votes exist.
func TestDeleteUnvotedMilestone(t *testing.T) {
	milestones := mocks.NewMockMilestoneRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	milestones.EXPECT().
		GetByID(mock.Anything, int64(10)).
		Return(&domain.Milestone{ID: 10, CampaignID: 1}, nil)
	milestones.EXPECT().
		CountVotes(mock.Anything, int64(10)).
		Return(int64(0), nil)
	milestones.EXPECT().
		Delete(mock.Anything, int64(10)).
		Return(nil)

	svc := NewMilestoneUseCase(milestones, campaigns)

	if err := svc.Delete(context.Background(), 10); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

// TestUpdateRejectsUnknownStatus ensures status values outside the
// moderation set are rejected before touching the store.
func TestUpdateRejectsUnknownStatus(t *testing.T) {
	milestones := mocks.NewMockMilestoneRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	milestones.EXPECT().
		GetByID(mock.Anything, int64(10)).
		Return(&domain.Milestone{ID: 10, CampaignID: 1, Title: "Phase one", GoalAmount: 500}, nil)
	milestones.EXPECT().
		CountVotes(mock.Anything, int64(10)).
		Return(int64(0), nil)

	svc := NewMilestoneUseCase(milestones, campaigns)

	status := "ARCHIVED"
	_, err := svc.Update(context.Background(), 10, port.MilestoneUpdate{Status: &status})
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
