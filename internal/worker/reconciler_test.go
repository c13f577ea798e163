package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestSweepAdvancesEveryFundedCampaign ensures one sweep touches each
// reported campaign exactly once.
func TestSweepAdvancesEveryFundedCampaign(t *testing.T) {
	disbursements := mocks.NewMockDisbursementUseCase(t)
	milestones := mocks.NewMockMilestoneRepository(t)

	milestones.EXPECT().
		ListCampaignsWithFundedActive(mock.Anything).
		Return([]int64{1, 2}, nil)
	disbursements.EXPECT().
		Advance(mock.Anything, int64(1)).
		Return(&domain.Milestone{ID: 11, CampaignID: 1, IsActive: true}, nil)
	disbursements.EXPECT().
		Advance(mock.Anything, int64(2)).
		Return(nil, nil)

	r := NewReconciler(disbursements, milestones, 0, discardLogger())

	if err := r.sweep(context.Background()); err != nil {
		t.Fatalf("sweep error: %v", err)
	}
}

// TestSweepContinuesPastAdvanceFailure ensures one failed campaign does not
// stop the rest of the sweep.
func TestSweepContinuesPastAdvanceFailure(t *testing.T) {
	disbursements := mocks.NewMockDisbursementUseCase(t)
	milestones := mocks.NewMockMilestoneRepository(t)

	milestones.EXPECT().
		ListCampaignsWithFundedActive(mock.Anything).
		Return([]int64{1, 2}, nil)
	disbursements.EXPECT().
		Advance(mock.Anything, int64(1)).
		Return(nil, errors.New("store unavailable"))
	disbursements.EXPECT().
		Advance(mock.Anything, int64(2)).
		Return(&domain.Milestone{ID: 21, CampaignID: 2, IsActive: true}, nil)

	r := NewReconciler(disbursements, milestones, 0, discardLogger())

	if err := r.sweep(context.Background()); err != nil {
		t.Fatalf("sweep error: %v", err)
	}
}

// TestSweepPropagatesListError surfaces the listing failure to the loop for
// logging.
func TestSweepPropagatesListError(t *testing.T) {
	disbursements := mocks.NewMockDisbursementUseCase(t)
	milestones := mocks.NewMockMilestoneRepository(t)

	storeErr := errors.New("store unavailable")
	milestones.EXPECT().
		ListCampaignsWithFundedActive(mock.Anything).
		Return(nil, storeErr)

	r := NewReconciler(disbursements, milestones, 0, discardLogger())

	if err := r.sweep(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
