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

// TestNextActive covers successor selection over a creation-ordered
// milestone list.
func TestNextActive(t *testing.T) {
	tests := []struct {
		name       string
		milestones []domain.Milestone
		wantFrom   int64
		wantTo     int64
	}{
		{
			name: "no milestones",
		},
		{
			name: "no active milestone",
			milestones: []domain.Milestone{
				{ID: 1, GoalAmount: 100, Amount: 100},
				{ID: 2, GoalAmount: 100},
			},
		},
		{
			name: "active milestone not yet funded",
			milestones: []domain.Milestone{
				{ID: 1, GoalAmount: 100, Amount: 40, IsActive: true},
				{ID: 2, GoalAmount: 100},
			},
		},
		{
			name: "funded active milestone is last in sequence",
			milestones: []domain.Milestone{
				{ID: 1, GoalAmount: 100, Amount: 100},
				{ID: 2, GoalAmount: 100, Amount: 120, IsActive: true},
			},
		},
		{
			name: "funded active milestone hands over to successor",
			milestones: []domain.Milestone{
				{ID: 1, GoalAmount: 100, Amount: 100},
				{ID: 2, GoalAmount: 100, Amount: 100, IsActive: true},
				{ID: 3, GoalAmount: 100},
			},
			wantFrom: 2,
			wantTo:   3,
		},
		{
			// only the active milestone triggers advancement; an earlier
			// funded one never reactivates
			name: "funded inactive milestone is skipped",
			milestones: []domain.Milestone{
				{ID: 1, GoalAmount: 100, Amount: 150},
				{ID: 2, GoalAmount: 100, Amount: 10, IsActive: true},
				{ID: 3, GoalAmount: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, next := nextActive(tt.milestones)
			if tt.wantTo == 0 {
				if current != nil || next != nil {
					t.Fatalf("expected no advance, got %v -> %v", current, next)
				}
				return
			}
			if current == nil || next == nil {
				t.Fatal("expected an advance pair")
			}
			if current.ID != tt.wantFrom || next.ID != tt.wantTo {
				t.Fatalf("expected advance %d -> %d, got %d -> %d", tt.wantFrom, tt.wantTo, current.ID, next.ID)
			}
		})
	}
}

// TestAdvanceActivatesSuccessor ensures Advance swaps the active flag to the
// next milestone and reports it.
func TestAdvanceActivatesSuccessor(t *testing.T) {
	ledger := mocks.NewMockDisbursementRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)
	verifier := mocks.NewMockPaymentVerifier(t)

	milestones.EXPECT().
		ListByCampaign(mock.Anything, int64(5)).
		Return([]domain.Milestone{
			{ID: 20, CampaignID: 5, GoalAmount: 100, Amount: 100, IsActive: true},
			{ID: 21, CampaignID: 5, GoalAmount: 200},
		}, nil)
	milestones.EXPECT().
		SwapActive(mock.Anything, int64(5), int64(20), int64(21)).
		Return(nil)

	svc := NewDisbursementUseCase(verifier, ledger, milestones, discardLogger())

	next, err := svc.Advance(context.Background(), 5)
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if next == nil || next.ID != 21 {
		t.Fatalf("expected milestone 21, got %v", next)
	}
	if !next.IsActive {
		t.Fatal("expected returned milestone to be active")
	}
}

// TestAdvanceNoOpIsIdempotent ensures repeated calls with nothing newly
// funded do not touch the store.
func TestAdvanceNoOpIsIdempotent(t *testing.T) {
	ledger := mocks.NewMockDisbursementRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)
	verifier := mocks.NewMockPaymentVerifier(t)

	milestones.EXPECT().
		ListByCampaign(mock.Anything, int64(5)).
		Return([]domain.Milestone{
			{ID: 20, CampaignID: 5, GoalAmount: 100, Amount: 30, IsActive: true},
			{ID: 21, CampaignID: 5, GoalAmount: 200},
		}, nil).
		Twice()

	svc := NewDisbursementUseCase(verifier, ledger, milestones, discardLogger())

	for i := 0; i < 2; i++ {
		next, err := svc.Advance(context.Background(), 5)
		if err != nil {
			t.Fatalf("Advance error: %v", err)
		}
		if next != nil {
			t.Fatalf("expected no-op, got milestone %d", next.ID)
		}
	}
}

// TestAdvanceLosingConcurrentSwap ensures a lost swap race settles as a
// no-op instead of an error: the invariant holds either way.
func TestAdvanceLosingConcurrentSwap(t *testing.T) {
	ledger := mocks.NewMockDisbursementRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)
	verifier := mocks.NewMockPaymentVerifier(t)

	milestones.EXPECT().
		ListByCampaign(mock.Anything, int64(5)).
		Return([]domain.Milestone{
			{ID: 20, CampaignID: 5, GoalAmount: 100, Amount: 100, IsActive: true},
			{ID: 21, CampaignID: 5, GoalAmount: 200},
		}, nil)
	milestones.EXPECT().
		SwapActive(mock.Anything, int64(5), int64(20), int64(21)).
		Return(port.ErrConflict)

	svc := NewDisbursementUseCase(verifier, ledger, milestones, discardLogger())

	next, err := svc.Advance(context.Background(), 5)
	if err != nil {
		t.Fatalf("Advance error: %v", err)
	}
	if next != nil {
		t.Fatalf("expected no-op after losing the swap, got %v", next)
	}
}

// TestAdvancePropagatesStoreErrors ensures genuine store failures surface.
func TestAdvancePropagatesStoreErrors(t *testing.T) {
	ledger := mocks.NewMockDisbursementRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)
	verifier := mocks.NewMockPaymentVerifier(t)

	storeErr := errors.New("store unavailable")
	milestones.EXPECT().
		ListByCampaign(mock.Anything, int64(5)).
		Return(nil, storeErr)

	svc := NewDisbursementUseCase(verifier, ledger, milestones, discardLogger())

	_, err := svc.Advance(context.Background(), 5)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
