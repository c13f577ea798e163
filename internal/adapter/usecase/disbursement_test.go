package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
	"fundflow/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestApplyPaymentGoalCrossing walks the full pipeline: a 150 payment on a
// campaign at 900/1000 completes the campaign and the funded milestone hands
// the active flag to its successor.
func TestApplyPaymentGoalCrossing(t *testing.T) {
	ledger := mocks.NewMockDisbursementRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)
	verifier := mocks.NewMockPaymentVerifier(t)

	credit := port.DonationCredit{
		OrderID:     "order_1",
		PaymentID:   "pay_1",
		CampaignID:  1,
		MilestoneID: 10,
		DonorID:     7,
		Amount:      150,
	}

	ledger.EXPECT().
		CreditPayment(mock.Anything, credit).
		Return(&port.CreditResult{
			Campaign: domain.Campaign{
				ID:           1,
				OwnerID:      2,
				GoalAmount:   1000,
				AmountRaised: 1050,
				Status:       domain.CampaignStatusCompleted,
			},
			Milestone: domain.Milestone{ID: 10, CampaignID: 1, GoalAmount: 500, Amount: 550, IsActive: true},
			Completed: true,
		}, nil)

	milestones.EXPECT().
		ListByCampaign(mock.Anything, int64(1)).
		Return([]domain.Milestone{
			{ID: 10, CampaignID: 1, GoalAmount: 500, Amount: 550, IsActive: true},
			{ID: 11, CampaignID: 1, GoalAmount: 500, Amount: 0},
		}, nil)

	milestones.EXPECT().
		SwapActive(mock.Anything, int64(1), int64(10), int64(11)).
		Return(nil)

	svc := NewDisbursementUseCase(verifier, ledger, milestones, discardLogger())

	receipt, err := svc.ApplyPayment(context.Background(), credit)
	if err != nil {
		t.Fatalf("ApplyPayment error: %v", err)
	}
	if !receipt.CampaignCompleted {
		t.Fatal("expected campaign to be completed")
	}
	if receipt.AmountRaised != 1050 {
		t.Fatalf("expected amount raised 1050, got %d", receipt.AmountRaised)
	}
	if receipt.NextMilestoneID == nil || *receipt.NextMilestoneID != 11 {
		t.Fatalf("expected next milestone 11, got %v", receipt.NextMilestoneID)
	}
}

// TestApplyPaymentRejectsNonPositiveAmount ensures precondition failures
// never reach the ledger.
func TestApplyPaymentRejectsNonPositiveAmount(t *testing.T) {
	ledger := mocks.NewMockDisbursementRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)
	verifier := mocks.NewMockPaymentVerifier(t)

	svc := NewDisbursementUseCase(verifier, ledger, milestones, discardLogger())

	for _, amount := range []int64{0, -5} {
		_, err := svc.ApplyPayment(context.Background(), port.DonationCredit{
			CampaignID:  1,
			MilestoneID: 10,
			DonorID:     7,
			Amount:      amount,
		})
		if !errors.Is(err, port.ErrValidation) {
			t.Fatalf("amount %d: expected validation error, got %v", amount, err)
		}
	}
}

// TestVerifyAndApplyRejectedSignature ensures a rejected notification
// performs zero ledger writes.
func TestVerifyAndApplyRejectedSignature(t *testing.T) {
	ledger := mocks.NewMockDisbursementRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)
	verifier := mocks.NewMockPaymentVerifier(t)

	n := domain.PaymentNotification{
		OrderID:     "order_1",
		PaymentID:   "pay_1",
		Signature:   "bogus",
		Amount:      100,
		CampaignID:  1,
		MilestoneID: 10,
		DonorID:     7,
	}

	verifier.EXPECT().Verify(n).Return(port.ErrValidation)

	svc := NewDisbursementUseCase(verifier, ledger, milestones, discardLogger())

	_, err := svc.VerifyAndApply(context.Background(), n)
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestApplyPaymentSequencerFailureKeepsPayment ensures a post-commit advance
// failure does not fail the payer-facing call: the payment is already
// durable.
func TestApplyPaymentSequencerFailureKeepsPayment(t *testing.T) {
	ledger := mocks.NewMockDisbursementRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)
	verifier := mocks.NewMockPaymentVerifier(t)

	credit := port.DonationCredit{
		OrderID:     "order_2",
		PaymentID:   "pay_2",
		CampaignID:  1,
		MilestoneID: 10,
		DonorID:     7,
		Amount:      50,
	}

	ledger.EXPECT().
		CreditPayment(mock.Anything, credit).
		Return(&port.CreditResult{
			Campaign:  domain.Campaign{ID: 1, GoalAmount: 1000, AmountRaised: 950},
			Milestone: domain.Milestone{ID: 10, CampaignID: 1, GoalAmount: 500, Amount: 500, IsActive: true},
		}, nil)

	milestones.EXPECT().
		ListByCampaign(mock.Anything, int64(1)).
		Return(nil, errors.New("store unavailable"))

	svc := NewDisbursementUseCase(verifier, ledger, milestones, discardLogger())

	receipt, err := svc.ApplyPayment(context.Background(), credit)
	if err != nil {
		t.Fatalf("ApplyPayment error: %v", err)
	}
	if receipt.AmountRaised != 950 {
		t.Fatalf("expected amount raised 950, got %d", receipt.AmountRaised)
	}
	if receipt.NextMilestoneID != nil {
		t.Fatalf("expected no advanced milestone, got %v", *receipt.NextMilestoneID)
	}
}

// TestApplyPaymentReplayConflict ensures a replayed payment identifier
// surfaces as a conflict instead of double crediting.
func TestApplyPaymentReplayConflict(t *testing.T) {
	ledger := mocks.NewMockDisbursementRepository(t)
	milestones := mocks.NewMockMilestoneRepository(t)
	verifier := mocks.NewMockPaymentVerifier(t)

	credit := port.DonationCredit{
		OrderID:     "order_3",
		PaymentID:   "pay_3",
		CampaignID:  1,
		MilestoneID: 10,
		DonorID:     7,
		Amount:      25,
	}

	ledger.EXPECT().
		CreditPayment(mock.Anything, credit).
		Return(nil, port.ErrConflict)

	svc := NewDisbursementUseCase(verifier, ledger, milestones, discardLogger())

	_, err := svc.ApplyPayment(context.Background(), credit)
	if !errors.Is(err, port.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
