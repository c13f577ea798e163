package port

import (
	"context"

	"fundflow/internal/core/domain"
)

// PaymentReceipt is the payer-facing result of a verified payment. It is a
// DTO for the HTTP layer and carries no domain behaviour. CampaignCompleted
// reports goal crossing; NextMilestoneID is set only when the post-commit
// sequencer step activated a successor.
type PaymentReceipt struct {
	CampaignID        int64
	MilestoneID       int64
	Amount            int64
	AmountRaised      int64
	CampaignCompleted bool
	NextMilestoneID   *int64
}

// DisbursementUseCase is the primary port into the fund-release core. Mock
// implementations can be generated from this interface for testing.
type DisbursementUseCase interface {
	// VerifyAndApply authenticates an inbound payment notification and, on
	// success, applies it via ApplyPayment. A signature mismatch returns
	// ErrValidation and performs no ledger writes.
	VerifyAndApply(ctx context.Context, n domain.PaymentNotification) (*PaymentReceipt, error)

	// ApplyPayment transactionally credits one verified payment to its
	// campaign and milestone, records the donation and ledger entries, and
	// handles goal crossing. After the credit commits it advances the
	// milestone sequence best-effort; a sequencer failure never unwinds the
	// committed payment.
	ApplyPayment(ctx context.Context, credit DonationCredit) (*PaymentReceipt, error)

	// Advance re-runs the milestone sequencer for one campaign. It is invoked
	// as a post-commit continuation of ApplyPayment and by the reconciliation
	// worker. It returns the newly activated milestone, or nil when no
	// advance occurred.
	Advance(ctx context.Context, campaignID int64) (*domain.Milestone, error)
}

// PaymentVerifier authenticates inbound payment notifications against the
// gateway's shared secret. Verify returns ErrValidation on any mismatch; the
// engine must never credit a rejected notification.
type PaymentVerifier interface {
	Verify(n domain.PaymentNotification) error
}

// PaymentGateway creates checkout orders at the external payment provider.
// Failures surface as ErrGateway and never touch the ledger.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*domain.PaymentOrder, error)
}
