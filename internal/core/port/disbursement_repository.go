package port

import (
	"context"

	"fundflow/internal/core/domain"
)

// DonationCredit describes one verified payment to be applied to the ledger.
type DonationCredit struct {
	OrderID     string
	PaymentID   string
	CampaignID  int64
	MilestoneID int64
	DonorID     int64
	Amount      int64
}

// CreditResult reports the post-commit state of the credited rows. Completed
// is true when this credit pushed the campaign across its funding goal.
type CreditResult struct {
	Campaign  domain.Campaign
	Milestone domain.Milestone
	Completed bool
}

// DisbursementRepository is the outbound port for the atomic credit unit. It
// is an all-or-nothing operation: implementations must apply the payment row,
// the donation, the ledger entries and both balance increments in a single
// transaction with row-level locks, or leave the store untouched.
type DisbursementRepository interface {
	// CreditPayment applies one verified payment. It returns ErrNotFound when
	// the campaign or milestone is absent or mismatched, and ErrConflict when
	// the (orderID, paymentID) pair was already credited.
	CreditPayment(ctx context.Context, credit DonationCredit) (*CreditResult, error)
}
