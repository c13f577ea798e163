package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// DisbursementUseCase implements port.DisbursementUseCase. It owns the
// milestone-gated fund release pipeline: verify the inbound payment, apply
// it to the ledger as one atomic unit, then advance the milestone sequence
// as a best-effort post-commit continuation.
type DisbursementUseCase struct {
	verifier   port.PaymentVerifier
	ledger     port.DisbursementRepository
	milestones port.MilestoneRepository
	logger     *slog.Logger
}

// NewDisbursementUseCase creates the usecase with its outbound ports.
func NewDisbursementUseCase(verifier port.PaymentVerifier, ledger port.DisbursementRepository, milestones port.MilestoneRepository, logger *slog.Logger) *DisbursementUseCase {
	return &DisbursementUseCase{
		verifier:   verifier,
		ledger:     ledger,
		milestones: milestones,
		logger:     logger,
	}
}

// VerifyAndApply authenticates the notification and credits it. A rejected
// signature returns ErrValidation with zero ledger writes.
func (u *DisbursementUseCase) VerifyAndApply(ctx context.Context, n domain.PaymentNotification) (*port.PaymentReceipt, error) {
	if err := u.verifier.Verify(n); err != nil {
		return nil, err
	}
	return u.ApplyPayment(ctx, port.DonationCredit{
		OrderID:     n.OrderID,
		PaymentID:   n.PaymentID,
		CampaignID:  n.CampaignID,
		MilestoneID: n.MilestoneID,
		DonorID:     n.DonorID,
		Amount:      n.Amount,
	})
}

// ApplyPayment credits one verified payment. The ledger write is
// all-or-nothing; once it commits the payment is final and the subsequent
// sequencer step cannot unwind it. A sequencer failure is logged at warn and
// left to the reconciliation sweep.
func (u *DisbursementUseCase) ApplyPayment(ctx context.Context, credit port.DonationCredit) (*port.PaymentReceipt, error) {
	if credit.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive: %w", port.ErrValidation)
	}
	if credit.CampaignID <= 0 || credit.MilestoneID <= 0 {
		return nil, fmt.Errorf("campaign and milestone are required: %w", port.ErrValidation)
	}

	res, err := u.ledger.CreditPayment(ctx, credit)
	if err != nil {
		return nil, err
	}

	receipt := &port.PaymentReceipt{
		CampaignID:        res.Campaign.ID,
		MilestoneID:       res.Milestone.ID,
		Amount:            credit.Amount,
		AmountRaised:      res.Campaign.AmountRaised,
		CampaignCompleted: res.Completed,
	}

	// post-commit continuation: the payment is already durable, so an
	// advance failure must not fail the payer-facing call
	next, err := u.Advance(ctx, credit.CampaignID)
	if err != nil {
		u.logger.Warn("milestone advance failed after payment commit",
			slog.Int64("campaign_id", credit.CampaignID),
			slog.Any("error", err))
		return receipt, nil
	}
	if next != nil {
		receipt.NextMilestoneID = &next.ID
	}
	return receipt, nil
}

// Advance moves the active flag to the next milestone when the currently
// active one is fully funded. It is idempotent: with no newly funded active
// milestone it is a no-op, and it never reactivates an earlier milestone.
func (u *DisbursementUseCase) Advance(ctx context.Context, campaignID int64) (*domain.Milestone, error) {
	ms, err := u.milestones.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	current, next := nextActive(ms)
	if next == nil {
		return nil, nil
	}

	err = u.milestones.SwapActive(ctx, campaignID, current.ID, next.ID)
	if errors.Is(err, port.ErrConflict) {
		// a concurrent advance won the swap; the invariant holds either way
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	next.IsActive = true
	return next, nil
}
