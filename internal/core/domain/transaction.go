package domain

import "time"

// Transaction types and statuses for the append-only ledger.
const (
	TransactionTypeDonation = "DONATION"
	TransactionTypePayout   = "PAYOUT"

	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
)

// Transaction is one entry in the append-only audit trail of money
// movement. DONATION entries reference the milestone the payment targeted;
// PAYOUT entries carry a nil MilestoneID and credit the campaign owner.
type Transaction struct {
	ID          int64
	Type        string
	Status      string
	Amount      int64
	UserID      int64
	CampaignID  int64
	MilestoneID *int64
	CreatedAt   time.Time
}
