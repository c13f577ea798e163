package domain

import "time"

// Campaign statuses. A campaign starts PENDING, becomes APPROVED through
// moderation, and moves to COMPLETED when amount_raised reaches goal_amount.
const (
	CampaignStatusPending   = "PENDING"
	CampaignStatusApproved  = "APPROVED"
	CampaignStatusCompleted = "COMPLETED"
	CampaignStatusRejected  = "REJECTED"
)

// Campaign represents a fundraising goal owned by a user.
// Amounts are stored in integer minor currency units (e.g. cents).
// AmountRaised only ever grows; the disbursement engine is the sole writer.
type Campaign struct {
	ID           int64
	OwnerID      int64
	Title        string
	Description  string
	GoalAmount   int64
	AmountRaised int64
	Status       string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Completed reports whether the campaign has reached its funding goal.
func (c Campaign) Completed() bool {
	return c.AmountRaised >= c.GoalAmount
}
