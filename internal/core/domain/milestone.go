package domain

import "time"

// Milestone statuses mirror campaign moderation states.
const (
	MilestoneStatusPending  = "PENDING"
	MilestoneStatusApproved = "APPROVED"
	MilestoneStatusRejected = "REJECTED"
)

// Milestone is a sequential sub-goal within a campaign. Milestones are
// totally ordered by creation time and at most one milestone per campaign
// is active at any time; funding progress is credited to the active one.
type Milestone struct {
	ID         int64
	CampaignID int64
	Title      string
	GoalAmount int64
	Amount     int64
	Status     string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Funded reports whether the milestone has reached its own goal.
func (m Milestone) Funded() bool {
	return m.Amount >= m.GoalAmount
}
