package domain

import "time"

// MilestoneVote records one user's verdict on a milestone. Votes are unique
// per (user, milestone) and the first vote on a milestone freezes it against
// structural changes. Tallying is left to an external moderation process.
type MilestoneVote struct {
	ID          int64
	UserID      int64
	MilestoneID int64
	Approve     bool
	CreatedAt   time.Time
}
