package domain

import "time"

// Donation is the immutable record of one verified payment credited to a
// campaign. Donations are created exactly once per payment and never mutated.
type Donation struct {
	ID         int64
	DonorID    int64
	CampaignID int64
	Amount     int64
	CreatedAt  time.Time
}
