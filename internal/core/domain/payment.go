package domain

import "time"

// PaymentNotification is the inbound payment-capture callback as sent by the
// gateway after the payer completes checkout. Signature is the gateway's
// HMAC over "orderID|paymentID"; it must be verified before any ledger write.
type PaymentNotification struct {
	OrderID     string
	PaymentID   string
	Signature   string
	Amount      int64
	CampaignID  int64
	MilestoneID int64
	DonorID     int64
}

// PaymentOrder is the gateway-side order created before checkout. The core
// only passes it through; the gateway owns its lifecycle.
type PaymentOrder struct {
	OrderID   string
	Amount    int64
	Currency  string
	CreatedAt time.Time
}
