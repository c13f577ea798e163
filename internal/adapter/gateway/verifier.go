package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// Verifier implements port.PaymentVerifier. The gateway signs each captured
// payment with HMAC-SHA256 over "orderID|paymentID" using the merchant key
// secret; the notification is authentic only when the recomputed digest
// matches the claimed signature.
type Verifier struct {
	secret []byte
}

// NewVerifier returns a verifier bound to the shared gateway secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify authenticates a payment notification. A missing secret, an empty
// signature or any digest mismatch returns ErrValidation; the caller must
// not credit the payment in that case.
func (v *Verifier) Verify(n domain.PaymentNotification) error {
	if len(v.secret) == 0 {
		return fmt.Errorf("gateway secret not configured: %w", port.ErrValidation)
	}
	if n.OrderID == "" || n.PaymentID == "" || n.Signature == "" {
		return fmt.Errorf("incomplete payment notification: %w", port.ErrValidation)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(n.OrderID + "|" + n.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(n.Signature)) {
		return fmt.Errorf("payment signature mismatch for order %s: %w", n.OrderID, port.ErrValidation)
	}
	return nil
}
