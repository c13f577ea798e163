package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyAcceptsAuthenticNotification(t *testing.T) {
	v := NewVerifier("merchant-secret")

	n := domain.PaymentNotification{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sign("merchant-secret", "order_1", "pay_1"),
		Amount:    100,
	}
	if err := v.Verify(n); err != nil {
		t.Fatalf("Verify error: %v", err)
	}
}

func TestVerifyRejectsTamperedNotification(t *testing.T) {
	v := NewVerifier("merchant-secret")

	tests := []struct {
		name string
		n    domain.PaymentNotification
	}{
		{
			name: "signature for a different order",
			n: domain.PaymentNotification{
				OrderID:   "order_2",
				PaymentID: "pay_1",
				Signature: sign("merchant-secret", "order_1", "pay_1"),
			},
		},
		{
			name: "signature under the wrong secret",
			n: domain.PaymentNotification{
				OrderID:   "order_1",
				PaymentID: "pay_1",
				Signature: sign("other-secret", "order_1", "pay_1"),
			},
		},
		{
			name: "garbage signature",
			n: domain.PaymentNotification{
				OrderID:   "order_1",
				PaymentID: "pay_1",
				Signature: "deadbeef",
			},
		},
		{
			name: "missing signature",
			n: domain.PaymentNotification{
				OrderID:   "order_1",
				PaymentID: "pay_1",
			},
		},
		{
			name: "missing order id",
			n: domain.PaymentNotification{
				PaymentID: "pay_1",
				Signature: sign("merchant-secret", "", "pay_1"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Verify(tt.n)
			if !errors.Is(err, port.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestVerifyRequiresConfiguredSecret(t *testing.T) {
	v := NewVerifier("")

	n := domain.PaymentNotification{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sign("", "order_1", "pay_1"),
	}
	err := v.Verify(n)
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
