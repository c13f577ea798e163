package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fundflow/internal/config/configs"
	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// Client implements port.PaymentGateway. Order creation is a pass-through
// call to the gateway's REST API authenticated with the merchant key pair;
// a gateway failure surfaces as ErrGateway and never as a ledger error.
type Client struct {
	cfg  configs.Payment
	http *http.Client
}

// NewClient returns a gateway client with a bounded request timeout.
func NewClient(cfg configs.Payment) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	CreatedAt int64  `json:"created_at"`
}

// CreateOrder registers a checkout order with the gateway and returns its
// identifier for the client-side payment flow.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency string) (*domain.PaymentOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("order amount must be positive: %w", port.ErrValidation)
	}
	if currency == "" {
		currency = c.cfg.Currency
	}

	body, err := json.Marshal(orderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create order: %v: %w", err, port.ErrGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create order: gateway returned %d: %w", resp.StatusCode, port.ErrGateway)
	}

	var or orderResponse
	if err = json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, fmt.Errorf("create order: decode response: %v: %w", err, port.ErrGateway)
	}

	return &domain.PaymentOrder{
		OrderID:   or.ID,
		Amount:    or.Amount,
		Currency:  or.Currency,
		CreatedAt: time.Unix(or.CreatedAt, 0).UTC(),
	}, nil
}
