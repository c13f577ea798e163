package httpadapter

import (
	"encoding/json"
	"net/http"

	"fundflow/internal/core/domain"
)

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// handleCreateOrder passes an order-creation call through to the payment
// gateway. The ledger is untouched until the gateway calls back with a
// signed capture notification.
func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	order, err := h.gateway.CreateOrder(r.Context(), req.Amount, req.Currency)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, order)
}

type verifyPaymentRequest struct {
	OrderID     string `json:"order_id"`
	PaymentID   string `json:"payment_id"`
	Signature   string `json:"signature"`
	Amount      int64  `json:"amount"`
	CampaignID  int64  `json:"campaign_id"`
	MilestoneID int64  `json:"milestone_id"`
}

type paymentReceiptResponse struct {
	CampaignID        int64  `json:"campaign_id"`
	MilestoneID       int64  `json:"milestone_id"`
	Amount            int64  `json:"amount"`
	AmountRaised      int64  `json:"amount_raised"`
	CampaignCompleted bool   `json:"campaign_completed"`
	NextMilestoneID   *int64 `json:"next_milestone_id,omitempty"`
}

// handleVerifyPayment authenticates a captured payment and credits it. The
// response reflects the committed ledger state; milestone advancement runs
// after the commit and is best-effort.
func (h *Handler) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	receipt, err := h.disbursements.VerifyAndApply(r.Context(), domain.PaymentNotification{
		OrderID:     req.OrderID,
		PaymentID:   req.PaymentID,
		Signature:   req.Signature,
		Amount:      req.Amount,
		CampaignID:  req.CampaignID,
		MilestoneID: req.MilestoneID,
		DonorID:     callerID(r),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, paymentReceiptResponse{
		CampaignID:        receipt.CampaignID,
		MilestoneID:       receipt.MilestoneID,
		Amount:            receipt.Amount,
		AmountRaised:      receipt.AmountRaised,
		CampaignCompleted: receipt.CampaignCompleted,
		NextMilestoneID:   receipt.NextMilestoneID,
	})
}
