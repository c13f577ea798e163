package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"fundflow/internal/core/domain"
)

type campaignResponse struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	GoalAmount   int64     `json:"goal_amount"`
	AmountRaised int64     `json:"amount_raised"`
	Status       string    `json:"status"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		Title:        c.Title,
		Description:  c.Description,
		GoalAmount:   c.GoalAmount,
		AmountRaised: c.AmountRaised,
		Status:       c.Status,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

type createCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GoalAmount  int64  `json:"goal_amount"`
}

// handleCreateCampaign registers a campaign owned by the caller.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.Create(r.Context(), callerID(r), req.Title, req.Description, req.GoalAmount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

// handleGetCampaign returns one campaign.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	c, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleListCampaigns returns all campaigns.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	cs, err := h.campaigns.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]campaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleApproveCampaign is the moderation action opening a campaign for
// funding.
func (h *Handler) handleApproveCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err = h.campaigns.Approve(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCloseCampaign deletes a campaign after payout, or on owner request.
func (h *Handler) handleCloseCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err = h.campaigns.Close(r.Context(), id, callerID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
