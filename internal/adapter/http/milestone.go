package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

type milestoneResponse struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	Title      string    `json:"title"`
	GoalAmount int64     `json:"goal_amount"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func toMilestoneResponse(m domain.Milestone) milestoneResponse {
	return milestoneResponse{
		ID:         m.ID,
		CampaignID: m.CampaignID,
		Title:      m.Title,
		GoalAmount: m.GoalAmount,
		Amount:     m.Amount,
		Status:     m.Status,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}

type createMilestoneRequest struct {
	Title      string `json:"title"`
	GoalAmount int64  `json:"goal_amount"`
}

// handleCreateMilestone appends a milestone to a campaign's sequence.
func (h *Handler) handleCreateMilestone(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req createMilestoneRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	m, err := h.milestones.Create(r.Context(), campaignID, req.Title, req.GoalAmount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toMilestoneResponse(*m))
}

// handleListMilestones returns a campaign's milestones in creation order.
func (h *Handler) handleListMilestones(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	ms, err := h.milestones.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]milestoneResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMilestoneResponse(m))
	}
	h.writeJSON(w, http.StatusOK, out)
}

type updateMilestoneRequest struct {
	Title      *string `json:"title"`
	GoalAmount *int64  `json:"goal_amount"`
	Status     *string `json:"status"`
}

// handleUpdateMilestone changes milestone fields; locked once voted on.
func (h *Handler) handleUpdateMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req updateMilestoneRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	m, err := h.milestones.Update(r.Context(), id, port.MilestoneUpdate{
		Title:      req.Title,
		GoalAmount: req.GoalAmount,
		Status:     req.Status,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toMilestoneResponse(*m))
}

// handleDeleteMilestone removes a milestone; locked once voted on.
func (h *Handler) handleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err = h.milestones.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type voteRequest struct {
	Approve bool `json:"approve"`
}

// handleVote casts the caller's single vote on a milestone.
func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var req voteRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err = h.milestones.Vote(r.Context(), callerID(r), id, req.Approve); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
