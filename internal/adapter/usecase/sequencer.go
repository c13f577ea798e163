package usecase

import "fundflow/internal/core/domain"

// nextActive selects the milestone pair for an advance. Milestones must be
// in ascending creation order. It returns the currently active, fully funded
// milestone and its successor. Both are nil when no advance is due: no
// milestone is active, the active one is not yet funded, or it is the last
// in the sequence. A funded milestone that is not the active one never
// triggers an advance; only one milestone unlocks funding at a time.
func nextActive(ms []domain.Milestone) (current, next *domain.Milestone) {
	for i := range ms {
		if !ms[i].IsActive {
			continue
		}
		if ms[i].Funded() && i+1 < len(ms) {
			return &ms[i], &ms[i+1]
		}
		return nil, nil
	}
	return nil, nil
}
