package worker

import (
	"context"
	"log/slog"
	"time"

	"fundflow/internal/core/port"
)

// Reconciler periodically re-runs milestone advancement for campaigns whose
// active milestone is already funded. The disbursement engine advances
// best-effort after each payment commit; this sweep picks up the advances
// lost when that post-commit step fails.
type Reconciler struct {
	disbursements port.DisbursementUseCase
	milestones    port.MilestoneRepository
	interval      time.Duration
	logger        *slog.Logger
}

// NewReconciler creates a reconciler sweeping at the given interval.
func NewReconciler(disbursements port.DisbursementUseCase, milestones port.MilestoneRepository, interval time.Duration, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		disbursements: disbursements,
		milestones:    milestones,
		interval:      interval,
		logger:        logger,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. Sweep
// errors are logged and the loop keeps going.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.sweep(ctx); err != nil {
				r.logger.Error("reconciliation sweep failed", slog.Any("error", err))
			}
		}
	}
}

func (r *Reconciler) sweep(ctx context.Context) error {
	ids, err := r.milestones.ListCampaignsWithFundedActive(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		next, err := r.disbursements.Advance(ctx, id)
		if err != nil {
			r.logger.Warn("reconciliation advance failed",
				slog.Int64("campaign_id", id),
				slog.Any("error", err))
			continue
		}
		if next != nil {
			r.logger.Info("reconciliation advanced milestone",
				slog.Int64("campaign_id", id),
				slog.Int64("milestone_id", next.ID))
		}
	}
	return nil
}
