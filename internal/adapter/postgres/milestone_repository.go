package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

const milestoneColumns = `id, campaign_id, title, goal_amount, amount, status, is_active, created_at, updated_at`

// MilestoneRepository implements port.MilestoneRepository using pgxpool.
type MilestoneRepository struct {
	pool *pgxpool.Pool
}

// NewMilestoneRepository returns a new repository instance.
func NewMilestoneRepository(pool *pgxpool.Pool) *MilestoneRepository {
	return &MilestoneRepository{pool: pool}
}

// Create inserts a milestone row and fills in the generated id and
// timestamps.
func (r *MilestoneRepository) Create(ctx context.Context, m *domain.Milestone) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO milestones (campaign_id, title, goal_amount, amount, status, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`,
		m.CampaignID, m.Title, m.GoalAmount, m.Amount, m.Status, m.IsActive).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("milestone create: %w", port.ErrConflict)
	}
	return err
}

// GetByID returns a milestone by id, or ErrNotFound.
func (r *MilestoneRepository) GetByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	var m domain.Milestone
	err := r.pool.QueryRow(ctx, `SELECT `+milestoneColumns+` FROM milestones WHERE id = $1`, id).
		Scan(&m.ID, &m.CampaignID, &m.Title, &m.GoalAmount, &m.Amount, &m.Status, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("milestone %d: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update persists the mutable milestone fields. Balances and the active flag
// are owned by the disbursement engine and the sequencer, not by Update.
func (r *MilestoneRepository) Update(ctx context.Context, m *domain.Milestone) error {
	tag, err := r.pool.Exec(ctx, `UPDATE milestones
SET title = $1, goal_amount = $2, status = $3, updated_at = now()
WHERE id = $4`, m.Title, m.GoalAmount, m.Status, m.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("milestone %d: %w", m.ID, port.ErrNotFound)
	}
	return nil
}

// Delete removes a milestone row.
func (r *MilestoneRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM milestones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("milestone %d: %w", id, port.ErrNotFound)
	}
	return nil
}

// ListByCampaign returns the campaign's milestones in ascending creation
// order. The sequencer relies on this ordering.
func (r *MilestoneRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Milestone, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+milestoneColumns+` FROM milestones
WHERE campaign_id = $1
ORDER BY created_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Milestone, error) {
		var m domain.Milestone
		err := row.Scan(&m.ID, &m.CampaignID, &m.Title, &m.GoalAmount, &m.Amount, &m.Status, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
		return m, err
	})
}

// ActivateFirst activates the earliest milestone of a campaign when none is
// active. The guarding NOT EXISTS clause makes concurrent calls settle on a
// single active milestone.
func (r *MilestoneRepository) ActivateFirst(ctx context.Context, campaignID int64) (*domain.Milestone, error) {
	var m domain.Milestone
	err := r.pool.QueryRow(ctx, `UPDATE milestones
SET is_active = TRUE, updated_at = now()
WHERE id = (
    SELECT id FROM milestones
    WHERE campaign_id = $1
      AND NOT EXISTS (SELECT 1 FROM milestones WHERE campaign_id = $1 AND is_active)
    ORDER BY created_at, id
    LIMIT 1
)
RETURNING `+milestoneColumns, campaignID).
		Scan(&m.ID, &m.CampaignID, &m.Title, &m.GoalAmount, &m.Amount, &m.Status, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SwapActive atomically moves the active flag from one milestone to the
// next. The deactivation is conditional on fromID still being active, so a
// concurrent advance loses cleanly with ErrConflict instead of activating a
// second milestone.
func (r *MilestoneRepository) SwapActive(ctx context.Context, campaignID, fromID, toID int64) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE milestones
SET is_active = FALSE, updated_at = now()
WHERE id = $1 AND campaign_id = $2 AND is_active`, fromID, campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("milestone %d is not the active milestone of campaign %d: %w", fromID, campaignID, port.ErrConflict)
		return err
	}

	tag, err = tx.Exec(ctx, `UPDATE milestones
SET is_active = TRUE, updated_at = now()
WHERE id = $1 AND campaign_id = $2`, toID, campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("milestone %d of campaign %d: %w", toID, campaignID, port.ErrNotFound)
		return err
	}
	return nil
}

// AddVote stores a vote; duplicate (user, milestone) pairs map to
// ErrConflict via the unique constraint.
func (r *MilestoneRepository) AddVote(ctx context.Context, v *domain.MilestoneVote) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO milestone_votes (user_id, milestone_id, approve)
VALUES ($1, $2, $3)
RETURNING id, created_at`, v.UserID, v.MilestoneID, v.Approve).Scan(&v.ID, &v.CreatedAt)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("user %d already voted on milestone %d: %w", v.UserID, v.MilestoneID, port.ErrConflict)
	}
	return err
}

// CountVotes returns the number of votes cast on a milestone.
func (r *MilestoneRepository) CountVotes(ctx context.Context, milestoneID int64) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM milestone_votes WHERE milestone_id = $1`, milestoneID).Scan(&n)
	return n, err
}

// ListCampaignsWithFundedActive returns ids of campaigns whose active
// milestone has reached its goal, i.e. campaigns the sequencer may still
// need to advance.
func (r *MilestoneRepository) ListCampaignsWithFundedActive(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id FROM milestones
WHERE is_active AND amount >= goal_amount`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (int64, error) {
		var id int64
		err := row.Scan(&id)
		return id, err
	})
}
