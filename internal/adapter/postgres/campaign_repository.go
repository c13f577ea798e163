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

const campaignColumns = `id, owner_id, title, description, goal_amount, amount_raised, status, is_active, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a campaign row and fills in the generated id and
// timestamps.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns (owner_id, title, description, goal_amount, amount_raised, status, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`,
		c.OwnerID, c.Title, c.Description, c.GoalAmount, c.AmountRaised, c.Status, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetByID returns a campaign by id, or ErrNotFound.
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.OwnerID, &c.Title, &c.Description, &c.GoalAmount, &c.AmountRaised, &c.Status, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all campaigns, newest first.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.OwnerID, &c.Title, &c.Description, &c.GoalAmount, &c.AmountRaised, &c.Status, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}

// UpdateStatus sets the moderation status and active flag.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id int64, status string, isActive bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET status = $1, is_active = $2, updated_at = now()
WHERE id = $3`, status, isActive, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	return nil
}

// Delete removes a campaign. Dependent milestone, donation, transaction and
// payment rows go with it via ON DELETE CASCADE.
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}
	return nil
}
