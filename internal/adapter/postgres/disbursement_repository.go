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

// DisbursementRepository implements port.DisbursementRepository using
// pgxpool for PostgreSQL. The whole credit is one serializable transaction
// with the campaign and milestone rows locked FOR UPDATE, so concurrent
// payments against the same campaign serialize instead of losing updates.
type DisbursementRepository struct {
	pool *pgxpool.Pool
}

// NewDisbursementRepository returns a new repository instance.
func NewDisbursementRepository(pool *pgxpool.Pool) *DisbursementRepository {
	return &DisbursementRepository{pool: pool}
}

// CreditPayment applies one verified payment as a single atomic unit:
// idempotency row, donation, DONATION ledger entry, both balance increments
// and, on goal crossing, the PAYOUT ledger entry plus campaign completion.
// Any failure rolls the whole unit back.
func (r *DisbursementRepository) CreditPayment(ctx context.Context, credit port.DonationCredit) (res *port.CreditResult, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			res = nil
		} else {
			// a failed commit means nothing was credited
			if err = tx.Commit(ctx); err != nil {
				res = nil
			}
		}
	}()

	// idempotency guard first: a replayed (order_id, payment_id) pair aborts
	// before any balance moves
	_, err = tx.Exec(ctx, `INSERT INTO payments (order_id, payment_id, campaign_id, amount)
VALUES ($1, $2, $3, $4)`,
		credit.OrderID, credit.PaymentID, credit.CampaignID, credit.Amount)
	if err != nil {
		if isUniqueViolation(err) {
			err = fmt.Errorf("payment %s/%s already credited: %w", credit.OrderID, credit.PaymentID, port.ErrConflict)
		}
		return nil, err
	}

	var c domain.Campaign
	err = tx.QueryRow(ctx, `SELECT id, owner_id, title, description, goal_amount, amount_raised, status, is_active, created_at, updated_at
FROM campaigns WHERE id = $1 FOR UPDATE`, credit.CampaignID).
		Scan(&c.ID, &c.OwnerID, &c.Title, &c.Description, &c.GoalAmount, &c.AmountRaised, &c.Status, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("campaign %d: %w", credit.CampaignID, port.ErrNotFound)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	var m domain.Milestone
	err = tx.QueryRow(ctx, `SELECT id, campaign_id, title, goal_amount, amount, status, is_active, created_at, updated_at
FROM milestones WHERE id = $1 AND campaign_id = $2 FOR UPDATE`, credit.MilestoneID, credit.CampaignID).
		Scan(&m.ID, &m.CampaignID, &m.Title, &m.GoalAmount, &m.Amount, &m.Status, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("milestone %d of campaign %d: %w", credit.MilestoneID, credit.CampaignID, port.ErrNotFound)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `INSERT INTO donations (donor_id, campaign_id, amount)
VALUES ($1, $2, $3)`, credit.DonorID, credit.CampaignID, credit.Amount)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `INSERT INTO transactions (type, status, amount, user_id, campaign_id, milestone_id)
VALUES ('DONATION', 'COMPLETED', $1, $2, $3, $4)`,
		credit.Amount, credit.DonorID, credit.CampaignID, credit.MilestoneID)
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `UPDATE campaigns
SET amount_raised = amount_raised + $1, updated_at = now()
WHERE id = $2
RETURNING amount_raised`, credit.Amount, credit.CampaignID).Scan(&c.AmountRaised)
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `UPDATE milestones
SET amount = amount + $1, updated_at = now()
WHERE id = $2
RETURNING amount`, credit.Amount, credit.MilestoneID).Scan(&m.Amount)
	if err != nil {
		return nil, err
	}

	res = &port.CreditResult{Completed: c.AmountRaised >= c.GoalAmount}
	if res.Completed {
		// goal crossed: record the payout to the owner and close the campaign
		_, err = tx.Exec(ctx, `INSERT INTO transactions (type, status, amount, user_id, campaign_id)
VALUES ('PAYOUT', 'COMPLETED', $1, $2, $3)`, c.AmountRaised, c.OwnerID, c.ID)
		if err != nil {
			return nil, err
		}
		_, err = tx.Exec(ctx, `UPDATE campaigns
SET status = 'COMPLETED', is_active = FALSE, updated_at = now()
WHERE id = $1`, c.ID)
		if err != nil {
			return nil, err
		}
		c.Status = domain.CampaignStatusCompleted
		c.IsActive = false
	}

	res.Campaign = c
	res.Milestone = m
	return res, nil
}
