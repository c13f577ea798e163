package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserts demo data: a handful of users, one approved campaign per
// owner with an ordered milestone chain whose first milestone is active.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for i := 1; i <= 3; i++ {
		var userID int64
		email := fmt.Sprintf("owner%d@example.com", i)
		err = db.QueryRow(ctx, `INSERT INTO users (email, name, password_hash)
VALUES ($1, $2, $3) ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, email, fmt.Sprintf("Owner %d", i), string(hash)).Scan(&userID)
		if err != nil {
			return err
		}

		var campaignID int64
		err = db.QueryRow(ctx, `INSERT INTO campaigns
    (owner_id, title, description, goal_amount, status, is_active)
VALUES ($1, $2, $3, $4, 'APPROVED', TRUE)
RETURNING id`,
			userID, fmt.Sprintf("Campaign %d", i), "demo campaign", int64(100000*i)).Scan(&campaignID)
		if err != nil {
			return err
		}

		for j := 1; j <= 3; j++ {
			_, err = db.Exec(ctx, `INSERT INTO milestones
    (campaign_id, title, goal_amount, status, is_active)
VALUES ($1, $2, $3, 'APPROVED', $4)`,
				campaignID, fmt.Sprintf("Milestone %d", j), int64(30000*i), j == 1)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
