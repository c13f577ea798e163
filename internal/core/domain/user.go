package domain

import "time"

// User is a platform account. PasswordHash is a bcrypt hash and never leaves
// the persistence and account layers.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
