package entity

import (
	"time"
)

// PasswordResetRequest is one entry in the reset-code ledger. Requests are
// never deleted: completed or expired rows simply stop matching.
type PasswordResetRequest struct {
	ID               int64      `db:"id"`
	UserID           int64      `db:"user_id"`
	RequestedAt      time.Time  `db:"requested_at"`
	VerificationCode string     `db:"verification_code"`
	ExpiresAt        time.Time  `db:"expires_at"`
	IsCompleted      bool       `db:"is_completed"`
	CompletedAt      *time.Time `db:"completed_at"`
}
