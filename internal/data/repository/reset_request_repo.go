package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrRequestNotCompletable is returned when the conditional completion
// matches no row: the request was already completed by a concurrent call,
// or does not exist.
var ErrRequestNotCompletable = errors.New("reset request already completed or not found")

// ResetRequestRepository is the reset-code ledger. Rows are append-mostly:
// nothing is ever deleted, expired rows just stop matching.
type ResetRequestRepository interface {
	Create(ctx context.Context, request *entity.PasswordResetRequest) error
	FindActive(ctx context.Context, userID int64, code string, now time.Time) (*entity.PasswordResetRequest, error)
	CompleteWithNewPassword(ctx context.Context, requestID, userID int64, passwordHash string, now time.Time) error
	CompleteAllForUser(ctx context.Context, userID int64, now time.Time) error
}

type resetRequestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetRequestRepository(db database.PgxIface, log *zap.Logger) ResetRequestRepository {
	return &resetRequestRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset_request")),
	}
}

func (r *resetRequestRepository) Create(ctx context.Context, request *entity.PasswordResetRequest) error {
	query := `
		INSERT INTO password_reset_requests
			(user_id, requested_at, verification_code, expires_at, is_completed)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		request.UserID,
		request.RequestedAt,
		request.VerificationCode,
		request.ExpiresAt,
	).Scan(&request.ID)

	if err != nil {
		r.log.Error("Failed to create reset request",
			zap.Error(err),
			zap.Int64("user_id", request.UserID),
		)
		return fmt.Errorf("create reset request for user %d: %w", request.UserID, err)
	}

	return nil
}

// FindActive returns the most recently requested non-completed, non-expired
// request matching the code, or nil. Read-only: the code is not consumed.
func (r *resetRequestRepository) FindActive(ctx context.Context, userID int64, code string, now time.Time) (*entity.PasswordResetRequest, error) {
	query := `
		SELECT id, user_id, requested_at, verification_code, expires_at, is_completed, completed_at
		FROM password_reset_requests
		WHERE user_id = $1
		  AND verification_code = $2
		  AND is_completed = false
		  AND expires_at > $3
		ORDER BY requested_at DESC
		LIMIT 1
	`

	var request entity.PasswordResetRequest
	err := r.db.QueryRow(ctx, query, userID, code, now).Scan(
		&request.ID,
		&request.UserID,
		&request.RequestedAt,
		&request.VerificationCode,
		&request.ExpiresAt,
		&request.IsCompleted,
		&request.CompletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active reset request",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find active reset request for user %d: %w", userID, err)
	}

	return &request, nil
}

// CompleteWithNewPassword marks the request completed and stores the new
// password hash in one transaction. The completion update is conditional on
// is_completed = false, so of two concurrent calls only one can win; the
// loser gets ErrRequestNotCompletable.
func (r *resetRequestRepository) CompleteWithNewPassword(ctx context.Context, requestID, userID int64, passwordHash string, now time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin complete reset: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE password_reset_requests
		SET is_completed = true, completed_at = $2
		WHERE id = $1 AND is_completed = false
	`, requestID, now)
	if err != nil {
		r.log.Error("Failed to complete reset request",
			zap.Error(err),
			zap.Int64("request_id", requestID),
		)
		return fmt.Errorf("complete reset request %d: %w", requestID, err)
	}
	if result.RowsAffected() == 0 {
		return ErrRequestNotCompletable
	}

	result, err = tx.Exec(ctx, `UPDATE users SET password = $2 WHERE id = $1`, userID, passwordHash)
	if err != nil {
		r.log.Error("Failed to store new password",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("store new password for user %d: %w", userID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", userID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit complete reset: %w", err)
	}

	return nil
}

// CompleteAllForUser force-completes every outstanding request of a user,
// verified or not. Used by the administrator reset to invalidate any pending
// self-service flow.
func (r *resetRequestRepository) CompleteAllForUser(ctx context.Context, userID int64, now time.Time) error {
	query := `
		UPDATE password_reset_requests
		SET is_completed = true, completed_at = $2
		WHERE user_id = $1 AND is_completed = false
	`

	_, err := r.db.Exec(ctx, query, userID, now)
	if err != nil {
		r.log.Error("Failed to complete outstanding reset requests",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("complete outstanding reset requests for user %d: %w", userID, err)
	}

	return nil
}
