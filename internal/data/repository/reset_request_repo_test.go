package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ytanya/FreshNoodle/internal/data/entity"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResetRequestRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	request := &entity.PasswordResetRequest{
		UserID:           7,
		RequestedAt:      now,
		VerificationCode: "482913",
		ExpiresAt:        now.Add(15 * time.Minute),
	}

	mock.ExpectQuery(`INSERT INTO password_reset_requests`).
		WithArgs(int64(7), now, "482913", now.Add(15*time.Minute)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	repo := NewResetRequestRepository(mock, zap.NewNop())
	require.NoError(t, repo.Create(context.Background(), request))
	assert.Equal(t, int64(3), request.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetRequestRepository_FindActive(t *testing.T) {
	now := time.Now().UTC()

	resetColumns := []string{"id", "user_id", "requested_at", "verification_code", "expires_at", "is_completed", "completed_at"}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantNil   bool
	}{
		{
			name: "matching request found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM password_reset_requests`).
					WithArgs(int64(7), "482913", now).
					WillReturnRows(pgxmock.NewRows(resetColumns).
						AddRow(int64(3), int64(7), now.Add(-time.Minute), "482913", now.Add(14*time.Minute), false, (*time.Time)(nil)))
			},
		},
		{
			name: "no match yields nil without error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM password_reset_requests`).
					WithArgs(int64(7), "482913", now).
					WillReturnRows(pgxmock.NewRows(resetColumns))
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewResetRequestRepository(mock, zap.NewNop())
			got, err := repo.FindActive(context.Background(), 7, "482913", now)
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, int64(3), got.ID)
				assert.Equal(t, "482913", got.VerificationCode)
				assert.False(t, got.IsCompleted)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestResetRequestRepository_CompleteWithNewPassword(t *testing.T) {
	now := time.Now().UTC()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE password_reset_requests`).
		WithArgs(int64(3), now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE users SET password = \$2 WHERE id = \$1`).
		WithArgs(int64(7), "newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := NewResetRequestRepository(mock, zap.NewNop())
	err = repo.CompleteWithNewPassword(context.Background(), 3, 7, "newhash", now)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetRequestRepository_CompleteWithNewPassword_AlreadyCompleted(t *testing.T) {
	now := time.Now().UTC()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// The conditional update matches no row: a concurrent call already won.
	// The password update must not run.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE password_reset_requests`).
		WithArgs(int64(3), now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	repo := NewResetRequestRepository(mock, zap.NewNop())
	err = repo.CompleteWithNewPassword(context.Background(), 3, 7, "newhash", now)
	require.ErrorIs(t, err, ErrRequestNotCompletable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetRequestRepository_CompleteAllForUser(t *testing.T) {
	now := time.Now().UTC()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE password_reset_requests`).
		WithArgs(int64(7), now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	repo := NewResetRequestRepository(mock, zap.NewNop())
	require.NoError(t, repo.CompleteAllForUser(context.Background(), 7, now))
	assert.NoError(t, mock.ExpectationsWereMet())
}
