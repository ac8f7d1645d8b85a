package repository

import (
	"context"
	"fmt"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoleRepository interface {
	FindAll(ctx context.Context, includeInactive bool) ([]*entity.Role, error)
	FindInactiveNames(ctx context.Context, roleIDs []int64) ([]string, error)
	AssignRoles(ctx context.Context, userID int64, roleIDs []int64) error
	ReplaceForUser(ctx context.Context, userID int64, roleIDs []int64) error
}

type roleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoleRepository(db database.PgxIface, log *zap.Logger) RoleRepository {
	return &roleRepository{
		db:  db,
		log: log.With(zap.String("repository", "role")),
	}
}

func (r *roleRepository) FindAll(ctx context.Context, includeInactive bool) ([]*entity.Role, error) {
	query := `SELECT id, name, description, is_active FROM roles`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get roles", zap.Error(err))
		return nil, fmt.Errorf("find all roles: %w", err)
	}
	defer rows.Close()

	var roles []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.IsActive); err != nil {
			r.log.Error("Failed to scan role row", zap.Error(err))
			return nil, fmt.Errorf("scan role row: %w", err)
		}
		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate role rows: %w", err)
	}

	return roles, nil
}

// FindInactiveNames returns the names of the given roles that are inactive.
// Only active roles may be newly assigned; the caller rejects by name.
func (r *roleRepository) FindInactiveNames(ctx context.Context, roleIDs []int64) ([]string, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}

	query := `SELECT name FROM roles WHERE id = ANY($1) AND is_active = false`

	rows, err := r.db.Query(ctx, query, roleIDs)
	if err != nil {
		r.log.Error("Failed to check role activity", zap.Error(err))
		return nil, fmt.Errorf("check inactive roles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan role name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate role names: %w", err)
	}

	return names, nil
}

// AssignRoles bulk-inserts the (user, role) associations preserving the
// given order via the ordinal column.
func (r *roleRepository) AssignRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	if len(roleIDs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin assign roles: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.insertAssociations(ctx, tx, userID, roleIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit assign roles: %w", err)
	}

	return nil
}

// ReplaceForUser swaps a user's role set atomically: wipe, then re-insert
// in the requested order.
func (r *roleRepository) ReplaceForUser(ctx context.Context, userID int64, roleIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace roles: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		r.log.Error("Failed to clear user roles",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("clear roles for user %d: %w", userID, err)
	}

	if err := r.insertAssociations(ctx, tx, userID, roleIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace roles: %w", err)
	}

	return nil
}

func (r *roleRepository) insertAssociations(ctx context.Context, tx pgx.Tx, userID int64, roleIDs []int64) error {
	if len(roleIDs) == 0 {
		return nil
	}

	query := `INSERT INTO user_roles (user_id, role_id, ordinal) VALUES ($1, $2, $3)`

	batch := &pgx.Batch{}
	for i, roleID := range roleIDs {
		batch.Queue(query, userID, roleID, i)
	}

	results := tx.SendBatch(ctx, batch)
	for range roleIDs {
		if _, err := results.Exec(); err != nil {
			results.Close()
			r.log.Error("Failed to assign roles",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Int64s("role_ids", roleIDs),
			)
			return fmt.Errorf("assign roles to user %d: %w", userID, err)
		}
	}

	if err := results.Close(); err != nil {
		return fmt.Errorf("close role batch for user %d: %w", userID, err)
	}

	return nil
}
