package repository

import (
	"context"
	"fmt"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UserRepository persists user records. Deactivation is a soft delete:
// every lookup takes an explicit includeInactive instead of relying on an
// ambient filter, so bypassing it is always a visible decision at the call
// site. Uniqueness checks must pass includeInactive=true.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.User, error)
	FindByUsername(ctx context.Context, username string, includeInactive bool) (*entity.User, error)
	FindByEmail(ctx context.Context, email string, includeInactive bool) (*entity.User, error)
	FindByUsernameWithRoles(ctx context.Context, username string, includeInactive bool) (*entity.User, error)
	FindByIDWithRoles(ctx context.Context, id int64, includeInactive bool) (*entity.User, error)
	FindAllWithRoles(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

const userColumns = `id, username, email, phone, password, created_at, is_active`

// Create inserts a new user record and fills in the generated id
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, email, phone, password, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := ur.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.CreatedAt,
		user.IsActive,
	).Scan(&user.ID)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}

	user, err := ur.scanOne(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return user, nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string, includeInactive bool) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}

	user, err := ur.scanOne(ctx, query, username)
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string, includeInactive bool) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}

	user, err := ur.scanOne(ctx, query, email)
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (ur *userRepository) FindByUsernameWithRoles(ctx context.Context, username string, includeInactive bool) (*entity.User, error) {
	user, err := ur.FindByUsername(ctx, username, includeInactive)
	if err != nil || user == nil {
		return user, err
	}

	if err := ur.loadRoles(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (ur *userRepository) FindByIDWithRoles(ctx context.Context, id int64, includeInactive bool) (*entity.User, error) {
	user, err := ur.FindByID(ctx, id, includeInactive)
	if err != nil || user == nil {
		return user, err
	}

	if err := ur.loadRoles(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// FindAllWithRoles returns every user, inactive ones included, with their
// assigned roles. Administration screens need the full picture.
func (ur *userRepository) FindAllWithRoles(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Phone,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.IsActive,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	for _, user := range users {
		if err := ur.loadRoles(ctx, user); err != nil {
			return nil, err
		}
	}

	return users, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, phone = $4, is_active = $5
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.Phone,
		user.IsActive,
	)

	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", user.ID)
	}

	return nil
}

func (ur *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	query := `UPDATE users SET password = $2 WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, userID, passwordHash)
	if err != nil {
		ur.log.Error("Failed to update password",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("update password for user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", userID)
	}

	return nil
}

func (ur *userRepository) scanOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User
	err := ur.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.IsActive,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// loadRoles fills user.Roles in assignment order. A user keeps a role that
// went inactive after assignment, so no is_active filter here.
func (ur *userRepository) loadRoles(ctx context.Context, user *entity.User) error {
	query := `
		SELECT r.id, r.name, r.description, r.is_active
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY ur.ordinal
	`

	rows, err := ur.db.Query(ctx, query, user.ID)
	if err != nil {
		ur.log.Error("Failed to load user roles",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return fmt.Errorf("load roles for user %d: %w", user.ID, err)
	}
	defer rows.Close()

	user.Roles = nil
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.IsActive); err != nil {
			ur.log.Error("Failed to scan role row", zap.Error(err))
			return fmt.Errorf("scan role row: %w", err)
		}
		user.Roles = append(user.Roles, role)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return fmt.Errorf("iterate role rows: %w", err)
	}

	return nil
}
