package entity

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	Phone        *string   `db:"phone"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
	IsActive     bool      `db:"is_active"`

	// Roles in assignment order, populated by the WithRoles lookups
	Roles []Role
}

// RoleNames flattens assigned roles for token claims and responses.
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = r.Name
	}
	return names
}
