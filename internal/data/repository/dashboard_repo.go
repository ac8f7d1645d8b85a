package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ytanya/FreshNoodle/pkg/database"

	"go.uber.org/zap"
)

// DashboardCounts are the live figures behind the overview screen.
type DashboardCounts struct {
	ActiveCustomers              int64
	ActiveUsers                  int64
	IsTodayClosed                bool
	InactivePaymentTypes         int64
	CustomersOnInactivePriceType int64
}

type DashboardRepository interface {
	Counts(ctx context.Context, today time.Time) (*DashboardCounts, error)
}

type dashboardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDashboardRepository(db database.PgxIface, log *zap.Logger) DashboardRepository {
	return &dashboardRepository{
		db:  db,
		log: log.With(zap.String("repository", "dashboard")),
	}
}

func (r *dashboardRepository) Counts(ctx context.Context, today time.Time) (*DashboardCounts, error) {
	var counts DashboardCounts

	queries := []struct {
		name string
		sql  string
		args []any
		dest any
	}{
		{
			name: "active customers",
			sql:  `SELECT COUNT(*) FROM customers WHERE is_active = true`,
			dest: &counts.ActiveCustomers,
		},
		{
			name: "active users",
			sql:  `SELECT COUNT(*) FROM users WHERE is_active = true`,
			dest: &counts.ActiveUsers,
		},
		{
			name: "today closed",
			sql:  `SELECT EXISTS (SELECT 1 FROM production_days WHERE date = $1 AND is_closed = true)`,
			args: []any{today},
			dest: &counts.IsTodayClosed,
		},
		{
			name: "inactive payment types",
			sql:  `SELECT COUNT(*) FROM payment_types WHERE is_active = false`,
			dest: &counts.InactivePaymentTypes,
		},
		{
			name: "customers on inactive price type",
			sql: `SELECT COUNT(*) FROM customers c
			      JOIN price_types pt ON pt.id = c.price_type_id
			      WHERE pt.is_active = false`,
			dest: &counts.CustomersOnInactivePriceType,
		},
	}

	for _, q := range queries {
		if err := r.db.QueryRow(ctx, q.sql, q.args...).Scan(q.dest); err != nil {
			r.log.Error("Failed to load dashboard count",
				zap.Error(err),
				zap.String("count", q.name),
			)
			return nil, fmt.Errorf("dashboard count %s: %w", q.name, err)
		}
	}

	return &counts, nil
}
