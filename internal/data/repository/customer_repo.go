package repository

import (
	"context"
	"fmt"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.Customer, error)
	FindAllWithTypes(ctx context.Context) ([]*entity.Customer, error)
	FindActiveByPriority(ctx context.Context, limit int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers
			(name, customer_type_id, price_type_id, payment_type_id, skip_day, priority_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		customer.Name,
		customer.CustomerTypeID,
		customer.PriceTypeID,
		customer.PaymentTypeID,
		customer.SkipDay,
		customer.PriorityOrder,
		customer.IsActive,
	).Scan(&customer.ID)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("name", customer.Name),
		)
		return fmt.Errorf("create customer %s: %w", customer.Name, err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.Customer, error) {
	query := `
		SELECT id, name, customer_type_id, price_type_id, payment_type_id,
		       skip_day, priority_order, is_active
		FROM customers
		WHERE id = $1
	`
	if !includeInactive {
		query += ` AND is_active = true`
	}

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.CustomerTypeID,
		&customer.PriceTypeID,
		&customer.PaymentTypeID,
		&customer.SkipDay,
		&customer.PriorityOrder,
		&customer.IsActive,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.Int64("customer_id", id),
		)
		return nil, fmt.Errorf("find customer by ID %d: %w", id, err)
	}

	return &customer, nil
}

// FindAllWithTypes lists every customer, inactive included, with its type
// names joined in for the admin grid.
func (r *customerRepository) FindAllWithTypes(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT c.id, c.name, c.customer_type_id, ct.name,
		       c.price_type_id, pt.name, c.payment_type_id, pay.name,
		       c.skip_day, c.priority_order, c.is_active
		FROM customers c
		JOIN customer_types ct ON ct.id = c.customer_type_id
		JOIN price_types pt ON pt.id = c.price_type_id
		JOIN payment_types pay ON pay.id = c.payment_type_id
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get customers", zap.Error(err))
		return nil, fmt.Errorf("find all customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.CustomerTypeID,
			&c.CustomerTypeName,
			&c.PriceTypeID,
			&c.PriceTypeName,
			&c.PaymentTypeID,
			&c.PaymentTypeName,
			&c.SkipDay,
			&c.PriorityOrder,
			&c.IsActive,
		)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}

// FindActiveByPriority returns active customers in delivery priority order,
// unprioritized customers last.
func (r *customerRepository) FindActiveByPriority(ctx context.Context, limit int) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, customer_type_id, price_type_id, payment_type_id,
		       skip_day, priority_order, is_active
		FROM customers
		WHERE is_active = true
		ORDER BY COALESCE(priority_order, 999), id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to get customers by priority", zap.Error(err))
		return nil, fmt.Errorf("find customers by priority: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.CustomerTypeID,
			&c.PriceTypeID,
			&c.PaymentTypeID,
			&c.SkipDay,
			&c.PriorityOrder,
			&c.IsActive,
		)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, customer_type_id = $3, price_type_id = $4,
		    payment_type_id = $5, skip_day = $6, priority_order = $7, is_active = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.CustomerTypeID,
		customer.PriceTypeID,
		customer.PaymentTypeID,
		customer.SkipDay,
		customer.PriorityOrder,
		customer.IsActive,
	)

	if err != nil {
		r.log.Error("Failed to update customer",
			zap.Error(err),
			zap.Int64("customer_id", customer.ID),
		)
		return fmt.Errorf("update customer %d: %w", customer.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %d not found", customer.ID)
	}

	return nil
}
