package repository

import (
	"context"
	"fmt"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Reference-type repositories: small lookup tables behind customer pricing
// and billing. Same shape for all three.

type PriceTypeRepository interface {
	Create(ctx context.Context, priceType *entity.PriceType) error
	FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.PriceType, error)
	FindAll(ctx context.Context, includeInactive bool) ([]*entity.PriceType, error)
	Update(ctx context.Context, priceType *entity.PriceType) error
}

type PaymentTypeRepository interface {
	Create(ctx context.Context, paymentType *entity.PaymentType) error
	FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.PaymentType, error)
	FindAll(ctx context.Context, includeInactive bool) ([]*entity.PaymentType, error)
	Update(ctx context.Context, paymentType *entity.PaymentType) error
}

type CustomerTypeRepository interface {
	Create(ctx context.Context, customerType *entity.CustomerType) error
	FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.CustomerType, error)
	FindAll(ctx context.Context, includeInactive bool) ([]*entity.CustomerType, error)
	Update(ctx context.Context, customerType *entity.CustomerType) error
}

// ---------------- price types ----------------

type priceTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPriceTypeRepository(db database.PgxIface, log *zap.Logger) PriceTypeRepository {
	return &priceTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "price_type")),
	}
}

func (r *priceTypeRepository) Create(ctx context.Context, priceType *entity.PriceType) error {
	query := `
		INSERT INTO price_types (name, default_price_per_kg, is_active)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		priceType.Name,
		priceType.DefaultPricePerKg,
		priceType.IsActive,
	).Scan(&priceType.ID)

	if err != nil {
		r.log.Error("Failed to create price type", zap.Error(err), zap.String("name", priceType.Name))
		return fmt.Errorf("create price type %s: %w", priceType.Name, err)
	}

	return nil
}

func (r *priceTypeRepository) FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.PriceType, error) {
	query := `SELECT id, name, default_price_per_kg, is_active FROM price_types WHERE id = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}

	var pt entity.PriceType
	err := r.db.QueryRow(ctx, query, id).Scan(&pt.ID, &pt.Name, &pt.DefaultPricePerKg, &pt.IsActive)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find price type", zap.Error(err), zap.Int64("price_type_id", id))
		return nil, fmt.Errorf("find price type by ID %d: %w", id, err)
	}

	return &pt, nil
}

func (r *priceTypeRepository) FindAll(ctx context.Context, includeInactive bool) ([]*entity.PriceType, error) {
	query := `SELECT id, name, default_price_per_kg, is_active FROM price_types`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get price types", zap.Error(err))
		return nil, fmt.Errorf("find all price types: %w", err)
	}
	defer rows.Close()

	var priceTypes []*entity.PriceType
	for rows.Next() {
		var pt entity.PriceType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.DefaultPricePerKg, &pt.IsActive); err != nil {
			return nil, fmt.Errorf("scan price type row: %w", err)
		}
		priceTypes = append(priceTypes, &pt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price type rows: %w", err)
	}

	return priceTypes, nil
}

func (r *priceTypeRepository) Update(ctx context.Context, priceType *entity.PriceType) error {
	query := `
		UPDATE price_types
		SET name = $2, default_price_per_kg = $3, is_active = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		priceType.ID,
		priceType.Name,
		priceType.DefaultPricePerKg,
		priceType.IsActive,
	)
	if err != nil {
		r.log.Error("Failed to update price type", zap.Error(err), zap.Int64("price_type_id", priceType.ID))
		return fmt.Errorf("update price type %d: %w", priceType.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("price type %d not found", priceType.ID)
	}

	return nil
}

// ---------------- payment types ----------------

type paymentTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentTypeRepository(db database.PgxIface, log *zap.Logger) PaymentTypeRepository {
	return &paymentTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_type")),
	}
}

func (r *paymentTypeRepository) Create(ctx context.Context, paymentType *entity.PaymentType) error {
	query := `
		INSERT INTO payment_types (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		paymentType.Name,
		paymentType.Description,
		paymentType.IsActive,
	).Scan(&paymentType.ID)

	if err != nil {
		r.log.Error("Failed to create payment type", zap.Error(err), zap.String("name", paymentType.Name))
		return fmt.Errorf("create payment type %s: %w", paymentType.Name, err)
	}

	return nil
}

func (r *paymentTypeRepository) FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.PaymentType, error) {
	query := `SELECT id, name, description, is_active FROM payment_types WHERE id = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}

	var pt entity.PaymentType
	err := r.db.QueryRow(ctx, query, id).Scan(&pt.ID, &pt.Name, &pt.Description, &pt.IsActive)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment type", zap.Error(err), zap.Int64("payment_type_id", id))
		return nil, fmt.Errorf("find payment type by ID %d: %w", id, err)
	}

	return &pt, nil
}

func (r *paymentTypeRepository) FindAll(ctx context.Context, includeInactive bool) ([]*entity.PaymentType, error) {
	query := `SELECT id, name, description, is_active FROM payment_types`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get payment types", zap.Error(err))
		return nil, fmt.Errorf("find all payment types: %w", err)
	}
	defer rows.Close()

	var paymentTypes []*entity.PaymentType
	for rows.Next() {
		var pt entity.PaymentType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Description, &pt.IsActive); err != nil {
			return nil, fmt.Errorf("scan payment type row: %w", err)
		}
		paymentTypes = append(paymentTypes, &pt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment type rows: %w", err)
	}

	return paymentTypes, nil
}

func (r *paymentTypeRepository) Update(ctx context.Context, paymentType *entity.PaymentType) error {
	query := `
		UPDATE payment_types
		SET name = $2, description = $3, is_active = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		paymentType.ID,
		paymentType.Name,
		paymentType.Description,
		paymentType.IsActive,
	)
	if err != nil {
		r.log.Error("Failed to update payment type", zap.Error(err), zap.Int64("payment_type_id", paymentType.ID))
		return fmt.Errorf("update payment type %d: %w", paymentType.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment type %d not found", paymentType.ID)
	}

	return nil
}

// ---------------- customer types ----------------

type customerTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerTypeRepository(db database.PgxIface, log *zap.Logger) CustomerTypeRepository {
	return &customerTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer_type")),
	}
}

func (r *customerTypeRepository) Create(ctx context.Context, customerType *entity.CustomerType) error {
	query := `
		INSERT INTO customer_types (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		customerType.Name,
		customerType.Description,
		customerType.IsActive,
	).Scan(&customerType.ID)

	if err != nil {
		r.log.Error("Failed to create customer type", zap.Error(err), zap.String("name", customerType.Name))
		return fmt.Errorf("create customer type %s: %w", customerType.Name, err)
	}

	return nil
}

func (r *customerTypeRepository) FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.CustomerType, error) {
	query := `SELECT id, name, description, is_active FROM customer_types WHERE id = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}

	var ct entity.CustomerType
	err := r.db.QueryRow(ctx, query, id).Scan(&ct.ID, &ct.Name, &ct.Description, &ct.IsActive)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer type", zap.Error(err), zap.Int64("customer_type_id", id))
		return nil, fmt.Errorf("find customer type by ID %d: %w", id, err)
	}

	return &ct, nil
}

func (r *customerTypeRepository) FindAll(ctx context.Context, includeInactive bool) ([]*entity.CustomerType, error) {
	query := `SELECT id, name, description, is_active FROM customer_types`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get customer types", zap.Error(err))
		return nil, fmt.Errorf("find all customer types: %w", err)
	}
	defer rows.Close()

	var customerTypes []*entity.CustomerType
	for rows.Next() {
		var ct entity.CustomerType
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Description, &ct.IsActive); err != nil {
			return nil, fmt.Errorf("scan customer type row: %w", err)
		}
		customerTypes = append(customerTypes, &ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer type rows: %w", err)
	}

	return customerTypes, nil
}

func (r *customerTypeRepository) Update(ctx context.Context, customerType *entity.CustomerType) error {
	query := `
		UPDATE customer_types
		SET name = $2, description = $3, is_active = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		customerType.ID,
		customerType.Name,
		customerType.Description,
		customerType.IsActive,
	)
	if err != nil {
		r.log.Error("Failed to update customer type", zap.Error(err), zap.Int64("customer_type_id", customerType.ID))
		return fmt.Errorf("update customer type %d: %w", customerType.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer type %d not found", customerType.ID)
	}

	return nil
}
