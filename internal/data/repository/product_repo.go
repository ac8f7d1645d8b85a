package repository

import (
	"context"
	"fmt"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.Product, error)
	FindAll(ctx context.Context, includeInactive bool) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, price, description, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.Description,
		product.CreatedAt,
		product.IsActive,
	).Scan(&product.ID)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64, includeInactive bool) (*entity.Product, error) {
	query := `
		SELECT id, name, price, description, created_at, is_active
		FROM products
		WHERE id = $1
	`
	if !includeInactive {
		query += ` AND is_active = true`
	}

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.CreatedAt,
		&product.IsActive,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context, includeInactive bool) ([]*entity.Product, error) {
	query := `SELECT id, name, price, description, created_at, is_active FROM products`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Description,
			&p.CreatedAt,
			&p.IsActive,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, description = $4, is_active = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Description,
		product.IsActive,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", product.ID),
		)
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", product.ID)
	}

	return nil
}
