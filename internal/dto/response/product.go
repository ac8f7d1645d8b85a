package response

import (
	"time"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
)

type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
		IsActive:    product.IsActive,
	}
}
