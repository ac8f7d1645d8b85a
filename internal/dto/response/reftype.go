package response

import (
	"github.com/ytanya/FreshNoodle/internal/data/entity"
)

type PriceTypeResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	DefaultPricePerKg float64 `json:"default_price_per_kg"`
	IsActive          bool    `json:"is_active"`
}

type PaymentTypeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type CustomerTypeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func PriceTypeToResponse(pt *entity.PriceType) PriceTypeResponse {
	return PriceTypeResponse{
		ID:                pt.ID,
		Name:              pt.Name,
		DefaultPricePerKg: pt.DefaultPricePerKg,
		IsActive:          pt.IsActive,
	}
}

func PaymentTypeToResponse(pt *entity.PaymentType) PaymentTypeResponse {
	return PaymentTypeResponse{
		ID:          pt.ID,
		Name:        pt.Name,
		Description: pt.Description,
		IsActive:    pt.IsActive,
	}
}

func CustomerTypeToResponse(ct *entity.CustomerType) CustomerTypeResponse {
	return CustomerTypeResponse{
		ID:          ct.ID,
		Name:        ct.Name,
		Description: ct.Description,
		IsActive:    ct.IsActive,
	}
}
