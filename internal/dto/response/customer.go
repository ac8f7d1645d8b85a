package response

import (
	"github.com/ytanya/FreshNoodle/internal/data/entity"
)

type CustomerResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	CustomerTypeID   int64  `json:"customer_type_id"`
	CustomerTypeName string `json:"customer_type_name,omitempty"`
	PriceTypeID      int64  `json:"price_type_id"`
	PriceTypeName    string `json:"price_type_name,omitempty"`
	PaymentTypeID    int64  `json:"payment_type_id"`
	PaymentTypeName  string `json:"payment_type_name,omitempty"`
	SkipDay          bool   `json:"skip_day"`
	PriorityOrder    *int   `json:"priority_order,omitempty"`
	IsActive         bool   `json:"is_active"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:               customer.ID,
		Name:             customer.Name,
		CustomerTypeID:   customer.CustomerTypeID,
		CustomerTypeName: customer.CustomerTypeName,
		PriceTypeID:      customer.PriceTypeID,
		PriceTypeName:    customer.PriceTypeName,
		PaymentTypeID:    customer.PaymentTypeID,
		PaymentTypeName:  customer.PaymentTypeName,
		SkipDay:          customer.SkipDay,
		PriorityOrder:    customer.PriorityOrder,
		IsActive:         customer.IsActive,
	}
}
