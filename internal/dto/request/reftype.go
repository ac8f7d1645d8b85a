package request

type PriceTypeRequest struct {
	Name              string  `json:"name" validate:"required,max=100"`
	DefaultPricePerKg float64 `json:"default_price_per_kg" validate:"gte=0"`
	IsActive          bool    `json:"is_active"`
}

type PaymentTypeRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type CustomerTypeRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}
