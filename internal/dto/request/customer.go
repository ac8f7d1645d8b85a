package request

type CustomerRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	CustomerTypeID int64  `json:"customer_type_id" validate:"required"`
	PriceTypeID    int64  `json:"price_type_id" validate:"required"`
	PaymentTypeID  int64  `json:"payment_type_id" validate:"required"`
	SkipDay        bool   `json:"skip_day"`
	PriorityOrder  *int   `json:"priority_order,omitempty"`
	IsActive       bool   `json:"is_active"`
}
