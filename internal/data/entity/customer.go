package entity

type Customer struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	CustomerTypeID int64  `db:"customer_type_id"`
	PriceTypeID    int64  `db:"price_type_id"`
	PaymentTypeID  int64  `db:"payment_type_id"`
	SkipDay        bool   `db:"skip_day"`
	PriorityOrder  *int   `db:"priority_order"`
	IsActive       bool   `db:"is_active"`

	// Type names populated by the joined list query
	CustomerTypeName string
	PriceTypeName    string
	PaymentTypeName  string
}
