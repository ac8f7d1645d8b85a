package entity

type PriceType struct {
	ID                int64   `db:"id"`
	Name              string  `db:"name"`
	DefaultPricePerKg float64 `db:"default_price_per_kg"`
	IsActive          bool    `db:"is_active"`
}

type PaymentType struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	IsActive    bool    `db:"is_active"`
}

type CustomerType struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	IsActive    bool    `db:"is_active"`
}
