package request

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active"`
}
