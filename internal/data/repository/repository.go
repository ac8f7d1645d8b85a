package repository

import (
	"github.com/ytanya/FreshNoodle/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Role         RoleRepository
	ResetRequest ResetRequestRepository
	Customer     CustomerRepository
	Product      ProductRepository
	PriceType    PriceTypeRepository
	PaymentType  PaymentTypeRepository
	CustomerType CustomerTypeRepository
	Dashboard    DashboardRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Role:         NewRoleRepository(db, log),
		ResetRequest: NewResetRequestRepository(db, log),
		Customer:     NewCustomerRepository(db, log),
		Product:      NewProductRepository(db, log),
		PriceType:    NewPriceTypeRepository(db, log),
		PaymentType:  NewPaymentTypeRepository(db, log),
		CustomerType: NewCustomerTypeRepository(db, log),
		Dashboard:    NewDashboardRepository(db, log),
	}
}
