package usecase

import (
	"context"
	"fmt"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/internal/data/repository"
	"github.com/ytanya/FreshNoodle/internal/dto/request"
	"github.com/ytanya/FreshNoodle/internal/dto/response"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	GetAllCustomers(ctx context.Context) ([]response.CustomerResponse, error)
	CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, customerID int64, req *request.CustomerRequest) error
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log,
	}
}

func (cs *customerService) GetAllCustomers(ctx context.Context) ([]response.CustomerResponse, error) {
	customers, err := cs.repo.Customer.FindAllWithTypes(ctx)
	if err != nil {
		cs.log.Error("Failed to get customers", zap.Error(err))
		return nil, fmt.Errorf("failed to get customers")
	}

	responses := make([]response.CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = response.CustomerToResponse(c)
	}

	return responses, nil
}

func (cs *customerService) CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		cs.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Referenced types must exist and be active
	if err := cs.checkTypeRefs(ctx, req); err != nil {
		return nil, err
	}

	// 3. Persist; new customers always start active
	customer := &entity.Customer{
		Name:           req.Name,
		CustomerTypeID: req.CustomerTypeID,
		PriceTypeID:    req.PriceTypeID,
		PaymentTypeID:  req.PaymentTypeID,
		SkipDay:        req.SkipDay,
		PriorityOrder:  req.PriorityOrder,
		IsActive:       true,
	}
	if err := cs.repo.Customer.Create(ctx, customer); err != nil {
		cs.log.Error("Failed to create customer", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create customer")
	}

	cs.log.Info("Customer created",
		zap.Int64("customer_id", customer.ID),
		zap.String("name", customer.Name))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (cs *customerService) UpdateCustomer(ctx context.Context, customerID int64, req *request.CustomerRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		cs.log.Warn("Update customer validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load target, inactive included
	customer, err := cs.repo.Customer.FindByID(ctx, customerID, true)
	if err != nil {
		cs.log.Error("Failed to find customer", zap.Error(err), zap.Int64("customer_id", customerID))
		return fmt.Errorf("failed to update customer")
	}
	if customer == nil {
		return fmt.Errorf("customer not found")
	}

	// 3. Referenced types must exist and be active
	if err := cs.checkTypeRefs(ctx, req); err != nil {
		return err
	}

	// 4. Apply and persist
	customer.Name = req.Name
	customer.CustomerTypeID = req.CustomerTypeID
	customer.PriceTypeID = req.PriceTypeID
	customer.PaymentTypeID = req.PaymentTypeID
	customer.SkipDay = req.SkipDay
	customer.PriorityOrder = req.PriorityOrder
	customer.IsActive = req.IsActive

	if err := cs.repo.Customer.Update(ctx, customer); err != nil {
		cs.log.Error("Failed to update customer", zap.Error(err), zap.Int64("customer_id", customerID))
		return fmt.Errorf("failed to update customer")
	}

	cs.log.Info("Customer updated", zap.Int64("customer_id", customerID))
	return nil
}

func (cs *customerService) checkTypeRefs(ctx context.Context, req *request.CustomerRequest) error {
	customerType, err := cs.repo.CustomerType.FindByID(ctx, req.CustomerTypeID, false)
	if err != nil {
		cs.log.Error("Failed to check customer type", zap.Error(err), zap.Int64("customer_type_id", req.CustomerTypeID))
		return fmt.Errorf("failed to check customer type")
	}
	if customerType == nil {
		return fmt.Errorf("customer type not found")
	}

	priceType, err := cs.repo.PriceType.FindByID(ctx, req.PriceTypeID, false)
	if err != nil {
		cs.log.Error("Failed to check price type", zap.Error(err), zap.Int64("price_type_id", req.PriceTypeID))
		return fmt.Errorf("failed to check price type")
	}
	if priceType == nil {
		return fmt.Errorf("price type not found")
	}

	paymentType, err := cs.repo.PaymentType.FindByID(ctx, req.PaymentTypeID, false)
	if err != nil {
		cs.log.Error("Failed to check payment type", zap.Error(err), zap.Int64("payment_type_id", req.PaymentTypeID))
		return fmt.Errorf("failed to check payment type")
	}
	if paymentType == nil {
		return fmt.Errorf("payment type not found")
	}

	return nil
}
