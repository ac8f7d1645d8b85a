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

// RefTypeService manages the lookup tables customers reference: price
// types, payment types and customer types.
type RefTypeService interface {
	GetPriceTypes(ctx context.Context) ([]response.PriceTypeResponse, error)
	CreatePriceType(ctx context.Context, req *request.PriceTypeRequest) (*response.PriceTypeResponse, error)
	UpdatePriceType(ctx context.Context, id int64, req *request.PriceTypeRequest) error

	GetPaymentTypes(ctx context.Context) ([]response.PaymentTypeResponse, error)
	CreatePaymentType(ctx context.Context, req *request.PaymentTypeRequest) (*response.PaymentTypeResponse, error)
	UpdatePaymentType(ctx context.Context, id int64, req *request.PaymentTypeRequest) error

	GetCustomerTypes(ctx context.Context) ([]response.CustomerTypeResponse, error)
	CreateCustomerType(ctx context.Context, req *request.CustomerTypeRequest) (*response.CustomerTypeResponse, error)
	UpdateCustomerType(ctx context.Context, id int64, req *request.CustomerTypeRequest) error
}

type refTypeService struct {
	priceTypeRepo    repository.PriceTypeRepository
	paymentTypeRepo  repository.PaymentTypeRepository
	customerTypeRepo repository.CustomerTypeRepository
	log              *zap.Logger
}

func NewRefTypeService(
	priceTypeRepo repository.PriceTypeRepository,
	paymentTypeRepo repository.PaymentTypeRepository,
	customerTypeRepo repository.CustomerTypeRepository,
	log *zap.Logger,
) RefTypeService {
	return &refTypeService{
		priceTypeRepo:    priceTypeRepo,
		paymentTypeRepo:  paymentTypeRepo,
		customerTypeRepo: customerTypeRepo,
		log:              log,
	}
}

// ---------------- price types ----------------

func (rs *refTypeService) GetPriceTypes(ctx context.Context) ([]response.PriceTypeResponse, error) {
	priceTypes, err := rs.priceTypeRepo.FindAll(ctx, true)
	if err != nil {
		rs.log.Error("Failed to get price types", zap.Error(err))
		return nil, fmt.Errorf("failed to get price types")
	}

	responses := make([]response.PriceTypeResponse, len(priceTypes))
	for i, pt := range priceTypes {
		responses[i] = response.PriceTypeToResponse(pt)
	}

	return responses, nil
}

func (rs *refTypeService) CreatePriceType(ctx context.Context, req *request.PriceTypeRequest) (*response.PriceTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	priceType := &entity.PriceType{
		Name:              req.Name,
		DefaultPricePerKg: req.DefaultPricePerKg,
		IsActive:          true,
	}
	if err := rs.priceTypeRepo.Create(ctx, priceType); err != nil {
		rs.log.Error("Failed to create price type", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create price type")
	}

	rs.log.Info("Price type created", zap.Int64("price_type_id", priceType.ID))

	resp := response.PriceTypeToResponse(priceType)
	return &resp, nil
}

func (rs *refTypeService) UpdatePriceType(ctx context.Context, id int64, req *request.PriceTypeRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	priceType, err := rs.priceTypeRepo.FindByID(ctx, id, true)
	if err != nil {
		rs.log.Error("Failed to find price type", zap.Error(err), zap.Int64("price_type_id", id))
		return fmt.Errorf("failed to update price type")
	}
	if priceType == nil {
		return fmt.Errorf("price type not found")
	}

	priceType.Name = req.Name
	priceType.DefaultPricePerKg = req.DefaultPricePerKg
	priceType.IsActive = req.IsActive

	if err := rs.priceTypeRepo.Update(ctx, priceType); err != nil {
		rs.log.Error("Failed to update price type", zap.Error(err), zap.Int64("price_type_id", id))
		return fmt.Errorf("failed to update price type")
	}

	rs.log.Info("Price type updated", zap.Int64("price_type_id", id))
	return nil
}

// ---------------- payment types ----------------

func (rs *refTypeService) GetPaymentTypes(ctx context.Context) ([]response.PaymentTypeResponse, error) {
	paymentTypes, err := rs.paymentTypeRepo.FindAll(ctx, true)
	if err != nil {
		rs.log.Error("Failed to get payment types", zap.Error(err))
		return nil, fmt.Errorf("failed to get payment types")
	}

	responses := make([]response.PaymentTypeResponse, len(paymentTypes))
	for i, pt := range paymentTypes {
		responses[i] = response.PaymentTypeToResponse(pt)
	}

	return responses, nil
}

func (rs *refTypeService) CreatePaymentType(ctx context.Context, req *request.PaymentTypeRequest) (*response.PaymentTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	paymentType := &entity.PaymentType{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := rs.paymentTypeRepo.Create(ctx, paymentType); err != nil {
		rs.log.Error("Failed to create payment type", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create payment type")
	}

	rs.log.Info("Payment type created", zap.Int64("payment_type_id", paymentType.ID))

	resp := response.PaymentTypeToResponse(paymentType)
	return &resp, nil
}

func (rs *refTypeService) UpdatePaymentType(ctx context.Context, id int64, req *request.PaymentTypeRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	paymentType, err := rs.paymentTypeRepo.FindByID(ctx, id, true)
	if err != nil {
		rs.log.Error("Failed to find payment type", zap.Error(err), zap.Int64("payment_type_id", id))
		return fmt.Errorf("failed to update payment type")
	}
	if paymentType == nil {
		return fmt.Errorf("payment type not found")
	}

	paymentType.Name = req.Name
	paymentType.Description = req.Description
	paymentType.IsActive = req.IsActive

	if err := rs.paymentTypeRepo.Update(ctx, paymentType); err != nil {
		rs.log.Error("Failed to update payment type", zap.Error(err), zap.Int64("payment_type_id", id))
		return fmt.Errorf("failed to update payment type")
	}

	rs.log.Info("Payment type updated", zap.Int64("payment_type_id", id))
	return nil
}

// ---------------- customer types ----------------

func (rs *refTypeService) GetCustomerTypes(ctx context.Context) ([]response.CustomerTypeResponse, error) {
	customerTypes, err := rs.customerTypeRepo.FindAll(ctx, true)
	if err != nil {
		rs.log.Error("Failed to get customer types", zap.Error(err))
		return nil, fmt.Errorf("failed to get customer types")
	}

	responses := make([]response.CustomerTypeResponse, len(customerTypes))
	for i, ct := range customerTypes {
		responses[i] = response.CustomerTypeToResponse(ct)
	}

	return responses, nil
}

func (rs *refTypeService) CreateCustomerType(ctx context.Context, req *request.CustomerTypeRequest) (*response.CustomerTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerType := &entity.CustomerType{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := rs.customerTypeRepo.Create(ctx, customerType); err != nil {
		rs.log.Error("Failed to create customer type", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create customer type")
	}

	rs.log.Info("Customer type created", zap.Int64("customer_type_id", customerType.ID))

	resp := response.CustomerTypeToResponse(customerType)
	return &resp, nil
}

func (rs *refTypeService) UpdateCustomerType(ctx context.Context, id int64, req *request.CustomerTypeRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerType, err := rs.customerTypeRepo.FindByID(ctx, id, true)
	if err != nil {
		rs.log.Error("Failed to find customer type", zap.Error(err), zap.Int64("customer_type_id", id))
		return fmt.Errorf("failed to update customer type")
	}
	if customerType == nil {
		return fmt.Errorf("customer type not found")
	}

	customerType.Name = req.Name
	customerType.Description = req.Description
	customerType.IsActive = req.IsActive

	if err := rs.customerTypeRepo.Update(ctx, customerType); err != nil {
		rs.log.Error("Failed to update customer type", zap.Error(err), zap.Int64("customer_type_id", id))
		return fmt.Errorf("failed to update customer type")
	}

	rs.log.Info("Customer type updated", zap.Int64("customer_type_id", id))
	return nil
}
