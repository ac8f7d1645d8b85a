package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ytanya/FreshNoodle/internal/data/entity"
	"github.com/ytanya/FreshNoodle/internal/data/repository"
	"github.com/ytanya/FreshNoodle/internal/dto/request"
	"github.com/ytanya/FreshNoodle/internal/dto/response"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID int64, req *request.ProductRequest) error
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		log:         log,
	}
}

func (ps *productService) GetAllProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := ps.productRepo.FindAll(ctx, true)
	if err != nil {
		ps.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("failed to get products")
	}

	responses := make([]response.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = response.ProductToResponse(p)
	}

	return responses, nil
}

func (ps *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product := &entity.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
		IsActive:    true,
	}
	if err := ps.productRepo.Create(ctx, product); err != nil {
		ps.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	ps.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (ps *productService) UpdateProduct(ctx context.Context, productID int64, req *request.ProductRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product, err := ps.productRepo.FindByID(ctx, productID, true)
	if err != nil {
		ps.log.Error("Failed to find product", zap.Error(err), zap.Int64("product_id", productID))
		return fmt.Errorf("failed to update product")
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Description = req.Description
	product.IsActive = req.IsActive

	if err := ps.productRepo.Update(ctx, product); err != nil {
		ps.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", productID))
		return fmt.Errorf("failed to update product")
	}

	ps.log.Info("Product updated", zap.Int64("product_id", productID))
	return nil
}
