package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ytanya/FreshNoodle/internal/dto/request"
	"github.com/ytanya/FreshNoodle/internal/usecase"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// GetAllProducts handles GET /api/admin/products (admin only)
func (h *ProductHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAllProducts(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// CreateProduct handles POST /api/admin/products (admin only)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", product)
}

// UpdateProduct handles PUT /api/admin/products/{id} (admin only)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateProduct(r.Context(), productID, &req); err != nil {
		h.handleServiceError(w, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", nil)
}

func (h *ProductHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
