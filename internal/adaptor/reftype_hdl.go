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

type RefTypeHandler struct {
	service usecase.RefTypeService
	log     *zap.Logger
}

func NewRefTypeHandler(service usecase.RefTypeService, log *zap.Logger) *RefTypeHandler {
	return &RefTypeHandler{
		service: service,
		log:     log,
	}
}

// ---------------- price types ----------------

// GetPriceTypes handles GET /api/admin/price-types (admin only)
func (h *RefTypeHandler) GetPriceTypes(w http.ResponseWriter, r *http.Request) {
	priceTypes, err := h.service.GetPriceTypes(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get price types")
		return
	}

	utils.ResponseSuccess(w, "Price types retrieved successfully", priceTypes)
}

// CreatePriceType handles POST /api/admin/price-types (admin only)
func (h *RefTypeHandler) CreatePriceType(w http.ResponseWriter, r *http.Request) {
	var req request.PriceTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	priceType, err := h.service.CreatePriceType(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create price type")
		return
	}

	utils.ResponseCreated(w, "Price type created successfully", priceType)
}

// UpdatePriceType handles PUT /api/admin/price-types/{id} (admin only)
func (h *RefTypeHandler) UpdatePriceType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid price type ID", nil)
		return
	}

	var req request.PriceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdatePriceType(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "update price type")
		return
	}

	utils.ResponseSuccess(w, "Price type updated successfully", nil)
}

// ---------------- payment types ----------------

// GetPaymentTypes handles GET /api/admin/payment-types (admin only)
func (h *RefTypeHandler) GetPaymentTypes(w http.ResponseWriter, r *http.Request) {
	paymentTypes, err := h.service.GetPaymentTypes(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get payment types")
		return
	}

	utils.ResponseSuccess(w, "Payment types retrieved successfully", paymentTypes)
}

// CreatePaymentType handles POST /api/admin/payment-types (admin only)
func (h *RefTypeHandler) CreatePaymentType(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	paymentType, err := h.service.CreatePaymentType(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create payment type")
		return
	}

	utils.ResponseCreated(w, "Payment type created successfully", paymentType)
}

// UpdatePaymentType handles PUT /api/admin/payment-types/{id} (admin only)
func (h *RefTypeHandler) UpdatePaymentType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid payment type ID", nil)
		return
	}

	var req request.PaymentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdatePaymentType(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "update payment type")
		return
	}

	utils.ResponseSuccess(w, "Payment type updated successfully", nil)
}

// ---------------- customer types ----------------

// GetCustomerTypes handles GET /api/admin/customer-types (admin only)
func (h *RefTypeHandler) GetCustomerTypes(w http.ResponseWriter, r *http.Request) {
	customerTypes, err := h.service.GetCustomerTypes(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get customer types")
		return
	}

	utils.ResponseSuccess(w, "Customer types retrieved successfully", customerTypes)
}

// CreateCustomerType handles POST /api/admin/customer-types (admin only)
func (h *RefTypeHandler) CreateCustomerType(w http.ResponseWriter, r *http.Request) {
	var req request.CustomerTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	customerType, err := h.service.CreateCustomerType(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create customer type")
		return
	}

	utils.ResponseCreated(w, "Customer type created successfully", customerType)
}

// UpdateCustomerType handles PUT /api/admin/customer-types/{id} (admin only)
func (h *RefTypeHandler) UpdateCustomerType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid customer type ID", nil)
		return
	}

	var req request.CustomerTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateCustomerType(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "update customer type")
		return
	}

	utils.ResponseSuccess(w, "Customer type updated successfully", nil)
}

func (h *RefTypeHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
