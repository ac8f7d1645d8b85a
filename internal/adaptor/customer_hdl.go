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

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// GetAllCustomers handles GET /api/admin/customers (admin only)
func (h *CustomerHandler) GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.GetAllCustomers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get customers")
		return
	}

	utils.ResponseSuccess(w, "Customers retrieved successfully", customers)
}

// CreateCustomer handles POST /api/admin/customers (admin only)
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.CustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create customer")
		return
	}

	utils.ResponseCreated(w, "Customer created successfully", customer)
}

// UpdateCustomer handles PUT /api/admin/customers/{id} (admin only)
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid customer ID", nil)
		return
	}

	var req request.CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateCustomer(r.Context(), customerID, &req); err != nil {
		h.handleServiceError(w, err, "update customer")
		return
	}

	utils.ResponseSuccess(w, "Customer updated successfully", nil)
}

func (h *CustomerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
