package adaptor

import (
	"net/http"

	"github.com/ytanya/FreshNoodle/internal/usecase"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

// GetStats handles GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.log.Error("Failed to get dashboard stats", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Dashboard stats retrieved successfully", stats)
}

// GetFinancialStats handles GET /api/dashboard/financial
func (h *DashboardHandler) GetFinancialStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetFinancialStats(r.Context())
	if err != nil {
		h.log.Error("Failed to get financial stats", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Financial stats retrieved successfully", stats)
}

// GetOperationsStats handles GET /api/dashboard/operations
func (h *DashboardHandler) GetOperationsStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetOperationsStats(r.Context())
	if err != nil {
		h.log.Error("Failed to get operations stats", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Operations stats retrieved successfully", stats)
}
