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

type UserHandler struct {
	service     usecase.UserService
	authService usecase.AuthService
	log         *zap.Logger
}

func NewUserHandler(service usecase.UserService, authService usecase.AuthService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:     service,
		authService: authService,
		log:         log,
	}
}

// GetProfile handles GET /api/user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	// Get user ID from context (set by auth middleware)
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// GetAllUsers handles GET /api/admin/users (admin only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// CreateUser handles POST /api/admin/users (admin only)
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.authService.CreateUser(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// UpdateUser handles PUT /api/admin/users/{id} (admin only)
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateUser(r.Context(), userID, &req); err != nil {
		h.handleServiceError(w, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", nil)
}

// UpdateUserRoles handles PUT /api/admin/users/{id}/roles (admin only)
func (h *UserHandler) UpdateUserRoles(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	var req request.UpdateUserRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateUserRoles(r.Context(), userID, req.RoleIDs); err != nil {
		h.handleServiceError(w, err, "update user roles")
		return
	}

	utils.ResponseSuccess(w, "User roles updated successfully", nil)
}

// ResetPassword handles POST /api/admin/users/{id}/reset-password (admin only)
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	var req request.AdminResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.authService.AdminResetPassword(r.Context(), userID, req.NewPassword); err != nil {
		h.handleServiceError(w, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", nil)
}

// GetRoles handles GET /api/admin/roles (admin only)
func (h *UserHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.GetRoles(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get roles")
		return
	}

	utils.ResponseSuccess(w, "Roles retrieved successfully", roles)
}

// handleServiceError handles errors for user operations
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already exists"),
		strings.Contains(errMsg, "cannot assign inactive roles"),
		strings.Contains(errMsg, "Password must"),
		strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
