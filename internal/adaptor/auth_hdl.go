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

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	// Decode request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.handleServiceError(w, err, "request password reset")
		return
	}

	// Same answer whether or not the account exists
	utils.ResponseSuccess(w, "If the email is registered, a verification code has been sent.", nil)
}

// VerifyCode handles POST /api/auth/verify-code
func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	valid, err := h.service.VerifyResetCode(r.Context(), req.Email, req.Code)
	if err != nil {
		h.handleServiceError(w, err, "verify reset code")
		return
	}

	if !valid {
		utils.ResponseBadRequest(w, "invalid or expired verification code", nil)
		return
	}

	utils.ResponseSuccess(w, "Verification code is valid", nil)
}

// ResetPasswordWithCode handles POST /api/auth/reset-password-with-code
func (h *AuthHandler) ResetPasswordWithCode(w http.ResponseWriter, r *http.Request) {
	var req request.CompleteResetRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.CompletePasswordReset(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "complete password reset")
		return
	}

	utils.ResponseSuccess(w, "Password has been reset successfully", nil)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.handleServiceError(w, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// handleServiceError handles different types of errors
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "invalid username or password"):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	case strings.Contains(errMsg, "Password must"):
		h.log.Warn(operation+" failed - weak password", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	case strings.Contains(errMsg, "cannot assign inactive roles"):
		h.log.Warn(operation+" failed - inactive roles", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	case strings.Contains(errMsg, "invalid or expired"):
		h.log.Warn(operation+" failed - invalid code", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
