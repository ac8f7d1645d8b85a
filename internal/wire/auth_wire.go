package wire

import (
	"github.com/ytanya/FreshNoodle/internal/adaptor"
	"github.com/ytanya/FreshNoodle/pkg/middleware"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/verify-code", authHandler.VerifyCode)
	r.Post("/api/auth/reset-password-with-code", authHandler.ResetPasswordWithCode)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthJWT(config.JWT, log)).Post("/api/auth/logout", authHandler.Logout)
}
