package wire

import (
	"github.com/ytanya/FreshNoodle/internal/adaptor"
	"github.com/ytanya/FreshNoodle/pkg/middleware"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED USER ROUTES ====================
	// User profile - requires authentication
	r.With(middleware.AuthJWT(config.JWT, log)).Get("/api/user/profile", userHandler.GetProfile)

	// ==================== ADMIN ROUTES ====================
	// User administration - requires authentication AND the Admin role
	r.With(
		middleware.AuthJWT(config.JWT, log),
		middleware.RequireRole(log, "Admin"),
	).Route("/api/admin", func(r chi.Router) {
		r.Get("/users", userHandler.GetAllUsers)
		r.Post("/users", userHandler.CreateUser)
		r.Put("/users/{id}", userHandler.UpdateUser)
		r.Put("/users/{id}/roles", userHandler.UpdateUserRoles)
		r.Post("/users/{id}/reset-password", userHandler.ResetPassword)
		r.Get("/roles", userHandler.GetRoles)
	})
}
