package wire

import (
	"github.com/ytanya/FreshNoodle/internal/adaptor"
	"github.com/ytanya/FreshNoodle/pkg/middleware"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Dashboard - Accounting sees the numbers too, not just Admin
	r.With(
		middleware.AuthJWT(config.JWT, log),
		middleware.RequireRole(log, "Admin", "Accounting"),
	).Route("/api/dashboard", func(r chi.Router) {
		r.Get("/stats", dashboardHandler.GetStats)
		r.Get("/financial", dashboardHandler.GetFinancialStats)
		r.Get("/operations", dashboardHandler.GetOperationsStats)
	})
}
