package wire

import (
	"github.com/ytanya/FreshNoodle/internal/adaptor"
	"github.com/ytanya/FreshNoodle/pkg/middleware"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Customer administration - requires authentication AND the Admin role
	r.With(
		middleware.AuthJWT(config.JWT, log),
		middleware.RequireRole(log, "Admin"),
	).Route("/api/admin/customers", func(r chi.Router) {
		r.Get("/", customerHandler.GetAllCustomers)
		r.Post("/", customerHandler.CreateCustomer)
		r.Put("/{id}", customerHandler.UpdateCustomer)
	})
}
