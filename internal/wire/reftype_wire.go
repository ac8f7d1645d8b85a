package wire

import (
	"github.com/ytanya/FreshNoodle/internal/adaptor"
	"github.com/ytanya/FreshNoodle/pkg/middleware"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireRefType configures the lookup-table routes: price types, payment
// types and customer types. All admin-only.
func wireRefType(
	r chi.Router,
	refTypeHandler *adaptor.RefTypeHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthJWT(config.JWT, log),
		middleware.RequireRole(log, "Admin"),
	).Route("/api/admin", func(r chi.Router) {
		r.Get("/price-types", refTypeHandler.GetPriceTypes)
		r.Post("/price-types", refTypeHandler.CreatePriceType)
		r.Put("/price-types/{id}", refTypeHandler.UpdatePriceType)

		r.Get("/payment-types", refTypeHandler.GetPaymentTypes)
		r.Post("/payment-types", refTypeHandler.CreatePaymentType)
		r.Put("/payment-types/{id}", refTypeHandler.UpdatePaymentType)

		r.Get("/customer-types", refTypeHandler.GetCustomerTypes)
		r.Post("/customer-types", refTypeHandler.CreateCustomerType)
		r.Put("/customer-types/{id}", refTypeHandler.UpdateCustomerType)
	})
}
