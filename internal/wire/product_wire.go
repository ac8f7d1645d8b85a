package wire

import (
	"github.com/ytanya/FreshNoodle/internal/adaptor"
	"github.com/ytanya/FreshNoodle/pkg/middleware"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Product administration - requires authentication AND the Admin role
	r.With(
		middleware.AuthJWT(config.JWT, log),
		middleware.RequireRole(log, "Admin"),
	).Route("/api/admin/products", func(r chi.Router) {
		r.Get("/", productHandler.GetAllProducts)
		r.Post("/", productHandler.CreateProduct)
		r.Put("/{id}", productHandler.UpdateProduct)
	})
}
