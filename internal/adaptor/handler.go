package adaptor

import (
	"net/http"
	"strconv"

	"github.com/ytanya/FreshNoodle/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Customer  *CustomerHandler
	Product   *ProductHandler
	RefType   *RefTypeHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, service.Auth, log),
		Customer:  NewCustomerHandler(service.Customer, log),
		Product:   NewProductHandler(service.Product, log),
		RefType:   NewRefTypeHandler(service.RefType, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}

// parseIDParam reads a numeric URL parameter like /users/{id}
func parseIDParam(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}
