package usecase

import (
	"github.com/ytanya/FreshNoodle/internal/data/repository"
	"github.com/ytanya/FreshNoodle/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Customer  CustomerService
	Product   ProductService
	RefType   RefTypeService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo.User, repo.Role, log),
		Customer:  NewCustomerService(repo, log),
		Product:   NewProductService(repo.Product, log),
		RefType:   NewRefTypeService(repo.PriceType, repo.PaymentType, repo.CustomerType, log),
		Dashboard: NewDashboardService(repo.Dashboard, repo.Customer, log),
	}
}
