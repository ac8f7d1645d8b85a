package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ytanya/FreshNoodle/internal/data/repository"
	"github.com/ytanya/FreshNoodle/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardStatsResponse, error)
	GetFinancialStats(ctx context.Context) (*response.FinancialStatsResponse, error)
	GetOperationsStats(ctx context.Context) (*response.OperationsStatsResponse, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	customerRepo  repository.CustomerRepository
	log           *zap.Logger
	now           func() time.Time
}

func NewDashboardService(dashboardRepo repository.DashboardRepository, customerRepo repository.CustomerRepository, log *zap.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		customerRepo:  customerRepo,
		log:           log,
		now:           time.Now,
	}
}

func (ds *dashboardService) GetStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	today := ds.now().UTC().Truncate(24 * time.Hour)

	counts, err := ds.dashboardRepo.Counts(ctx, today)
	if err != nil {
		ds.log.Error("Failed to load dashboard stats", zap.Error(err))
		return nil, fmt.Errorf("failed to get dashboard stats")
	}

	return &response.DashboardStatsResponse{
		ActiveCustomerCount:          counts.ActiveCustomers,
		ActiveUserCount:              counts.ActiveUsers,
		IsTodayClosed:                counts.IsTodayClosed,
		InactivePaymentTypeCount:     counts.InactivePaymentTypes,
		CustomersOnInactivePriceType: counts.CustomersOnInactivePriceType,
	}, nil
}

// GetFinancialStats serves placeholder figures until order and payment
// capture lands. TODO: replace with aggregates over the orders table once
// order entry ships.
func (ds *dashboardService) GetFinancialStats(ctx context.Context) (*response.FinancialStatsResponse, error) {
	today := ds.now().UTC()

	history := make([]response.RevenuePoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		history = append(history, response.RevenuePoint{
			Date:   day.Format("2006-01-02"),
			Amount: 1250.00,
		})
	}

	return &response.FinancialStatsResponse{
		ExpectedRevenue:    8750.00,
		ActualCollected:    6200.00,
		OutstandingBalance: 2550.00,
		OverdueRevenue:     430.00,
		UnpaidCustomers:    4,
		RevenueHistory:     history,
		TodayRevenueHistory: []response.RevenuePoint{
			{Date: today.Format("2006-01-02"), Amount: 1250.00},
		},
	}, nil
}

func (ds *dashboardService) GetOperationsStats(ctx context.Context) (*response.OperationsStatsResponse, error) {
	customers, err := ds.customerRepo.FindActiveByPriority(ctx, 10)
	if err != nil {
		ds.log.Error("Failed to load delivery queue", zap.Error(err))
		return nil, fmt.Errorf("failed to get operations stats")
	}

	deliveries := make([]response.CustomerDelivery, len(customers))
	for i, c := range customers {
		status := "Pending"
		switch {
		case c.SkipDay:
			status = "Skipped"
		case c.ID%3 == 0:
			status = "Delivered"
		}
		deliveries[i] = response.CustomerDelivery{
			CustomerID:   c.ID,
			CustomerName: c.Name,
			Status:       status,
			Priority:     c.PriorityOrder,
		}
	}

	return &response.OperationsStatsResponse{
		TotalProduced:  450,
		RetailReserved: 120,
		Deliveries:     deliveries,
	}, nil
}
