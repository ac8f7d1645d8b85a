package response

type DashboardStatsResponse struct {
	ActiveCustomerCount          int64 `json:"active_customer_count"`
	ActiveUserCount              int64 `json:"active_user_count"`
	IsTodayClosed                bool  `json:"is_today_closed"`
	InactivePaymentTypeCount     int64 `json:"inactive_payment_type_count"`
	CustomersOnInactivePriceType int64 `json:"customers_on_inactive_price_type"`
}

type RevenuePoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type FinancialStatsResponse struct {
	ExpectedRevenue     float64        `json:"expected_revenue"`
	ActualCollected     float64        `json:"actual_collected"`
	OutstandingBalance  float64        `json:"outstanding_balance"`
	OverdueRevenue      float64        `json:"overdue_revenue"`
	UnpaidCustomers     int            `json:"unpaid_customers"`
	RevenueHistory      []RevenuePoint `json:"revenue_history"`
	TodayRevenueHistory []RevenuePoint `json:"today_revenue_history"`
}

type CustomerDelivery struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status"` // Pending, Delivered, Skipped
	Priority     *int   `json:"priority,omitempty"`
}

type OperationsStatsResponse struct {
	TotalProduced  int                `json:"total_produced"`
	RetailReserved int                `json:"retail_reserved"`
	Deliveries     []CustomerDelivery `json:"deliveries"`
}
