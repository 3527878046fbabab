package stats

import (
	"context"

	"adminboard/internal/domain"
)

// Summary holds the aggregates the dashboard landing page displays.
type Summary struct {
	CustomerCount int `json:"customerCount"`
	EmployeeCount int `json:"employeeCount"`
	ProductCount  int `json:"productCount"`
	OrderCount    int `json:"orderCount"`

	// SalesTotalCents sums the totals of completed orders.
	SalesTotalCents int64 `json:"salesTotalCents"`

	OrdersByStatus map[domain.OrderStatus]int `json:"ordersByStatus"`

	InStock     int `json:"inStock"`
	OutOfStock  int `json:"outOfStock"`
	Unavailable int `json:"unavailable"`
}

// TopCustomer pairs a customer with the purchase metrics shown next to them.
type TopCustomer struct {
	CustomerID    string `json:"customerId"`
	FullName      string `json:"fullName"`
	PurchaseCount int    `json:"purchaseCount"`
	SpentCents    int64  `json:"spentCents"`
}

type Repository interface {
	Summary(ctx context.Context) (*Summary, error)
	TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error)
}
