package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderCompleted, OrderCancelled},
}

// CanTransitionTo reports whether the status lifecycle allows moving to next.
// completed and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// LineItem is one product-and-quantity entry within an order. ProductID is
// nil only transiently while the row is unselected; such rows contribute
// zero to the total and are rejected at commit.
type LineItem struct {
	ID             string    `json:"id"`
	ProductID      *string   `json:"productId"`
	ProductName    string    `json:"productName,omitempty"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	TotalCents     int64     `json:"totalCents"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// Order owns its line items exclusively; TotalCents is derived, never
// independently authored.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	EmployeeID string      `json:"employeeId"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"totalCents"`
	Items      []LineItem  `json:"items"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}
