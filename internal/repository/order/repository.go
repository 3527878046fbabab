package order

import (
	"context"

	"adminboard/internal/domain"
)

type ItemInput struct {
	ID             string
	ProductID      string
	ProductName    string
	Quantity       int
	UnitPriceCents int64
}

type CommitInput struct {
	CustomerID string
	EmployeeID string
	Status     domain.OrderStatus
	Items      []ItemInput
}

type Repository interface {
	Create(ctx context.Context, in CommitInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id string, in CommitInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
