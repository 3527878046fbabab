package customer

import (
	"context"

	"adminboard/internal/domain"
)

type CreateInput struct {
	FullName string
	Email    string
	Phone    string
	Address  string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Update(ctx context.Context, id string, in CreateInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
