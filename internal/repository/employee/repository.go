package employee

import (
	"context"

	"adminboard/internal/domain"
)

type CreateInput struct {
	FullName string
	Email    string
	Phone    string
	Position string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, search string) ([]domain.Employee, error)
	Update(ctx context.Context, id string, in CreateInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
