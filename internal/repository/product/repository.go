package product

import (
	"context"

	"adminboard/internal/domain"
)

type CreateInput struct {
	Name        string
	Description string
	Category    domain.ProductCategory
	PriceCents  int64
	Stock       int
	Status      domain.ProductStatus
	Attributes  domain.VariantAttributes
}

type Filter struct {
	Search   string
	Category domain.ProductCategory
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, f Filter) ([]domain.Product, error)
	Update(ctx context.Context, id string, in CreateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
