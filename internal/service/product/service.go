package product

import (
	"context"
	"fmt"
	"strings"

	"adminboard/internal/domain"
	productrepo "adminboard/internal/repository/product"
)

type Service struct {
	repo productRepo
}

type productRepo interface {
	Create(ctx context.Context, in productrepo.CreateInput) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, f productrepo.Filter) ([]domain.Product, error)
	Update(ctx context.Context, id string, in productrepo.CreateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Category    domain.ProductCategory   `json:"category"`
	PriceCents  int64                    `json:"priceCents"`
	Stock       int                      `json:"stock"`
	Status      domain.ProductStatus     `json:"status"`
	Attributes  domain.VariantAttributes `json:"attributes"`
}

func (in *Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, in.Category)
	}
	if in.PriceCents < 0 {
		return fmt.Errorf("%w: price must be non-negative", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock must be non-negative", domain.ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = domain.ProductAvailable
	}
	if in.Status != domain.ProductAvailable && in.Status != domain.ProductUnavailable {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}
	if err := in.Attributes.ValidateFor(in.Category); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return nil
}

func (in Input) toRepo() productrepo.CreateInput {
	return productrepo.CreateInput{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Status:      in.Status,
		Attributes:  in.Attributes,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in.toRepo())
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string, category domain.ProductCategory) ([]domain.Product, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}
	return s.repo.List(ctx, productrepo.Filter{
		Search:   strings.TrimSpace(search),
		Category: category,
	})
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in.toRepo())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
