package customer

import (
	"context"
	"fmt"
	"strings"

	"adminboard/internal/domain"
	customerrepo "adminboard/internal/repository/customer"
)

type Service struct {
	repo customerRepo
}

type customerRepo interface {
	Create(ctx context.Context, in customerrepo.CreateInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Update(ctx context.Context, id string, in customerrepo.CreateInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

func New(repo customerrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("%w: full name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email required", domain.ErrInvalidInput)
	}
	return nil
}

func (in Input) toRepo() customerrepo.CreateInput {
	return customerrepo.CreateInput{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Customer, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in.toRepo())
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string) ([]domain.Customer, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Customer, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in.toRepo())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
