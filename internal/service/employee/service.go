package employee

import (
	"context"
	"fmt"
	"strings"

	"adminboard/internal/domain"
	employeerepo "adminboard/internal/repository/employee"
)

type Service struct {
	repo employeeRepo
}

type employeeRepo interface {
	Create(ctx context.Context, in employeerepo.CreateInput) (*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, search string) ([]domain.Employee, error)
	Update(ctx context.Context, id string, in employeerepo.CreateInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

func New(repo employeerepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
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

func (in Input) toRepo() employeerepo.CreateInput {
	return employeerepo.CreateInput{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Position: strings.TrimSpace(in.Position),
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Employee, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in.toRepo())
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string) ([]domain.Employee, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Employee, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in.toRepo())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
