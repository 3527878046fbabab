package employee

import (
	"context"
	"errors"
	"strings"
	"testing"

	"adminboard/internal/domain"
	employeerepo "adminboard/internal/repository/employee"
)

type stubRepo struct {
	created    *domain.Employee
	createErr  error
	lastCreate employeerepo.CreateInput
	getResult  *domain.Employee
	getErr     error
	lastSearch string
	deleteErr  error
}

func (s *stubRepo) Create(_ context.Context, in employeerepo.CreateInput) (*domain.Employee, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Employee, error) {
	return s.getResult, s.getErr
}

func (s *stubRepo) List(_ context.Context, search string) ([]domain.Employee, error) {
	s.lastSearch = search
	return nil, nil
}

func (s *stubRepo) Update(_ context.Context, _ string, in employeerepo.CreateInput) (*domain.Employee, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func TestCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	_, err := svc.Create(context.Background(), Input{Email: "a@b.c"})
	if !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "full name required") {
		t.Fatalf("expected name error, got %v", err)
	}

	_, err = svc.Create(context.Background(), Input{FullName: "Dana"})
	if !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "email required") {
		t.Fatalf("expected email error, got %v", err)
	}
}

func TestCreateTrimsInput(t *testing.T) {
	repo := &stubRepo{created: &domain.Employee{ID: "e1"}}
	svc := &Service{repo: repo}
	_, err := svc.Create(context.Background(), Input{FullName: " Dana Flores ", Email: " dana@shop.io ", Position: " sales "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreate.FullName != "Dana Flores" || repo.lastCreate.Email != "dana@shop.io" || repo.lastCreate.Position != "sales" {
		t.Fatalf("input not trimmed: %+v", repo.lastCreate)
	}
}

func TestListTrimsSearch(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	if _, err := svc.List(context.Background(), "  dana "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastSearch != "dana" {
		t.Fatalf("search not trimmed: %q", repo.lastSearch)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := &Service{repo: &stubRepo{getErr: domain.ErrNotFound}}
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
