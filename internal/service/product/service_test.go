package product

import (
	"context"
	"errors"
	"strings"
	"testing"

	"adminboard/internal/domain"
	productrepo "adminboard/internal/repository/product"
)

type stubRepo struct {
	created    *domain.Product
	createErr  error
	lastCreate productrepo.CreateInput
	listResult []domain.Product
	lastFilter productrepo.Filter
}

func (s *stubRepo) Create(_ context.Context, in productrepo.CreateInput) (*domain.Product, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) List(_ context.Context, f productrepo.Filter) ([]domain.Product, error) {
	s.lastFilter = f
	return s.listResult, nil
}

func (s *stubRepo) Update(_ context.Context, _ string, in productrepo.CreateInput) (*domain.Product, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func iphoneInput() Input {
	return Input{
		Name:       "iPhone 15 Pro",
		Category:   domain.CategoryIPhone,
		PriceCents: 119900,
		Stock:      12,
		Attributes: domain.VariantAttributes{
			IPhone: &domain.IPhoneAttributes{Color: "Natural Titanium", StorageGB: 256},
		},
	}
}

func TestCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	in := iphoneInput()
	in.Name = "  "
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "name required") {
		t.Fatalf("expected name error, got %v", err)
	}

	in = iphoneInput()
	in.Category = "tablet"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected category error, got %v", err)
	}

	in = iphoneInput()
	in.PriceCents = -1
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "price") {
		t.Fatalf("expected price error, got %v", err)
	}

	in = iphoneInput()
	in.Stock = -1
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) || !strings.Contains(err.Error(), "stock") {
		t.Fatalf("expected stock error, got %v", err)
	}
}

func TestCreateVariantMustMatchCategory(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	in := iphoneInput()
	in.Attributes = domain.VariantAttributes{
		Charger: &domain.ChargerAttributes{Wattage: 20, FastCharging: true},
	}
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected variant mismatch error")
	}

	in = iphoneInput()
	in.Attributes.Charger = &domain.ChargerAttributes{Wattage: 20}
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected double variant error")
	}

	in = iphoneInput()
	in.Attributes = domain.VariantAttributes{}
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected missing variant error")
	}
}

func TestCreateDefaultsStatus(t *testing.T) {
	repo := &stubRepo{created: &domain.Product{ID: "p1"}}
	svc := &Service{repo: repo}
	if _, err := svc.Create(context.Background(), iphoneInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreate.Status != domain.ProductAvailable {
		t.Fatalf("expected status to default to available, got %s", repo.lastCreate.Status)
	}
}

func TestListRejectsUnknownCategory(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	if _, err := svc.List(context.Background(), "", "watch"); err == nil {
		t.Fatalf("expected category error")
	}
}

func TestListPassesFilter(t *testing.T) {
	repo := &stubRepo{listResult: []domain.Product{{ID: "p1"}}}
	svc := &Service{repo: repo}
	got, err := svc.List(context.Background(), "  cable ", domain.CategoryCable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
	if repo.lastFilter.Search != "cable" || repo.lastFilter.Category != domain.CategoryCable {
		t.Fatalf("unexpected filter: %+v", repo.lastFilter)
	}
}

func TestRepoErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	svc := &Service{repo: &stubRepo{createErr: boom}}
	if _, err := svc.Create(context.Background(), iphoneInput()); !errors.Is(err, boom) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
