package order

import (
	"context"
	"fmt"
	"strings"

	"adminboard/internal/domain"
	engine "adminboard/internal/order"
	orderrepo "adminboard/internal/repository/order"
	productrepo "adminboard/internal/repository/product"
)

type Service struct {
	repo        orderRepo
	productRepo productLister
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CommitInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id string, in orderrepo.CommitInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type productLister interface {
	List(ctx context.Context, f productrepo.Filter) ([]domain.Product, error)
}

func New(repo orderrepo.Repository, productRepo productrepo.Repository) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

type ItemInput struct {
	ID             string  `json:"id"`
	ProductID      string  `json:"productId"`
	ProductName    string  `json:"productName"`
	Quantity       float64 `json:"quantity"`
	UnitPriceCents int64   `json:"unitPriceCents"`
}

type CommitInput struct {
	CustomerID string             `json:"customerId"`
	EmployeeID string             `json:"employeeId"`
	Status     domain.OrderStatus `json:"status"`
	Items      []ItemInput        `json:"items"`
}

// toDraft normalizes the submitted items through the engine rules: quantity
// gets the unconditional floor, a negative price falls back to zero.
func toDraft(in CommitInput) domain.Order {
	draft := domain.Order{
		CustomerID: strings.TrimSpace(in.CustomerID),
		EmployeeID: strings.TrimSpace(in.EmployeeID),
		Status:     in.Status,
	}
	for _, item := range in.Items {
		li := domain.LineItem{
			ID:          item.ID,
			ProductName: item.ProductName,
		}
		if pid := strings.TrimSpace(item.ProductID); pid != "" {
			li.ProductID = &pid
		}
		engine.SetQuantity(&li, item.Quantity)
		engine.SetUnitPrice(&li, item.UnitPriceCents)
		draft.Items = append(draft.Items, li)
	}
	return draft
}

func toRepoInput(draft domain.Order) orderrepo.CommitInput {
	out := orderrepo.CommitInput{
		CustomerID: draft.CustomerID,
		EmployeeID: draft.EmployeeID,
		Status:     draft.Status,
	}
	for _, li := range draft.Items {
		out.Items = append(out.Items, orderrepo.ItemInput{
			ID:             li.ID,
			ProductID:      *li.ProductID,
			ProductName:    li.ProductName,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents,
		})
	}
	return out
}

// Create validates the draft and commits it. A new order always starts
// pending regardless of the submitted status; the stored total is derived
// from the items, never taken from the client.
func (s *Service) Create(ctx context.Context, in CommitInput) (*domain.Order, error) {
	draft := toDraft(in)
	if err := engine.ValidateForCommit(&draft); err != nil {
		return nil, err
	}
	draft.Status = domain.OrderPending
	return s.repo.Create(ctx, toRepoInput(draft))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// Update validates the draft and, when the status changes, checks the move
// against the order lifecycle before committing.
func (s *Service) Update(ctx context.Context, id string, in CommitInput) (*domain.Order, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := toDraft(in)
	if err := engine.ValidateForCommit(&draft); err != nil {
		return nil, err
	}

	draft.Status = existing.Status
	if in.Status != "" && in.Status != existing.Status {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
		}
		if !existing.Status.CanTransitionTo(in.Status) {
			return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, existing.Status, in.Status)
		}
		draft.Status = in.Status
	}

	return s.repo.Update(ctx, id, toRepoInput(draft))
}

// Delete is a pass-through: the store enforces the business rule and the
// service only distinguishes success from failure.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Preview holds the result of running the engine over a draft without
// committing it: clamped items, the derived total, and what is still
// missing for a commit.
type Preview struct {
	Items      []domain.LineItem `json:"items"`
	TotalCents int64             `json:"totalCents"`
	Valid      bool              `json:"valid"`
	Missing    []string          `json:"missing,omitempty"`
}

// Preview applies the full edit rule set against the current catalog
// snapshot: quantity floor, advisory stock ceiling, total computation, and
// commit validation. Nothing is persisted.
func (s *Service) Preview(ctx context.Context, in CommitInput) (*Preview, error) {
	products, err := s.productRepo.List(ctx, productrepo.Filter{})
	if err != nil {
		return nil, err
	}
	catalog := engine.NewCatalog(products)

	draft := toDraft(in)
	for i := range draft.Items {
		catalog.ClampToStock(&draft.Items[i])
	}

	out := &Preview{
		Items:      draft.Items,
		TotalCents: engine.ComputeTotal(&draft),
		Valid:      true,
	}
	if err := engine.ValidateForCommit(&draft); err != nil {
		verr, ok := err.(*domain.ValidationError)
		if !ok {
			return nil, err
		}
		out.Valid = false
		out.Missing = verr.Missing
	}
	return out, nil
}
