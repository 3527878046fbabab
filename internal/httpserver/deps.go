package httpserver

import (
	"context"

	"adminboard/internal/domain"
	statsrepo "adminboard/internal/repository/stats"
	customersvc "adminboard/internal/service/customer"
	employeesvc "adminboard/internal/service/employee"
	ordersvc "adminboard/internal/service/order"
	productsvc "adminboard/internal/service/product"

	"adminboard/internal/metrics"
)

// Service contracts consumed by the handlers; satisfied by the concrete
// services and by stubs in tests.

type CustomerService interface {
	Create(ctx context.Context, in customersvc.Input) (*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Update(ctx context.Context, id string, in customersvc.Input) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeService interface {
	Create(ctx context.Context, in employeesvc.Input) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, search string) ([]domain.Employee, error)
	Update(ctx context.Context, id string, in employeesvc.Input) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

type ProductService interface {
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, search string, category domain.ProductCategory) ([]domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderService interface {
	Create(ctx context.Context, in ordersvc.CommitInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id string, in ordersvc.CommitInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	Preview(ctx context.Context, in ordersvc.CommitInput) (*ordersvc.Preview, error)
}

type StatsRepository interface {
	Summary(ctx context.Context) (*statsrepo.Summary, error)
	TopCustomers(ctx context.Context, limit int) ([]statsrepo.TopCustomer, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	CustomerSvc CustomerService
	EmployeeSvc EmployeeService
	ProductSvc  ProductService
	OrderSvc    OrderService
	StatsRepo   StatsRepository
	Metrics     *metrics.ServerMetrics
}
