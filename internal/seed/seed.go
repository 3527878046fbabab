package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"adminboard/internal/domain"
	productrepo "adminboard/internal/repository/product"
)

type personSeed struct {
	FullName string
	Email    string
	Phone    string
	Extra    string
}

// Apply inserts sample data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []domain.Product{
		{
			Name:        "iPhone 15 Pro",
			Description: "Flagship phone, titanium body",
			Category:    domain.CategoryIPhone,
			PriceCents:  99900,
			Stock:       12,
			Status:      domain.ProductAvailable,
			Attributes:  domain.VariantAttributes{IPhone: &domain.IPhoneAttributes{Color: "natural titanium", StorageGB: 256}},
		},
		{
			Name:        "iPhone SE",
			Description: "Compact entry model",
			Category:    domain.CategoryIPhone,
			PriceCents:  42900,
			Stock:       0,
			Status:      domain.ProductAvailable,
			Attributes:  domain.VariantAttributes{IPhone: &domain.IPhoneAttributes{Color: "midnight", StorageGB: 64}},
		},
		{
			Name:        "20W USB-C Charger",
			Description: "Wall adapter",
			Category:    domain.CategoryCharger,
			PriceCents:  1900,
			Stock:       80,
			Status:      domain.ProductAvailable,
			Attributes:  domain.VariantAttributes{Charger: &domain.ChargerAttributes{Wattage: 20, FastCharging: true}},
		},
		{
			Name:        "USB-C to Lightning Cable",
			Description: "1m woven cable",
			Category:    domain.CategoryCable,
			PriceCents:  1500,
			Stock:       3,
			Status:      domain.ProductAvailable,
			Attributes:  domain.VariantAttributes{Cable: &domain.CableAttributes{CableType: "usb-c to lightning", LengthCM: 100}},
		},
		{
			Name:        "AirPods Pro 2",
			Description: "Noise cancelling earbuds",
			Category:    domain.CategoryAirPod,
			PriceCents:  24900,
			Stock:       25,
			Status:      domain.ProductAvailable,
			Attributes:  domain.VariantAttributes{AirPod: &domain.AirPodAttributes{Generation: 2, CaseType: "magsafe"}},
		},
		{
			Name:        "AirPods Max",
			Description: "Over-ear, discontinued colorway",
			Category:    domain.CategoryAirPod,
			PriceCents:  54900,
			Stock:       2,
			Status:      domain.ProductUnavailable,
			Attributes:  domain.VariantAttributes{AirPod: &domain.AirPodAttributes{Generation: 1, CaseType: "smart case"}},
		},
	}

	repo := productrepo.NewPostgres(pool, zerolog.Nop())
	for _, p := range products {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	customers := []personSeed{
		{FullName: "Alice Carter", Email: "alice.carter@example.com", Phone: "+1-555-0101", Extra: "12 Maple St, Springfield"},
		{FullName: "Bruno Keller", Email: "bruno.keller@example.com", Phone: "+1-555-0102", Extra: "4 Oak Ave, Riverton"},
		{FullName: "Chen Wei", Email: "chen.wei@example.com", Phone: "", Extra: ""},
	}
	for _, c := range customers {
		if err := upsertCustomer(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert customer %s: %w", c.Email, err)
		}
	}

	employees := []personSeed{
		{FullName: "Dana Flores", Email: "dana.flores@example.com", Phone: "+1-555-0201", Extra: "sales"},
		{FullName: "Egor Ivanov", Email: "egor.ivanov@example.com", Phone: "+1-555-0202", Extra: "manager"},
	}
	for _, e := range employees {
		if err := upsertEmployee(ctx, pool, e); err != nil {
			return fmt.Errorf("upsert employee %s: %w", e.Email, err)
		}
	}

	return nil
}

func upsertCustomer(ctx context.Context, pool *pgxpool.Pool, c personSeed) error {
	const q = `
INSERT INTO customers (full_name, email, phone, address)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
ON CONFLICT (email) DO UPDATE
SET full_name = EXCLUDED.full_name,
    phone = EXCLUDED.phone,
    address = EXCLUDED.address
`
	_, err := pool.Exec(ctx, q, c.FullName, c.Email, c.Phone, c.Extra)
	return err
}

func upsertEmployee(ctx context.Context, pool *pgxpool.Pool, e personSeed) error {
	const q = `
INSERT INTO employees (full_name, email, phone, position)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
ON CONFLICT (email) DO UPDATE
SET full_name = EXCLUDED.full_name,
    phone = EXCLUDED.phone,
    position = EXCLUDED.position
`
	_, err := pool.Exec(ctx, q, e.FullName, e.Email, e.Phone, e.Extra)
	return err
}
