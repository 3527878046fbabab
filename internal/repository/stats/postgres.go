package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"adminboard/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "stats").Logger()}
}

func (r *postgresRepo) Summary(ctx context.Context) (*Summary, error) {
	const q = `
SELECT
    (SELECT COUNT(*) FROM customers),
    (SELECT COUNT(*) FROM employees),
    (SELECT COUNT(*) FROM products),
    (SELECT COUNT(*) FROM orders),
    (SELECT COALESCE(SUM(total_cents), 0) FROM orders WHERE status = 'completed'),
    (SELECT COUNT(*) FROM products WHERE status = 'available' AND stock > 0),
    (SELECT COUNT(*) FROM products WHERE status = 'available' AND stock = 0),
    (SELECT COUNT(*) FROM products WHERE status = 'unavailable')
`
	s := Summary{OrdersByStatus: make(map[domain.OrderStatus]int)}
	if err := r.pool.QueryRow(ctx, q).Scan(
		&s.CustomerCount, &s.EmployeeCount, &s.ProductCount, &s.OrderCount,
		&s.SalesTotalCents, &s.InStock, &s.OutOfStock, &s.Unavailable,
	); err != nil {
		r.logger.Error().Err(err).Msg("summary failed")
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		r.logger.Error().Err(err).Msg("status counts failed")
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.OrderStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		s.OrdersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// TopCustomers ranks customers by purchase count; cancelled orders do not
// count as purchases.
func (r *postgresRepo) TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error) {
	if limit <= 0 {
		limit = 5
	}
	const q = `
SELECT c.id::text, c.full_name, COUNT(o.id), COALESCE(SUM(o.total_cents), 0)
FROM customers c
JOIN orders o ON o.customer_id = c.id AND o.status <> 'cancelled'
GROUP BY c.id, c.full_name
ORDER BY COUNT(o.id) DESC, c.full_name ASC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("top customers failed")
		return nil, err
	}
	defer rows.Close()

	var result []TopCustomer
	for rows.Next() {
		var tc TopCustomer
		if err := rows.Scan(&tc.CustomerID, &tc.FullName, &tc.PurchaseCount, &tc.SpentCents); err != nil {
			return nil, err
		}
		result = append(result, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
