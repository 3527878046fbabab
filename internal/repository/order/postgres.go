package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"adminboard/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "order").Logger()}
}

const orderColumns = `id::text, customer_id::text, employee_id::text, status, total_cents, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, in CommitInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var orderID string
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (customer_id, employee_id, status)
VALUES ($1, $2, $3)
RETURNING id::text
`, in.CustomerID, in.EmployeeID, in.Status).Scan(&orderID); err != nil {
		r.logger.Error().Err(err).Msg("insert order failed")
		return nil, err
	}

	if err := insertItems(ctx, tx, orderID, in.Items); err != nil {
		return nil, err
	}
	if err := updateOrderTotal(ctx, tx, orderID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	r.logger.Info().Str("order_id", orderID).Int("items", len(in.Items)).Msg("order created")
	return r.GetByID(ctx, orderID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID, &o.CustomerID, &o.EmployeeID, &o.Status, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("get failed")
		return nil, err
	}

	const itemsQuery = `
SELECT id::text, product_id::text, product_name, quantity, unit_price_cents, total_cents, created_at
FROM order_items
WHERE order_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.LineItem
		var productID string
		if err := rows.Scan(&item.ID, &productID, &item.ProductName, &item.Quantity, &item.UnitPriceCents, &item.TotalCents, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.ProductID = &productID
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("list failed")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.EmployeeID, &o.Status, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces the order head and its full item set in one transaction,
// then recomputes the stored total from the rows actually written.
func (r *postgresRepo) Update(ctx context.Context, id string, in CommitInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
UPDATE orders
SET customer_id = $2, employee_id = $3, status = $4, updated_at = now()
WHERE id = $1
`, id, in.CustomerID, in.EmployeeID, in.Status)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("update order failed")
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return nil, err
	}
	if err := insertItems(ctx, tx, id, in.Items); err != nil {
		return nil, err
	}
	if err := updateOrderTotal(ctx, tx, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete enforces the store-side business rule: orders that are neither
// pending nor completed cannot be removed.
func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM orders
WHERE id = $1 AND status IN ('pending', 'completed')
`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete failed")
		return err
	}
	if cmd.RowsAffected() > 0 {
		r.logger.Info().Str("order_id", id).Msg("order deleted")
		return nil
	}

	var status string
	err = r.pool.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	return &domain.DeleteRejectedError{Reason: "order with status " + status + " cannot be deleted"}
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID string, items []ItemInput) error {
	for i, item := range items {
		itemID := item.ID
		if itemID == "" {
			itemID = uuid.NewString()
		}
		total := item.UnitPriceCents * int64(item.Quantity)
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price_cents, total_cents, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, itemID, orderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPriceCents, total, i); err != nil {
			return err
		}
	}
	return nil
}

func updateOrderTotal(ctx context.Context, tx pgx.Tx, orderID string) error {
	_, err := tx.Exec(ctx, `
UPDATE orders
SET total_cents = COALESCE((
	SELECT SUM(total_cents)
	FROM order_items
	WHERE order_id = $1
), 0)
WHERE id = $1
`, orderID)
	return err
}
