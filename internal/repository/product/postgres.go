package product

import (
	"context"
	"errors"

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
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "product").Logger()}
}

const productColumns = `id::text, name, COALESCE(description, ''), category, price_cents, stock, status, attributes, created_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.PriceCents, &p.Stock, &p.Status, &p.Attributes, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, category, price_cents, stock, status, attributes)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)
RETURNING ` + productColumns
	p, err := scanProduct(r.pool.QueryRow(ctx, q, in.Name, in.Description, in.Category, in.PriceCents, in.Stock, in.Status, in.Attributes))
	if err != nil {
		r.logger.Error().Err(err).Str("name", in.Name).Msg("create failed")
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("get failed")
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
  AND ($2 = '' OR category = $2)
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, f.Search, string(f.Category))
	if err != nil {
		r.logger.Error().Err(err).Msg("list failed")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.PriceCents, &p.Stock, &p.Status, &p.Attributes, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Debug().Int("count", len(result)).Msg("listed products")
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in CreateInput) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, description = NULLIF($3, ''), category = $4, price_cents = $5, stock = $6, status = $7, attributes = $8
WHERE id = $1
RETURNING ` + productColumns
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id, in.Name, in.Description, in.Category, in.PriceCents, in.Stock, in.Status, in.Attributes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("update failed")
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete failed")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert is keyed on the case-insensitive product name; used by seeding so
// repeated runs stay idempotent.
func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, category, price_cents, stock, status, attributes)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)
ON CONFLICT (lower(name)) DO UPDATE SET
    description = EXCLUDED.description,
    category = EXCLUDED.category,
    price_cents = EXCLUDED.price_cents,
    stock = EXCLUDED.stock,
    status = EXCLUDED.status,
    attributes = EXCLUDED.attributes
RETURNING ` + productColumns
	res, err := scanProduct(r.pool.QueryRow(ctx, q, p.Name, p.Description, p.Category, p.PriceCents, p.Stock, p.Status, p.Attributes))
	if err != nil {
		r.logger.Error().Err(err).Str("name", p.Name).Msg("upsert failed")
		return nil, err
	}
	return res, nil
}
