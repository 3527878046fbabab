package customer

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
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "customer").Logger()}
}

const customerColumns = `id::text, full_name, email, COALESCE(phone, ''), COALESCE(address, ''), created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (full_name, email, phone, address)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
RETURNING ` + customerColumns
	var c domain.Customer
	if err := r.pool.QueryRow(ctx, q, in.FullName, in.Email, in.Phone, in.Address).Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Address, &c.CreatedAt,
	); err != nil {
		r.logger.Error().Err(err).Str("email", in.Email).Msg("create failed")
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("get failed")
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) List(ctx context.Context, search string) ([]domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE $1 = '' OR full_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, search)
	if err != nil {
		r.logger.Error().Err(err).Msg("list failed")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Debug().Int("count", len(result)).Msg("listed customers")
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in CreateInput) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET full_name = $2, email = $3, phone = NULLIF($4, ''), address = NULLIF($5, '')
WHERE id = $1
RETURNING ` + customerColumns
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, id, in.FullName, in.Email, in.Phone, in.Address).Scan(
		&c.ID, &c.FullName, &c.Email, &c.Phone, &c.Address, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("update failed")
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete failed")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
