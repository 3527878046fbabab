package employee

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
	return &postgresRepo{pool: pool, logger: logger.With().Str("repo", "employee").Logger()}
}

const employeeColumns = `id::text, full_name, email, COALESCE(phone, ''), COALESCE(position, ''), created_at`

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Employee, error) {
	const q = `
INSERT INTO employees (full_name, email, phone, position)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
RETURNING ` + employeeColumns
	var e domain.Employee
	if err := r.pool.QueryRow(ctx, q, in.FullName, in.Email, in.Phone, in.Position).Scan(
		&e.ID, &e.FullName, &e.Email, &e.Phone, &e.Position, &e.CreatedAt,
	); err != nil {
		r.logger.Error().Err(err).Str("email", in.Email).Msg("create failed")
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const q = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	var e domain.Employee
	err := r.pool.QueryRow(ctx, q, id).Scan(&e.ID, &e.FullName, &e.Email, &e.Phone, &e.Position, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("get failed")
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepo) List(ctx context.Context, search string) ([]domain.Employee, error) {
	const q = `
SELECT ` + employeeColumns + `
FROM employees
WHERE $1 = '' OR full_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, search)
	if err != nil {
		r.logger.Error().Err(err).Msg("list failed")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Email, &e.Phone, &e.Position, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in CreateInput) (*domain.Employee, error) {
	const q = `
UPDATE employees
SET full_name = $2, email = $3, phone = NULLIF($4, ''), position = NULLIF($5, '')
WHERE id = $1
RETURNING ` + employeeColumns
	var e domain.Employee
	err := r.pool.QueryRow(ctx, q, id, in.FullName, in.Email, in.Phone, in.Position).Scan(
		&e.ID, &e.FullName, &e.Email, &e.Phone, &e.Position, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("update failed")
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete failed")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
