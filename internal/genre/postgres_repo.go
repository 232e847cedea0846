package genre

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, g *Genre) error
	GetByID(ctx context.Context, id string) (Genre, error)
	List(ctx context.Context) ([]Genre, error)
}

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, g *Genre) error {
	const query = `
	INSERT INTO genres (name)
	VALUES ($1)
	RETURNING id, created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, g.Name).Scan(&g.ID, &g.CreatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Genre, error) {
	const query = `SELECT id, name, created_at FROM genres WHERE id = $1 LIMIT 1`
	var g Genre
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Genre{}, ErrNotFound
		}
		return Genre{}, err
	}
	return g, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Genre, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, "SELECT id, name, created_at FROM genres ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Genre
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
