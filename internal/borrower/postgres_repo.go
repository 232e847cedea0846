package borrower

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

func (r *PostgresRepo) Create(ctx context.Context, b *Borrower) error {
	const query = `
	INSERT INTO users (email, username, password_hash, role)
	VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'MEMBER'))
	RETURNING id, role, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, b.Email, b.Username, b.Password, b.Role).
		Scan(&b.ID, &b.Role, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (Borrower, error) {
	const query = `
	SELECT id, email, username, password_hash, role, created_at, updated_at
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	var b Borrower
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, email).Scan(
		&b.ID, &b.Email, &b.Username, &b.Password, &b.Role, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Borrower{}, ErrNotFound
		}
		return Borrower{}, err
	}
	return b, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Borrower, error) {
	const query = `
	SELECT id, email, username, password_hash, role, created_at, updated_at
	FROM users
	WHERE id = $1
	LIMIT 1
	`
	var b Borrower
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Email, &b.Username, &b.Password, &b.Role, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Borrower{}, ErrNotFound
		}
		return Borrower{}, err
	}
	return b, nil
}
