package catalog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Summary(ctx context.Context) (Summary, error)
}

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) Summary(ctx context.Context) (Summary, error) {
	const query = `
	SELECT
		(SELECT COUNT(*) FROM books),
		(SELECT COUNT(*) FROM book_instances),
		(SELECT COUNT(*) FROM book_instances WHERE status = 'a'),
		(SELECT COUNT(*) FROM authors),
		(SELECT COUNT(*) FROM genres)
	`
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var s Summary
	err := r.db.QueryRow(timeoutCtx, query).Scan(
		&s.Books, &s.Copies, &s.CopiesAvailable, &s.Authors, &s.Genres,
	)
	return s, err
}
