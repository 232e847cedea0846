package bookcopy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrInvalidReference
	}
	return err
}

const selectCopySQL = `
	SELECT c.id, c.book_id, COALESCE(b.title, ''), c.imprint, c.due_back, c.borrower_id, c.status,
	       c.created_at, c.updated_at
	FROM book_instances c
	LEFT JOIN books b ON b.id = c.book_id
`

func scanCopy(row pgx.Row) (Copy, error) {
	var c Copy
	var status string
	err := row.Scan(
		&c.ID, &c.BookID, &c.BookTitle, &c.Imprint, &c.DueBack, &c.BorrowerID, &status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return Copy{}, err
	}
	c.Status = Status(status)
	return c, nil
}

func (r *PostgresRepo) Create(ctx context.Context, c *Copy) error {
	const query = `
	INSERT INTO book_instances (id, book_id, imprint, due_back, borrower_id, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		c.ID, c.BookID, c.Imprint, c.DueBack, c.BorrowerID, string(c.Status),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}

	created, err := r.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = created
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Copy, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	c, err := scanCopy(r.db.QueryRow(timeoutCtx, selectCopySQL+"WHERE c.id = $1 LIMIT 1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Copy{}, ErrNotFound
		}
		return Copy{}, err
	}
	return c, nil
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Copy, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Status != "" {
		clauses = append(clauses, fmt.Sprintf("c.status = $%d", argn))
		args = append(args, string(q.Status))
		argn++
	}

	if q.BookID != "" {
		clauses = append(clauses, fmt.Sprintf("c.book_id = $%d", argn))
		args = append(args, q.BookID)
		argn++
	}

	if q.BorrowerID != "" {
		clauses = append(clauses, fmt.Sprintf("c.borrower_id = $%d", argn))
		args = append(args, q.BorrowerID)
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := "SELECT COUNT(*) FROM book_instances c " + where
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := selectCopySQL + where +
		" ORDER BY c.due_back ASC NULLS LAST, c.id ASC LIMIT $" + strconv.Itoa(argn) + " OFFSET $" + strconv.Itoa(argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, q.Limit, q.Offset)
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Copy
	for rows.Next() {
		c, err := scanCopy(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) UpdateLoan(ctx context.Context, id string, status Status, borrowerID *string, dueBack *time.Time) (Copy, error) {
	const query = `
	UPDATE book_instances
	SET status = $2, borrower_id = $3, due_back = $4, updated_at = now()
	WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id, string(status), borrowerID, dueBack)
	if err != nil {
		return Copy{}, mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return Copy{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, "DELETE FROM book_instances WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
