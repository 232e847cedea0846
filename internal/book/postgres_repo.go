package book

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

// mapPgError translates constraint violations into domain errors.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		if pgErr.TableName == "books" {
			return ErrDuplicateISBN
		}
		// duplicate genre attachment on book_genres
		return ErrInvalidReference
	case "23503": // foreign_key_violation
		if pgErr.TableName == "book_instances" {
			return ErrHasCopies
		}
		return ErrInvalidReference
	}
	return err
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book, genreIDs []string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	const bookSQL = `
	INSERT INTO books (title, author_id, summary, isbn, language_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at
	`
	var authorID, languageID *string
	if b.Author != nil {
		authorID = &b.Author.ID
	}
	if b.Language != nil {
		languageID = &b.Language.ID
	}
	err = tx.QueryRow(timeoutCtx, bookSQL, b.Title, authorID, b.Summary, b.ISBN, languageID).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}

	if err := insertGenres(timeoutCtx, tx, b.ID, genreIDs); err != nil {
		return mapPgError(err)
	}

	if err := tx.Commit(timeoutCtx); err != nil {
		return err
	}

	created, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = created
	return nil
}

func insertGenres(ctx context.Context, tx pgx.Tx, bookID string, genreIDs []string) error {
	for i, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO book_genres (book_id, genre_id, position) VALUES ($1, $2, $3)",
			bookID, genreID, i,
		)
		if err != nil {
			return fmt.Errorf("attach genre %s: %w", genreID, err)
		}
	}
	return nil
}

const selectBookSQL = `
	SELECT b.id, b.title, b.summary, b.isbn, b.created_at, b.updated_at,
	       a.id, a.first_name, a.last_name,
	       l.id, l.name
	FROM books b
	LEFT JOIN authors a ON a.id = b.author_id
	LEFT JOIN languages l ON l.id = b.language_id
`

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	var authorID, authorFirst, authorLast *string
	var languageID, languageName *string
	err := row.Scan(
		&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.CreatedAt, &b.UpdatedAt,
		&authorID, &authorFirst, &authorLast,
		&languageID, &languageName,
	)
	if err != nil {
		return Book{}, err
	}
	if authorID != nil {
		b.Author = &AuthorRef{ID: *authorID, FirstName: *authorFirst, LastName: *authorLast}
	}
	if languageID != nil {
		b.Language = &LanguageRef{ID: *languageID, Name: *languageName}
	}
	b.Genres = []GenreRef{}
	return b, nil
}

func (r *PostgresRepo) getBy(ctx context.Context, clause string, arg any) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := r.db.QueryRow(timeoutCtx, selectBookSQL+clause+" LIMIT 1", arg)
	b, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}

	genres, err := r.genresFor(timeoutCtx, []string{b.ID})
	if err != nil {
		return Book{}, err
	}
	if g, ok := genres[b.ID]; ok {
		b.Genres = g
	}
	return b, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	return r.getBy(ctx, "WHERE b.id = $1", id)
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return r.getBy(ctx, "WHERE b.isbn = $1", isbn)
}

// genresFor loads the attached genres for a set of books, keeping
// attachment order.
func (r *PostgresRepo) genresFor(ctx context.Context, bookIDs []string) (map[string][]GenreRef, error) {
	const query = `
	SELECT bg.book_id, g.id, g.name
	FROM book_genres bg
	JOIN genres g ON g.id = bg.genre_id
	WHERE bg.book_id = ANY($1)
	ORDER BY bg.book_id, bg.position ASC
	`
	rows, err := r.db.Query(ctx, query, bookIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]GenreRef)
	for rows.Next() {
		var bookID string
		var g GenreRef
		if err := rows.Scan(&bookID, &g.ID, &g.Name); err != nil {
			return nil, err
		}
		out[bookID] = append(out[bookID], g)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Title != "" {
		clauses = append(clauses, fmt.Sprintf("b.title ILIKE $%d", argn))
		args = append(args, "%"+q.Title+"%")
		argn++
	}

	if q.AuthorID != "" {
		clauses = append(clauses, fmt.Sprintf("b.author_id = $%d", argn))
		args = append(args, q.AuthorID)
		argn++
	}

	if q.GenreID != "" {
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM book_genres bg WHERE bg.book_id = b.id AND bg.genre_id = $%d)", argn))
		args = append(args, q.GenreID)
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := "SELECT COUNT(*) FROM books b " + where
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := selectBookSQL + where +
		" ORDER BY b.title ASC LIMIT $" + strconv.Itoa(argn) + " OFFSET $" + strconv.Itoa(argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, q.Limit, q.Offset)
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	var ids []string
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		genreCtx, cancel3 := r.withTimeout(ctx)
		defer cancel3()
		genres, err := r.genresFor(genreCtx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range out {
			if g, ok := genres[out[i].ID]; ok {
				out[i].Genres = g
			}
		}
	}

	return out, total, nil
}

func (r *PostgresRepo) Update(ctx context.Context, id string, p UpdateParams) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return Book{}, err
	}
	defer tx.Rollback(timeoutCtx)

	fields := []string{}
	args := []any{}
	argn := 1

	set := func(column string, value any) {
		fields = append(fields, column+" = $"+strconv.Itoa(argn))
		args = append(args, value)
		argn++
	}

	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Summary != nil {
		set("summary", *p.Summary)
	}
	if p.AuthorID != nil {
		if *p.AuthorID == "" {
			fields = append(fields, "author_id = NULL")
		} else {
			set("author_id", *p.AuthorID)
		}
	}
	if p.LanguageID != nil {
		if *p.LanguageID == "" {
			fields = append(fields, "language_id = NULL")
		} else {
			set("language_id", *p.LanguageID)
		}
	}

	if len(fields) > 0 {
		fields = append(fields, "updated_at = now()")
		args = append(args, id)
		query := "UPDATE books SET " + strings.Join(fields, ", ") + " WHERE id = $" + strconv.Itoa(argn)
		tag, err := tx.Exec(timeoutCtx, query, args...)
		if err != nil {
			return Book{}, mapPgError(err)
		}
		if tag.RowsAffected() == 0 {
			return Book{}, ErrNotFound
		}
	}

	if p.GenreIDs != nil {
		if len(fields) == 0 {
			// genres-only update, the UPDATE above did not confirm the row
			var exists bool
			if err := tx.QueryRow(timeoutCtx, "SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)", id).Scan(&exists); err != nil {
				return Book{}, err
			}
			if !exists {
				return Book{}, ErrNotFound
			}
		}
		if _, err := tx.Exec(timeoutCtx, "DELETE FROM book_genres WHERE book_id = $1", id); err != nil {
			return Book{}, err
		}
		if err := insertGenres(timeoutCtx, tx, id, *p.GenreIDs); err != nil {
			return Book{}, mapPgError(err)
		}
	}

	if err := tx.Commit(timeoutCtx); err != nil {
		return Book{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
