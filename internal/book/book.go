package book

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateISBN is returned when another book already owns the ISBN.
	ErrDuplicateISBN = errors.New("isbn already exists")
	// ErrHasCopies is returned when deleting a book that still has
	// physical copies on the shelves.
	ErrHasCopies = errors.New("book still has copies")
	// ErrInvalidReference is returned when a referenced author, language
	// or genre does not exist.
	ErrInvalidReference = errors.New("referenced entity does not exist")
)

// AuthorRef is the book's view of its (nullable) author.
type AuthorRef struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GenreRef is a genre attached to a book, in attachment order.
type GenreRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LanguageRef is the book's (nullable) natural language.
type LanguageRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Book represents a catalog title, not a physical copy.
type Book struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Author    *AuthorRef   `json:"author,omitempty"`
	Summary   string       `json:"summary"`
	ISBN      string       `json:"isbn"`
	Language  *LanguageRef `json:"language,omitempty"`
	Genres    []GenreRef   `json:"genres"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (b Book) String() string {
	return b.Title
}

// DetailURL returns the canonical detail-page URL for this book.
func (b Book) DetailURL() string {
	return "/books/" + b.ID
}

// DisplayGenre returns a comma-joined preview of up to the first three
// attached genres.
func (b Book) DisplayGenre() string {
	n := len(b.Genres)
	if n > 3 {
		n = 3
	}
	names := make([]string, 0, n)
	for _, g := range b.Genres[:n] {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// Query defines filters and pagination for listing books.
type Query struct {
	Title    string
	AuthorID string
	GenreID  string
	Limit    int
	Offset   int
}

// UpdateParams carries a partial update; nil fields are left untouched.
// AuthorID and LanguageID distinguish "not provided" (nil) from
// "clear the reference" (pointer to empty string).
type UpdateParams struct {
	Title      *string
	Summary    *string
	AuthorID   *string
	LanguageID *string
	GenreIDs   *[]string
}
