package bookcopy

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a copy is not found.
	ErrNotFound = errors.New("copy not found")
	// ErrNotAvailable is returned for a checkout or reservation of a copy
	// that is not available.
	ErrNotAvailable = errors.New("copy is not available")
	// ErrNotOnLoan is returned when returning a copy that is not on loan.
	ErrNotOnLoan = errors.New("copy is not on loan")
	// ErrInvalidReference is returned when the referenced book or borrower
	// does not exist.
	ErrInvalidReference = errors.New("referenced entity does not exist")
)

// Status is the loan status of a physical copy.
type Status string

const (
	StatusMaintenance Status = "m"
	StatusOnLoan      Status = "o"
	StatusAvailable   Status = "a"
	StatusReserved    Status = "r"
)

func (s Status) Valid() bool {
	switch s {
	case StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved:
		return true
	}
	return false
}

// Label returns the human-readable form of the status code.
func (s Status) Label() string {
	switch s {
	case StatusMaintenance:
		return "Maintenance"
	case StatusOnLoan:
		return "On loan"
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	}
	return string(s)
}

// Copy represents one physical, borrowable copy of a book. Its ID is an
// application-generated UUID unique across the whole library.
type Copy struct {
	ID         string     `json:"id"`
	BookID     *string    `json:"book_id,omitempty"`
	BookTitle  string     `json:"book_title,omitempty"`
	Imprint    string     `json:"imprint"`
	DueBack    *time.Time `json:"due_back,omitempty"`
	BorrowerID *string    `json:"borrower_id,omitempty"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (c Copy) String() string {
	return fmt.Sprintf("%s(%s)", c.ID, c.BookTitle)
}

// IsOverdue reports whether the copy's due date has passed.
func (c Copy) IsOverdue() bool {
	return c.OverdueAt(time.Now())
}

// OverdueAt reports whether the copy is overdue at the given moment: true
// iff due_back is set and falls on a date strictly before now's date.
func (c Copy) OverdueAt(now time.Time) bool {
	if c.DueBack == nil {
		return false
	}
	return dateOf(*c.DueBack).Before(dateOf(now))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Query defines filters and pagination for listing copies. Listings are
// always ordered by due_back.
type Query struct {
	Status     Status
	BookID     string
	BorrowerID string
	Limit      int
	Offset     int
}
