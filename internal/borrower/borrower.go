package borrower

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a borrower is not found.
	ErrNotFound = errors.New("borrower not found")
	// ErrAlreadyExists is returned when the email is taken.
	ErrAlreadyExists = errors.New("borrower already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	RoleMember    = "MEMBER"
	RoleLibrarian = "LIBRARIAN"
)

// Borrower is a library member who can hold loans and reservations.
type Borrower struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b Borrower) String() string {
	return b.Username
}
