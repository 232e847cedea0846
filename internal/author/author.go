package author

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when an author is not found.
var ErrNotFound = errors.New("author not found")

// Author represents a writer of catalog titles. Books keep a nullable
// reference to their author, so deleting an author never fails.
type Author struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (a Author) String() string {
	return fmt.Sprintf("%s, %s", a.FirstName, a.LastName)
}

// DetailURL returns the canonical detail-page URL for this author.
func (a Author) DetailURL() string {
	return "/authors/" + a.ID
}

// Query defines pagination for listing authors. Listings are always
// ordered by (last_name, first_name).
type Query struct {
	Limit  int
	Offset int
}
