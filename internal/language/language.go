package language

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("language not found")

// Language is the natural language a book is written in (English, French,
// and so on). Books reference it through a nullable foreign key.
type Language struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (l Language) String() string {
	return l.Name
}
