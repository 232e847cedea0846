package genre

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("genre not found")

// Genre is a free-text classification. Books and genres are many-to-many.
type Genre struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (g Genre) String() string {
	return g.Name
}
