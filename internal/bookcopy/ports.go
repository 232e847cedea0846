package bookcopy

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c *Copy) error
	GetByID(ctx context.Context, id string) (Copy, error)
	List(ctx context.Context, q Query) ([]Copy, int, error)
	// UpdateLoan atomically sets the loan state of a copy.
	UpdateLoan(ctx context.Context, id string, status Status, borrowerID *string, dueBack *time.Time) (Copy, error)
	Delete(ctx context.Context, id string) error
}
