package borrower

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	GetByEmail(ctx context.Context, email string) (Borrower, error)
	GetByID(ctx context.Context, id string) (Borrower, error)
}
