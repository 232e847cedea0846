package author

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, a *Author) error
	GetByID(ctx context.Context, id string) (Author, error)
	List(ctx context.Context, q Query) ([]Author, int, error)
	Update(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id string) error
}
