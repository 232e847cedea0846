package book

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, b *Book, genreIDs []string) error
	GetByID(ctx context.Context, id string) (Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	List(ctx context.Context, q Query) ([]Book, int, error)
	Update(ctx context.Context, id string, p UpdateParams) (Book, error)
	Delete(ctx context.Context, id string) error
}
