package author

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, a *Author) error {
	return s.repo.Create(ctx, a)
}

func (s *Service) GetByID(ctx context.Context, id string) (Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, q Query) ([]Author, int, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) Update(ctx context.Context, a *Author) error {
	return s.repo.Update(ctx, a)
}

// Delete removes the author. Books referencing the author keep existing
// with a null author (ON DELETE SET NULL).
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
