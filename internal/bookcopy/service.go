package bookcopy

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new physical copy. The copy gets an
// application-generated UUID and starts in maintenance unless another
// status is given.
func (s *Service) Create(ctx context.Context, c *Copy) error {
	c.ID = uuid.New().String()
	if c.Status == "" {
		c.Status = StatusMaintenance
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) GetByID(ctx context.Context, id string) (Copy, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, q Query) ([]Copy, int, error) {
	return s.repo.List(ctx, q)
}

// ListLoansFor lists the copies currently on loan to a borrower, ordered
// by due date.
func (s *Service) ListLoansFor(ctx context.Context, borrowerID string) ([]Copy, int, error) {
	return s.repo.List(ctx, Query{
		Status:     StatusOnLoan,
		BorrowerID: borrowerID,
		Limit:      100,
	})
}

// Checkout lends an available or reserved copy to a borrower until dueBack.
func (s *Service) Checkout(ctx context.Context, id, borrowerID string, dueBack time.Time) (Copy, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Copy{}, err
	}
	if c.Status != StatusAvailable && c.Status != StatusReserved {
		return Copy{}, ErrNotAvailable
	}
	return s.repo.UpdateLoan(ctx, id, StatusOnLoan, &borrowerID, &dueBack)
}

// Return takes a copy off loan and puts it back on the shelf.
func (s *Service) Return(ctx context.Context, id string) (Copy, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Copy{}, err
	}
	if c.Status != StatusOnLoan {
		return Copy{}, ErrNotOnLoan
	}
	return s.repo.UpdateLoan(ctx, id, StatusAvailable, nil, nil)
}

// Reserve holds an available copy for a borrower.
func (s *Service) Reserve(ctx context.Context, id, borrowerID string) (Copy, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Copy{}, err
	}
	if c.Status != StatusAvailable {
		return Copy{}, ErrNotAvailable
	}
	return s.repo.UpdateLoan(ctx, id, StatusReserved, &borrowerID, nil)
}

// SendToMaintenance pulls a copy from circulation and clears any loan.
func (s *Service) SendToMaintenance(ctx context.Context, id string) (Copy, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Copy{}, err
	}
	return s.repo.UpdateLoan(ctx, id, StatusMaintenance, nil, nil)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
