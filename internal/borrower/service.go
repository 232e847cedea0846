package borrower

import (
	"context"

	"libraryapi/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, email, username, password string) (Borrower, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Borrower{}, ErrAlreadyExists
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return Borrower{}, err
	}

	b := &Borrower{
		Email:    email,
		Username: username,
		Password: hashed,
		Role:     RoleMember,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return Borrower{}, err
	}
	return *b, nil
}

// Authenticate verifies the credentials and returns the borrower.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Borrower, error) {
	b, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return Borrower{}, ErrInvalidCredentials
	}
	if !auth.VerifyPassword(b.Password, password) {
		return Borrower{}, ErrInvalidCredentials
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Borrower, error) {
	return s.repo.GetByID(ctx, id)
}
