package bookcopy

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo is a hand-written Repository test double keeping one copy in
// memory.
type stubRepo struct {
	copies map[string]Copy
}

func newStubRepo(copies ...Copy) *stubRepo {
	s := &stubRepo{copies: make(map[string]Copy)}
	for _, c := range copies {
		s.copies[c.ID] = c
	}
	return s
}

func (s *stubRepo) Create(ctx context.Context, c *Copy) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.copies[c.ID] = *c
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (Copy, error) {
	c, ok := s.copies[id]
	if !ok {
		return Copy{}, ErrNotFound
	}
	return c, nil
}

func (s *stubRepo) List(ctx context.Context, q Query) ([]Copy, int, error) {
	var out []Copy
	for _, c := range s.copies {
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		if q.BorrowerID != "" && (c.BorrowerID == nil || *c.BorrowerID != q.BorrowerID) {
			continue
		}
		out = append(out, c)
	}
	return out, len(out), nil
}

func (s *stubRepo) UpdateLoan(ctx context.Context, id string, status Status, borrowerID *string, dueBack *time.Time) (Copy, error) {
	c, ok := s.copies[id]
	if !ok {
		return Copy{}, ErrNotFound
	}
	c.Status = status
	c.BorrowerID = borrowerID
	c.DueBack = dueBack
	s.copies[id] = c
	return c, nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.copies[id]; !ok {
		return ErrNotFound
	}
	delete(s.copies, id)
	return nil
}

func TestService_Create_Defaults(t *testing.T) {
	repo := newStubRepo()
	service := NewService(repo)

	c := &Copy{Imprint: "Penguin Classics"}
	require.NoError(t, service.Create(context.Background(), c))

	_, err := uuid.Parse(c.ID)
	assert.NoError(t, err, "copy ID should be a generated UUID")
	assert.Equal(t, StatusMaintenance, c.Status, "new copies default to maintenance")
}

func TestService_Checkout(t *testing.T) {
	due := time.Now().AddDate(0, 0, 21)

	tests := []struct {
		name    string
		status  Status
		wantErr error
	}{
		{name: "available copy", status: StatusAvailable},
		{name: "reserved copy", status: StatusReserved},
		{name: "copy on loan", status: StatusOnLoan, wantErr: ErrNotAvailable},
		{name: "copy in maintenance", status: StatusMaintenance, wantErr: ErrNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubRepo(Copy{ID: "copy-1", Status: tt.status})
			service := NewService(repo)

			c, err := service.Checkout(context.Background(), "copy-1", "borrower-1", due)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusOnLoan, c.Status)
			require.NotNil(t, c.BorrowerID)
			assert.Equal(t, "borrower-1", *c.BorrowerID)
			require.NotNil(t, c.DueBack)
			assert.Equal(t, due, *c.DueBack)
		})
	}

	t.Run("missing copy", func(t *testing.T) {
		service := NewService(newStubRepo())
		_, err := service.Checkout(context.Background(), "missing", "borrower-1", due)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Return(t *testing.T) {
	borrowerID := "borrower-1"
	due := time.Now().AddDate(0, 0, -1)

	t.Run("on loan", func(t *testing.T) {
		repo := newStubRepo(Copy{ID: "copy-1", Status: StatusOnLoan, BorrowerID: &borrowerID, DueBack: &due})
		service := NewService(repo)

		c, err := service.Return(context.Background(), "copy-1")
		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, c.Status)
		assert.Nil(t, c.BorrowerID)
		assert.Nil(t, c.DueBack)
	})

	t.Run("not on loan", func(t *testing.T) {
		repo := newStubRepo(Copy{ID: "copy-1", Status: StatusAvailable})
		service := NewService(repo)

		_, err := service.Return(context.Background(), "copy-1")
		assert.ErrorIs(t, err, ErrNotOnLoan)
	})
}

func TestService_Reserve(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		repo := newStubRepo(Copy{ID: "copy-1", Status: StatusAvailable})
		service := NewService(repo)

		c, err := service.Reserve(context.Background(), "copy-1", "borrower-1")
		require.NoError(t, err)
		assert.Equal(t, StatusReserved, c.Status)
		require.NotNil(t, c.BorrowerID)
		assert.Equal(t, "borrower-1", *c.BorrowerID)
	})

	t.Run("already on loan", func(t *testing.T) {
		repo := newStubRepo(Copy{ID: "copy-1", Status: StatusOnLoan})
		service := NewService(repo)

		_, err := service.Reserve(context.Background(), "copy-1", "borrower-1")
		assert.ErrorIs(t, err, ErrNotAvailable)
	})
}

func TestService_SendToMaintenance(t *testing.T) {
	borrowerID := "borrower-1"
	repo := newStubRepo(Copy{ID: "copy-1", Status: StatusOnLoan, BorrowerID: &borrowerID})
	service := NewService(repo)

	c, err := service.SendToMaintenance(context.Background(), "copy-1")
	require.NoError(t, err)
	assert.Equal(t, StatusMaintenance, c.Status)
	assert.Nil(t, c.BorrowerID)
}

func TestService_ListLoansFor(t *testing.T) {
	borrowerID := "borrower-1"
	other := "borrower-2"
	repo := newStubRepo(
		Copy{ID: "copy-1", Status: StatusOnLoan, BorrowerID: &borrowerID},
		Copy{ID: "copy-2", Status: StatusOnLoan, BorrowerID: &other},
		Copy{ID: "copy-3", Status: StatusAvailable},
	)
	service := NewService(repo)

	copies, total, err := service.ListLoansFor(context.Background(), borrowerID)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, copies, 1)
	assert.Equal(t, "copy-1", copies[0].ID)
}
