package author

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/testutil"

	"github.com/stretchr/testify/assert"
)

type stubRepo struct {
	createErr   error
	getAuthor   Author
	getErr      error
	listAuthors []Author
	listTotal   int
	listErr     error
	updateErr   error
	deleteErr   error
}

func (s *stubRepo) Create(ctx context.Context, a *Author) error {
	if s.createErr != nil {
		return s.createErr
	}
	a.ID = "created-id"
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (Author, error) {
	return s.getAuthor, s.getErr
}

func (s *stubRepo) List(ctx context.Context, q Query) ([]Author, int, error) {
	return s.listAuthors, s.listTotal, s.listErr
}

func (s *stubRepo) Update(ctx context.Context, a *Author) error {
	return s.updateErr
}

func (s *stubRepo) Delete(ctx context.Context, id string) error {
	return s.deleteErr
}

func TestHTTPHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		repo           *stubRepo
		expectedStatus int
	}{
		{
			name:           "created",
			body:           map[string]any{"first_name": "Ursula", "last_name": "Le Guin"},
			repo:           &stubRepo{},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "created with dates",
			body:           map[string]any{"first_name": "Isaac", "last_name": "Asimov", "date_of_birth": "1920-01-02", "date_of_death": "1992-04-06"},
			repo:           &stubRepo{},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing last name",
			body:           map[string]any{"first_name": "Ursula"},
			repo:           &stubRepo{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed date",
			body:           map[string]any{"first_name": "Isaac", "last_name": "Asimov", "date_of_birth": "02/01/1920"},
			repo:           &stubRepo{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHTTPHandler(NewService(tt.repo))

			w := httptest.NewRecorder()
			r := testutil.NewRequest(http.MethodPost, "/authors", tt.body)

			handler.Create(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHTTPHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		a := Author{ID: "a-1", FirstName: "Ursula", LastName: "Le Guin"}
		handler := NewHTTPHandler(NewService(&stubRepo{getAuthor: a}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/authors/a-1", nil)
		r.SetPathValue("id", "a-1")

		handler.Get(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "Le Guin", data["last_name"])
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(&stubRepo{getErr: ErrNotFound}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/authors/missing", nil)
		r.SetPathValue("id", "missing")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	existing := Author{ID: "a-1", FirstName: "Ursula", LastName: "Le Guin"}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(&stubRepo{getAuthor: existing}))

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPatch, "/authors/a-1", map[string]any{"first_name": "Ursula K."})
		r.SetPathValue("id", "a-1")

		handler.Update(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "Ursula K.", data["first_name"])
		assert.Equal(t, "Le Guin", data["last_name"])
	})

	t.Run("blank last name rejected", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(&stubRepo{getAuthor: existing}))

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPatch, "/authors/a-1", map[string]any{"last_name": "  "})
		r.SetPathValue("id", "a-1")

		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(&stubRepo{getErr: ErrNotFound}))

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPatch, "/authors/missing", map[string]any{"first_name": "X"})
		r.SetPathValue("id", "missing")

		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(&stubRepo{}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/authors/a-1", nil)
		r.SetPathValue("id", "a-1")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewHTTPHandler(NewService(&stubRepo{deleteErr: ErrNotFound}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/authors/missing", nil)
		r.SetPathValue("id", "missing")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
