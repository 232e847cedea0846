package genre

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/testutil"

	"github.com/stretchr/testify/assert"
)

type stubRepo struct {
	genre   Genre
	genres  []Genre
	getErr  error
	listErr error
}

func (s *stubRepo) Create(ctx context.Context, g *Genre) error {
	g.ID = "created-id"
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (Genre, error) {
	return s.genre, s.getErr
}

func (s *stubRepo) List(ctx context.Context) ([]Genre, error) {
	return s.genres, s.listErr
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler := NewHTTPHandler(&stubRepo{})

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/genres", map[string]any{"name": "Science Fiction"})

		handler.Create(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusCreated, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "Science Fiction", data["name"])
	})

	t.Run("blank name", func(t *testing.T) {
		handler := NewHTTPHandler(&stubRepo{})

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/genres", map[string]any{"name": "   "})

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler := NewHTTPHandler(&stubRepo{genre: Genre{ID: "g-1", Name: "Fantasy"}})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/genres/g-1", nil)
		r.SetPathValue("id", "g-1")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewHTTPHandler(&stubRepo{getErr: ErrNotFound})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/genres/missing", nil)
		r.SetPathValue("id", "missing")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
