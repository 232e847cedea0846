package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	summary Summary
	err     error
}

func (s *stubRepo) Summary(ctx context.Context) (Summary, error) {
	return s.summary, s.err
}

func TestHTTPHandler_Summary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewHTTPHandler(&stubRepo{summary: Summary{
			Books:           12,
			Copies:          40,
			CopiesAvailable: 25,
			Authors:         7,
			Genres:          5,
		}})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/summary", nil)

		handler.Summary(w, r)

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, float64(12), data["books"])
		assert.Equal(t, float64(25), data["copies_available"])
	})

	t.Run("repository error", func(t *testing.T) {
		handler := NewHTTPHandler(&stubRepo{err: context.DeadlineExceeded})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/summary", nil)

		handler.Summary(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
