package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID. A caller-supplied value is kept,
// otherwise one is generated; either way it is echoed on the response and
// stored in the request context for logging.
const HeaderRequestID = "X-Request-Id"

func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), id)))
	})
}
