package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Temutjin2k/lapla/internal/domain/types"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it back
// and puts it into the log context.
func (a *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(types.RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		w.Header().Set(types.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(wrap.WithRequestID(r.Context(), id)))
	})
}
