package middlewares

import (
	"fmt"
	"net/http"

	"github.com/bangre/mediatheque/internal/models"
)

// RequestSizeLimitMiddleware rejects request bodies over maxRequestSize bytes.
// Requests declaring an oversize Content-Length are refused before any read;
// chunked bodies are capped by http.MaxBytesReader so handlers never consume
// more than the ceiling.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	body := []byte(fmt.Sprintf(`{"error":%q}`, models.ErrPayloadTooLarge.Error()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write(body)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}
