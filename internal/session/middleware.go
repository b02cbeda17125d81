package session

import (
	"net/http"
)

// RequireAdmin redirects to the login page when the request lacks a valid
// admin session. Denial is a routing decision, not an error.
func RequireAdmin(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || !svc.IsAuthenticated(cookie.Value) {
				http.Redirect(w, r, "/admin/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
