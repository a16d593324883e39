package identity

import (
	"net/http"

	"CommonStore/internal/session"
	"CommonStore/pkg/kit"
)

// RequireUser gates routes that need a logged-in session user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := session.FromContext(r.Context())
		if !ok {
			kit.WriteError(w, r, http.StatusUnauthorized, "missing session token", nil)
			return
		}
		if _, ok := s.Username(); !ok {
			kit.WriteError(w, r, http.StatusUnauthorized, "not authenticated", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates the admin view: 401 without a logged-in user, 403 when
// the user's admin flag is false. The admin flag is checked against the
// store on every request, not the session.
func RequireAdmin(users *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := session.FromContext(r.Context())
			if !ok {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing session token", nil)
				return
			}

			username, ok := s.Username()
			if !ok {
				kit.WriteError(w, r, http.StatusUnauthorized, "not authenticated", nil)
				return
			}

			u, ok := users.Get(username)
			if !ok || !u.IsAdmin {
				kit.WriteError(w, r, http.StatusForbidden, "not authorized", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
