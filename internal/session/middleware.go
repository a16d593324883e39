package session

import (
	"context"
	"net/http"
	"strings"

	"CommonStore/pkg/kit"
)

type ctxKey struct{}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}

// Require resolves the bearer token to a live session and puts it on the
// request context. Requests without a valid token for a known session get
// a 401.
func Require(m *Manager, tokens *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing session token", nil)
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid session token", nil)
				return
			}

			s, ok := m.Get(claims.SessionID)
			if !ok {
				kit.WriteError(w, r, http.StatusUnauthorized, "unknown session", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, s)))
		})
	}
}
