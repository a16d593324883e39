package storefront

import (
	"net/http"

	"go.uber.org/zap"

	"CommonStore/pkg/kit"
)

type sessionResp struct {
	Token string `json:"token"`
}

// handleNewSession starts a fresh visitor session: an empty cart, nobody
// logged in. The returned token authorizes every session-scoped route.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Create()

	tok, err := s.Tokens.New(sess.ID, sessionTTL)
	if err != nil {
		s.Log.Error("session token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, sessionResp{Token: tok})
}
