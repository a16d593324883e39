package storefront

import (
	"errors"
	"net/http"
	"strings"

	"CommonStore/internal/identity"
	"CommonStore/internal/session"
	"CommonStore/pkg/kit"
)

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "username/password required", nil)
		return
	}

	if err := s.Users.Register(req.Username, req.Password, req.Email); err != nil {
		if errors.Is(err, identity.ErrDuplicateUsername) {
			kit.WriteError(w, r, http.StatusConflict, "username already exists", nil)
			return
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResp struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req loginReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)

	if req.Username == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "username/password required", nil)
		return
	}

	u, err := s.Users.Verify(req.Username, req.Password)
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	sess.Login(u.Username)
	kit.WriteJSON(w, http.StatusOK, userResp{Username: u.Username, IsAdmin: u.IsAdmin})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	// Unconditional: logging out a session with no user still succeeds.
	sess.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	username, ok := sess.Username()
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	u, ok := s.Users.Get(username)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, userResp{Username: u.Username, IsAdmin: u.IsAdmin})
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Users.List())
}
