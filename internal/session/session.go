package session

import (
	"sync"

	"github.com/google/uuid"

	"CommonStore/internal/cart"
)

// Session is the per-visitor scope: a cart and the logged-in username, if
// any. Everything here is volatile and dies with the process.
type Session struct {
	ID   string
	Cart *cart.Cart

	mu       sync.Mutex
	username string
}

func (s *Session) Login(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
}

// Logout clears the logged-in user. Safe to call when nobody is logged in.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
}

func (s *Session) Username() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username, s.username != ""
}

// Manager owns every live session. Sessions are never expired here; the
// token TTL bounds their reachability.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Create() *Session {
	s := &Session{
		ID:   "s_" + uuid.NewString(),
		Cart: cart.New(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
