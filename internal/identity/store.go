package identity

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User carries credentials as registered. Passwords are stored and compared
// as plain text: this is a demo store with no durability, and hashing is
// explicitly out of scope.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	Password string `json:"-"`
}

type Store struct {
	mu         sync.RWMutex
	byUsername map[string]User

	// adminUsernames marks usernames that register straight into the admin
	// role. Nothing in the API itself ever grants admin; without this boot
	// seed the admin view is unreachable.
	adminUsernames map[string]struct{}
}

func NewStore(adminUsernames []string) *Store {
	s := &Store{
		byUsername:     make(map[string]User),
		adminUsernames: make(map[string]struct{}, len(adminUsernames)),
	}
	for _, u := range adminUsernames {
		s.adminUsernames[u] = struct{}{}
	}
	return s
}

func (s *Store) Register(username, password, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[username]; ok {
		return ErrDuplicateUsername
	}

	_, admin := s.adminUsernames[username]
	s.byUsername[username] = User{
		Username: username,
		Email:    email,
		Password: password,
		IsAdmin:  admin,
	}
	return nil
}

func (s *Store) Verify(username, password string) (User, error) {
	s.mu.RLock()
	u, ok := s.byUsername[username]
	s.mu.RUnlock()

	if !ok || u.Password != password {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Store) Get(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byUsername[username]
	return u, ok
}

// List returns every registered user sorted by username, for the admin view.
func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.byUsername))
	for _, u := range s.byUsername {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}
