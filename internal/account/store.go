package account

import (
	"strings"
	"sync"
)

// Store is the in-memory account registry. It owns the account collection
// outright; everything above it holds non-owning references. Contents are
// lost on process restart.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]Account
	order    []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{accounts: make(map[string]Account)}
}

func storeKey(username string) string {
	return strings.ToLower(username)
}

// Find looks an account up by username, case-insensitively.
func (s *Store) Find(username string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[storeKey(username)]
	return acc, ok
}

// Add appends the account. It fails with *AlreadyExistsError when the
// username is already taken under case-insensitive comparison.
func (s *Store) Add(acc Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := storeKey(acc.Username)
	if _, ok := s.accounts[k]; ok {
		return &AlreadyExistsError{Username: acc.Username}
	}
	s.accounts[k] = acc
	s.order = append(s.order, k)
	return nil
}

// SetPassword replaces the password of the matching account, leaving
// username and role untouched. Unknown usernames are a silent no-op.
func (s *Store) SetPassword(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := storeKey(username)
	acc, ok := s.accounts[k]
	if !ok {
		return
	}
	acc.Password = password
	s.accounts[k] = acc
}

// List returns all accounts in insertion order.
func (s *Store) List() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Account, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.accounts[k])
	}
	return out
}
