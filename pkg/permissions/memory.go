package permissions

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps users in memory. Records it returns are copies: changes
// are only visible to other callers once saved.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*User
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(users ...*User) *MemoryStore {
	s := &MemoryStore{users: make(map[uuid.UUID]*User, len(users))}
	for _, u := range users {
		s.users[u.ID] = CopyUser(u)
	}
	return s
}

func (s *MemoryStore) User(id uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, found := s.users[id]; found {
		return CopyUser(u), nil
	}
	return nil, ErrUserNotFound
}

func (s *MemoryStore) SaveUser(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[r.UniqueID()] = CopyUser(r)
	return nil
}

func (s *MemoryStore) EnsureUser(id uuid.UUID, name string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, found := s.users[id]
	if !found {
		u = NewUser(id, name)
		s.users[id] = u
	} else if name != "" {
		u.Name = name
	}
	return CopyUser(u), nil
}

func (s *MemoryStore) UserByName(name string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Name, name) {
			return CopyUser(u), nil
		}
	}
	return nil, ErrUserNotFound
}
