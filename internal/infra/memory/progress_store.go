package memory

import "sync"

// ProgressStore is a map-backed implementation of the persistent key-value
// contract. Suited to tests and single-node runs without Redis.
type ProgressStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{values: make(map[string]string)}
}

func (s *ProgressStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ProgressStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *ProgressStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Len reports the number of stored keys. Test helper.
func (s *ProgressStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
