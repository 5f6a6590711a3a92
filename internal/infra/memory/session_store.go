package memory

import (
	"sync"

	"ecoquest-quiz-service/internal/app"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*app.PlayerSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*app.PlayerSession),
	}
}

func (s *SessionStore) GetOrCreate(playerID string, create func() *app.PlayerSession) *app.PlayerSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[playerID]; ok {
		return session
	}
	session := create()
	s.sessions[playerID] = session
	return session
}

func (s *SessionStore) Get(playerID string) (*app.PlayerSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[playerID]
	return session, ok
}

func (s *SessionStore) DeleteIfIdle(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[playerID]
	if !ok {
		return
	}
	if session.Idle() {
		delete(s.sessions, playerID)
	}
}
