package app

import (
	"context"
	"math/rand"
	"time"

	"ecoquest-quiz-service/internal/domain"
	"ecoquest-quiz-service/internal/game"
)

// SessionRepository abstracts how player sessions are tracked (in-memory per
// node; progress itself lives in the key-value store).
type SessionRepository interface {
	GetOrCreate(playerID string, create func() *PlayerSession) *PlayerSession
	Get(playerID string) (*PlayerSession, bool)
	DeleteIfIdle(playerID string)
}

// BankRepository loads question banks (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context, bankID string) (domain.Bank, error)
}

// GameService contains the quiz game use cases. It owns a flat progress
// store and namespaces keys per player.
type GameService struct {
	sessions SessionRepository
	banks    BankRepository
	progress game.Store
	rules    game.Rules
	bankID   string
	now      func() time.Time
}

func NewGameService(sessions SessionRepository, banks BankRepository, progress game.Store, rules game.Rules, bankID string) *GameService {
	return NewGameServiceWithClock(sessions, banks, progress, rules, bankID, time.Now)
}

// NewGameServiceWithClock is test-only for deterministic dates.
func NewGameServiceWithClock(sessions SessionRepository, banks BankRepository, progress game.Store, rules game.Rules, bankID string, now func() time.Time) *GameService {
	return &GameService{
		sessions: sessions,
		banks:    banks,
		progress: progress,
		rules:    rules,
		bankID:   bankID,
		now:      now,
	}
}

// Join restores or creates the player's session and returns the screen to
// render. Players cannot join before the bank loads.
func (s *GameService) Join(ctx context.Context, playerID string) (domain.Snapshot, error) {
	bank, err := s.banks.GetBank(ctx, s.bankID)
	if err != nil {
		return domain.Snapshot{}, err
	}

	session := s.sessions.GetOrCreate(playerID, func() *PlayerSession {
		store := playerStore{inner: s.progress, prefix: "eco:" + playerID + ":"}
		rng := rand.New(rand.NewSource(s.now().UnixNano()))
		return NewPlayerSession(playerID, game.NewSessionWithClock(bank, store, s.rules, s.now, rng))
	})
	return session.snapshot(), nil
}

func (s *GameService) SubmitName(_ context.Context, playerID, name string) (domain.Snapshot, []domain.Effect, error) {
	return s.apply(playerID, func(g *game.Session) (domain.Snapshot, []domain.Effect, error) {
		return g.SubmitName(name)
	})
}

func (s *GameService) ChooseDifficulty(_ context.Context, playerID, tier string) (domain.Snapshot, []domain.Effect, error) {
	return s.apply(playerID, func(g *game.Session) (domain.Snapshot, []domain.Effect, error) {
		return g.ChooseDifficulty(tier)
	})
}

func (s *GameService) SelectOption(_ context.Context, playerID, option string) (domain.Snapshot, []domain.Effect, error) {
	return s.apply(playerID, func(g *game.Session) (domain.Snapshot, []domain.Effect, error) {
		return g.SelectOption(option)
	})
}

func (s *GameService) ConfirmSelection(_ context.Context, playerID string) (domain.Snapshot, []domain.Effect, error) {
	return s.apply(playerID, func(g *game.Session) (domain.Snapshot, []domain.Effect, error) {
		return g.ConfirmSelection()
	})
}

func (s *GameService) Advance(_ context.Context, playerID string) (domain.Snapshot, []domain.Effect, error) {
	return s.apply(playerID, func(g *game.Session) (domain.Snapshot, []domain.Effect, error) {
		return g.Advance()
	})
}

func (s *GameService) PlayAgain(_ context.Context, playerID string) (domain.Snapshot, []domain.Effect, error) {
	return s.apply(playerID, func(g *game.Session) (domain.Snapshot, []domain.Effect, error) {
		return g.PlayAgain()
	})
}

func (s *GameService) ResetGame(_ context.Context, playerID string) (domain.Snapshot, []domain.Effect, error) {
	return s.apply(playerID, func(g *game.Session) (domain.Snapshot, []domain.Effect, error) {
		return g.ResetGame()
	})
}

func (s *GameService) LogTask(_ context.Context, playerID, description string) (domain.Snapshot, []domain.Effect, error) {
	return s.apply(playerID, func(g *game.Session) (domain.Snapshot, []domain.Effect, error) {
		return g.LogTask(description)
	})
}

// Certificate supplies the export tuple for the certificate collaborator.
func (s *GameService) Certificate(_ context.Context, playerID string) (domain.Certificate, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return domain.Certificate{}, domain.ErrSessionNotFound
	}
	return session.certificate()
}

// Subscribe returns a channel that receives snapshot updates for a player.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *GameService) Subscribe(_ context.Context, playerID string) (<-chan domain.Snapshot, func(), error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.subscribe()
	return ch, cancel, nil
}

// Leave drops the in-memory session once nobody is watching it. Persisted
// progress survives in the store and is restored on the next Join.
func (s *GameService) Leave(_ context.Context, playerID string) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return
	}
	if session.idle() {
		s.sessions.DeleteIfIdle(playerID)
	}
}

// apply runs one serialized operation against the player's state machine and
// broadcasts the resulting snapshot to subscribers.
func (s *GameService) apply(playerID string, op func(*game.Session) (domain.Snapshot, []domain.Effect, error)) (domain.Snapshot, []domain.Effect, error) {
	session, ok := s.sessions.Get(playerID)
	if !ok {
		return domain.Snapshot{}, nil, domain.ErrSessionNotFound
	}
	return session.apply(op)
}

// playerStore namespaces the shared key-value store for one player.
type playerStore struct {
	inner  game.Store
	prefix string
}

func (p playerStore) Get(key string) (string, bool) { return p.inner.Get(p.prefix + key) }
func (p playerStore) Set(key, value string)         { p.inner.Set(p.prefix+key, value) }
func (p playerStore) Delete(key string)             { p.inner.Delete(p.prefix + key) }
