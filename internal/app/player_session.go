package app

import (
	"sync"

	"ecoquest-quiz-service/internal/domain"
	"ecoquest-quiz-service/internal/game"
)

// PlayerSession serializes access to one player's state machine and fans
// snapshot updates out to subscribers (extra tabs of the same player).
type PlayerSession struct {
	id          string
	mu          sync.Mutex
	game        *game.Session
	subscribers map[chan domain.Snapshot]struct{}
}

func NewPlayerSession(id string, g *game.Session) *PlayerSession {
	return &PlayerSession{
		id:          id,
		game:        g,
		subscribers: make(map[chan domain.Snapshot]struct{}),
	}
}

func (p *PlayerSession) apply(op func(*game.Session) (domain.Snapshot, []domain.Effect, error)) (domain.Snapshot, []domain.Effect, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap, effects, err := op(p.game)
	if err != nil {
		return domain.Snapshot{}, nil, err
	}
	p.broadcastLocked(snap)
	return snap, effects, nil
}

func (p *PlayerSession) snapshot() domain.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.Snapshot()
}

func (p *PlayerSession) certificate() (domain.Certificate, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.game.Certificate()
}

func (p *PlayerSession) subscribe() (<-chan domain.Snapshot, func()) {
	ch := make(chan domain.Snapshot, 8)

	p.mu.Lock()
	p.subscribers[ch] = struct{}{}
	initial := p.game.Snapshot()
	p.mu.Unlock()

	ch <- initial

	cancel := func() {
		p.mu.Lock()
		if _, ok := p.subscribers[ch]; ok {
			delete(p.subscribers, ch)
			close(ch)
		}
		p.mu.Unlock()
	}
	return ch, cancel
}

func (p *PlayerSession) idle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subscribers) == 0
}

// Idle reports whether the session has no subscribers.
func (p *PlayerSession) Idle() bool {
	return p.idle()
}

func (p *PlayerSession) broadcastLocked(snap domain.Snapshot) {
	for ch := range p.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the stale update so a slow client never blocks the writer.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
