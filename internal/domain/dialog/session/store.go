package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// State holds the ephemeral flags of one user's ongoing dialogue. The flags
// suppress repeated opt-in prompting within a session; they are never
// persisted to the subscription store.
type State struct {
	DailyNotificationAsked bool
	PushNotificationAsked  bool

	lastAccess time.Time
}

// Store is an in-memory session store. Sessions are created on first access
// and discarded after the TTL elapses without access.
type Store struct {
	sessions map[string]*State
	mu       sync.Mutex
	ttl      time.Duration
	stop     chan struct{}
	logger   zerolog.Logger
}

func NewStore(ttl time.Duration, logger zerolog.Logger) *Store {
	s := &Store{
		sessions: make(map[string]*State),
		ttl:      ttl,
		stop:     make(chan struct{}),
		logger:   logger.With().Str("component", "session_store").Logger(),
	}

	go s.janitor()

	return s
}

// Get returns the state for a session, creating it on first access.
// The returned state must only be used within the handling of one turn;
// turns of the same session are processed sequentially by the host.
func (s *Store) Get(sessionID string) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		state = &State{}
		s.sessions[sessionID] = state
		s.logger.Debug().
			Str("session_id", sessionID).
			Msg("session created")
	}
	state.lastAccess = time.Now()

	return state
}

// End discards a session's state
func (s *Store) End(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	s.logger.Debug().
		Str("session_id", sessionID).
		Msg("session ended")
}

// Close stops the expiry janitor
func (s *Store) Close() {
	close(s.stop)
}

func (s *Store) janitor() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.expire()
		}
	}
}

func (s *Store) expire() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, state := range s.sessions {
		if state.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
			expired++
		}
	}

	if expired > 0 {
		s.logger.Debug().
			Int("expired", expired).
			Msg("expired idle sessions")
	}
}
