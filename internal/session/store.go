// Package session keeps per-user, in-memory assistant sessions. A session
// owns the behavioral profile and the rolling insights; both start from zero
// values and are never persisted by this backend.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mente-assistant-backend/internal/engine"
)

type Session struct {
	ID       string
	Profile  *engine.BehavioralProfile
	Insights *engine.SessionInsights
	LastSeen time.Time
}

type Store struct {
	mu     sync.Mutex
	byUser map[int]*Session
	ttl    time.Duration
	now    func() time.Time
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		byUser: make(map[int]*Session),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Get returns the user's live session, starting a fresh one if none exists
// or the previous one went stale. LastSeen is bumped on every call.
func (s *Store) Get(userID int) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.byUser[userID]
	if !ok || now.Sub(sess.LastSeen) > s.ttl {
		sess = &Session{
			ID:       uuid.NewString(),
			Profile:  engine.NewProfile(),
			Insights: engine.NewSessionInsights(now),
		}
		s.byUser[userID] = sess
	}
	sess.LastSeen = now
	return sess
}

// End discards the user's session so the next message starts clean.
func (s *Store) End(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
