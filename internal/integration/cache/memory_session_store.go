package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
)

type memoryEntry struct {
	session   entity.SurveySession
	expiresAt time.Time
}

// memorySessionStore implements adapter.SurveySessionStore in process memory.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionStore creates an in-memory session store. A zero ttl never expires.
func NewMemorySessionStore(ttl time.Duration) adapter.SurveySessionStore {
	return &memorySessionStore{
		sessions: make(map[uuid.UUID]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save creates or replaces a session.
func (s *memorySessionStore) Save(_ context.Context, session *entity.SurveySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{session: copySession(session)}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	s.sessions[session.ID] = entry
	s.evictExpiredLocked()
	return nil
}

// Get returns a session or ErrSessionNotFound.
func (s *memorySessionStore) Get(_ context.Context, id uuid.UUID) (*entity.SurveySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok || s.expired(entry) {
		delete(s.sessions, id)
		return nil, domainerror.ErrSessionNotFound
	}
	session := copySession(&entry.session)
	return &session, nil
}

// Delete removes a session.
func (s *memorySessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *memorySessionStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt)
}

func (s *memorySessionStore) evictExpiredLocked() {
	for id, entry := range s.sessions {
		if s.expired(entry) {
			delete(s.sessions, id)
		}
	}
}

// copySession detaches the answer slice so callers cannot mutate stored state.
func copySession(session *entity.SurveySession) entity.SurveySession {
	out := *session
	out.State.Answers = session.State.Answers.Clone()
	return out
}
