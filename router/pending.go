package router

import (
	"sync"
	"time"
)

// DefaultPendingTTL bounds how long a quote can wait for
// confirmation. Quotes carry a five minute upstream deadline, holding
// them longer only produces failed swaps.
const DefaultPendingTTL = 5 * time.Minute

// PendingStore keeps the latest quote per session until the user
// confirms or it expires. Each session sees only its own quote.
type PendingStore struct {
	mu  sync.Mutex
	m   map[string]SwapQuote
	ttl time.Duration
	now func() time.Time
}

// NewPendingStore builds a store with the given TTL. A zero TTL falls
// back to DefaultPendingTTL.
func NewPendingStore(ttl time.Duration) *PendingStore {
	if ttl <= 0 {
		ttl = DefaultPendingTTL
	}
	return &PendingStore{
		m:   make(map[string]SwapQuote),
		ttl: ttl,
		now: time.Now,
	}
}

// Put stores the quote for its session, replacing any earlier one.
func (s *PendingStore) Put(sessionID string, q SwapQuote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.CreatedAt = s.now()
	s.m[sessionID] = q
	s.sweepLocked()
}

// Get returns the session's pending quote if it exists and has not
// expired. The quote stays stored so a confirmation can be retried.
func (s *PendingStore) Get(sessionID string) (SwapQuote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.m[sessionID]
	if !ok {
		return SwapQuote{}, false
	}
	if s.now().Sub(q.CreatedAt) > s.ttl {
		delete(s.m, sessionID)
		return SwapQuote{}, false
	}
	return q, true
}

// Delete drops the session's pending quote.
func (s *PendingStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sessionID)
}

// Len reports the number of live entries.
func (s *PendingStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

func (s *PendingStore) sweepLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, q := range s.m {
		if q.CreatedAt.Before(cutoff) {
			delete(s.m, id)
		}
	}
}
