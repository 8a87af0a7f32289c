package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
)

// SearchSession serializes the route searches of one operator. Starting a new
// search cancels the one in flight, and only the most recent search may commit
// its result; an older search that completes late returns domain.ErrSuperseded.
type SearchSession struct {
	search RouteSearchUseCase
	clock  timeutil.Clock

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	inFlight   int
	latest     *domain.RouteSearchResult
	lastUsed   time.Time
}

// NewSearchSession creates a session that runs searches through search.
func NewSearchSession(search RouteSearchUseCase, clock timeutil.Clock) *SearchSession {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &SearchSession{
		search:   search,
		clock:    clock,
		lastUsed: clock.Now(),
	}
}

// Search validates criteria and, when they are valid, runs them as with Run.
// Invalid criteria leave the running search alone.
func (s *SearchSession) Search(ctx context.Context, criteria domain.RouteSearchCriteria) (*domain.RouteSearchResult, error) {
	query, err := s.search.Prepare(criteria)
	if err != nil {
		s.touch()
		return nil, err
	}
	return s.Run(ctx, query)
}

// Run supersedes any search in flight and executes query, which must come from
// RouteSearchUseCase.Prepare.
func (s *SearchSession) Run(ctx context.Context, query domain.RouteQuery) (*domain.RouteSearchResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	s.cancel = cancel
	s.inFlight++
	s.lastUsed = s.clock.Now()
	s.mu.Unlock()

	result, err := s.search.Execute(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	s.lastUsed = s.clock.Now()

	if gen != s.generation {
		return nil, domain.ErrSuperseded
	}
	s.cancel = nil
	if err != nil {
		return nil, err
	}
	s.latest = result
	return result, nil
}

// Cancel aborts the search in flight, if any. Its caller receives domain.ErrSuperseded.
func (s *SearchSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.generation++
	}
}

// Latest returns the last committed result.
func (s *SearchSession) Latest() (*domain.RouteSearchResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.latest != nil
}

func (s *SearchSession) touch() {
	s.mu.Lock()
	s.lastUsed = s.clock.Now()
	s.mu.Unlock()
}

// idleSince reports whether the session has no search in flight and was last
// used at or before cutoff.
func (s *SearchSession) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight == 0 && !s.lastUsed.After(cutoff)
}

// Sessions is a registry of operator search sessions keyed by session id.
type Sessions struct {
	search  RouteSearchUseCase
	idleTTL time.Duration
	clock   timeutil.Clock

	mu       sync.Mutex
	sessions map[string]*SearchSession
}

// NewSessions creates an empty registry. Sessions idle for idleTTL are removed by Evict.
func NewSessions(search RouteSearchUseCase, idleTTL time.Duration, clock timeutil.Clock) *Sessions {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Sessions{
		search:   search,
		idleTTL:  idleTTL,
		clock:    clock,
		sessions: make(map[string]*SearchSession),
	}
}

// Get returns the session for key, creating it on first use. An empty key gets
// a fresh session that is not registered, so anonymous searches never supersede
// each other.
func (s *Sessions) Get(key string) *SearchSession {
	if key == "" {
		return NewSearchSession(s.search, s.clock)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[key]
	if !ok {
		session = NewSearchSession(s.search, s.clock)
		s.sessions[key] = session
	}
	return session
}

// Len returns the number of registered sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Evict removes sessions that have been idle for at least the idle TTL and
// returns how many were removed.
func (s *Sessions) Evict() int {
	cutoff := s.clock.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, session := range s.sessions {
		if session.idleSince(cutoff) {
			delete(s.sessions, key)
			removed++
		}
	}
	return removed
}

// Run evicts idle sessions every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Evict()
		}
	}
}
