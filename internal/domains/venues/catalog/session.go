package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/savioruz/kickmatch/pkg/clock"
)

var (
	ErrSuperseded = errors.New("catalog: search superseded by a newer one")
	ErrNoSnapshot = errors.New("catalog: no search has completed yet")
)

type FetchFunc func(ctx context.Context) (*Snapshot, error)

// Session owns the current snapshot of one client. A new Refresh cancels the one in flight.
type Session struct {
	mu       sync.Mutex
	clock    clock.Clock
	current  *Snapshot
	cancel   context.CancelFunc
	gen      uint64
	lastUsed int64
}

func NewSession(c clock.Clock) *Session {
	return &Session{
		clock:    c,
		lastUsed: c.Now().UnixNano(),
	}
}

// Refresh runs fetch and installs its snapshot. A caller overtaken by a newer Refresh gets ErrSuperseded
// and its snapshot is discarded.
func (s *Session) Refresh(ctx context.Context, fetch FetchFunc) (*Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}

	s.gen++
	gen := s.gen
	s.cancel = cancel
	s.touch()
	s.mu.Unlock()

	snap, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return nil, ErrSuperseded
	}

	s.cancel = nil

	if err != nil {
		return nil, err
	}

	s.current = snap

	return snap, nil
}

func (s *Session) Current() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()

	if s.current == nil {
		return nil, ErrNoSnapshot
	}

	return s.current, nil
}

func (s *Session) Relocate(lat, lon float64) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()

	if s.current == nil {
		return nil, ErrNoSnapshot
	}

	s.current = s.current.Relocate(lat, lon)

	return s.current, nil
}

// idleSince reports whether the session has been untouched since cutoff and has no refresh running.
func (s *Session) idleSince(cutoff int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancel == nil && s.lastUsed < cutoff
}

func (s *Session) touch() {
	s.lastUsed = s.clock.Now().UnixNano()
}
