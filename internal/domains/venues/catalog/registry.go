package catalog

import (
	"sync"
	"time"

	"github.com/savioruz/kickmatch/pkg/clock"
)

// Registry keeps one Session per client key.
type Registry struct {
	mu       sync.Mutex
	clock    clock.Clock
	idle     time.Duration
	sessions map[string]*Session
}

func NewRegistry(c clock.Clock, idle time.Duration) *Registry {
	return &Registry{
		clock:    c,
		idle:     idle,
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) Session(key string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]
	if !ok {
		s = NewSession(r.clock)
		r.sessions[key] = s
	}

	return s
}

// Lookup returns the session for key without creating one.
func (r *Registry) Lookup(key string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[key]

	return s, ok
}

// Sweep drops sessions idle for longer than the configured window and returns how many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.clock.Now().Add(-r.idle).UnixNano()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0

	for key, s := range r.sessions {
		if s.idleSince(cutoff) {
			delete(r.sessions, key)

			removed++
		}
	}

	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
