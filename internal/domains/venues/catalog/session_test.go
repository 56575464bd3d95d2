package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
	"github.com/savioruz/kickmatch/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedFetch(snap *Snapshot) FetchFunc {
	return func(context.Context) (*Snapshot, error) {
		return snap, nil
	}
}

func TestSession_CurrentBeforeRefresh(t *testing.T) {
	s := NewSession(clock.NewMockClock(time.Now()))

	_, err := s.Current()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	_, err = s.Relocate(1, 1)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSession_RefreshInstallsSnapshot(t *testing.T) {
	s := NewSession(clock.NewMockClock(time.Now()))
	snap := NewSnapshot(DemoVenues(), entity.SourceDemo, DefaultOrigin)

	got, err := s.Refresh(context.Background(), fixedFetch(snap))
	require.NoError(t, err)
	assert.Same(t, snap, got)

	current, err := s.Current()
	require.NoError(t, err)
	assert.Same(t, snap, current)

	_, err = s.Refresh(context.Background(), func(context.Context) (*Snapshot, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	current, err = s.Current()
	require.NoError(t, err)
	assert.Same(t, snap, current, "failed refresh keeps the previous snapshot")
}

func TestSession_NewerRefreshSupersedesInFlight(t *testing.T) {
	s := NewSession(clock.NewMockClock(time.Now()))
	newer := NewSnapshot(DemoVenues(), entity.SourceDemo, DefaultOrigin)

	started := make(chan struct{})
	cancelled := make(chan struct{})

	var (
		wg       sync.WaitGroup
		firstErr error
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		_, firstErr = s.Refresh(context.Background(), func(ctx context.Context) (*Snapshot, error) {
			close(started)
			<-ctx.Done()
			close(cancelled)

			return NewSnapshot(nil, entity.SourcePlaces, DefaultOrigin), nil
		})
	}()

	<-started

	got, err := s.Refresh(context.Background(), fixedFetch(newer))
	require.NoError(t, err)
	assert.Same(t, newer, got)

	wg.Wait()

	select {
	case <-cancelled:
	default:
		t.Fatal("in-flight fetch was not cancelled")
	}

	assert.ErrorIs(t, firstErr, ErrSuperseded)

	current, err := s.Current()
	require.NoError(t, err)
	assert.Same(t, newer, current)
}

func TestSession_Relocate(t *testing.T) {
	s := NewSession(clock.NewMockClock(time.Now()))

	_, err := s.Refresh(context.Background(), fixedFetch(NewSnapshot(DemoVenues(), entity.SourceDemo, DefaultOrigin)))
	require.NoError(t, err)

	moved, err := s.Relocate(3.4376, -76.5225)
	require.NoError(t, err)
	assert.Equal(t, "2", moved.Venues()[0].ID)

	current, err := s.Current()
	require.NoError(t, err)
	assert.Same(t, moved, current)
}

func TestRegistry_Sweep(t *testing.T) {
	c := clock.NewMockClock(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	r := NewRegistry(c, 30*time.Minute)

	stale := r.Session("stale")
	assert.Same(t, stale, r.Session("stale"))

	c.Advance(20 * time.Minute)
	r.Session("fresh")

	c.Advance(15 * time.Minute)

	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	_, ok := r.Lookup("stale")
	assert.False(t, ok)

	_, ok = r.Lookup("fresh")
	assert.True(t, ok)
}
