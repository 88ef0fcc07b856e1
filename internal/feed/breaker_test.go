package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pfrederiksen/pool-standings/internal/scoring"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	calls int
	err   error
	rows  []scoring.Row
}

func (s *stubSource) Fetch(ctx context.Context) ([]scoring.Row, error) {
	s.calls++
	return s.rows, s.err
}

func TestBreakerSource_TripsAfterFailures(t *testing.T) {
	stub := &stubSource{err: errors.New("feed down")}
	src := NewBreakerSource(stub, 2, time.Hour)

	for i := 0; i < 2; i++ {
		_, err := src.Fetch(context.Background())
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, src.State())

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, stub.calls, "open breaker must not call the feed")
}

func TestBreakerSource_PassesRows(t *testing.T) {
	stub := &stubSource{rows: []scoring.Row{{"PLAYER": "Sam Burns"}}}
	src := NewBreakerSource(stub, 3, time.Minute)

	rows, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sam Burns", rows[0]["PLAYER"])
	assert.Equal(t, gobreaker.StateClosed, src.State())
}

func TestBreakerSource_IgnoresCancellation(t *testing.T) {
	stub := &stubSource{err: context.Canceled}
	src := NewBreakerSource(stub, 1, time.Hour)

	for i := 0; i < 3; i++ {
		_, err := src.Fetch(context.Background())
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, src.State())
}
