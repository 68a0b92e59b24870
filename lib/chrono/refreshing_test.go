package chrono

import (
	"planzajec-backend/lib/timezone"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type steppingSource struct {
	calls atomic.Int64
	start time.Time
}

func (s *steppingSource) now() time.Time {
	n := s.calls.Add(1)
	return s.start.Add(time.Duration(n) * time.Minute)
}

func TestRefreshingLazyWithoutScheduler(t *testing.T) {
	source := &steppingSource{start: time.Date(2024, time.March, 4, 8, 0, 0, 0, timezone.Location)}
	clock := NewRefreshing(source.now)

	first := clock.Now()
	second := clock.Now()
	require.True(t, second.After(first))
}

func TestRefreshingCachesOnceStarted(t *testing.T) {
	source := &steppingSource{start: time.Date(2024, time.March, 4, 8, 0, 0, 0, timezone.Location)}
	clock := NewRefreshing(source.now)

	require.NoError(t, clock.Start(time.Hour))
	defer clock.Stop()
	require.NoError(t, clock.Start(time.Hour))

	first := clock.Now()
	require.Equal(t, first, clock.Now())

	invalidated := clock.Invalidate()
	require.True(t, invalidated.After(first))
	require.Equal(t, invalidated, clock.Now())
}

func TestRefreshingTicks(t *testing.T) {
	source := &steppingSource{start: time.Date(2024, time.March, 4, 8, 0, 0, 0, timezone.Location)}
	clock := NewRefreshing(source.now)

	require.NoError(t, clock.Start(time.Second))
	defer clock.Stop()

	first := clock.Now()
	require.Eventually(t, func() bool {
		return clock.Now().After(first)
	}, 5*time.Second, 50*time.Millisecond)
}

func TestFixed(t *testing.T) {
	instant := time.Date(2024, time.March, 4, 7, 45, 0, 0, time.UTC)
	clock := Fixed(instant)
	require.Equal(t, 8, clock.Now().Hour())
	require.True(t, clock.Now().Equal(instant))
}
