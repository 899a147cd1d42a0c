package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAllowsUpToMaxWithinWindow(t *testing.T) {
	l := NewLimiter()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return base })

	for i := 1; i <= 5; i++ {
		assert.False(t, l.Check("1.2.3.4", 5, time.Minute), "request %d should not be limited", i)
	}
	assert.True(t, l.Check("1.2.3.4", 5, time.Minute), "6th request should be limited")
	assert.True(t, l.Check("1.2.3.4", 5, time.Minute), "7th request should stay limited")
}

func TestCheckIsolatesIdentifiers(t *testing.T) {
	l := NewLimiter()

	for i := 0; i < 5; i++ {
		l.Check("1.2.3.4", 5, time.Minute)
	}
	assert.True(t, l.Check("1.2.3.4", 5, time.Minute))
	assert.False(t, l.Check("5.6.7.8", 5, time.Minute), "other identifiers keep their own budget")
}

func TestCheckResetsAfterWindowElapses(t *testing.T) {
	l := NewLimiter()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return now })

	for i := 0; i < 6; i++ {
		l.Check("1.2.3.4", 5, time.Minute)
	}
	require.True(t, l.Check("1.2.3.4", 5, time.Minute))

	// Advance past windowEnd; the record must be replaced, not incremented
	now = now.Add(61 * time.Second)
	assert.False(t, l.Check("1.2.3.4", 5, time.Minute), "fresh window should not be limited")
}

func TestCheckBoundary(t *testing.T) {
	l := NewLimiter()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return now })

	require.False(t, l.Check("a", 1, time.Minute))

	// Exactly at windowEnd the window is still active
	now = now.Add(time.Minute)
	assert.True(t, l.Check("a", 1, time.Minute))

	now = now.Add(time.Nanosecond)
	assert.False(t, l.Check("a", 1, time.Minute))
}

func TestSweepRemovesOnlyExpiredRecords(t *testing.T) {
	l := NewLimiter()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return now })

	l.Check("expired", 5, time.Minute)
	now = now.Add(2 * time.Minute)
	l.Check("active", 5, time.Minute)

	removed := l.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, l.Size())

	// The surviving record still enforces its count
	for i := 0; i < 4; i++ {
		l.Check("active", 5, time.Minute)
	}
	assert.True(t, l.Check("active", 5, time.Minute))
}

func TestSweeperEvictsInBackground(t *testing.T) {
	l := NewLimiter()
	past := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return past })
	for i := 0; i < 10; i++ {
		l.Check(fmt.Sprintf("client-%d", i), 5, time.Minute)
	}
	require.Equal(t, 10, l.Size())

	l.SetClock(time.Now)

	s := NewSweeper(l, 10*time.Millisecond)
	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return l.Size() == 0 },
		time.Second, 5*time.Millisecond, "expired records should be swept")
}
