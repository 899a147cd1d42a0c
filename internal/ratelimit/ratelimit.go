package ratelimit

import (
	"sync"
	"time"
)

// Record is the per-client fixed-window counter
type Record struct {
	Count     int
	WindowEnd time.Time
}

// Limiter counts requests per client identifier in fixed windows. State lives
// in process memory only; correctness holds within a single running instance.
type Limiter struct {
	mu      sync.Mutex
	records map[string]*Record
	now     func() time.Time
}

func NewLimiter() *Limiter {
	return &Limiter{
		records: make(map[string]*Record),
		now:     time.Now,
	}
}

// Check records one request for identifier and reports whether it exceeds
// max requests within the current window (true = limited). The first request
// after the window elapses replaces the record rather than incrementing it.
func (l *Limiter) Check(identifier string, max int, window time.Duration) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[identifier]
	if !ok || now.After(rec.WindowEnd) {
		l.records[identifier] = &Record{Count: 1, WindowEnd: now.Add(window)}
		return false
	}

	rec.Count++
	return rec.Count > max
}

// Sweep drops records whose window has already elapsed and returns how many
// were removed. Purely a memory bound; skipping a sweep never affects Check.
func (l *Limiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, rec := range l.records {
		if now.After(rec.WindowEnd) {
			delete(l.records, id)
			removed++
		}
	}
	return removed
}

// Size returns the number of tracked identifiers
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// SetClock overrides the time source for deterministic tests
func (l *Limiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
