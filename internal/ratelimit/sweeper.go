package ratelimit

import (
	"sync"
	"time"

	"github.com/studioforma/contact-api/internal/logging"
)

// DefaultSweepInterval bounds how long expired records can linger in memory
const DefaultSweepInterval = 5 * time.Minute

// Sweeper periodically evicts expired rate-limit records
type Sweeper struct {
	limiter  *Limiter
	interval time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewSweeper creates a sweeper for the given limiter. A non-positive interval
// falls back to the default.
func NewSweeper(limiter *Limiter, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		limiter:  limiter,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the sweep task in the background
func (s *Sweeper) Start() {
	s.wg.Add(1)
	go s.runPeriodically()
}

// Stop gracefully stops the sweep task
func (s *Sweeper) Stop() {
	close(s.done)
	s.wg.Wait()
}

func (s *Sweeper) runPeriodically() {
	defer s.wg.Done()
	logger := logging.GetLogger()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.limiter.Sweep(); removed > 0 {
				logger.Debug("rate limit sweep removed %d expired records", removed)
			}
		case <-s.done:
			logger.Info("rate limit sweeper stopped")
			return
		}
	}
}
