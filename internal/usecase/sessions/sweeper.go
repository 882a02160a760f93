package sessions

import (
	"context"
	"time"

	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

// Sweeper periodically closes sessions whose keep-alive has lapsed. It is the
// only mechanism that reclaims slots from clients that crashed or lost
// connectivity without calling End.
type Sweeper struct {
	repo     Repository
	log      logger.Interface
	timeout  time.Duration
	interval time.Duration
	now      func() time.Time
}

// SweeperOption -.
type SweeperOption func(*Sweeper)

// SweeperClock injects a deterministic time source for tests.
func SweeperClock(now func() time.Time) SweeperOption {
	return func(s *Sweeper) {
		s.now = now
	}
}

// NewSweeper -.
func NewSweeper(repo Repository, log logger.Interface, keepAliveTimeout, interval time.Duration, opts ...SweeperOption) *Sweeper {
	s := &Sweeper{
		repo:     repo,
		log:      log,
		timeout:  keepAliveTimeout,
		interval: interval,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run ticks until the context is canceled. It is meant to be started as its
// own goroutine alongside the HTTP server.
func (s *Sweeper) Run(ctx context.Context) {
	s.log.Info("sessions - sweeper started: timeout=%s interval=%s", s.timeout, s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("sessions - sweeper stopped")

			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass: every session whose last keep-alive is older than the
// timeout is closed with a compare-and-close, so a keep-alive racing the
// sweep keeps its session. A failure on one session never aborts the pass.
func (s *Sweeper) Sweep(ctx context.Context) (closed int) {
	cutoff := s.now().UTC().Truncate(time.Second).Add(-s.timeout)

	lapsed, err := s.repo.ListLapsed(ctx, cutoff)
	if err != nil {
		s.log.Error("sessions - sweep - ListLapsed: %v", err)

		return 0
	}

	failed := 0

	for i := range lapsed {
		ok, err := s.repo.DeleteIfUntouched(ctx, lapsed[i].ID, lapsed[i].LastKeepAlive)
		if err != nil {
			failed++

			s.log.Error("sessions - sweep - DeleteIfUntouched: session=%s: %v", lapsed[i].ID, err)

			continue
		}

		if ok {
			closed++
		}
	}

	if closed > 0 || failed > 0 {
		s.log.Info("sessions - sweep: closed=%d failed=%d", closed, failed)
	}

	return closed
}
