// SPDX-License-Identifier: MIT
package sessions

import (
	"time"

	"go.uber.org/zap"
)

// Purger deletes sessions idle since before a cutoff
type Purger interface {
	Purge(before time.Time) (int64, error)
}

// Scheduler purges idle sessions on a fixed interval
type Scheduler struct {
	Purger        Purger
	TTL           time.Duration
	PurgeInterval time.Duration
	Logger        *zap.Logger
	Now           func() time.Time

	ticker   *time.Ticker
	done     chan bool
	stopChan chan bool
}

// NewScheduler purges sessions older than ttl once an hour
func NewScheduler(p Purger, ttl time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		Purger:        p,
		TTL:           ttl,
		PurgeInterval: time.Hour,
		Logger:        logger,
		Now:           time.Now,
		done:          make(chan bool, 1),
		stopChan:      make(chan bool, 1),
	}
}

// Start begins purging in a goroutine. The returned channel receives once
// the scheduler has stopped.
func (s *Scheduler) Start() chan bool {
	go func() {
		s.ticker = time.NewTicker(s.PurgeInterval)
		defer s.ticker.Stop()

		s.runPurge()

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-s.ticker.C:
				s.runPurge()
			}
		}
	}()

	return s.done
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- true:
	default:
	}
}

// RunOnce purges immediately and returns how many sessions were removed
func (s *Scheduler) RunOnce() (int64, error) {
	return s.Purger.Purge(s.Now().Add(-s.TTL))
}

func (s *Scheduler) runPurge() {
	n, err := s.RunOnce()
	if err != nil {
		s.Logger.Warn("session purge failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.Logger.Info("purged idle sessions", zap.Int64("count", n), zap.Duration("ttl", s.TTL))
	}
}
