// Package scheduler starts a sync of every owner on a fixed interval.
package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/walletsync/internal/clock"
)

// Sweeper schedules one sync chain per owner.
type Sweeper interface {
	ScheduleSyncAll(ctx context.Context) (int, error)
}

type Scheduler struct {
	sweeper  Sweeper
	clock    clock.Clock
	interval time.Duration
	logger   *logrus.Logger
}

func New(sweeper Sweeper, c clock.Clock, interval time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{sweeper: sweeper, clock: c, interval: interval, logger: logger}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	scheduled, err := s.sweeper.ScheduleSyncAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Scheduler.Sweep.Error")
		return
	}
	s.logger.WithField("scheduled", scheduled).Debug("Scheduler.Sweep.Complete")
}
