package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueSpec runs the sweep nightly at 00:00 (six-field spec, seconds first).
const DefaultOverdueSpec = "0 0 0 * * *"

const sweepTimeout = 2 * time.Minute

type Scheduler struct {
	cron  *cron.Cron
	sweep *OverdueSweep
}

func NewScheduler(sweep *OverdueSweep, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:  cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		sweep: sweep,
	}
}

// Start registers the sweep under spec and starts the cron loop.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		spec = DefaultOverdueSpec
	}
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if _, err := s.sweep.Run(ctx); err != nil {
			log.Printf("[error] %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create cron job %q: %w", spec, err)
	}

	log.Printf("Cron scheduler started (overdue sweep at %q)", spec)
	s.cron.Start()
	return nil
}

// Stop halts scheduling; the returned context is done once a running sweep finishes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
