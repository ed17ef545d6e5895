// Package jobs runs background work over the registry: the overdue
// project sweep and the cron scheduler that triggers it.
package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
)

// OverdueSweep logs every project whose end date has passed.
type OverdueSweep struct {
	projects *service.ProjectService
}

func NewOverdueSweep(projects *service.ProjectService) *OverdueSweep {
	return &OverdueSweep{projects: projects}
}

// Run returns the overdue projects it found.
func (s *OverdueSweep) Run(ctx context.Context) ([]service.ProjectView, error) {
	overdue, err := s.projects.Overdue(ctx)
	if err != nil {
		return nil, fmt.Errorf("overdue sweep: %w", err)
	}
	for _, p := range overdue {
		log.Printf("[warn] overdue project id=%d name=%q end_date=%s days_left=%d institution=%d user=%d",
			p.ID, p.Name, p.EndDate, p.DaysLeft, p.InstitutionID, p.UserID)
	}
	log.Printf("[info] overdue sweep finished count=%d", len(overdue))
	return overdue, nil
}
