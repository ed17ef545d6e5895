package service

import (
	"context"

	"github.com/GoSim-25-26J-441/registry-backend/internal/logging"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

// ProjectService handles project use cases
type ProjectService struct {
	projects ProjectStore
	clock    Clock
}

// NewProjectService creates a new project service
func NewProjectService(projects ProjectStore, clock Clock) *ProjectService {
	return &ProjectService{projects: projects, clock: clock}
}

// List returns every project with days_left.
func (s *ProjectService) List(ctx context.Context) ([]ProjectView, error) {
	items, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Today()
	out := make([]ProjectView, 0, len(items))
	for i := range items {
		out = append(out, projectView(&items[i], today))
	}
	return out, nil
}

// Overdue returns the projects whose end date is before today.
func (s *ProjectService) Overdue(ctx context.Context) ([]ProjectView, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProjectView, 0)
	for _, p := range all {
		if p.DaysLeft < 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*ProjectView, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := projectView(p, s.clock.Today())
	return &v, nil
}

// Create stores a project; unknown institution or user ids are rejected by the store.
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*ProjectView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := s.projects.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	logging.New(ctx).Infof("project.create", "id=%d institution=%d user=%d", p.ID, p.InstitutionID, p.UserID)
	v := projectView(p, s.clock.Today())
	return &v, nil
}

func (s *ProjectService) Update(ctx context.Context, id int64, req *domain.UpdateProjectRequest) (*ProjectView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := s.projects.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	logging.New(ctx).Infof("project.update", "id=%d", id)
	v := projectView(p, s.clock.Today())
	return &v, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	logging.New(ctx).Infof("project.delete", "id=%d", id)
	return nil
}
