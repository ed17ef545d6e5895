package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/registry-backend/internal/logging"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

// InstitutionService handles institution use cases
type InstitutionService struct {
	institutions InstitutionStore
	projects     ProjectStore
	users        UserStore
	clock        Clock
}

// NewInstitutionService creates a new institution service
func NewInstitutionService(institutions InstitutionStore, projects ProjectStore, users UserStore, clock Clock) *InstitutionService {
	return &InstitutionService{
		institutions: institutions,
		projects:     projects,
		users:        users,
		clock:        clock,
	}
}

// List returns every institution with derived fields.
func (s *InstitutionService) List(ctx context.Context) ([]InstitutionView, error) {
	items, err := s.institutions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]InstitutionView, 0, len(items))
	for i := range items {
		out = append(out, institutionView(&items[i]))
	}
	return out, nil
}

// Create validates and stores a new institution.
func (s *InstitutionService) Create(ctx context.Context, req *domain.CreateInstitutionRequest) (*InstitutionView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	inst, err := s.institutions.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	logging.New(ctx).Infof("institution.create", "id=%d", inst.ID)
	v := institutionView(inst)
	return &v, nil
}

// Get returns an institution with its projects and each project's responsible user.
func (s *InstitutionService) Get(ctx context.Context, id int64) (*InstitutionDetail, error) {
	inst, err := s.institutions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.ListByInstitution(ctx, id)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	responsible := make(map[int64]*ResponsibleView)
	detail := &InstitutionDetail{
		InstitutionView: institutionView(inst),
		Projects:        make([]InstitutionProject, 0, len(projects)),
	}
	for i := range projects {
		p := &projects[i]
		rv, ok := responsible[p.UserID]
		if !ok {
			rv, err = s.lookupResponsible(ctx, p)
			if err != nil {
				return nil, err
			}
			responsible[p.UserID] = rv
		}
		pv := projectView(p, today)
		detail.Projects = append(detail.Projects, InstitutionProject{
			ID:          pv.ID,
			Name:        pv.Name,
			Description: pv.Description,
			StartDate:   pv.StartDate,
			EndDate:     pv.EndDate,
			DaysLeft:    pv.DaysLeft,
			Responsible: rv,
		})
	}
	return detail, nil
}

func (s *InstitutionService) lookupResponsible(ctx context.Context, p *domain.Project) (*ResponsibleView, error) {
	u, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logging.New(ctx).Warnf("institution.get", "project=%d references missing user=%d", p.ID, p.UserID)
			return nil, nil
		}
		return nil, fmt.Errorf("load responsible of project %d: %w", p.ID, err)
	}
	return responsibleView(u), nil
}

// Update overwrites the supplied fields.
func (s *InstitutionService) Update(ctx context.Context, id int64, req *domain.UpdateInstitutionRequest) (*InstitutionView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	inst, err := s.institutions.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	logging.New(ctx).Infof("institution.update", "id=%d", id)
	v := institutionView(inst)
	return &v, nil
}

// Delete removes an institution that no project references.
func (s *InstitutionService) Delete(ctx context.Context, id int64) error {
	if err := s.institutions.Delete(ctx, id); err != nil {
		return err
	}
	logging.New(ctx).Infof("institution.delete", "id=%d", id)
	return nil
}
