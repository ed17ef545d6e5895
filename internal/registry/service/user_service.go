package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/registry-backend/internal/logging"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

// UserService handles user use cases
type UserService struct {
	users        UserStore
	projects     ProjectStore
	institutions InstitutionStore
	clock        Clock
}

// NewUserService creates a new user service
func NewUserService(users UserStore, projects ProjectStore, institutions InstitutionStore, clock Clock) *UserService {
	return &UserService{
		users:        users,
		projects:     projects,
		institutions: institutions,
		clock:        clock,
	}
}

func (s *UserService) List(ctx context.Context) ([]UserView, error) {
	items, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserView, 0, len(items))
	for i := range items {
		out = append(out, userView(&items[i]))
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*UserView, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := userView(u)
	return &v, nil
}

// GetByRUT returns a user with its projects and each project's institution.
func (s *UserService) GetByRUT(ctx context.Context, rut string) (*UserDetail, error) {
	u, err := s.users.FindBy(ctx, "rut", strings.TrimSpace(rut))
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	institutions := make(map[int64]*InstitutionRef)
	detail := &UserDetail{
		ID:       u.ID,
		RUT:      u.RUT,
		Name:     u.Name,
		LastName: u.LastName,
		Position: u.Position,
		Projects: make([]UserProject, 0, len(projects)),
	}
	for i := range projects {
		p := &projects[i]
		ref, ok := institutions[p.InstitutionID]
		if !ok {
			ref, err = s.lookupInstitution(ctx, p)
			if err != nil {
				return nil, err
			}
			institutions[p.InstitutionID] = ref
		}
		pv := projectView(p, today)
		detail.Projects = append(detail.Projects, UserProject{
			ID:          pv.ID,
			Name:        pv.Name,
			Description: pv.Description,
			StartDate:   pv.StartDate,
			EndDate:     pv.EndDate,
			DaysLeft:    pv.DaysLeft,
			Institution: ref,
		})
	}
	return detail, nil
}

func (s *UserService) lookupInstitution(ctx context.Context, p *domain.Project) (*InstitutionRef, error) {
	inst, err := s.institutions.GetByID(ctx, p.InstitutionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logging.New(ctx).Warnf("user.get_by_rut", "project=%d references missing institution=%d", p.ID, p.InstitutionID)
			return nil, nil
		}
		return nil, fmt.Errorf("load institution of project %d: %w", p.ID, err)
	}
	return institutionRef(inst), nil
}

func (s *UserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*UserView, error) {
	req.RUT = strings.TrimSpace(req.RUT)
	if err := req.Validate(); err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	logging.New(ctx).Infof("user.create", "id=%d", u.ID)
	v := userView(u)
	return &v, nil
}

func (s *UserService) Update(ctx context.Context, id int64, req *domain.UpdateUserRequest) (*UserView, error) {
	if req.RUT != nil {
		rut := strings.TrimSpace(*req.RUT)
		req.RUT = &rut
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	u, err := s.users.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	logging.New(ctx).Infof("user.update", "id=%d", id)
	v := userView(u)
	return &v, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	logging.New(ctx).Infof("user.delete", "id=%d", id)
	return nil
}
