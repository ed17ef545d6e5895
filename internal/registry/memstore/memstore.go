// Package memstore is an in-memory gateway with the same referential rules
// as the PostgreSQL schema: unique rut, foreign keys checked on write and
// restrict on delete. Service, handler, cache and job tests run against it.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
)

// Store holds the three tables behind one lock.
type Store struct {
	mu           sync.RWMutex
	institutions map[int64]domain.Institution
	users        map[int64]domain.User
	projects     map[int64]domain.Project
	nextID       map[string]int64
}

func New() *Store {
	return &Store{
		institutions: make(map[int64]domain.Institution),
		users:        make(map[int64]domain.User),
		projects:     make(map[int64]domain.Project),
		nextID:       make(map[string]int64),
	}
}

func (s *Store) Institutions() *Institutions { return &Institutions{s: s} }
func (s *Store) Users() *Users               { return &Users{s: s} }
func (s *Store) Projects() *Projects         { return &Projects{s: s} }

func (s *Store) allocate(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

var (
	_ service.InstitutionStore = (*Institutions)(nil)
	_ service.UserStore        = (*Users)(nil)
	_ service.ProjectStore     = (*Projects)(nil)
)

// sortedIDs returns map keys in ascending order, which is insertion order
// because ids are allocated monotonically.
func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

type Institutions struct{ s *Store }

func (t *Institutions) Create(_ context.Context, req *domain.CreateInstitutionRequest) (*domain.Institution, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	inst := domain.Institution{
		ID:           t.s.allocate("institutions"),
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		CreationDate: domain.DateOf(req.CreationDate),
	}
	t.s.institutions[inst.ID] = inst
	return &inst, nil
}

func (t *Institutions) GetByID(_ context.Context, id int64) (*domain.Institution, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	inst, ok := t.s.institutions[id]
	if !ok {
		return nil, domain.NewNotFound(domain.EntityInstitution, id)
	}
	return &inst, nil
}

func (t *Institutions) List(_ context.Context) ([]domain.Institution, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	out := make([]domain.Institution, 0, len(t.s.institutions))
	for _, id := range sortedIDs(t.s.institutions) {
		out = append(out, t.s.institutions[id])
	}
	return out, nil
}

func (t *Institutions) Update(_ context.Context, id int64, req *domain.UpdateInstitutionRequest) (*domain.Institution, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	inst, ok := t.s.institutions[id]
	if !ok {
		return nil, domain.NewNotFound(domain.EntityInstitution, id)
	}
	req.Apply(&inst)
	inst.CreationDate = domain.DateOf(inst.CreationDate)
	t.s.institutions[id] = inst
	return &inst, nil
}

func (t *Institutions) Delete(_ context.Context, id int64) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.institutions[id]; !ok {
		return domain.NewNotFound(domain.EntityInstitution, id)
	}
	for _, p := range t.s.projects {
		if p.InstitutionID == id {
			return domain.NewConflict(domain.EntityInstitution, "projects still reference it", nil)
		}
	}
	delete(t.s.institutions, id)
	return nil
}

type Users struct{ s *Store }

func (t *Users) rutTaken(rut string, except int64) bool {
	for id, u := range t.s.users {
		if id != except && u.RUT == rut {
			return true
		}
	}
	return false
}

func (t *Users) Create(_ context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.rutTaken(req.RUT, 0) {
		return nil, domain.NewConflict(domain.EntityUser, "rut already registered", nil)
	}
	u := domain.User{
		ID:        t.s.allocate("users"),
		Name:      req.Name,
		LastName:  req.LastName,
		RUT:       req.RUT,
		BirthDate: domain.DateOf(req.BirthDate),
		Position:  req.Position,
		Age:       req.Age,
	}
	t.s.users[u.ID] = u
	return &u, nil
}

func (t *Users) GetByID(_ context.Context, id int64) (*domain.User, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	u, ok := t.s.users[id]
	if !ok {
		return nil, domain.NewNotFound(domain.EntityUser, id)
	}
	return &u, nil
}

func (t *Users) FindBy(_ context.Context, field, value string) (*domain.User, error) {
	var match func(u domain.User) bool
	switch field {
	case "rut":
		match = func(u domain.User) bool { return u.RUT == value }
	case "name":
		match = func(u domain.User) bool { return u.Name == value }
	case "last_name":
		match = func(u domain.User) bool { return u.LastName == value }
	default:
		return nil, domain.NewUnknownField(field)
	}

	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	for _, id := range sortedIDs(t.s.users) {
		if u := t.s.users[id]; match(u) {
			return &u, nil
		}
	}
	return nil, domain.NewNotFound(domain.EntityUser, value)
}

func (t *Users) List(_ context.Context) ([]domain.User, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	out := make([]domain.User, 0, len(t.s.users))
	for _, id := range sortedIDs(t.s.users) {
		out = append(out, t.s.users[id])
	}
	return out, nil
}

func (t *Users) Update(_ context.Context, id int64, req *domain.UpdateUserRequest) (*domain.User, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	u, ok := t.s.users[id]
	if !ok {
		return nil, domain.NewNotFound(domain.EntityUser, id)
	}
	if req.RUT != nil && t.rutTaken(*req.RUT, id) {
		return nil, domain.NewConflict(domain.EntityUser, "rut already registered", nil)
	}
	req.Apply(&u)
	u.BirthDate = domain.DateOf(u.BirthDate)
	t.s.users[id] = u
	return &u, nil
}

func (t *Users) Delete(_ context.Context, id int64) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.users[id]; !ok {
		return domain.NewNotFound(domain.EntityUser, id)
	}
	for _, p := range t.s.projects {
		if p.UserID == id {
			return domain.NewConflict(domain.EntityUser, "projects still reference it", nil)
		}
	}
	delete(t.s.users, id)
	return nil
}

type Projects struct{ s *Store }

// checkRefs must run with the write lock held.
func (t *Projects) checkRefs(institutionID, userID int64) error {
	if _, ok := t.s.institutions[institutionID]; !ok {
		return domain.NewUnknownReference("institution_id", nil)
	}
	if _, ok := t.s.users[userID]; !ok {
		return domain.NewUnknownReference("user_id", nil)
	}
	return nil
}

func (t *Projects) Create(_ context.Context, req *domain.CreateProjectRequest) (*domain.Project, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if err := t.checkRefs(req.InstitutionID, req.UserID); err != nil {
		return nil, err
	}
	p := domain.Project{
		ID:            t.s.allocate("projects"),
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     domain.DateOf(req.StartDate),
		EndDate:       domain.DateOf(req.EndDate),
		InstitutionID: req.InstitutionID,
		UserID:        req.UserID,
	}
	t.s.projects[p.ID] = p
	return &p, nil
}

func (t *Projects) GetByID(_ context.Context, id int64) (*domain.Project, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	p, ok := t.s.projects[id]
	if !ok {
		return nil, domain.NewNotFound(domain.EntityProject, id)
	}
	return &p, nil
}

func (t *Projects) filter(keep func(domain.Project) bool) []domain.Project {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	out := make([]domain.Project, 0)
	for _, id := range sortedIDs(t.s.projects) {
		if p := t.s.projects[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (t *Projects) List(_ context.Context) ([]domain.Project, error) {
	return t.filter(func(domain.Project) bool { return true }), nil
}

func (t *Projects) ListByInstitution(_ context.Context, institutionID int64) ([]domain.Project, error) {
	return t.filter(func(p domain.Project) bool { return p.InstitutionID == institutionID }), nil
}

func (t *Projects) ListByUser(_ context.Context, userID int64) ([]domain.Project, error) {
	return t.filter(func(p domain.Project) bool { return p.UserID == userID }), nil
}

func (t *Projects) Update(_ context.Context, id int64, req *domain.UpdateProjectRequest) (*domain.Project, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	p, ok := t.s.projects[id]
	if !ok {
		return nil, domain.NewNotFound(domain.EntityProject, id)
	}
	req.Apply(&p)
	if err := t.checkRefs(p.InstitutionID, p.UserID); err != nil {
		return nil, err
	}
	p.StartDate = domain.DateOf(p.StartDate)
	p.EndDate = domain.DateOf(p.EndDate)
	t.s.projects[id] = p
	return &p, nil
}

func (t *Projects) Delete(_ context.Context, id int64) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.projects[id]; !ok {
		return domain.NewNotFound(domain.EntityProject, id)
	}
	delete(t.s.projects, id)
	return nil
}
