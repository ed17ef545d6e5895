package service

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/derived"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

// InstitutionStore is the gateway contract for institutions.
type InstitutionStore interface {
	Create(ctx context.Context, req *domain.CreateInstitutionRequest) (*domain.Institution, error)
	GetByID(ctx context.Context, id int64) (*domain.Institution, error)
	List(ctx context.Context) ([]domain.Institution, error)
	Update(ctx context.Context, id int64, req *domain.UpdateInstitutionRequest) (*domain.Institution, error)
	Delete(ctx context.Context, id int64) error
}

// UserStore is the gateway contract for users.
type UserStore interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	FindBy(ctx context.Context, field, value string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, req *domain.UpdateUserRequest) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectStore is the gateway contract for projects.
type ProjectStore interface {
	Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByInstitution(ctx context.Context, institutionID int64) ([]domain.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Project, error)
	Update(ctx context.Context, id int64, req *domain.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// Clock supplies the reference date for days_left.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// SystemClock uses time.Now in loc.
func SystemClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

// Today returns the current calendar date in the clock's location.
func (c Clock) Today() time.Time {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return derived.Today(now(), c.Location)
}
