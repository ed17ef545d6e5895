package http

import (
	"errors"
	"time"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

// Request bodies use pointers so a missing key can be told apart from an
// empty value; dates travel as YYYY-MM-DD strings.

type institutionReq struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Address      *string `json:"address"`
	CreationDate *string `json:"creation_date"`
}

type projectReq struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	InstitutionID *int64  `json:"institution_id"`
	UserID        *int64  `json:"user_id"`
}

type userReq struct {
	Name      *string `json:"name"`
	LastName  *string `json:"last_name"`
	RUT       *string `json:"rut"`
	BirthDate *string `json:"birth_date"`
	Position  *string `json:"position"`
	Age       *int    `json:"age"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// dates parses optional date fields, collecting format errors. A nil
// field stays nil so required-ness is left to the request's Validate.
type dates struct {
	errs domain.ValidationErrors
}

func (d *dates) optional(field string, v *string) *time.Time {
	if v == nil {
		return nil
	}
	t, err := domain.ParseDate(field, *v)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			d.errs = append(d.errs, ve)
		}
		return nil
	}
	return &t
}

func (d *dates) required(field string, v *string) time.Time {
	if t := d.optional(field, v); t != nil {
		return *t
	}
	return time.Time{}
}

func (r *institutionReq) toCreate() (*domain.CreateInstitutionRequest, error) {
	var d dates
	req := &domain.CreateInstitutionRequest{
		Name:         deref(r.Name),
		Description:  r.Description,
		Address:      r.Address,
		CreationDate: d.required("creation_date", r.CreationDate),
	}
	return req, d.errs.Err()
}

func (r *institutionReq) toUpdate() (*domain.UpdateInstitutionRequest, error) {
	var d dates
	req := &domain.UpdateInstitutionRequest{
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		CreationDate: d.optional("creation_date", r.CreationDate),
	}
	return req, d.errs.Err()
}

func (r *projectReq) toCreate() (*domain.CreateProjectRequest, error) {
	var d dates
	req := &domain.CreateProjectRequest{
		Name:          deref(r.Name),
		Description:   r.Description,
		StartDate:     d.required("start_date", r.StartDate),
		EndDate:       d.required("end_date", r.EndDate),
		InstitutionID: deref(r.InstitutionID),
		UserID:        deref(r.UserID),
	}
	return req, d.errs.Err()
}

func (r *projectReq) toUpdate() (*domain.UpdateProjectRequest, error) {
	var d dates
	req := &domain.UpdateProjectRequest{
		Name:          r.Name,
		Description:   r.Description,
		StartDate:     d.optional("start_date", r.StartDate),
		EndDate:       d.optional("end_date", r.EndDate),
		InstitutionID: r.InstitutionID,
		UserID:        r.UserID,
	}
	return req, d.errs.Err()
}

func (r *userReq) toCreate() (*domain.CreateUserRequest, error) {
	var d dates
	req := &domain.CreateUserRequest{
		Name:      deref(r.Name),
		LastName:  deref(r.LastName),
		RUT:       deref(r.RUT),
		BirthDate: d.required("birth_date", r.BirthDate),
		Position:  r.Position,
		Age:       r.Age,
	}
	return req, d.errs.Err()
}

func (r *userReq) toUpdate() (*domain.UpdateUserRequest, error) {
	var d dates
	req := &domain.UpdateUserRequest{
		Name:      r.Name,
		LastName:  r.LastName,
		RUT:       r.RUT,
		BirthDate: d.optional("birth_date", r.BirthDate),
		Position:  r.Position,
		Age:       r.Age,
	}
	return req, d.errs.Err()
}
