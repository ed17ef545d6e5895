package domain

import "time"

// Institution owns zero or more projects. Projects are loaded through the
// store, never embedded here.
type Institution struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Address      *string   `json:"address"`
	CreationDate time.Time `json:"creation_date"`
}

// User is a person responsible for projects, identified externally by RUT.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"last_name"`
	RUT       string    `json:"rut"`
	BirthDate time.Time `json:"birth_date"`
	Position  *string   `json:"position"`
	Age       *int      `json:"age"`
}

// Project belongs to exactly one institution and one user.
type Project struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	InstitutionID int64     `json:"institution_id"`
	UserID        int64     `json:"user_id"`
}

// MaxRUTLength mirrors the width of users.rut.
const MaxRUTLength = 12

// CreateInstitutionRequest represents data needed to create an institution
type CreateInstitutionRequest struct {
	Name         string
	Description  *string
	Address      *string
	CreationDate time.Time
}

// UpdateInstitutionRequest carries the fields to overwrite; nil leaves a field untouched.
type UpdateInstitutionRequest struct {
	Name         *string
	Description  *string
	Address      *string
	CreationDate *time.Time
}

// Apply merges the supplied fields into inst.
func (r *UpdateInstitutionRequest) Apply(inst *Institution) {
	if r.Name != nil {
		inst.Name = *r.Name
	}
	if r.Description != nil {
		inst.Description = r.Description
	}
	if r.Address != nil {
		inst.Address = r.Address
	}
	if r.CreationDate != nil {
		inst.CreationDate = *r.CreationDate
	}
}

// CreateUserRequest represents data needed to create a user
type CreateUserRequest struct {
	Name      string
	LastName  string
	RUT       string
	BirthDate time.Time
	Position  *string
	Age       *int
}

// UpdateUserRequest carries the fields to overwrite; nil leaves a field untouched.
type UpdateUserRequest struct {
	Name      *string
	LastName  *string
	RUT       *string
	BirthDate *time.Time
	Position  *string
	Age       *int
}

// Apply merges the supplied fields into u.
func (r *UpdateUserRequest) Apply(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
	if r.RUT != nil {
		u.RUT = *r.RUT
	}
	if r.BirthDate != nil {
		u.BirthDate = *r.BirthDate
	}
	if r.Position != nil {
		u.Position = r.Position
	}
	if r.Age != nil {
		u.Age = r.Age
	}
}

// CreateProjectRequest represents data needed to create a project
type CreateProjectRequest struct {
	Name          string
	Description   *string
	StartDate     time.Time
	EndDate       time.Time
	InstitutionID int64
	UserID        int64
}

// UpdateProjectRequest carries the fields to overwrite; nil leaves a field untouched.
type UpdateProjectRequest struct {
	Name          *string
	Description   *string
	StartDate     *time.Time
	EndDate       *time.Time
	InstitutionID *int64
	UserID        *int64
}

// Apply merges the supplied fields into p.
func (r *UpdateProjectRequest) Apply(p *Project) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.StartDate != nil {
		p.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = *r.EndDate
	}
	if r.InstitutionID != nil {
		p.InstitutionID = *r.InstitutionID
	}
	if r.UserID != nil {
		p.UserID = *r.UserID
	}
}
