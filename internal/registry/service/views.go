package service

import (
	"time"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/derived"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

// InstitutionView is an institution with its derived location and abbreviation.
type InstitutionView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Address      *string `json:"address"`
	Location     string  `json:"location,omitempty"`
	Abbreviation string  `json:"abbreviation"`
	CreationDate string  `json:"creation_date"`
}

// InstitutionDetail adds the institution's projects and their responsible users.
type InstitutionDetail struct {
	InstitutionView
	Projects []InstitutionProject `json:"projects"`
}

type InstitutionProject struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	StartDate   string           `json:"start_date"`
	EndDate     string           `json:"end_date"`
	DaysLeft    int              `json:"days_left"`
	Responsible *ResponsibleView `json:"responsible"`
}

type ResponsibleView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	LastName string  `json:"last_name"`
	Position *string `json:"position"`
}

// ProjectView is a project with its days_left against the reference date.
type ProjectView struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	DaysLeft      int     `json:"days_left"`
	Description   *string `json:"description"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	InstitutionID int64   `json:"institution_id"`
	UserID        int64   `json:"user_id"`
}

type UserView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	LastName  string  `json:"last_name"`
	RUT       string  `json:"rut"`
	BirthDate string  `json:"birth_date"`
	Position  *string `json:"position"`
	Age       *int    `json:"age"`
}

// UserDetail is a user looked up by RUT with the projects it is responsible for.
type UserDetail struct {
	ID       int64         `json:"id"`
	RUT      string        `json:"rut"`
	Name     string        `json:"name"`
	LastName string        `json:"last_name"`
	Position *string       `json:"position"`
	Projects []UserProject `json:"projects"`
}

type UserProject struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	DaysLeft    int             `json:"days_left"`
	Institution *InstitutionRef `json:"institution"`
}

type InstitutionRef struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Address      *string `json:"address"`
	CreationDate string  `json:"creation_date"`
}

func institutionView(inst *domain.Institution) InstitutionView {
	address := ""
	if inst.Address != nil {
		address = *inst.Address
	}
	return InstitutionView{
		ID:           inst.ID,
		Name:         inst.Name,
		Description:  inst.Description,
		Address:      inst.Address,
		Location:     derived.MapLink(address),
		Abbreviation: derived.Abbreviation(inst.Name),
		CreationDate: domain.FormatDate(inst.CreationDate),
	}
}

func institutionRef(inst *domain.Institution) *InstitutionRef {
	return &InstitutionRef{
		ID:           inst.ID,
		Name:         inst.Name,
		Description:  inst.Description,
		Address:      inst.Address,
		CreationDate: domain.FormatDate(inst.CreationDate),
	}
}

func projectView(p *domain.Project, today time.Time) ProjectView {
	return ProjectView{
		ID:            p.ID,
		Name:          p.Name,
		DaysLeft:      derived.DaysLeft(p.EndDate, today),
		Description:   p.Description,
		StartDate:     domain.FormatDate(p.StartDate),
		EndDate:       domain.FormatDate(p.EndDate),
		InstitutionID: p.InstitutionID,
		UserID:        p.UserID,
	}
}

func userView(u *domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		RUT:       u.RUT,
		BirthDate: domain.FormatDate(u.BirthDate),
		Position:  u.Position,
		Age:       u.Age,
	}
}

func responsibleView(u *domain.User) *ResponsibleView {
	return &ResponsibleView{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Position: u.Position,
	}
}
