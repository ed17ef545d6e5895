package http

import "github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"

// Handler bundles the dependencies for registry HTTP endpoints.
type Handler struct {
	institutions *service.InstitutionService
	projects     *service.ProjectService
	users        *service.UserService
}

func New(institutions *service.InstitutionService, projects *service.ProjectService, users *service.UserService) *Handler {
	return &Handler{
		institutions: institutions,
		projects:     projects,
		users:        users,
	}
}
