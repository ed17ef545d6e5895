package http

import "github.com/gin-gonic/gin"

// Register attaches institution, project and user routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	inst := rg.Group("/institutions")
	inst.GET("", h.listInstitutions)
	inst.POST("", h.createInstitution)
	inst.GET("/:id", h.getInstitution)
	inst.PUT("/:id", h.updateInstitution)
	inst.DELETE("/:id", h.deleteInstitution)

	proj := rg.Group("/projects")
	proj.GET("", h.listProjects)
	proj.POST("", h.createProject)
	proj.GET("/overdue", h.listOverdueProjects)
	proj.GET("/:id", h.getProject)
	proj.PUT("/:id", h.updateProject)
	proj.DELETE("/:id", h.deleteProject)

	users := rg.Group("/users")
	users.GET("", h.listUsers)
	users.POST("", h.createUser)
	users.GET("/rut/:rut", h.getUserByRUT)
	users.GET("/:id", h.getUser)
	users.PUT("/:id", h.updateUser)
	users.DELETE("/:id", h.deleteUser)
}
