package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		writeError(c, "project.list", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) listOverdueProjects(c *gin.Context) {
	items, err := h.projects.Overdue(c.Request.Context())
	if err != nil {
		writeError(c, "project.overdue", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createProject(c *gin.Context) {
	var body projectReq
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid body")
		return
	}
	req, err := body.toCreate()
	if err != nil {
		writeError(c, "project.create", err)
		return
	}
	p, err := h.projects.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, "project.create", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "project.get", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body projectReq
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid body")
		return
	}
	req, err := body.toUpdate()
	if err != nil {
		writeError(c, "project.update", err)
		return
	}
	p, err := h.projects.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, "project.update", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		writeError(c, "project.delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}
