package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listUsers(c *gin.Context) {
	items, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, "user.list", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createUser(c *gin.Context) {
	var body userReq
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid body")
		return
	}
	req, err := body.toCreate()
	if err != nil {
		writeError(c, "user.create", err)
		return
	}
	u, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, "user.create", err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "user.get", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// getUserByRUT returns the user with its projects and their institutions.
func (h *Handler) getUserByRUT(c *gin.Context) {
	detail, err := h.users.GetByRUT(c.Request.Context(), c.Param("rut"))
	if err != nil {
		writeError(c, "user.get_by_rut", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) updateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body userReq
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid body")
		return
	}
	req, err := body.toUpdate()
	if err != nil {
		writeError(c, "user.update", err)
		return
	}
	u, err := h.users.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, "user.update", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeError(c, "user.delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}
