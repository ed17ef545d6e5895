package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listInstitutions(c *gin.Context) {
	items, err := h.institutions.List(c.Request.Context())
	if err != nil {
		writeError(c, "institution.list", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createInstitution(c *gin.Context) {
	var body institutionReq
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid body")
		return
	}
	req, err := body.toCreate()
	if err != nil {
		writeError(c, "institution.create", err)
		return
	}
	inst, err := h.institutions.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, "institution.create", err)
		return
	}
	c.JSON(http.StatusCreated, inst)
}

func (h *Handler) getInstitution(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.institutions.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "institution.get", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) updateInstitution(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body institutionReq
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid body")
		return
	}
	req, err := body.toUpdate()
	if err != nil {
		writeError(c, "institution.update", err)
		return
	}
	inst, err := h.institutions.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, "institution.update", err)
		return
	}
	c.JSON(http.StatusOK, inst)
}

func (h *Handler) deleteInstitution(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.institutions.Delete(c.Request.Context(), id); err != nil {
		writeError(c, "institution.delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}
