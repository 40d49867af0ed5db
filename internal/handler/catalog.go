package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/ctxutil"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/service"
)

// ListServices returns the service catalog.
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.svc.Catalog.ListServices(c.Request.Context())
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, services)
}

// CreateService adds a service category. Admin only.
func (h *Handler) CreateService(c *gin.Context) {
	var req service.UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	svc, err := h.svc.Catalog.CreateService(c.Request.Context(), &req)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, svc)
}

// UpdateService edits a service category. Admin only.
func (h *Handler) UpdateService(c *gin.Context) {
	var req service.UpsertServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	svc, err := h.svc.Catalog.UpdateService(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, svc)
}

// DeleteService removes a service category. Admin only.
func (h *Handler) DeleteService(c *gin.Context) {
	if err := h.svc.Catalog.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusNoContent)
}

// ReplaceSkills swaps the calling laborer's skill set.
func (h *Handler) ReplaceSkills(c *gin.Context) {
	var req service.ReplaceSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	skills, err := h.svc.Catalog.ReplaceSkills(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), &req)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, skills)
}

// ListMySkills returns the calling laborer's skill set.
func (h *Handler) ListMySkills(c *gin.Context) {
	actor := ctxutil.GetActor(c.Request.Context())

	skills, err := h.svc.Catalog.ListSkills(c.Request.Context(), actor.ID)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, skills)
}

// GetLaborer returns the public profile of a laborer.
func (h *Handler) GetLaborer(c *gin.Context) {
	profile, err := h.svc.Users.Laborer(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, profile)
}
