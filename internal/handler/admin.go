package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
)

// ListUsers returns accounts, optionally filtered by role. Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	role := domain.Role(c.Query("role"))
	if role != "" && !role.Valid() {
		resp.Fail(c.Writer, resp.BadRequest("invalid role"))
		return
	}

	users, err := h.svc.Users.List(c.Request.Context(), role)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}
	if users == nil {
		users = []*domain.User{}
	}

	resp.Success(c.Writer, users)
}

// GetUser returns one account. Admin only.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.svc.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, user)
}

// setActiveRequest toggles an account's active flag.
type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetUserActive suspends or reinstates an account. Admin only.
func (h *Handler) SetUserActive(c *gin.Context) {
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	if err := h.svc.Users.SetActive(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer)
}
