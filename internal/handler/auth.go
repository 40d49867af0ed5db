package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/ctxutil"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/service"
)

// Register handles account creation.
// @Summary Register a customer or laborer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Register request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid request", "error", err)
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	result, err := h.svc.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn(c.Request.Context(), "register failed", "error", err)
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, result)
}

// Login handles credential login.
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Login request"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	result, err := h.svc.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, result)
}

// Refresh trades a refresh token for a new token pair.
func (h *Handler) Refresh(c *gin.Context) {
	var req service.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	result, err := h.svc.Auth.Refresh(c.Request.Context(), &req)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, result)
}

// Profile returns the caller's account.
func (h *Handler) Profile(c *gin.Context) {
	user, err := h.svc.Auth.Profile(c.Request.Context(), ctxutil.GetUserID(c.Request.Context()))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, user)
}

// UpdateProfile updates the caller's account.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	user, err := h.svc.Auth.UpdateProfile(c.Request.Context(), ctxutil.GetUserID(c.Request.Context()), &req)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, user)
}
