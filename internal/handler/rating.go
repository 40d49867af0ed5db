package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/ctxutil"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/service"
)

// RateJob records the caller's feedback on a completed job.
func (h *Handler) RateJob(c *gin.Context) {
	var req service.RateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	rating, err := h.svc.Ratings.Rate(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"), &req)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, rating)
}

// GetJobRating returns the caller's own rating on the job.
func (h *Handler) GetJobRating(c *gin.Context) {
	rating, err := h.svc.Ratings.GetByJob(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, rating)
}

// ListLaborerRatings returns the feedback a laborer has received.
func (h *Handler) ListLaborerRatings(c *gin.Context) {
	ratings, err := h.svc.Ratings.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, ratings)
}
