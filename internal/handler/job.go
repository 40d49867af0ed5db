package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/ctxutil"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/service"
)

// CreateJob handles job posting.
// @Summary Post a new job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body service.CreateJobRequest true "Create job request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/jobs [post]
func (h *Handler) CreateJob(c *gin.Context) {
	var req service.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn(c.Request.Context(), "invalid request", "error", err)
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	job, err := h.svc.Jobs.Create(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), &req)
	if err != nil {
		h.logger.Error(c.Request.Context(), "create job failed", "error", err)
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, job)
}

// GetJob returns one job.
func (h *Handler) GetJob(c *gin.Context) {
	job, err := h.svc.Jobs.Get(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, job)
}

// ListJobs returns a role-scoped page of jobs.
// @Summary List jobs visible to the caller
// @Tags jobs
// @Produce json
// @Param status query string false "Status filter"
// @Param cursor query string false "Page cursor"
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/jobs [get]
func (h *Handler) ListJobs(c *gin.Context) {
	var req service.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	result, err := h.svc.Jobs.List(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), &req)
	if err != nil {
		h.logger.Error(c.Request.Context(), "list jobs failed", "error", err)
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, result)
}

// JobActions returns the lifecycle targets the caller may drive the job
// to.
func (h *Handler) JobActions(c *gin.Context) {
	actions, err := h.svc.Jobs.Actions(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}
	if actions == nil {
		actions = []domain.JobStatus{}
	}

	resp.Success(c.Writer, map[string]any{"actions": actions})
}

// JobEvents returns the job's status audit trail.
func (h *Handler) JobEvents(c *gin.Context) {
	events, err := h.svc.Jobs.Events(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}
	if events == nil {
		events = []*domain.JobStatusEvent{}
	}

	resp.Success(c.Writer, events)
}

// transitionFunc is one lifecycle verb on the job service.
type transitionFunc func(c *gin.Context, jobID, notes string) (*domain.Job, error)

// transition binds the optional note and applies one lifecycle verb.
func (h *Handler) transition(c *gin.Context, fn transitionFunc) {
	var req service.TransitionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.Fail(c.Writer, resp.BadRequest(err.Error()))
			return
		}
	}

	job, err := fn(c, c.Param("id"), req.Notes)
	if err != nil {
		h.logger.Warn(c.Request.Context(), "transition rejected",
			"job_id", c.Param("id"), "error", err)
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, job)
}

// ApproveJob publishes a pending or held job. Admin verb.
// @Summary Approve a job for the open board
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/jobs/{id}/approve [post]
func (h *Handler) ApproveJob(c *gin.Context) {
	h.transition(c, func(c *gin.Context, jobID, notes string) (*domain.Job, error) {
		return h.svc.Jobs.Approve(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), jobID, notes)
	})
}

// HoldJob parks a pending job for further review. Admin verb.
func (h *Handler) HoldJob(c *gin.Context) {
	h.transition(c, func(c *gin.Context, jobID, notes string) (*domain.Job, error) {
		return h.svc.Jobs.Hold(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), jobID, notes)
	})
}

// RejectJob rejects a job. Admin verb.
func (h *Handler) RejectJob(c *gin.Context) {
	h.transition(c, func(c *gin.Context, jobID, notes string) (*domain.Job, error) {
		return h.svc.Jobs.Reject(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), jobID, notes)
	})
}

// AcceptJob assigns the calling laborer to an open job.
func (h *Handler) AcceptJob(c *gin.Context) {
	h.transition(c, func(c *gin.Context, jobID, notes string) (*domain.Job, error) {
		return h.svc.Jobs.Accept(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), jobID, notes)
	})
}

// StartJob marks the assignment as underway.
func (h *Handler) StartJob(c *gin.Context) {
	h.transition(c, func(c *gin.Context, jobID, notes string) (*domain.Job, error) {
		return h.svc.Jobs.Start(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), jobID, notes)
	})
}

// CompleteJob marks the work as done.
func (h *Handler) CompleteJob(c *gin.Context) {
	h.transition(c, func(c *gin.Context, jobID, notes string) (*domain.Job, error) {
		return h.svc.Jobs.Complete(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), jobID, notes)
	})
}

// CancelJob cancels a job.
func (h *Handler) CancelJob(c *gin.Context) {
	h.transition(c, func(c *gin.Context, jobID, notes string) (*domain.Job, error) {
		return h.svc.Jobs.Cancel(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), jobID, notes)
	})
}
