package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/ctxutil"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/service"
)

// RecordPayment settles a completed job.
// @Summary Record the payment for a completed job
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body service.RecordPaymentRequest true "Payment request"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/jobs/{id}/payment [post]
func (h *Handler) RecordPayment(c *gin.Context) {
	var req service.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	payment, err := h.svc.Payments.Record(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"), &req)
	if err != nil {
		h.logger.Warn(c.Request.Context(), "record payment failed",
			"job_id", c.Param("id"), "error", err)
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, payment)
}

// GetJobPayment returns the job's payment.
func (h *Handler) GetJobPayment(c *gin.Context) {
	payment, err := h.svc.Payments.GetByJob(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, payment)
}

// ListMyPayments returns the caller's payment history.
func (h *Handler) ListMyPayments(c *gin.Context) {
	payments, err := h.svc.Payments.ListMine(c.Request.Context(), ctxutil.GetActor(c.Request.Context()))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}
	if payments == nil {
		payments = []*domain.Payment{}
	}

	resp.Success(c.Writer, payments)
}
