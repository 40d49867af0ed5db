package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/ctxutil"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/paging"
	"github.com/quickhirelabor/quickhire/internal/service"
)

// SendMessage appends a chat line to the job's thread.
func (h *Handler) SendMessage(c *gin.Context) {
	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	msg, err := h.svc.Messages.Send(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"), &req)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, msg)
}

// ListMessages returns a page of the job's thread.
func (h *Handler) ListMessages(c *gin.Context) {
	var params paging.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	result, err := h.svc.Messages.List(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"), params)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, result)
}
