package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/ctxutil"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/service"
)

// OpenTicket files a new support ticket.
func (h *Handler) OpenTicket(c *gin.Context) {
	var req service.OpenTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	ticket, err := h.svc.Support.Open(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), &req)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, ticket)
}

// GetTicket returns one ticket to its owner or an admin.
func (h *Handler) GetTicket(c *gin.Context) {
	ticket, err := h.svc.Support.Get(c.Request.Context(), ctxutil.GetActor(c.Request.Context()), c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer, ticket)
}

// ListMyTickets returns the caller's tickets.
func (h *Handler) ListMyTickets(c *gin.Context) {
	tickets, err := h.svc.Support.ListMine(c.Request.Context(), ctxutil.GetActor(c.Request.Context()))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}
	if tickets == nil {
		tickets = []*domain.SupportTicket{}
	}

	resp.Success(c.Writer, tickets)
}

// ListAllTickets returns every ticket, optionally by status. Admin only.
func (h *Handler) ListAllTickets(c *gin.Context) {
	status := domain.TicketStatus(c.Query("status"))
	if status != "" && status != domain.TicketOpen && status != domain.TicketClosed {
		resp.Fail(c.Writer, resp.BadRequest("invalid status"))
		return
	}

	tickets, err := h.svc.Support.ListAll(c.Request.Context(), status)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}
	if tickets == nil {
		tickets = []*domain.SupportTicket{}
	}

	resp.Success(c.Writer, tickets)
}

// CloseTicket closes an open ticket. Admin only.
func (h *Handler) CloseTicket(c *gin.Context) {
	if err := h.svc.Support.Close(c.Request.Context(), c.Param("id")); err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer)
}
