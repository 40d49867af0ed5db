package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/ctxutil"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/net/resp"
)

// ListNotifications returns the caller's notifications. Pass unread=true
// to filter.
func (h *Handler) ListNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.svc.Notifications.List(c.Request.Context(), ctxutil.GetUserID(c.Request.Context()), unreadOnly)
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}

	resp.Success(c.Writer, notifications)
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	err := h.svc.Notifications.MarkRead(c.Request.Context(), c.Param("id"), ctxutil.GetUserID(c.Request.Context()))
	if err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer)
}

// MarkAllNotificationsRead marks every notification of the caller as
// read.
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.svc.Notifications.MarkAllRead(c.Request.Context(), ctxutil.GetUserID(c.Request.Context())); err != nil {
		resp.Fail(c.Writer, toException(err))
		return
	}

	resp.Success(c.Writer)
}
