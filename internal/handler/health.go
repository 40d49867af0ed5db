package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/net/resp"
	"github.com/quickhirelabor/quickhire/internal/version"
)

// Health reports liveness and the storage round trip.
func (h *Handler) Health(c *gin.Context) {
	status := "ok"
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request.Context()); err != nil {
			h.logger.Error(c.Request.Context(), "health check failed", "error", err)
			resp.Fail(c.Writer, resp.InternalServer("storage unreachable"))
			return
		}
	}

	resp.Success(c.Writer, map[string]any{
		"status":  status,
		"version": version.Version,
	})
}
