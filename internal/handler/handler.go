// Package handler exposes the HTTP API.
package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/middleware"
	"github.com/quickhirelabor/quickhire/internal/service"
)

// Pinger reports storage reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler aggregates every HTTP handler.
type Handler struct {
	svc    *service.Services
	pinger Pinger
	logger *logger.Logger
}

// New creates the handler aggregate.
func New(svc *service.Services, pinger Pinger, log *logger.Logger) *Handler {
	return &Handler{svc: svc, pinger: pinger, logger: log}
}

// RegisterRoutes mounts the API under /api/v1.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	authed := v1.Group("")
	authed.Use(middleware.AuthRequired(h.svc.TokenManager))
	{
		authed.GET("/profile", h.Profile)
		authed.PUT("/profile", h.UpdateProfile)

		jobs := authed.Group("/jobs")
		{
			jobs.POST("", h.CreateJob)
			jobs.GET("", h.ListJobs)
			jobs.GET("/:id", h.GetJob)
			jobs.GET("/:id/actions", h.JobActions)
			jobs.GET("/:id/events", h.JobEvents)

			jobs.POST("/:id/approve", h.ApproveJob)
			jobs.POST("/:id/hold", h.HoldJob)
			jobs.POST("/:id/reject", h.RejectJob)
			jobs.POST("/:id/accept", h.AcceptJob)
			jobs.POST("/:id/start", h.StartJob)
			jobs.POST("/:id/complete", h.CompleteJob)
			jobs.POST("/:id/cancel", h.CancelJob)

			jobs.GET("/:id/messages", h.ListMessages)
			jobs.POST("/:id/messages", h.SendMessage)

			jobs.POST("/:id/payment", h.RecordPayment)
			jobs.GET("/:id/payment", h.GetJobPayment)

			jobs.POST("/:id/rating", h.RateJob)
			jobs.GET("/:id/rating", h.GetJobRating)
		}

		authed.GET("/payments", h.ListMyPayments)

		authed.GET("/notifications", h.ListNotifications)
		authed.PUT("/notifications/read", h.MarkAllNotificationsRead)
		authed.PUT("/notifications/:id/read", h.MarkNotificationRead)

		authed.GET("/services", h.ListServices)
		authed.GET("/laborers/:id", h.GetLaborer)
		authed.GET("/laborers/:id/ratings", h.ListLaborerRatings)
		authed.GET("/skills", h.ListMySkills)
		authed.PUT("/skills", h.ReplaceSkills)

		support := authed.Group("/support")
		{
			support.POST("/tickets", h.OpenTicket)
			support.GET("/tickets", h.ListMyTickets)
			support.GET("/tickets/:id", h.GetTicket)
		}

		admin := authed.Group("/admin")
		admin.Use(middleware.RequireRole(domain.RoleAdmin))
		{
			admin.GET("/users", h.ListUsers)
			admin.GET("/users/:id", h.GetUser)
			admin.PUT("/users/:id/active", h.SetUserActive)

			admin.POST("/services", h.CreateService)
			admin.PUT("/services/:id", h.UpdateService)
			admin.DELETE("/services/:id", h.DeleteService)

			admin.GET("/tickets", h.ListAllTickets)
			admin.PUT("/tickets/:id/close", h.CloseTicket)
		}
	}
}
