// Package service implements the marketplace business logic on top of
// the repositories and the lifecycle engine.
package service

import (
	"errors"

	"github.com/quickhirelabor/quickhire/internal/config"
	"github.com/quickhirelabor/quickhire/internal/data"
	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/security/jwt"
)

// Sentinel errors surfaced to the HTTP layer.
var (
	ErrNotFound           = errors.New("service: not found")
	ErrForbidden          = errors.New("service: forbidden")
	ErrEmailTaken         = errors.New("service: email already registered")
	ErrInvalidCredentials = errors.New("service: invalid credentials")
	ErrUserDisabled       = errors.New("service: account suspended")
	ErrInvalidToken       = errors.New("service: invalid token")
	ErrDuplicatePayment   = errors.New("service: job already has a completed payment")
	ErrDuplicateRating    = errors.New("service: job already rated by this user")
	ErrJobNotCompleted    = errors.New("service: job is not completed")
	ErrJobNotAssigned     = errors.New("service: job has no assigned laborer")
)

// Services aggregates every service over one data layer.
type Services struct {
	Auth          *AuthService
	Users         *UserService
	Jobs          *JobService
	Messages      *MessageService
	Payments      *PaymentService
	Ratings       *RatingService
	Notifications *NotificationService
	Catalog       *CatalogService
	Support       *SupportService

	// TokenManager is shared with the auth middleware.
	TokenManager *jwt.TokenManager
}

// New wires all services onto the repositories.
func New(cfg *config.Config, d *data.Data, repos *repository.Repositories, log *logger.Logger) *Services {
	tm := jwt.NewTokenManager(cfg.Auth.JWT.Secret, &jwt.TokenConfig{
		AccessTokenExpiry:  cfg.Auth.JWT.AccessTTL,
		RefreshTokenExpiry: cfg.Auth.JWT.RefreshTTL,
	})

	notifications := NewNotificationService(repos.Notifications, d.Redis(), log)

	return &Services{
		Auth:          NewAuthService(repos.Users, tm, cfg.Auth.JWT.AccessTTL, log),
		Users:         NewUserService(repos.Users, repos.Ratings, repos.Skills, log),
		Jobs:          NewJobService(repos.Jobs, notifications, log),
		Messages:      NewMessageService(repos.Messages, repos.Jobs, notifications, log),
		Payments:      NewPaymentService(repos.Payments, repos.Jobs, notifications, log),
		Ratings:       NewRatingService(repos.Ratings, repos.Jobs, log),
		Notifications: notifications,
		Catalog:       NewCatalogService(repos.Services, repos.Skills, log),
		Support:       NewSupportService(repos.Tickets, log),
		TokenManager:  tm,
	}
}
