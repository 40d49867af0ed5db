package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/lifecycle"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

// notifyChannel is the redis pub/sub channel prefix for live delivery.
const notifyChannel = "quickhire:notify:"

// NotificationService persists user alerts and pushes them to redis for
// live delivery. Delivery is best effort: failures are logged, never
// propagated to the caller.
type NotificationService struct {
	repo    repository.NotificationRepository
	rc      *redis.Client
	breaker *gobreaker.CircuitBreaker
	logger  *logger.Logger
}

// NewNotificationService creates the notification service. The redis
// client may be nil, in which case live delivery is skipped.
func NewNotificationService(repo repository.NotificationRepository, rc *redis.Client, log *logger.Logger) *NotificationService {
	st := gobreaker.Settings{
		Name:    "notify-redis",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &NotificationService{
		repo:    repo,
		rc:      rc,
		breaker: gobreaker.NewCircuitBreaker(st),
		logger:  log,
	}
}

// Dispatch persists and publishes the given intents. It is invoked after
// the owning transaction has committed and never fails the caller.
func (s *NotificationService) Dispatch(ctx context.Context, intents []lifecycle.Intent) {
	for _, intent := range intents {
		n := &domain.Notification{
			ID:        utils.NanoID(),
			UserID:    intent.UserID,
			Title:     intent.Title,
			Message:   intent.Message,
			Category:  intent.Category,
			CreatedAt: time.Now(),
		}
		if err := s.repo.Create(ctx, n); err != nil {
			s.logger.Error(ctx, "persist notification failed",
				"user_id", intent.UserID, "error", err)
			continue
		}
		s.publish(ctx, n)
	}
}

// publish pushes one notification onto the user's redis channel through
// the circuit breaker.
func (s *NotificationService) publish(ctx context.Context, n *domain.Notification) {
	if s.rc == nil {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		s.logger.Error(ctx, "encode notification failed", "error", err)
		return
	}
	_, err = s.breaker.Execute(func() (any, error) {
		return nil, s.rc.Publish(ctx, notifyChannel+n.UserID, payload).Err()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			s.logger.Warn(ctx, "notification publish skipped, breaker open",
				"user_id", n.UserID)
			return
		}
		s.logger.Warn(ctx, "notification publish failed",
			"user_id", n.UserID, "error", err)
	}
}

// List returns the user's notifications, optionally unread only.
func (s *NotificationService) List(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// MarkAllRead marks every notification of the user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}
