package service

import (
	"context"
	"errors"
	"time"

	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/lifecycle"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/paging"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

// MessageService handles job-scoped chat between the job's parties.
type MessageService struct {
	messages repository.MessageRepository
	jobs     repository.JobRepository
	notifier *NotificationService
	logger   *logger.Logger
}

// NewMessageService creates a new message service.
func NewMessageService(messages repository.MessageRepository, jobs repository.JobRepository, notifier *NotificationService, log *logger.Logger) *MessageService {
	return &MessageService{
		messages: messages,
		jobs:     jobs,
		notifier: notifier,
		logger:   log,
	}
}

// SendMessageRequest represents one chat line.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required,min=1,max=2000"`
}

// participant reports whether the actor belongs to the job's thread.
// Admins can read and write every thread.
func participant(job *domain.Job, actor domain.Actor) bool {
	return actor.Role == domain.RoleAdmin || job.IsOwner(actor.ID) || job.IsAssignedLaborer(actor.ID)
}

// Send appends a message to the job's thread.
func (s *MessageService) Send(ctx context.Context, actor domain.Actor, jobID string, req *SendMessageRequest) (*domain.Message, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !participant(job, actor) {
		return nil, ErrForbidden
	}

	msg := &domain.Message{
		ID:        utils.NanoID(),
		JobID:     jobID,
		SenderID:  actor.ID,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Everyone else on the thread hears about the new message.
	var intents []lifecycle.Intent
	notify := func(userID string) {
		if userID == "" || userID == actor.ID {
			return
		}
		intents = append(intents, lifecycle.Intent{
			UserID:   userID,
			Title:    "New message",
			Message:  "New message on job " + job.Title + ".",
			Category: "message",
		})
	}
	notify(job.CustomerID)
	if job.LaborerID != nil {
		notify(*job.LaborerID)
	}
	s.notifier.Dispatch(ctx, intents)

	return msg, nil
}

// List returns a page of the job's thread for one of its parties.
func (s *MessageService) List(ctx context.Context, actor domain.Actor, jobID string, params paging.Params) (*paging.Result[*domain.Message], error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !participant(job, actor) {
		return nil, ErrForbidden
	}

	return paging.Paginate(params, func(cursor string, limit int) ([]*domain.Message, int, string, error) {
		return s.messages.ListByJob(ctx, jobID, cursor, limit)
	})
}
