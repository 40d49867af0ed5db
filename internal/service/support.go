package service

import (
	"context"
	"errors"
	"time"

	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

// SupportService handles user-filed support tickets.
type SupportService struct {
	tickets repository.TicketRepository
	logger  *logger.Logger
}

// NewSupportService creates a new support service.
func NewSupportService(tickets repository.TicketRepository, log *logger.Logger) *SupportService {
	return &SupportService{tickets: tickets, logger: log}
}

// OpenTicketRequest represents a new support request.
type OpenTicketRequest struct {
	Subject string `json:"subject" binding:"required,min=3,max=255"`
	Body    string `json:"body" binding:"required,max=5000"`
}

// Open files a new ticket for the actor.
func (s *SupportService) Open(ctx context.Context, actor domain.Actor, req *OpenTicketRequest) (*domain.SupportTicket, error) {
	now := time.Now()
	t := &domain.SupportTicket{
		ID:        utils.NanoID(),
		UserID:    actor.ID,
		Subject:   req.Subject,
		Body:      req.Body,
		Status:    domain.TicketOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "support ticket opened", "ticket_id", t.ID, "user_id", actor.ID)
	return t, nil
}

// Get returns one ticket to its owner or an admin.
func (s *SupportService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.SupportTicket, error) {
	t, err := s.tickets.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && t.UserID != actor.ID {
		return nil, ErrForbidden
	}
	return t, nil
}

// ListMine returns the actor's own tickets.
func (s *SupportService) ListMine(ctx context.Context, actor domain.Actor) ([]*domain.SupportTicket, error) {
	return s.tickets.ListByUser(ctx, actor.ID)
}

// ListAll returns every ticket, optionally filtered by status. Admin
// only.
func (s *SupportService) ListAll(ctx context.Context, status domain.TicketStatus) ([]*domain.SupportTicket, error) {
	return s.tickets.List(ctx, status)
}

// Close marks an open ticket as closed. Admin only. Closing an already
// closed ticket reports not found via the repository's status guard.
func (s *SupportService) Close(ctx context.Context, id string) error {
	if err := s.tickets.Close(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
