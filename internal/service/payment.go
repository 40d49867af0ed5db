package service

import (
	"context"
	"errors"
	"time"

	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/lifecycle"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

// PaymentService records job settlements. A job takes exactly one
// completed payment, enforced by a conditional insert.
type PaymentService struct {
	payments repository.PaymentRepository
	jobs     repository.JobRepository
	notifier *NotificationService
	logger   *logger.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(payments repository.PaymentRepository, jobs repository.JobRepository, notifier *NotificationService, log *logger.Logger) *PaymentService {
	return &PaymentService{
		payments: payments,
		jobs:     jobs,
		notifier: notifier,
		logger:   log,
	}
}

// RecordPaymentRequest represents a settlement for a completed job.
type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Method      string `json:"method" binding:"required,oneof=cash card upi transfer"`
}

// Record settles a completed job. Only the job's customer may pay, and
// only once.
func (s *PaymentService) Record(ctx context.Context, actor domain.Actor, jobID string, req *RecordPaymentRequest) (*domain.Payment, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !job.IsOwner(actor.ID) {
		return nil, ErrForbidden
	}
	if job.Status != domain.StatusCompleted {
		return nil, ErrJobNotCompleted
	}
	if !job.Assigned() {
		return nil, ErrJobNotAssigned
	}

	payment := &domain.Payment{
		ID:          utils.NanoID(),
		JobID:       jobID,
		CustomerID:  job.CustomerID,
		LaborerID:   *job.LaborerID,
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Status:      domain.PaymentCompleted,
		CreatedAt:   time.Now(),
	}
	inserted, err := s.payments.CreateCompleted(ctx, payment)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrDuplicatePayment
	}
	s.logger.Info(ctx, "payment recorded",
		"job_id", jobID, "payment_id", payment.ID, "amount_cents", payment.AmountCents)

	s.notifier.Dispatch(ctx, []lifecycle.Intent{{
		UserID:   payment.LaborerID,
		Title:    "Payment received",
		Message:  "A payment was recorded for job " + job.Title + ".",
		Category: "payment",
	}})
	return payment, nil
}

// GetByJob returns the job's payment for one of its parties.
func (s *PaymentService) GetByJob(ctx context.Context, actor domain.Actor, jobID string) (*domain.Payment, error) {
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

	payment, err := s.payments.GetByJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payment, nil
}

// ListMine returns every payment the actor took part in, on either side.
func (s *PaymentService) ListMine(ctx context.Context, actor domain.Actor) ([]*domain.Payment, error) {
	return s.payments.ListByUser(ctx, actor.ID)
}
