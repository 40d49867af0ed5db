package service

import (
	"context"
	"errors"
	"time"

	"github.com/gosimple/slug"

	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/lifecycle"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/paging"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

// engineStore adapts the job repository to the lifecycle engine's port,
// translating the repository's not-found sentinel.
type engineStore struct {
	jobs repository.JobRepository
}

func (s engineStore) Load(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s engineStore) ConditionalUpdateStatus(ctx context.Context, jobID string, expected, next domain.JobStatus, laborerID *string, event *domain.JobStatusEvent) (bool, error) {
	return s.jobs.ConditionalUpdateStatus(ctx, jobID, expected, next, laborerID, event)
}

// JobService manages job postings and drives their lifecycle.
type JobService struct {
	jobs     repository.JobRepository
	engine   *lifecycle.Engine
	notifier *NotificationService
	logger   *logger.Logger
}

// NewJobService creates a new job service.
func NewJobService(jobs repository.JobRepository, notifier *NotificationService, log *logger.Logger) *JobService {
	return &JobService{
		jobs:     jobs,
		engine:   lifecycle.NewEngine(engineStore{jobs: jobs}, log),
		notifier: notifier,
		logger:   log,
	}
}

// CreateJobRequest represents the request to post a job.
type CreateJobRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"max=255"`
	BudgetCents int64  `json:"budget_cents" binding:"required,gt=0"`
	ServiceID   string `json:"service_id"`
}

// TransitionRequest carries the optional audit note of a lifecycle verb.
type TransitionRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

// ListJobsRequest filters the job listing.
type ListJobsRequest struct {
	Status    string `form:"status" binding:"omitempty,jobstatus"`
	ServiceID string `form:"service_id"`
	paging.Params
}

// Create posts a new job for the acting customer. New jobs always start
// in pending approval.
func (s *JobService) Create(ctx context.Context, actor domain.Actor, req *CreateJobRequest) (*domain.Job, error) {
	if actor.Role != domain.RoleCustomer {
		return nil, ErrForbidden
	}

	now := time.Now()
	job := &domain.Job{
		ID:          utils.NanoID(),
		Slug:        slug.Make(req.Title) + "-" + utils.NanoString(6),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		BudgetCents: req.BudgetCents,
		Status:      domain.StatusPendingApproval,
		CustomerID:  actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.ServiceID != "" {
		sid := req.ServiceID
		job.ServiceID = &sid
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "job created",
		"job_id", job.ID, "customer_id", actor.ID, "title", job.Title)
	return job, nil
}

// Get returns one job if the actor may see it.
func (s *JobService) Get(ctx context.Context, actor domain.Actor, jobID string) (*domain.Job, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !s.canView(job, actor) {
		return nil, ErrForbidden
	}
	return job, nil
}

// canView implements the listing visibility rules: admins see all,
// customers their own jobs, laborers open jobs plus their assignments.
func (s *JobService) canView(job *domain.Job, actor domain.Actor) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCustomer:
		return job.IsOwner(actor.ID)
	case domain.RoleLaborer:
		return job.Status == domain.StatusOpen || job.IsAssignedLaborer(actor.ID)
	}
	return false
}

// List returns a role-scoped page of jobs.
func (s *JobService) List(ctx context.Context, actor domain.Actor, req *ListJobsRequest) (*paging.Result[*domain.Job], error) {
	filter := repository.JobFilter{
		Status:    domain.JobStatus(req.Status),
		ServiceID: req.ServiceID,
	}
	switch actor.Role {
	case domain.RoleCustomer:
		filter.CustomerID = actor.ID
	case domain.RoleLaborer:
		// Laborers browse the open board unless they ask for their own
		// assignments via a status filter.
		if filter.Status == "" || filter.Status == domain.StatusOpen {
			filter.Status = domain.StatusOpen
		} else {
			filter.LaborerID = actor.ID
		}
	}

	return paging.Paginate(req.Params, func(cursor string, limit int) ([]*domain.Job, int, string, error) {
		return s.jobs.List(ctx, filter, cursor, limit)
	})
}

// Transition drives one lifecycle edge and dispatches the resulting
// notifications after the transition has been committed.
func (s *JobService) Transition(ctx context.Context, actor domain.Actor, jobID string, target domain.JobStatus, notes string) (*domain.Job, error) {
	res, err := s.engine.RequestTransition(ctx, jobID, actor, target, notes)
	if err != nil {
		return nil, err
	}
	s.notifier.Dispatch(ctx, res.Intents)
	return res.Job, nil
}

// Lifecycle verbs. Each is a fixed target transition through the engine.

func (s *JobService) Approve(ctx context.Context, actor domain.Actor, jobID, notes string) (*domain.Job, error) {
	return s.Transition(ctx, actor, jobID, domain.StatusOpen, notes)
}

func (s *JobService) Hold(ctx context.Context, actor domain.Actor, jobID, notes string) (*domain.Job, error) {
	return s.Transition(ctx, actor, jobID, domain.StatusAdminApproval, notes)
}

func (s *JobService) Reject(ctx context.Context, actor domain.Actor, jobID, notes string) (*domain.Job, error) {
	return s.Transition(ctx, actor, jobID, domain.StatusRejected, notes)
}

func (s *JobService) Accept(ctx context.Context, actor domain.Actor, jobID, notes string) (*domain.Job, error) {
	return s.Transition(ctx, actor, jobID, domain.StatusAssigned, notes)
}

func (s *JobService) Start(ctx context.Context, actor domain.Actor, jobID, notes string) (*domain.Job, error) {
	return s.Transition(ctx, actor, jobID, domain.StatusInProgress, notes)
}

func (s *JobService) Complete(ctx context.Context, actor domain.Actor, jobID, notes string) (*domain.Job, error) {
	return s.Transition(ctx, actor, jobID, domain.StatusCompleted, notes)
}

func (s *JobService) Cancel(ctx context.Context, actor domain.Actor, jobID, notes string) (*domain.Job, error) {
	return s.Transition(ctx, actor, jobID, domain.StatusCancelled, notes)
}

// Actions returns the lifecycle targets the actor may drive the job to
// from its current status.
func (s *JobService) Actions(ctx context.Context, actor domain.Actor, jobID string) ([]domain.JobStatus, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.engine.AvailableTransitions(job, actor), nil
}

// Events returns the job's status audit trail. Only the job's parties
// and admins may read it.
func (s *JobService) Events(ctx context.Context, actor domain.Actor, jobID string) ([]*domain.JobStatusEvent, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && !job.IsOwner(actor.ID) && !job.IsAssignedLaborer(actor.ID) {
		return nil, ErrForbidden
	}
	return s.jobs.StatusEvents(ctx, jobID)
}
