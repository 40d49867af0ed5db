// Package lifecycle enforces the job state machine: which status
// transitions are legal, who may trigger them, and what side effects are
// mandatory.
//
// The engine never dispatches notifications itself; a successful
// transition returns the intents for the caller to deliver after the
// write has committed.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

var (
	// ErrNotFound is returned when the referenced job does not exist.
	ErrNotFound = errors.New("job not found")

	// ErrInvalidTransition is returned when the (from, to, actor)
	// combination is not in the transition table.
	ErrInvalidTransition = errors.New("transition not permitted")

	// ErrAlreadyTerminal is returned when the job is already in a
	// terminal state. It is distinct from ErrInvalidTransition so the
	// caller can explain "this job is already closed".
	ErrAlreadyTerminal = errors.New("job already in terminal state")
)

// Store is the persistence port the engine drives. Load must return
// ErrNotFound when the job does not exist. ConditionalUpdateStatus must
// apply the status write and the audit event append as one atomic unit,
// guarded on the expected status, and report false without error when
// the guard does not match.
type Store interface {
	Load(ctx context.Context, jobID string) (*domain.Job, error)
	ConditionalUpdateStatus(ctx context.Context, jobID string, expected, next domain.JobStatus, laborerID *string, event *domain.JobStatusEvent) (bool, error)
}

// Intent describes one notification the caller should deliver after the
// transition commits.
type Intent struct {
	UserID   string
	Title    string
	Message  string
	Category string
}

// Result is a successful transition outcome.
type Result struct {
	Job     *domain.Job
	Event   *domain.JobStatusEvent
	Intents []Intent
}

// Engine validates and applies job status transitions.
type Engine struct {
	store  Store
	logger *logger.Logger
}

// NewEngine creates a lifecycle engine over the given store.
func NewEngine(store Store, log *logger.Logger) *Engine {
	return &Engine{store: store, logger: log}
}

// CanTransition reports whether the actor may move the job to the target
// status. It is the pure predicate form of RequestTransition and mutates
// nothing; presentation code uses it to decide which actions to offer.
func (e *Engine) CanTransition(job *domain.Job, actor domain.Actor, target domain.JobStatus) bool {
	return e.authorize(job, actor, target) == nil
}

// AvailableTransitions lists every target status the actor may move the
// job to.
func (e *Engine) AvailableTransitions(job *domain.Job, actor domain.Actor) []domain.JobStatus {
	var targets []domain.JobStatus
	for _, target := range domain.Statuses {
		if e.CanTransition(job, actor, target) {
			targets = append(targets, target)
		}
	}
	return targets
}

func (e *Engine) authorize(job *domain.Job, actor domain.Actor, target domain.JobStatus) error {
	if !target.Valid() {
		return ErrInvalidTransition
	}
	if job.Status.Terminal() {
		return ErrAlreadyTerminal
	}
	allowed, ok := transitions[job.Status][target]
	if !ok || !allowed(job, actor) {
		return ErrInvalidTransition
	}
	return nil
}

// RequestTransition loads the job's current state fresh, validates the
// transition per the table, and applies it through a single guarded
// write. On success it returns the updated job, the appended audit
// event, and the notification intents to dispatch post-commit. On
// failure the stored status is untouched.
func (e *Engine) RequestTransition(ctx context.Context, jobID string, actor domain.Actor, target domain.JobStatus, notes string) (*Result, error) {
	job, err := e.store.Load(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load job %s: %w", jobID, err)
	}

	if err := e.authorize(job, actor, target); err != nil {
		return nil, err
	}

	// The accepting laborer is attached on the open→assigned edge.
	var laborerID *string
	if job.Status == domain.StatusOpen && target == domain.StatusAssigned {
		laborerID = &actor.ID
	}

	now := time.Now()
	event := &domain.JobStatusEvent{
		ID:        utils.NanoID(),
		JobID:     job.ID,
		Status:    target,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Notes:     notes,
		CreatedAt: now,
	}

	applied, err := e.store.ConditionalUpdateStatus(ctx, job.ID, job.Status, target, laborerID, event)
	if err != nil {
		return nil, fmt.Errorf("transition job %s to %s: %w", jobID, target, err)
	}
	if !applied {
		// Lost a race: the guard missed because the status moved (or the
		// row vanished) between the load and the write. Re-read to report
		// the accurate failure.
		current, err := e.store.Load(ctx, jobID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if current.Status.Terminal() {
			return nil, ErrAlreadyTerminal
		}
		return nil, ErrInvalidTransition
	}

	from := job.Status
	job.Status = target
	job.UpdatedAt = now
	if laborerID != nil {
		job.LaborerID = laborerID
	}

	e.logger.Info(ctx, "job transition applied",
		"job_id", job.ID,
		"from", string(from),
		"to", string(target),
		"actor_id", actor.ID,
		"actor_role", string(actor.Role),
	)

	return &Result{
		Job:     job,
		Event:   event,
		Intents: buildIntents(job, actor, target),
	}, nil
}
