// Package domain defines the marketplace domain models.
package domain

import "time"

// JobStatus is the closed set of job lifecycle states.
type JobStatus string

const (
	StatusPendingApproval JobStatus = "pending_approval"
	StatusAdminApproval   JobStatus = "admin_approval"
	StatusOpen            JobStatus = "open"
	StatusAssigned        JobStatus = "assigned"
	StatusInProgress      JobStatus = "in_progress"
	StatusCompleted       JobStatus = "completed"
	StatusCancelled       JobStatus = "cancelled"
	StatusRejected        JobStatus = "rejected"
)

// Statuses lists every valid job status.
var Statuses = []JobStatus{
	StatusPendingApproval,
	StatusAdminApproval,
	StatusOpen,
	StatusAssigned,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusRejected,
}

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case StatusPendingApproval, StatusAdminApproval, StatusOpen, StatusAssigned,
		StatusInProgress, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s JobStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// Job is one unit of work requested by a customer, optionally fulfilled
// by a laborer.
type Job struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	BudgetCents int64     `json:"budget_cents"`
	Status      JobStatus `json:"status"`
	CustomerID  string    `json:"customer_id"`
	LaborerID   *string   `json:"laborer_id,omitempty"`
	ServiceID   *string   `json:"service_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Assigned reports whether a laborer is attached to the job.
func (j *Job) Assigned() bool {
	return j.LaborerID != nil && *j.LaborerID != ""
}

// IsOwner reports whether the given user is the job's customer.
func (j *Job) IsOwner(userID string) bool {
	return userID != "" && j.CustomerID == userID
}

// IsAssignedLaborer reports whether the given user is the job's assigned laborer.
func (j *Job) IsAssignedLaborer(userID string) bool {
	return userID != "" && j.Assigned() && *j.LaborerID == userID
}

// JobStatusEvent is one append-only audit record of a status transition.
type JobStatusEvent struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	Status    JobStatus `json:"status"`
	ActorID   string    `json:"actor_id"`
	ActorRole Role      `json:"actor_role"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
