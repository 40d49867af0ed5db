package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quickhirelabor/quickhire/internal/data"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/paging"
)

// JobFilter narrows job listings.
type JobFilter struct {
	Status     domain.JobStatus
	CustomerID string
	LaborerID  string
	ServiceID  string
}

// JobRepository stores jobs and their status audit trail.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Get(ctx context.Context, id string) (*domain.Job, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter, cursor string, limit int) ([]*domain.Job, int, string, error)

	// ConditionalUpdateStatus performs the guarded transition write: the
	// status row update and the audit event append happen in one atomic
	// unit, and the update succeeds only when the job is still in the
	// expected status. It reports false, without error, when the guard
	// did not match.
	ConditionalUpdateStatus(ctx context.Context, jobID string, expected, next domain.JobStatus, laborerID *string, event *domain.JobStatusEvent) (bool, error)

	AppendStatusEvent(ctx context.Context, event *domain.JobStatusEvent) error
	StatusEvents(ctx context.Context, jobID string) ([]*domain.JobStatusEvent, error)
}

type jobRepository struct {
	base
}

const jobColumns = `id, slug, title, description, location, budget_cents, status,
	customer_id, laborer_id, service_id, created_at, updated_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	_, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		INSERT INTO jobs (`+jobColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`),
		job.ID,
		job.Slug,
		job.Title,
		job.Description,
		job.Location,
		job.BudgetCents,
		string(job.Status),
		job.CustomerID,
		job.LaborerID,
		job.ServiceID,
		formatTime(job.CreatedAt),
		formatTime(job.UpdatedAt),
	)
	return err
}

func (r *jobRepository) Get(ctx context.Context, id string) (*domain.Job, error) {
	row := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT `+jobColumns+` FROM jobs WHERE id = ?
	`), id)
	return scanJob(row)
}

func (r *jobRepository) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	row := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT `+jobColumns+` FROM jobs WHERE slug = ?
	`), slug)
	return scanJob(row)
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter, cursor string, limit int) ([]*domain.Job, int, string, error) {
	where := " WHERE 1=1"
	var args []any

	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.CustomerID != "" {
		where += " AND customer_id = ?"
		args = append(args, filter.CustomerID)
	}
	if filter.LaborerID != "" {
		where += " AND laborer_id = ?"
		args = append(args, filter.LaborerID)
	}
	if filter.ServiceID != "" {
		where += " AND service_id = ?"
		args = append(args, filter.ServiceID)
	}

	var total int
	countArgs := append([]any{}, args...)
	if err := r.exec(ctx).QueryRowContext(ctx, r.rebind(`SELECT COUNT(*) FROM jobs`+where), countArgs...).Scan(&total); err != nil {
		return nil, 0, "", err
	}

	if cursor != "" {
		ts, lastID, err := paging.DecodeCursor(cursor)
		if err != nil {
			return nil, 0, "", fmt.Errorf("invalid cursor: %w", err)
		}
		at := formatTime(ts)
		where += " AND (created_at < ? OR (created_at = ? AND id < ?))"
		args = append(args, at, at, lastID)
	}
	args = append(args, limit)

	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(`
		SELECT `+jobColumns+` FROM jobs`+where+` ORDER BY created_at DESC, id DESC LIMIT ?
	`), args...)
	if err != nil {
		return nil, 0, "", err
	}
	defer rows.Close()

	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, "", err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, "", err
	}

	// The caller fetches limit+1 rows and trims the probe row, so the
	// cursor must come from the last row it keeps.
	nextCursor := ""
	if len(jobs) == limit && limit > 1 {
		last := jobs[limit-2]
		nextCursor = paging.EncodeCursor(last.CreatedAt, last.ID)
	}
	return jobs, total, nextCursor, nil
}

func (r *jobRepository) ConditionalUpdateStatus(ctx context.Context, jobID string, expected, next domain.JobStatus, laborerID *string, event *domain.JobStatusEvent) (bool, error) {
	applied := false
	err := data.WithTx(ctx, r.db, func(ctx context.Context) error {
		now := formatTime(time.Now())

		var res sql.Result
		var err error
		if laborerID != nil {
			res, err = r.exec(ctx).ExecContext(ctx, r.rebind(`
				UPDATE jobs SET status = ?, laborer_id = ?, updated_at = ?
				WHERE id = ? AND status = ?
			`), string(next), *laborerID, now, jobID, string(expected))
		} else {
			res, err = r.exec(ctx).ExecContext(ctx, r.rebind(`
				UPDATE jobs SET status = ?, updated_at = ?
				WHERE id = ? AND status = ?
			`), string(next), now, jobID, string(expected))
		}
		if err != nil {
			return err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			// Guard missed: the job moved under us or does not exist.
			return nil
		}

		if err := r.appendStatusEvent(ctx, event); err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}

func (r *jobRepository) AppendStatusEvent(ctx context.Context, event *domain.JobStatusEvent) error {
	return r.appendStatusEvent(ctx, event)
}

func (r *jobRepository) appendStatusEvent(ctx context.Context, event *domain.JobStatusEvent) error {
	_, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		INSERT INTO job_status_events (id, job_id, status, actor_id, actor_role, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`),
		event.ID,
		event.JobID,
		string(event.Status),
		event.ActorID,
		string(event.ActorRole),
		event.Notes,
		formatTime(event.CreatedAt),
	)
	return err
}

func (r *jobRepository) StatusEvents(ctx context.Context, jobID string) ([]*domain.JobStatusEvent, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(`
		SELECT id, job_id, status, actor_id, actor_role, notes, created_at
		FROM job_status_events WHERE job_id = ? ORDER BY created_at ASC
	`), jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.JobStatusEvent
	for rows.Next() {
		var status, role, createdAt string
		var notes sql.NullString
		ev := &domain.JobStatusEvent{}
		if err := rows.Scan(&ev.ID, &ev.JobID, &status, &ev.ActorID, &role, &notes, &createdAt); err != nil {
			return nil, err
		}
		ev.Status = domain.JobStatus(status)
		ev.ActorRole = domain.Role(role)
		ev.Notes = notes.String
		if ev.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func scanJob(sc scanner) (*domain.Job, error) {
	var status, createdAt, updatedAt string
	var laborerID, serviceID sql.NullString

	job := &domain.Job{}
	if err := sc.Scan(
		&job.ID, &job.Slug, &job.Title, &job.Description, &job.Location,
		&job.BudgetCents, &status, &job.CustomerID, &laborerID, &serviceID,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, mapNoRows(err)
	}

	job.Status = domain.JobStatus(status)
	if laborerID.Valid && laborerID.String != "" {
		job.LaborerID = &laborerID.String
	}
	if serviceID.Valid && serviceID.String != "" {
		job.ServiceID = &serviceID.String
	}

	var err error
	if job.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if job.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return job, nil
}
