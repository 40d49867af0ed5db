package data

import (
	"context"
)

// Timestamps are stored as RFC3339Nano text so the schema ports across
// the three supported drivers unchanged.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(24) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at VARCHAR(35) NOT NULL,
		updated_at VARCHAR(35) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id VARCHAR(24) PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		description TEXT,
		rate_cents BIGINT NOT NULL DEFAULT 0,
		created_at VARCHAR(35) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id VARCHAR(24) PRIMARY KEY,
		slug VARCHAR(255) NOT NULL UNIQUE,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		budget_cents BIGINT NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL,
		customer_id VARCHAR(24) NOT NULL,
		laborer_id VARCHAR(24),
		service_id VARCHAR(24),
		created_at VARCHAR(35) NOT NULL,
		updated_at VARCHAR(35) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_customer ON jobs(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_laborer ON jobs(laborer_id)`,
	`CREATE TABLE IF NOT EXISTS job_status_events (
		id VARCHAR(24) PRIMARY KEY,
		job_id VARCHAR(24) NOT NULL,
		status VARCHAR(20) NOT NULL,
		actor_id VARCHAR(24) NOT NULL,
		actor_role VARCHAR(16) NOT NULL,
		notes TEXT,
		created_at VARCHAR(35) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_status_events_job ON job_status_events(job_id)`,
	`CREATE TABLE IF NOT EXISTS job_messages (
		id VARCHAR(24) PRIMARY KEY,
		job_id VARCHAR(24) NOT NULL,
		sender_id VARCHAR(24) NOT NULL,
		body TEXT NOT NULL,
		created_at VARCHAR(35) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_messages_job ON job_messages(job_id)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id VARCHAR(24) PRIMARY KEY,
		job_id VARCHAR(24) NOT NULL,
		customer_id VARCHAR(24) NOT NULL,
		laborer_id VARCHAR(24) NOT NULL,
		amount_cents BIGINT NOT NULL,
		method VARCHAR(32) NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL,
		created_at VARCHAR(35) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_job ON payments(job_id)`,
	`CREATE TABLE IF NOT EXISTS ratings (
		id VARCHAR(24) PRIMARY KEY,
		job_id VARCHAR(24) NOT NULL,
		reviewer_id VARCHAR(24) NOT NULL,
		reviewee_id VARCHAR(24) NOT NULL,
		score INTEGER NOT NULL,
		comment TEXT,
		created_at VARCHAR(35) NOT NULL,
		UNIQUE (job_id, reviewer_id)
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id VARCHAR(24) PRIMARY KEY,
		user_id VARCHAR(24) NOT NULL,
		title VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		category VARCHAR(32) NOT NULL DEFAULT '',
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at VARCHAR(35) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id VARCHAR(24) PRIMARY KEY,
		laborer_id VARCHAR(24) NOT NULL,
		name VARCHAR(255) NOT NULL,
		created_at VARCHAR(35) NOT NULL,
		UNIQUE (laborer_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS support_tickets (
		id VARCHAR(24) PRIMARY KEY,
		user_id VARCHAR(24) NOT NULL,
		subject VARCHAR(255) NOT NULL,
		body TEXT NOT NULL,
		status VARCHAR(16) NOT NULL,
		created_at VARCHAR(35) NOT NULL,
		updated_at VARCHAR(35) NOT NULL
	)`,
}

// Partial indexes are unsupported on MySQL; there the one-completed-payment
// rule is enforced by the repository's conditional insert alone.
var partialIndexStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_payments_job_completed
		ON payments(job_id) WHERE status = 'completed'`,
}

// Migrate applies the schema. Statements are idempotent.
func (d *Data) Migrate(ctx context.Context) error {
	return Migrate(ctx, d)
}

// Migrate applies the schema on the given data layer.
func Migrate(ctx context.Context, d *Data) error {
	stmts := schemaStatements
	if d.Driver() != "mysql" {
		stmts = append(append([]string{}, stmts...), partialIndexStatements...)
	}
	for _, stmt := range stmts {
		if _, err := d.DB().ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
