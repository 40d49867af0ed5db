package repository

import (
	"context"
	"fmt"

	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/paging"
)

// MessageRepository stores job-scoped chat messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByJob(ctx context.Context, jobID, cursor string, limit int) ([]*domain.Message, int, string, error)
}

type messageRepository struct {
	base
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	_, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		INSERT INTO job_messages (id, job_id, sender_id, body, created_at)
		VALUES (?, ?, ?, ?, ?)
	`),
		msg.ID,
		msg.JobID,
		msg.SenderID,
		msg.Body,
		formatTime(msg.CreatedAt),
	)
	return err
}

func (r *messageRepository) ListByJob(ctx context.Context, jobID, cursor string, limit int) ([]*domain.Message, int, string, error) {
	var total int
	if err := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT COUNT(*) FROM job_messages WHERE job_id = ?
	`), jobID).Scan(&total); err != nil {
		return nil, 0, "", err
	}

	query := `SELECT id, job_id, sender_id, body, created_at FROM job_messages WHERE job_id = ?`
	args := []any{jobID}
	if cursor != "" {
		ts, lastID, err := paging.DecodeCursor(cursor)
		if err != nil {
			return nil, 0, "", fmt.Errorf("invalid cursor: %w", err)
		}
		at := formatTime(ts)
		query += ` AND (created_at < ? OR (created_at = ? AND id < ?))`
		args = append(args, at, at, lastID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, 0, "", err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var createdAt string
		msg := &domain.Message{}
		if err := rows.Scan(&msg.ID, &msg.JobID, &msg.SenderID, &msg.Body, &createdAt); err != nil {
			return nil, 0, "", err
		}
		if msg.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, 0, "", err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, "", err
	}

	// The caller fetches limit+1 rows and trims the probe row, so the
	// cursor must come from the last row it keeps.
	nextCursor := ""
	if len(messages) == limit && limit > 1 {
		last := messages[limit-2]
		nextCursor = paging.EncodeCursor(last.CreatedAt, last.ID)
	}
	return messages, total, nextCursor, nil
}
