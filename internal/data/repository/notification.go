package repository

import (
	"context"

	"github.com/quickhirelabor/quickhire/internal/domain"
)

// NotificationRepository stores in-app user alerts.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationRepository struct {
	base
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	_, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		INSERT INTO notifications (id, user_id, title, message, category, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`),
		n.ID,
		n.UserID,
		n.Title,
		n.Message,
		n.Category,
		n.Read,
		formatTime(n.CreatedAt),
	)
	return err
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error) {
	query := `SELECT id, user_id, title, message, category, is_read, created_at
		FROM notifications WHERE user_id = ?`
	if unreadOnly {
		query += ` AND is_read = ?`
	}
	query += ` ORDER BY is_read ASC, created_at DESC`

	args := []any{userID}
	if unreadOnly {
		args = append(args, false)
	}

	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var createdAt string
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Category, &n.Read, &createdAt); err != nil {
			return nil, err
		}
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	res, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		UPDATE notifications SET is_read = ? WHERE id = ? AND user_id = ?
	`), true, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		UPDATE notifications SET is_read = ? WHERE user_id = ? AND is_read = ?
	`), true, userID, false)
	return err
}
