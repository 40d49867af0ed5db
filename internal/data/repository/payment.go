package repository

import (
	"context"

	"github.com/quickhirelabor/quickhire/internal/domain"
)

// PaymentRepository stores settlement records. A job carries at most one
// completed payment; CreateCompleted enforces that with a conditional
// insert so the guarantee holds without a partial unique index.
type PaymentRepository interface {
	CreateCompleted(ctx context.Context, p *domain.Payment) (bool, error)
	GetByJob(ctx context.Context, jobID string) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Payment, error)
}

type paymentRepository struct {
	base
}

const paymentColumns = `id, job_id, customer_id, laborer_id, amount_cents, method, status, created_at`

func (r *paymentRepository) CreateCompleted(ctx context.Context, p *domain.Payment) (bool, error) {
	p.Status = domain.PaymentCompleted
	res, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		INSERT INTO payments (`+paymentColumns+`)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM payments WHERE job_id = ? AND status = 'completed'
		)
	`),
		p.ID,
		p.JobID,
		p.CustomerID,
		p.LaborerID,
		p.AmountCents,
		p.Method,
		string(p.Status),
		formatTime(p.CreatedAt),
		p.JobID,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *paymentRepository) GetByJob(ctx context.Context, jobID string) (*domain.Payment, error) {
	row := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT `+paymentColumns+` FROM payments WHERE job_id = ? AND status = 'completed'
	`), jobID)
	return scanPayment(row)
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Payment, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(`
		SELECT `+paymentColumns+` FROM payments
		WHERE customer_id = ? OR laborer_id = ?
		ORDER BY created_at DESC
	`), userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func scanPayment(sc scanner) (*domain.Payment, error) {
	var status, createdAt string

	p := &domain.Payment{}
	if err := sc.Scan(
		&p.ID, &p.JobID, &p.CustomerID, &p.LaborerID, &p.AmountCents,
		&p.Method, &status, &createdAt,
	); err != nil {
		return nil, mapNoRows(err)
	}

	p.Status = domain.PaymentStatus(status)
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return p, nil
}
