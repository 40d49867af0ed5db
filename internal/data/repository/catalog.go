package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/quickhirelabor/quickhire/internal/domain"
)

// ServiceRepository stores labor service categories.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	Get(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id string) error
}

// SkillRepository stores laborer skill tags.
type SkillRepository interface {
	Replace(ctx context.Context, laborerID string, skills []*domain.Skill) error
	ListByLaborer(ctx context.Context, laborerID string) ([]*domain.Skill, error)
}

// TicketRepository stores support tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.SupportTicket) error
	Get(ctx context.Context, id string) (*domain.SupportTicket, error)
	List(ctx context.Context, status domain.TicketStatus) ([]*domain.SupportTicket, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.SupportTicket, error)
	Close(ctx context.Context, id string) error
}

type serviceRepository struct {
	base
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	_, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		INSERT INTO services (id, name, description, rate_cents, created_at)
		VALUES (?, ?, ?, ?, ?)
	`), svc.ID, svc.Name, svc.Description, svc.RateCents, formatTime(svc.CreatedAt))
	return err
}

func (r *serviceRepository) Get(ctx context.Context, id string) (*domain.Service, error) {
	row := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT id, name, description, rate_cents, created_at FROM services WHERE id = ?
	`), id)
	return scanService(row)
}

func (r *serviceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(`
		SELECT id, name, description, rate_cents, created_at FROM services ORDER BY name ASC
	`))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.Service) error {
	res, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		UPDATE services SET name = ?, description = ?, rate_cents = ? WHERE id = ?
	`), svc.Name, svc.Description, svc.RateCents, svc.ID)
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

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.exec(ctx).ExecContext(ctx, r.rebind(`DELETE FROM services WHERE id = ?`), id)
	return err
}

func scanService(sc scanner) (*domain.Service, error) {
	var description sql.NullString
	var createdAt string

	svc := &domain.Service{}
	if err := sc.Scan(&svc.ID, &svc.Name, &description, &svc.RateCents, &createdAt); err != nil {
		return nil, mapNoRows(err)
	}
	svc.Description = description.String
	var err error
	if svc.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return svc, nil
}

type skillRepository struct {
	base
}

func (r *skillRepository) Replace(ctx context.Context, laborerID string, skills []*domain.Skill) error {
	if _, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		DELETE FROM skills WHERE laborer_id = ?
	`), laborerID); err != nil {
		return err
	}
	for _, skill := range skills {
		if _, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
			INSERT INTO skills (id, laborer_id, name, created_at)
			VALUES (?, ?, ?, ?)
		`), skill.ID, laborerID, skill.Name, formatTime(skill.CreatedAt)); err != nil {
			return err
		}
	}
	return nil
}

func (r *skillRepository) ListByLaborer(ctx context.Context, laborerID string) ([]*domain.Skill, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(`
		SELECT id, laborer_id, name, created_at FROM skills
		WHERE laborer_id = ? ORDER BY name ASC
	`), laborerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*domain.Skill
	for rows.Next() {
		var createdAt string
		skill := &domain.Skill{}
		if err := rows.Scan(&skill.ID, &skill.LaborerID, &skill.Name, &createdAt); err != nil {
			return nil, err
		}
		if skill.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

type ticketRepository struct {
	base
}

const ticketColumns = `id, user_id, subject, body, status, created_at, updated_at`

func (r *ticketRepository) Create(ctx context.Context, t *domain.SupportTicket) error {
	_, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		INSERT INTO support_tickets (`+ticketColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`),
		t.ID, t.UserID, t.Subject, t.Body, string(t.Status),
		formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	)
	return err
}

func (r *ticketRepository) Get(ctx context.Context, id string) (*domain.SupportTicket, error) {
	row := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT `+ticketColumns+` FROM support_tickets WHERE id = ?
	`), id)
	return scanTicket(row)
}

func (r *ticketRepository) List(ctx context.Context, status domain.TicketStatus) ([]*domain.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`
	return r.listTickets(ctx, query, args...)
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID string) ([]*domain.SupportTicket, error) {
	return r.listTickets(ctx, `SELECT `+ticketColumns+` FROM support_tickets
		WHERE user_id = ? ORDER BY created_at DESC`, userID)
}

func (r *ticketRepository) listTickets(ctx context.Context, query string, args ...any) ([]*domain.SupportTicket, error) {
	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*domain.SupportTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *ticketRepository) Close(ctx context.Context, id string) error {
	res, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		UPDATE support_tickets SET status = ?, updated_at = ? WHERE id = ? AND status = ?
	`), string(domain.TicketClosed), formatTime(time.Now()), id, string(domain.TicketOpen))
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

func scanTicket(sc scanner) (*domain.SupportTicket, error) {
	var status, createdAt, updatedAt string

	t := &domain.SupportTicket{}
	if err := sc.Scan(&t.ID, &t.UserID, &t.Subject, &t.Body, &status, &createdAt, &updatedAt); err != nil {
		return nil, mapNoRows(err)
	}
	t.Status = domain.TicketStatus(status)
	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return t, nil
}
