// Package repository implements SQL persistence for the marketplace
// entities. Repositories pick up an active transaction from the context
// when one is present (see data.WithTx).
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/quickhirelabor/quickhire/internal/data"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("repository: not found")

// Repositories aggregates every repository over one data layer.
type Repositories struct {
	Jobs          JobRepository
	Users         UserRepository
	Messages      MessageRepository
	Payments      PaymentRepository
	Ratings       RatingRepository
	Notifications NotificationRepository
	Services      ServiceRepository
	Skills        SkillRepository
	Tickets       TicketRepository
}

// New builds all repositories on the given data layer.
func New(d *data.Data) *Repositories {
	b := base{db: d.DB(), driver: d.Driver()}
	return &Repositories{
		Jobs:          &jobRepository{b},
		Users:         &userRepository{b},
		Messages:      &messageRepository{b},
		Payments:      &paymentRepository{b},
		Ratings:       &ratingRepository{b},
		Notifications: &notificationRepository{b},
		Services:      &serviceRepository{b},
		Skills:        &skillRepository{b},
		Tickets:       &ticketRepository{b},
	}
}

type base struct {
	db     *sql.DB
	driver string
}

// executor is the common surface of *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// exec returns the context transaction when present, the database
// otherwise.
func (b *base) exec(ctx context.Context) executor {
	if tx, err := data.GetTx(ctx); err == nil {
		return tx
	}
	return b.db
}

// rebind converts ? placeholders to the $n form postgres expects.
func (b *base) rebind(query string) string {
	if b.driver != "postgres" {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

type scanner interface {
	Scan(dest ...any) error
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
