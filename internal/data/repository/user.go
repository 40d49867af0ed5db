package repository

import (
	"context"
	"time"

	"github.com/quickhirelabor/quickhire/internal/domain"
)

// UserRepository stores user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, role domain.Role) ([]*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) error
	Update(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	base
}

const userColumns = `id, name, email, phone, password_hash, role, active, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`),
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		string(user.Role),
		user.Active,
		formatTime(user.CreatedAt),
		formatTime(user.UpdatedAt),
	)
	return err
}

func (r *userRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT `+userColumns+` FROM users WHERE id = ?
	`), id)
	return scanUser(row)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, r.rebind(`
		SELECT `+userColumns+` FROM users WHERE email = ?
	`), email)
	return scanUser(row)
}

func (r *userRepository) List(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []any
	if role != "" {
		query += ` WHERE role = ?`
		args = append(args, string(role))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.exec(ctx).QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		UPDATE users SET active = ?, updated_at = ? WHERE id = ?
	`), active, formatTime(time.Now()), id)
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

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	res, err := r.exec(ctx).ExecContext(ctx, r.rebind(`
		UPDATE users SET name = ?, phone = ?, password_hash = ?, updated_at = ?
		WHERE id = ?
	`), user.Name, user.Phone, user.PasswordHash, formatTime(user.UpdatedAt), user.ID)
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

func scanUser(sc scanner) (*domain.User, error) {
	var role, createdAt, updatedAt string

	user := &domain.User{}
	if err := sc.Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash,
		&role, &user.Active, &createdAt, &updatedAt,
	); err != nil {
		return nil, mapNoRows(err)
	}

	user.Role = domain.Role(role)
	var err error
	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if user.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return user, nil
}
