// Package data manages database and redis connections and transactions.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickhirelabor/quickhire/internal/config"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
)

type contextKey string

// ContextKeyTransaction carries the active transaction through contexts.
const ContextKeyTransaction contextKey = "data_tx"

// Data is the persistence layer entry point: one master database plus an
// optional redis client.
type Data struct {
	db     *sql.DB
	driver string
	rc     *redis.Client
	logger *logger.Logger
}

// New connects the configured master database and, when configured, redis.
func New(cfg *config.Data, log *logger.Logger) (*Data, error) {
	if cfg == nil || cfg.Database == nil || cfg.Database.Master == nil {
		return nil, errors.New("data: missing database configuration")
	}
	node := cfg.Database.Master

	driver, err := GetDatabaseDriver(node.Driver)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := driver.Connect(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("data: failed to connect %s: %w", node.Driver, err)
	}
	log.Info(ctx, "Database connected", "driver", node.Driver)

	d := &Data{db: db, driver: node.Driver, logger: log}

	if cfg.Redis != nil && cfg.Redis.Addr != "" {
		rc := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.Db,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err := rc.Ping(ctx).Err(); err != nil {
			_ = rc.Close()
			_ = db.Close()
			return nil, fmt.Errorf("data: failed to ping redis: %w", err)
		}
		d.rc = rc
		log.Info(ctx, "Redis connected", "addr", cfg.Redis.Addr)
	}

	return d, nil
}

// DB returns the master database handle.
func (d *Data) DB() *sql.DB {
	return d.db
}

// Driver returns the connected database driver name.
func (d *Data) Driver() string {
	return d.driver
}

// Redis returns the redis client, nil when not configured.
func (d *Data) Redis() *redis.Client {
	return d.rc
}

// Ping verifies the backing connections.
func (d *Data) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return err
	}
	if d.rc != nil {
		return d.rc.Ping(ctx).Err()
	}
	return nil
}

// Close releases all connections.
func (d *Data) Close() error {
	var errs []error
	if d.rc != nil {
		if err := d.rc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := d.db.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// GetTx retrieves the transaction from context.
func GetTx(ctx context.Context) (*sql.Tx, error) {
	tx, ok := ctx.Value(ContextKeyTransaction).(*sql.Tx)
	if !ok {
		return nil, errors.New("data: transaction not found in context")
	}
	return tx, nil
}

// WithTx wraps fn within a transaction. The transaction is placed on the
// context for repositories to pick up.
func (d *Data) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTx(ctx, d.db, fn)
}

// WithTx wraps fn within a transaction on the given database handle.
func WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, ContextKeyTransaction, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
