// Package mysql provides a MySQL driver for the data layer.
//
// It registers itself automatically when imported:
//
//	import _ "github.com/quickhirelabor/quickhire/internal/data/mysql"
//
// Example DSN format:
//
//	user:password@tcp(localhost:3306)/quickhire?parseTime=true&charset=utf8mb4
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/quickhirelabor/quickhire/internal/config"
	"github.com/quickhirelabor/quickhire/internal/data"
)

type driver struct{}

func (d *driver) Name() string {
	return "mysql"
}

func (d *driver) Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("mysql: connection source is empty")
	}

	db, err := sql.Open("mysql", cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("mysql: failed to open connection: %w", err)
	}

	applyPool(db, cfg)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql: failed to ping server: %w", err)
	}
	return db, nil
}

func applyPool(db *sql.DB, cfg *config.DBNode) {
	if cfg.MaxIdleConn > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConn)
	}
	if cfg.MaxOpenConn > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConn)
	}
	if cfg.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifeTime)
	}
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
