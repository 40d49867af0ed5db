// Package sqlite provides a SQLite driver for the data layer, used for
// local development and tests.
//
// It registers itself automatically when imported:
//
//	import _ "github.com/quickhirelabor/quickhire/internal/data/sqlite"
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/quickhirelabor/quickhire/internal/config"
	"github.com/quickhirelabor/quickhire/internal/data"
)

type driver struct{}

func (d *driver) Name() string {
	return "sqlite3"
}

func (d *driver) Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("sqlite: connection source is empty")
	}

	db, err := sql.Open("sqlite3", cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open database: %w", err)
	}

	// SQLite serializes writers; a single connection avoids busy errors.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: failed to open database file: %w", err)
	}
	return db, nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
