package data

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/quickhirelabor/quickhire/internal/config"
)

// DatabaseDriver connects a named database backend. Driver packages
// register themselves from init when imported:
//
//	import _ "github.com/quickhirelabor/quickhire/internal/data/sqlite"
type DatabaseDriver interface {
	Name() string
	Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error)
}

var (
	databaseDriversMu sync.RWMutex
	databaseDrivers   = make(map[string]DatabaseDriver)
)

// RegisterDatabaseDriver registers a database driver. It panics when the
// driver is nil or registered twice.
func RegisterDatabaseDriver(driver DatabaseDriver) {
	databaseDriversMu.Lock()
	defer databaseDriversMu.Unlock()

	if driver == nil {
		panic("data: RegisterDatabaseDriver driver is nil")
	}
	name := driver.Name()
	if _, dup := databaseDrivers[name]; dup {
		panic(fmt.Sprintf("data: RegisterDatabaseDriver called twice for driver %q", name))
	}
	databaseDrivers[name] = driver
}

// GetDatabaseDriver returns the driver registered under name.
func GetDatabaseDriver(name string) (DatabaseDriver, error) {
	databaseDriversMu.RLock()
	defer databaseDriversMu.RUnlock()

	driver, ok := databaseDrivers[name]
	if !ok {
		return nil, fmt.Errorf("data: unknown database driver %q (registered: %v)", name, registeredDriverNames())
	}
	return driver, nil
}

func registeredDriverNames() []string {
	names := make([]string, 0, len(databaseDrivers))
	for name := range databaseDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
