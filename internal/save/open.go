package save

import (
	"fmt"
	"log/slog"
)

// Storage drivers accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Open builds the repository for driver. path is the directory for the
// file driver and the database file for sqlite. Repositories holding a
// connection also implement io.Closer.
func Open(driver, path string, log *slog.Logger) (Repository, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryRepo(log), nil
	case DriverFile:
		return NewFileRepo(path, log)
	case DriverSQLite:
		return OpenSQLite(path, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
