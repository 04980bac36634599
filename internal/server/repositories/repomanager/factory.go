package repomanager

import (
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/server/config"
)

// ForDriver picks the manager matching a configured storage driver.
func ForDriver(driver string) (RepositoryManager, error) {
	switch driver {
	case config.DriverPostgres:
		return NewPostgresRepositoryManager(), nil
	case config.DriverSQLite:
		return NewSQLiteRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
}
