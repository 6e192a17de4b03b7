// Package storage builds the registry backend selected in the configuration
// and owns its lifetime.
package storage

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/config"
	"github.com/dmitrijs2005/usermanager/internal/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Close() error
}

// NewRepositoryManager returns the manager for cfg.Storage. The users
// repository it exposes reports to reg.
func NewRepositoryManager(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (RepositoryManager, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return NewInMemoryRepositoryManager(reg), nil
	case config.StorageSQLite:
		return NewSQLiteRepositoryManager(ctx, reg)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownStorage, cfg.Storage)
	}
}
