// Package iostore implements store.Store for SQLite and PostgreSQL.
// This is an impure I/O package.
package iostore

import (
	"context"

	"github.com/gnames/authcheck/pkg/config"
	"github.com/gnames/authcheck/pkg/store"
)

// New opens the store selected by the configuration.
func New(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "sqlite":
		return NewSQLite(ctx, cfg.StorePath())
	case "postgres":
		return NewPostgres(ctx, &cfg.Database)
	default:
		return nil, UnknownBackendError(cfg.Store.Backend)
	}
}
