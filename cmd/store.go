package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sodam-labs/sodam/internal/config"
	"github.com/sodam-labs/sodam/internal/scorer"
	"github.com/sodam-labs/sodam/internal/store"
)

// initStore opens the configured store and applies migrations.
func initStore(ctx context.Context) (store.Store, error) {
	if err := cfg.Validate("store"); err != nil {
		return nil, err
	}

	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		st, err = store.NewSQLite(cfg.Store.DatabaseURL)
	case config.DriverPostgres:
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

func newService() *scorer.Service {
	return scorer.NewService(scorer.NewEngine(cfg.Batch.Concurrency))
}
