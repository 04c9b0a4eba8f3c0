package root

import (
	"context"
	"database/sql"

	"lifequest/internal/config"
	"lifequest/internal/engine"
	"lifequest/internal/storage"
)

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, func(), error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	db, cleanup, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	repo := storage.NewStateRepo(storage.NewKV(db))
	return engine.NewService(repo), cfg, cleanup, nil
}
