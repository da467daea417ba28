package application

import (
	"context"
	"fmt"
	"log/slog"

	"similar_groups/internal/config"
	"similar_groups/internal/domain/service/catalog"
	"similar_groups/internal/domain/service/lookup"
	"similar_groups/internal/infrastructure/persistence"
	"similar_groups/pkg/application/connectors"
	"similar_groups/pkg/logx"
)

type store interface {
	lookup.SimilarGroupRepository
	catalog.SimilarGroupRepository
}

// openStore подключает настроенное хранилище и применяет схему. Возвращённую
// функцию закрытия нужно вызвать, когда хранилище больше не нужно.
func openStore(ctx context.Context, cfg config.Config) (store, func(), error) {
	logger(ctx).Info("opening reference store", slog.String(logx.FieldStore, cfg.Store.Driver))

	switch cfg.Store.Driver {
	case config.StoreMemory:
		return persistence.NewMemoryRepository(), func() {}, nil

	case config.StorePostgres:
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
			ConnectTimeout:  cfg.Postgres.ConnectTimeout,
		}

		repo := persistence.NewSimilarGroupRepository(pg.Client(ctx))
		if err := repo.Migrate(ctx); err != nil {
			pg.Close(ctx)

			return nil, nil, fmt.Errorf("repo.Migrate: %w", err)
		}

		return repo, func() { pg.Close(ctx) }, nil

	case config.StoreSQLite:
		sqlite := &connectors.SQLite{Path: cfg.SQLite.Path}

		repo := persistence.NewSimilarGroupRepository(sqlite.Client(ctx))
		if err := repo.Migrate(ctx); err != nil {
			sqlite.Close(ctx)

			return nil, nil, fmt.Errorf("repo.Migrate: %w", err)
		}

		return repo, func() { sqlite.Close(ctx) }, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// ImportReference загружает файл справочника в настроенное хранилище.
func ImportReference(ctx context.Context, cfg config.Config, path string) (catalog.ImportResult, error) {
	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return catalog.ImportResult{}, err
	}
	defer closeStore()

	result, err := newImporter(repo).Import(ctx, path)
	if err != nil {
		return catalog.ImportResult{}, fmt.Errorf("importer.Import: %w", err)
	}

	return result, nil
}
