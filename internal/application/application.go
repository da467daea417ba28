package application

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"similar_groups/internal/config"
	"similar_groups/internal/domain/service/catalog"
	"similar_groups/internal/domain/service/lookup"
	"similar_groups/internal/infrastructure/persistence"
	"similar_groups/internal/infrastructure/refdata"
	"similar_groups/internal/metrics"
	"similar_groups/internal/server"
	"similar_groups/pkg/application/connectors"
	"similar_groups/pkg/application/modules"
	"similar_groups/pkg/logx"
)

const httpServerReadHeaderTimeout = 5 * time.Second

func newImporter(repo catalog.SimilarGroupRepository) *catalog.Importer {
	return catalog.NewImporter(refdata.NewFileReader(), repo)
}

// Run загружает справочник и обслуживает поиск до отмены ctx.
// HTTP сервер запускается только после успешной загрузки.
func Run(ctx context.Context, cfg config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	probeServer := modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
	}.Run(ctx, g)

	// stop останавливает уже запущенные сервера перед возвратом ошибки старта.
	stop := func(err error) error {
		cancel()

		if waitErr := g.Wait(); waitErr != nil {
			logger(ctx).Warn("servers stopped with error", logx.Error(waitErr))
		}

		return err
	}

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return stop(fmt.Errorf("openStore: %w", err))
	}
	defer closeStore()

	result, err := newImporter(repo).Import(ctx, cfg.RefData.Path)
	if err != nil {
		return stop(fmt.Errorf("importer.Import: %w", err))
	}

	metrics.SetReferenceRecords(result.Total)

	cachedRepo := persistence.NewCachedRepository(repo, cfg.Cache.TTL, cfg.Cache.CleanupInterval)

	if cfg.Redis.Enabled() {
		redis := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
			ConnectTimeout:     cfg.Redis.ConnectTimeout,
		}
		redisClient := redis.Client(ctx)
		defer redis.Close(ctx)

		cachedRepo = cachedRepo.WithRemote(
			persistence.NewRedisRecordCache(redisClient, cfg.Redis.KeyPrefix, cfg.Redis.TTL),
		)
	}

	lookupService := lookup.NewService(cachedRepo).
		WithAnnotationPolicy(cfg.Lookup.AnnotateRelated)

	handler := server.NewServer(
		server.NewLookupServer(lookupService),
	).Handler(logx.NewSensitiveDataMasker(cfg.HTTP.LogMaskFields...), cfg.HTTP.LogFieldMaxLen)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           handler,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	if err := (modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}).Run(ctx, g, httpServer); err != nil {
		return stop(fmt.Errorf("httpServer.Run: %w", err))
	}

	probeServer.MarkReady()

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
