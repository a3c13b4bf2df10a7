package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pvm-hub/internal/blobstore"
	"github.com/KirkDiggler/pvm-hub/internal/catalog"
	"github.com/KirkDiggler/pvm-hub/internal/clients/draft"
	"github.com/KirkDiggler/pvm-hub/internal/config"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
	"github.com/KirkDiggler/pvm-hub/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/pvm-hub/internal/handlers/live"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/guides"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/preset"
	"github.com/KirkDiggler/pvm-hub/internal/orchestrators/simulator"
	"github.com/KirkDiggler/pvm-hub/internal/pkg/clock"
	"github.com/KirkDiggler/pvm-hub/internal/pkg/idgen"
	"github.com/KirkDiggler/pvm-hub/internal/redis"
	guiderepo "github.com/KirkDiggler/pvm-hub/internal/repositories/guides"
	"github.com/KirkDiggler/pvm-hub/internal/repositories/presets"
)

// app is the wired dependency graph
type app struct {
	catalogHandler   *v1alpha1.CatalogHandler
	presetHandler    *v1alpha1.PresetHandler
	simulatorHandler *v1alpha1.SimulatorHandler
	guideHandler     *v1alpha1.GuideHandler
	liveHandler      *live.Handler

	closers []func() error
}

// Close releases connections in reverse order of creation
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("Failed to release resource", "error", err)
		}
	}
}

func newApp(ctx context.Context, cfg *config.Config) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	var redisClient redis.Client
	if cfg.UsesRedis() {
		redisClient, err = openRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, redisClient.Close)
	}

	itemCatalog, err := openCatalog(ctx, cfg, redisClient)
	if err != nil {
		return nil, err
	}

	store, closeStore, err := blobstore.Open(ctx, &blobstore.OpenConfig{
		Backend:     cfg.Storage.Backend,
		KeyPrefix:   cfg.Storage.KeyPrefix,
		RedisClient: redisClient,
		PostgresDSN: cfg.Storage.Postgres.DSN,
		SQLitePath:  cfg.Storage.SQLite.Path,
	})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeStore)

	presetRepo, err := presets.NewBlobRepository(&presets.Config{
		Store:       store,
		IDGenerator: idgen.NewUUID("preset"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create preset repository")
	}

	guideRepo, err := guiderepo.NewBlobRepository(&guiderepo.Config{
		Store:       store,
		IDGenerator: idgen.NewUUID("guide"),
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create guide repository")
	}

	drafts, err := draft.New(cfg.DraftClientConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create draft client")
	}
	if cfg.Draft.APIKey == "" {
		slog.Warn("Draft generation disabled: no Gemini API key configured")
	}

	presetService, err := preset.NewOrchestrator(&preset.Config{
		Catalog:    itemCatalog,
		PresetRepo: presetRepo,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create preset orchestrator")
	}

	simulatorService, err := simulator.NewOrchestrator(&simulator.Config{Catalog: itemCatalog})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create simulator orchestrator")
	}

	guideService, err := guides.NewOrchestrator(&guides.Config{
		GuideRepo: guideRepo,
		Drafts:    drafts,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create guide orchestrator")
	}

	if a.catalogHandler, err = v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{
		Catalog: itemCatalog,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create catalog handler")
	}
	if a.presetHandler, err = v1alpha1.NewPresetHandler(&v1alpha1.PresetHandlerConfig{
		PresetService: presetService,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create preset handler")
	}
	if a.simulatorHandler, err = v1alpha1.NewSimulatorHandler(&v1alpha1.SimulatorHandlerConfig{
		SimulatorService: simulatorService,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create simulator handler")
	}
	if a.guideHandler, err = v1alpha1.NewGuideHandler(&v1alpha1.GuideHandlerConfig{
		GuideService: guideService,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create guide handler")
	}
	if a.liveHandler, err = live.NewHandler(&live.HandlerConfig{
		Catalog:       itemCatalog,
		PresetService: presetService,
		QuietPeriod:   cfg.Search.QuietPeriod,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create live handler")
	}

	return a, nil
}

func openRedis(ctx context.Context, cfg *config.Config) (redis.Client, error) {
	rc := cfg.Storage.Redis
	client, err := redis.NewClient(rc.Addr, &redis.Options{
		Password:     rc.Password,
		DB:           rc.DB,
		PoolSize:     rc.PoolSize,
		MinIdleConns: rc.MinIdleConns,
		MaxRetries:   rc.MaxRetries,
		UseTLS:       rc.UseTLS,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}
	if err := redis.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}

	slog.Info("Connected to redis", "addr", rc.Addr, "db", rc.DB)
	return client, nil
}

func openCatalog(ctx context.Context, cfg *config.Config, client redis.Client) (catalog.Catalog, error) {
	if cfg.Catalog.Backend != config.CatalogRedis {
		return catalog.NewInMemory(&catalog.InMemoryConfig{
			SearchLatency: cfg.Catalog.Latency,
			GetLatency:    cfg.Catalog.Latency,
		})
	}

	if cfg.Catalog.SeedOnStart {
		items, err := catalog.LoadSeed()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load seed catalog")
		}
		if err := catalog.Seed(ctx, client, cfg.Storage.KeyPrefix, items); err != nil {
			return nil, err
		}
	}

	return catalog.NewRedis(&catalog.RedisConfig{
		Client:    client,
		KeyPrefix: cfg.Storage.KeyPrefix,
	})
}
