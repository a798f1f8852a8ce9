package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/api"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/api/handlers/http/system"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/redis"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/service"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/storage/images"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/storage/postgres"
	"github.com/platanus-hack/platanus-hack-25-team-41/internal/workers"
	"github.com/platanus-hack/platanus-hack-25-team-41/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	NotifyQ    *redis.NotifyQueue
	Webhook    *service.WebhookSender
	Refresher  *workers.CacheRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	cache := redis.NewSightingCache(redisClient)
	notifyQueue := redis.NewNotifyQueue(redisClient.Client, "sightings:notify")

	logger.Info("Initializing S3 image store")
	imageStore, err := images.NewS3Store(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init s3 store: %w", err)
	}

	detector := service.NewHeuristicDetector(logger)

	publicSvc := service.NewPublicSightingService(
		storage.Sighting, cache, imageStore, detector, notifyQueue, logger, cfg.Redis.CacheTTL,
	)
	searchSvc := service.NewSearchService(storage.Sighting, storage.Geo, detector, logger, cfg.Search)
	adminSvc := service.NewAdminSightingService(storage.Sighting, logger)
	statsSvc := service.NewStatsService(storage.Stat)
	reunionSvc := service.NewReunionService(storage.Sighting, storage.Reunion, imageStore, logger)

	srv := service.NewService(publicSvc, searchSvc, adminSvc, statsSvc, reunionSvc)

	httpServer := api.NewServer(cfg, logger, srv, map[string]system.Pinger{
		"postgres": storage.Pool,
		"redis":    redisClient,
	})
	logger.Info("Initialized server")

	var sender *service.WebhookSender
	if !cfg.Webhook.Disabled {
		sender = service.NewWebhookSender(logger, cfg.Webhook, notifyQueue)
	}

	refresher := workers.NewCacheRefresher(storage.Sighting, cache, logger, 30*time.Second, cfg.Redis.CacheTTL)

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		NotifyQ:    notifyQueue,
		Webhook:    sender,
		Refresher:  refresher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
