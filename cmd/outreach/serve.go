package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/outreach/internal"
	"github.com/dmitrymomot/outreach/internal/handlers"
	"github.com/dmitrymomot/outreach/middlewares"
	"github.com/dmitrymomot/outreach/pkg/cache"
	"github.com/dmitrymomot/outreach/pkg/campaign"
	"github.com/dmitrymomot/outreach/pkg/logger"
	"github.com/dmitrymomot/outreach/pkg/redis"
	"github.com/dmitrymomot/outreach/pkg/storage"
)

const (
	statsCachePrefix = "outreach:"
	flushTimeout     = 2 * time.Second
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context())
		},
	}
}

func (c *cli) serve(ctx context.Context) error {
	cfg, log := c.cfg, c.log
	defer logger.Flush(flushTimeout)

	svc, err := newServices(ctx, cfg, log)
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	var (
		runOpts   = []internal.RunOption{internal.Logger(log), internal.WriteTimeout(cfg.WriteTimeout), internal.WithContext(ctx)}
		readiness = []internal.HealthOption{
			internal.WithReadinessCheck("contacts", svc.checkContacts),
			internal.WithReadinessCheck("mail", svc.pipeline.Verify),
		}
	)

	if hc, ok := store.(interface{ Healthcheck(context.Context) error }); ok {
		readiness = append(readiness, internal.WithReadinessCheck("storage", hc.Healthcheck))
	}

	if local, ok := store.(*storage.LocalStorage); ok {
		sweeper, err := storage.NewSweeper(local.Dir(), cfg.Sweeper, log)
		if err != nil {
			return err
		}
		runOpts = append(runOpts,
			internal.StartupHook(func(context.Context) error {
				sweeper.Start()
				return nil
			}),
			internal.ShutdownHook(sweeper.Stop),
		)
	}

	statsOpts := []handlers.StatsOption{handlers.WithFormUploadLimit(cfg.UploadMaxBytes)}
	if cfg.StatsCacheTTL > 0 {
		var backend cache.Cache[campaign.Stats] = cache.NewMemory[campaign.Stats]()
		if cfg.Redis.Enabled() {
			client, err := redis.Open(ctx, cfg.Redis)
			if err != nil {
				return err
			}
			backend = cache.NewRedis[campaign.Stats](client, statsCachePrefix)
			readiness = append(readiness, internal.WithReadinessCheck("redis", redis.Healthcheck(client)))
			runOpts = append(runOpts, internal.ShutdownHook(redis.Shutdown(client)))
		}
		statsOpts = append(statsOpts, handlers.WithStatsCache(cache.NewMemoizer(backend, cfg.StatsCacheTTL)))
	}

	app := internal.New(
		internal.WithLogger(log),
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)),
		),
		internal.WithHealthChecks(readiness...),
		internal.WithHandlers(
			handlers.NewCampaignHandler(svc.pipeline, store,
				handlers.WithAttachmentName(cfg.Mail.AttachmentName),
				handlers.WithMaxUploadBytes(cfg.UploadMaxBytes),
			),
			handlers.Group(
				[]internal.Middleware{middlewares.Timeout(cfg.RequestTimeout)},
				handlers.NewStatsHandler(svc.pipeline, filepath.Base(cfg.ContactsFile), statsOpts...),
				handlers.NewStatusHandler(),
			),
		),
	)

	log.Info("outreach ready",
		slog.String("contacts", cfg.ContactsFile),
		slog.String("mail_provider", cfg.Mail.Provider),
		slog.String("storage", cfg.Storage.Driver),
	)
	return app.Run(cfg.Address, runOpts...)
}
