package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"

	billingmodule "github.com/dmitrymomot/lemonbridge/modules/billing"

	"github.com/dmitrymomot/lemonbridge/internal/storage"
	"github.com/dmitrymomot/lemonbridge/pkg/auth"
	"github.com/dmitrymomot/lemonbridge/pkg/billing"
	"github.com/dmitrymomot/lemonbridge/pkg/config"
	"github.com/dmitrymomot/lemonbridge/pkg/email"
	"github.com/dmitrymomot/lemonbridge/pkg/httpserver"
	"github.com/dmitrymomot/lemonbridge/pkg/lemonsqueezy"
	"github.com/dmitrymomot/lemonbridge/pkg/logger"
	"github.com/dmitrymomot/lemonbridge/pkg/mongo"
	"github.com/dmitrymomot/lemonbridge/pkg/pg"
	"github.com/dmitrymomot/lemonbridge/pkg/redis"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"lemonbridge"`

	// SyncSchedule is a cron expression for the periodic vendor sync.
	SyncSchedule  string        `env:"SYNC_SCHEDULE" envDefault:"@every 6h"`
	SyncTimeout   time.Duration `env:"SYNC_TIMEOUT" envDefault:"5m"`
	PortalLinkTTL time.Duration `env:"PORTAL_LINK_TTL" envDefault:"1h"`

	// MongoEnabled turns on the webhook event archive.
	MongoEnabled  bool   `env:"MONGODB_ENABLED" envDefault:"false"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"lemonbridge"`

	HTTP         httpserver.Config
	PG           pg.Config
	Redis        redis.Config
	Auth         auth.Config
	LemonSqueezy lemonsqueezy.Config
	Email        email.Config
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Environment, cfg.ServiceName))
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close redis client", slog.Any("error", err))
		}
	}()

	vendorClient, err := lemonsqueezy.New(cfg.LemonSqueezy)
	if err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(cfg.Auth.SigningKey)
	if err != nil {
		return err
	}

	opts := []billing.ServiceOption{
		billing.WithLogger(log),
		billing.WithPortalLinkCache(storage.NewRedisPortalLinkCache(redisClient)),
		billing.WithPortalLinkTTL(cfg.PortalLinkTTL),
		billing.WithNotifier(billing.NewEmailNotifier(newEmailSender(cfg.Email, log))),
	}

	if cfg.MongoEnabled {
		var mongoCfg mongo.Config
		config.MustLoad(&mongoCfg)

		db, err := mongo.NewWithDatabase(ctx, mongoCfg, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Client().Disconnect(ctx); err != nil {
				log.ErrorContext(ctx, "failed to disconnect mongo client", slog.Any("error", err))
			}
		}()
		opts = append(opts, billing.WithEventArchive(storage.NewMongoEventArchive(db)))
	}

	svc := billing.NewService(
		vendorClient,
		storage.NewPostgresStore(pool),
		cfg.LemonSqueezy.SigningSecret,
		opts...,
	)

	scheduler, err := startSyncSchedule(ctx, cfg, svc, log)
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))
	r.Mount("/", billingmodule.Router(billingmodule.RouterOptions{
		Service: svc,
		Tokens:  tokens,
		Log:     log,
	}))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

// startSyncSchedule runs the vendor sync on the configured cron schedule.
// Overlapping runs are skipped so a slow sync never stacks up.
func startSyncSchedule(ctx context.Context, cfg appConfig, svc *billing.Service, log *slog.Logger) (*cron.Cron, error) {
	scheduler := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	_, err := scheduler.AddFunc(cfg.SyncSchedule, func() {
		syncCtx, cancel := context.WithTimeout(ctx, cfg.SyncTimeout)
		defer cancel()

		report, err := svc.Sync(syncCtx)
		if err != nil {
			log.ErrorContext(syncCtx, "scheduled sync failed", slog.Any("error", err))
			return
		}
		log.InfoContext(syncCtx, "scheduled sync finished", slog.String("summary", report.Message()))
	})
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	return scheduler, nil
}

func newEmailSender(cfg email.Config, log *slog.Logger) email.EmailSender {
	if cfg.PostmarkServerToken == "" {
		log.Info("postmark is not configured, billing emails are logged only")
		return email.NewDevSender(log)
	}

	sender, err := email.NewPostmarkClient(cfg)
	if err != nil {
		log.Error("invalid postmark configuration, falling back to dev sender", slog.Any("error", err))
		return email.NewDevSender(log)
	}
	return sender
}
