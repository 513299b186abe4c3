package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ftfltech/careers-api/internal/api"
	"github.com/ftfltech/careers-api/internal/config"
	"github.com/ftfltech/careers-api/internal/platform/cache"
	"github.com/ftfltech/careers-api/internal/platform/cloudinary"
	"github.com/ftfltech/careers-api/internal/platform/mailer"
	"github.com/ftfltech/careers-api/internal/platform/postgres"
	"github.com/ftfltech/careers-api/internal/service"
	"github.com/ftfltech/careers-api/internal/store"
)

// application holds the shared dependencies of a running server and releases
// them on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sql.DB
	cache   *cache.JobListCache
	handler http.Handler
}

// dependencies are the adapters the services are built on.
type dependencies struct {
	jobs        store.JobStore
	contacts    store.ContactStore
	orders      store.OrderStore
	subscribers store.SubscriberStore
	uploader    service.ResumeUploader
	mailer      service.Mailer
	// jobCache may be nil, which disables caching of the job list.
	jobCache service.JobListCache
}

// newApplication connects to the database and the external services and
// builds the HTTP handler. The Redis cache is optional: when it cannot be
// reached the server runs without it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{config: cfg, logger: logger}

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	app.db = db
	logger.Info("database connection established")

	uploader, err := cloudinary.New(cfg.Blob.CloudinaryURL, cfg.Blob.Folder, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize resume uploader: %w", err)
	}

	mail, err := mailer.New(mailer.Config{
		Host:        cfg.Mail.Host,
		Port:        cfg.Mail.Port,
		Username:    cfg.Mail.Username,
		Password:    cfg.Mail.Password,
		From:        cfg.Mail.SenderAddress(),
		ImplicitTLS: cfg.Mail.ImplicitTLS,
	}, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	deps := dependencies{
		jobs:        postgres.NewPostgresJobStore(db, logger),
		contacts:    postgres.NewPostgresContactStore(db, logger),
		orders:      postgres.NewPostgresOrderStore(db, logger),
		subscribers: postgres.NewPostgresSubscriberStore(db, logger),
		uploader:    uploader,
		mailer:      mail,
	}

	if cfg.Cache.RedisURL != "" {
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		jobCache, err := cache.New(ctx, cfg.Cache.RedisURL, ttl, logger)
		if err != nil {
			logger.Warn("job list cache unavailable, continuing without it",
				slog.String("error", err.Error()))
		} else {
			app.cache = jobCache
			deps.jobCache = jobCache
			logger.Info("job list cache enabled", slog.Duration("ttl", ttl))
		}
	}

	app.handler, err = newHandler(cfg, logger, deps)
	if err != nil {
		app.cleanup()
		return nil, err
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// newHandler builds the services and the router on top of deps.
func newHandler(cfg *config.Config, logger *slog.Logger, deps dependencies) (http.Handler, error) {
	jobService, err := service.NewJobService(deps.jobs, deps.uploader, deps.jobCache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create job service: %w", err)
	}

	contactService, err := service.NewContactService(deps.contacts, deps.orders, service.OrderDefaults{
		PackageID: cfg.Orders.DefaultPackageID,
		UserID:    cfg.Orders.DefaultUserID,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	newsletterService, err := service.NewNewsletterService(deps.subscribers, deps.mailer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create newsletter service: %w", err)
	}

	return api.NewRouter(api.Handlers{
		Jobs:       api.NewJobHandler(jobService, logger),
		Contacts:   api.NewContactHandler(contactService, logger),
		Newsletter: api.NewNewsletterHandler(newsletterService, logger),
	}, cfg.Server.CORSAllowedOrigins, logger), nil
}

// cleanup releases the cache and database connections. It is safe to call
// more than once.
func (app *application) cleanup() {
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("error closing cache connection", slog.String("error", err.Error()))
		}
		app.cache = nil
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
		app.db = nil
	}

	app.logger.Info("application resources released")
}
