package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/phone-spec-scraper/api/openapi"
	"github.com/donaldgifford/phone-spec-scraper/internal/api/handlers"
	"github.com/donaldgifford/phone-spec-scraper/internal/api/middleware"
	"github.com/donaldgifford/phone-spec-scraper/internal/config"
	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
	"github.com/donaldgifford/phone-spec-scraper/internal/notify"
	"github.com/donaldgifford/phone-spec-scraper/internal/store"
	"github.com/donaldgifford/phone-spec-scraper/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and refresh scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pg, err := store.NewPostgresStore(connectCtx, cfg.Database.DSN(), store.WithMaxConns(cfg.Database.PoolSize))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	if err := pg.Migrate(connectCtx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	comps, err := buildComponents(cfg, log)
	if err != nil {
		return err
	}
	svc := engine.NewService(comps.finder, comps.extractor, comps.serviceOptions(log, pg)...)

	refresher := newRefresher(cfg, comps, pg, log)

	var sched *engine.Scheduler
	if cfg.Refresh.Enabled {
		sched, err = engine.NewScheduler(
			refresher,
			cfg.Refresh.Interval,
			cfg.Refresh.Timeout,
			logger.Component(log, "scheduler"),
		)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
	}

	e := newServer(cfg, log, svc, refresher, pg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"reconcile", svc.ReconcileEnabled(),
		"refresh", cfg.Refresh.Enabled,
	)

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			log.Error("server error", "err", err)
		}
	}

	log.Info("shutting down server")

	if sched != nil {
		<-sched.Stop().Done()
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newRefresher(cfg *config.Config, comps *components, pg *store.PostgresStore, log *slog.Logger) *engine.Refresher {
	var notifier notify.Notifier = notify.NewNoOpNotifier(logger.Component(log, "notify"))
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}

	opts := []engine.RefresherOption{
		engine.WithStaleAfter(cfg.Refresh.StaleAfter),
		engine.WithBatchSize(cfg.Refresh.BatchSize),
		engine.WithRefreshLogger(logger.Component(log, "refresh")),
	}
	if cfg.Refresh.Reconcile && comps.reconciler != nil {
		opts = append(opts, engine.WithRefreshReconciler(comps.reconciler))
	}
	return engine.NewRefresher(pg, comps.extractor, notifier, opts...)
}

func newServer(
	cfg *config.Config,
	log *slog.Logger,
	svc *engine.Service,
	refresher *engine.Refresher,
	pg *store.PostgresStore,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	httpLog := logger.Component(log, "http")
	e.Use(middleware.Recovery(httpLog))
	e.Use(middleware.RequestLog(httpLog))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(pg)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	openapi.Register(openapi.NewAPI(e, Version), openapi.Handlers{
		Pipeline: svc,
		Sheets:   pg,
		Refresh:  refresher,
		Jobs:     pg,
	})

	return e
}
