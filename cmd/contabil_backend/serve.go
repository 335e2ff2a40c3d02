package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/contabil_ledger/internal/core/services"
	"github.com/SscSPs/contabil_ledger/internal/handlers"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/SscSPs/contabil_ledger/internal/platform/config"
	"github.com/SscSPs/contabil_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/contabil_ledger/internal/repositories/memory"
	"github.com/SscSPs/contabil_ledger/internal/utils"
	"github.com/SscSPs/contabil_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger, skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply migrations on start")
	return cmd
}

// openStorage returns the repositories for the configured driver and a health check.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger, skipMigrations bool) (portsrepo.RepositoryProvider, func(context.Context) error, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewStore().Provider(), nil, func() {}, nil
	}

	if !skipMigrations {
		if err := runMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, false); err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	return pgsql.NewRepositoryProvider(pool), pool.Ping, func() { database.ClosePgxPool(pool) }, nil
}

func newLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formatted, err)
	}
	return limiter.New(limitermemory.NewStore(), rate), nil
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, skipMigrations bool) error {
	repos, healthCheck, closeStorage, err := openStorage(ctx, cfg, logger, skipMigrations)
	if err != nil {
		return err
	}
	defer closeStorage()

	globalLimiter, err := newLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}
	loginLimiter, err := newLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	container := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.GlobalRateLimit(globalLimiter))
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, container, handlers.RouteDeps{
		Posthog:      posthogClient,
		LoginLimiter: loginLimiter,
		HealthCheck:  healthCheck,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to run: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
