package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-backend/internal/auth"
	"github.com/rogerio-castellano/inventory-backend/internal/config"
	"github.com/rogerio-castellano/inventory-backend/internal/db"
	"github.com/rogerio-castellano/inventory-backend/internal/http/ban"
	"github.com/rogerio-castellano/inventory-backend/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-backend/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-backend/internal/http/router"
	"github.com/rogerio-castellano/inventory-backend/internal/logger"
	"github.com/rogerio-castellano/inventory-backend/internal/metrics"
	"github.com/rogerio-castellano/inventory-backend/internal/redissvc"
	"github.com/rogerio-castellano/inventory-backend/internal/repo"
)

const (
	visitorCleanupInterval = time.Minute
	shutdownTimeout        = 10 * time.Second
)

// @title Inventory Backend API
// @version 1.0
// @description REST API for products, documents, employees and storage zones of a warehouse.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", os.Getenv("INVENTORY_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zap.NewExample().Fatal("could not load config", zap.Error(err))
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("could not build logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	var (
		revocations auth.RevocationStore = auth.NewInMemoryRevocationStore()
		strikes     ban.StrikeStore      = ban.NewInMemoryStrikeStore()
	)
	if cfg.Redis.Addr != "" {
		redisService, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisService.Close()
		revocations = redisService
		strikes = redisService
		log.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	}

	tokens, err := auth.NewTokenService(cfg.JWT)
	if err != nil {
		return err
	}
	if tokens.GeneratedSecret() {
		log.Warn("jwt.secret is not set, using a random secret; tokens will not survive a restart")
	}
	authService := auth.NewAuthService(repos.Employees, tokens, revocations)

	handlers.SetRepositories(repos)
	handlers.SetAuthService(authService)
	handlers.SetLoginGuard(ban.NewGuard(strikes, cfg.Auth.MaxFailedLogins, cfg.Auth.LockoutWindow, log))
	handlers.SetLogger(log)
	handlers.SetRedactErrors(cfg.HTTP.RedactErrors || cfg.IsProduction())

	limiter := rl.New(cfg.Auth.LoginRate, cfg.Auth.LoginBurst)
	go limiter.StartCleanupLoop(ctx, visitorCleanupInterval)

	opts := router.Options{
		Logger:           log,
		LoginLimiter:     limiter,
		Auth:             authService,
		ProtectMutations: cfg.Auth.ProtectMutations,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metrics.New()
	}

	srv := &http.Server{
		Addr:         cfg.App.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running",
			zap.String("addr", cfg.App.Addr),
			zap.String("env", cfg.App.Env),
			zap.String("storage", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStorage returns the repositories of the configured driver and a func
// releasing them.
func openStorage(ctx context.Context, cfg config.Config, log *zap.Logger) (repo.Repositories, func(), error) {
	if cfg.Storage.Driver == config.DriverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		store := repo.NewInMemoryStore()
		store.SeedReferences()
		return store.Repositories(), func() {}, nil
	}

	database, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return repo.Repositories{}, nil, err
	}
	if cfg.Database.Migrate {
		if err := db.Migrate(database); err != nil {
			database.Close()
			return repo.Repositories{}, nil, err
		}
		log.Info("database migrated")
	}
	return repo.NewPostgresRepositories(database), func() { database.Close() }, nil
}
