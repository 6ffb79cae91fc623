package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopzone/internal/config"
	"shopzone/internal/currency"
	"shopzone/internal/handler"
	"shopzone/internal/router"
	"shopzone/internal/seed"
	"shopzone/internal/service"
	"shopzone/internal/storage"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting shopzone API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the key-value backend
	kv, err := newBackend(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage backend: %w", err)
	}
	defer kv.Close()

	// Load the seed catalogue
	catalog, err := loadCatalog(ctx, cfg.Seed, logger)
	if err != nil {
		return fmt.Errorf("failed to load seed catalogue: %w", err)
	}

	// Initialize the store and seed it on first run
	st := store.New(kv, logger)
	if err := st.Init(ctx, catalog.Categories, catalog.Products); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	// Initialize the price formatter
	formatter, err := currency.New(cfg.Currency.Locale, cfg.Currency.Symbol)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("locale", cfg.Currency.Locale).
			Msg("invalid currency locale, using the default formatter")
		formatter = currency.Default()
	}

	// Initialize services
	catalogService := service.NewCatalogService(st, logger)
	authService := service.NewAuthService(st, logger)
	cartService := service.NewCartService(st, logger)
	orderService := service.NewOrderService(st, logger)
	adminService := service.NewAdminService(st, logger)
	wishlistService := service.NewWishlistService(st, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:  handler.NewProductHandler(catalogService, logger),
		Category: handler.NewCategoryHandler(catalogService, logger),
		Auth:     handler.NewAuthHandler(authService, logger),
		Cart:     handler.NewCartHandler(cartService, formatter, logger),
		Order:    handler.NewOrderHandler(orderService, logger),
		Admin:    handler.NewAdminHandler(adminService, orderService, logger),
		Wishlist: handler.NewWishlistHandler(wishlistService, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.AdminAPIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("backend", cfg.Storage.Backend).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newBackend constructs the key-value store named by the configuration.
func newBackend(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (storage.KV, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Info().Msg("using in-memory storage backend")
		return storage.NewMemory(), nil

	case config.BackendFile:
		logger.Info().Str("dir", cfg.Dir).Msg("using file storage backend")
		return storage.NewFile(cfg.Dir)

	case config.BackendSQLite:
		logger.Info().Str("path", cfg.SQLitePath).Msg("using sqlite storage backend")
		return storage.NewSQLite(cfg.SQLitePath, logger)

	case config.BackendPostgres:
		logger.Info().
			Str("host", cfg.Host).
			Str("database", cfg.Database).
			Msg("using postgres storage backend")
		poolCfg := &storage.PoolConfig{
			MaxConns:        int32(cfg.MaxConnections),
			MinConns:        int32(cfg.MinConnections),
			MaxConnLifetime: time.Duration(cfg.MaxConnLifetime) * time.Second,
		}
		return storage.NewPostgres(ctx, cfg.ConnectionString(), poolCfg, logger)

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// loadCatalog resolves the seed catalogue. With no seed file configured
// the built-in catalogue is used; otherwise the file is fetched from S3
// with a local fallback, or from the local file system alone.
func loadCatalog(ctx context.Context, cfg config.SeedConfig, logger zerolog.Logger) (*seed.Catalog, error) {
	if cfg.File == "" {
		catalog := seed.Default()
		logger.Info().
			Int("categories", len(catalog.Categories)).
			Int("products", len(catalog.Products)).
			Msg("using built-in seed catalogue")
		return &catalog, nil
	}

	fileLoader := seed.NewFileLoader(logger)
	var loader seed.Loader = fileLoader

	if cfg.S3 {
		s3Loader, err := seed.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			loader = seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3Prefix, true, logger)
		}
	}

	return loader.Load(ctx, cfg.File)
}
