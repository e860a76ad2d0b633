package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appCatalog "github.com/gescom/backend/internal/application/catalog"
	appClient "github.com/gescom/backend/internal/application/client"
	appDashboard "github.com/gescom/backend/internal/application/dashboard"
	appPartner "github.com/gescom/backend/internal/application/partner"
	appTrade "github.com/gescom/backend/internal/application/trade"
	"github.com/gescom/backend/internal/infrastructure/cache"
	"github.com/gescom/backend/internal/infrastructure/config"
	"github.com/gescom/backend/internal/infrastructure/logger"
	"github.com/gescom/backend/internal/infrastructure/persistence"
	"github.com/gescom/backend/internal/interfaces/http/handler"
	"github.com/gescom/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}()
	log.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	cacheFactory := cache.NewQueryCacheFactory(cfg.Cache, cfg.Redis, cache.WithFactoryLogger(log))
	queryCache, err := cacheFactory.CreateCache()
	if err != nil {
		return err
	}
	defer func() {
		if err := queryCache.Close(); err != nil {
			log.Warn("failed to close query cache", zap.Error(err))
		}
	}()

	partnerRepo := persistence.NewGormPartnerRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormSupplierOrderRepository(db.DB)

	partnerQueries := appPartner.NewCachedQueries(
		appPartner.NewPartnerService(partnerRepo),
		queryCache,
		appPartner.WithQueryTTL(cfg.Cache.TTL),
		appPartner.WithQueryLogger(log),
	)
	clientService := appClient.NewClientService(clientRepo)
	productService := appCatalog.NewProductService(productRepo)
	orderService := appTrade.NewOrderService(orderRepo)
	dashboardService := appDashboard.NewDashboardService(partnerRepo, clientRepo, productRepo, orderRepo)

	engine := router.New(cfg, log, router.Handlers{
		Partner:   handler.NewPartnerHandler(partnerQueries, log),
		Client:    handler.NewClientHandler(clientService, log),
		Product:   handler.NewProductHandler(productService, log),
		Order:     handler.NewOrderHandler(orderService, log),
		Dashboard: handler.NewDashboardHandler(dashboardService, log),
		System:    handler.NewSystemHandler(cfg, db),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}
