package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	applabeling "github.com/sellerdesk/backend/internal/application/labeling"
	"github.com/sellerdesk/backend/internal/infrastructure/config"
	"github.com/sellerdesk/backend/internal/infrastructure/kv"
	"github.com/sellerdesk/backend/internal/infrastructure/logger"
	"github.com/sellerdesk/backend/internal/infrastructure/persistence"
	"github.com/sellerdesk/backend/internal/interfaces/http/handler"
	"github.com/sellerdesk/backend/internal/interfaces/http/middleware"
	"github.com/sellerdesk/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SellerDesk label backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("storage", cfg.Storage.Driver),
	)

	// Open the document store backend
	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open document store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing document store", zap.Error(err))
		}
	}()

	// Hydrate repositories (seed data covers a fresh install)
	ctx := context.Background()
	repos := persistence.NewRepositories(ctx, store, log)

	// Application services
	templateSvc := applabeling.NewTemplateService(repos.Templates, repos.Elements, log)
	queueSvc := applabeling.NewQueueService(repos.Queue, repos.Templates, repos.CleanupRules, repos.Products, log)
	formatSvc := applabeling.NewCodeFormatService(repos.CodeFormats, log)
	cleanupSvc := applabeling.NewCleanupService(repos.CleanupRules, log)
	ruleSvc := applabeling.NewRuleService(repos.Shippers, repos.Templates, repos.Products, log)

	// HTTP engine
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(),
	)
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	templateHandler := handler.NewTemplateHandler(templateSvc)
	r := router.NewRouter(engine)
	r.Register(handler.TemplateRoutes(templateHandler))
	r.Register(handler.ElementRoutes(templateHandler))
	r.Register(handler.QueueRoutes(handler.NewQueueHandler(queueSvc)))
	r.Register(handler.CodeFormatRoutes(handler.NewCodeFormatHandler(formatSvc)))
	r.Register(handler.CleanupRoutes(handler.NewCleanupHandler(cleanupSvc)))
	r.Register(handler.ShipperRoutes(handler.NewShipperHandler(ruleSvc)))
	r.Register(handler.ProductRoutes(handler.NewProductHandler(repos.Products)))
	r.Register(handler.SystemRoutes(handler.NewSystemHandler()))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// openStore builds the configured document store backend
func openStore(cfg *config.Config, log *zap.Logger) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case "redis":
		return kv.NewRedisStore(kv.RedisConfig{
			Host:     cfg.Storage.Redis.Host,
			Port:     cfg.Storage.Redis.Port,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
	case "sqlite":
		return kv.NewGormStore(cfg.Storage.SQLite.Path, log)
	default:
		return kv.NewMemoryStore(), nil
	}
}
