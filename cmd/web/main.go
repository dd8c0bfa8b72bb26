package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/travel_agency/internal/adapter/api"
	"github.com/srgjo27/travel_agency/internal/adapter/handler"
	"github.com/srgjo27/travel_agency/internal/adapter/session"
	"github.com/srgjo27/travel_agency/internal/adapter/storage"
	"github.com/srgjo27/travel_agency/internal/config"
	"github.com/srgjo27/travel_agency/internal/core/ports"
	"github.com/srgjo27/travel_agency/internal/platform/cache"
	"github.com/srgjo27/travel_agency/internal/platform/database"
	"github.com/srgjo27/travel_agency/internal/platform/logger"
)

func main() {
	v, err := config.LoadConfig("./config")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Server.Env)

	gin.SetMode(cfg.Server.Mode)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	sessions, closeSessions := newSessionStore(ctx, cfg, log)
	defer closeSessions()

	backends := api.NewFactory(cfg.Backend.BaseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.Backend.Timeout}),
		api.WithLogger(log.WithField("component", "backend")),
	)

	images := storage.NewClient(storage.Config{
		URL:          cfg.Storage.URL,
		ServiceKey:   cfg.Storage.ServiceKey,
		Bucket:       cfg.Storage.Bucket,
		MaxBytes:     cfg.Storage.MaxBytes,
		MaxDimension: cfg.Storage.MaxDimension,
	},
		storage.WithHTTPClient(&http.Client{Timeout: cfg.Storage.Timeout}),
		storage.WithLogger(log.WithField("component", "storage")),
	)

	h := handler.New(handler.Deps{
		Backends: backends,
		Sessions: sessions,
		Images:   images,
		Cookie: handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			Domain: cfg.Session.CookieDomain,
			Secure: cfg.Session.Secure,
			TTL:    cfg.Session.TTL,
		},
		MaxUploadBytes: cfg.Storage.MaxBytes,
		Log:            log,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.InitRoutes(h, cfg.Server.RequestTimeout),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Shutting down server...")

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting")
}

func newSessionStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (ports.SessionStore, func()) {
	switch cfg.Session.Driver {
	case config.SessionDriverPostgres:
		db, err := database.NewPostgresDB(ctx, database.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.Name,
			SSLMode:         cfg.Database.SSLMode,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnectRetries:  cfg.Database.ConnectRetries,
			RetryDelay:      cfg.Database.RetryDelay,
		}, log)
		if err != nil {
			log.Fatalf("Failed to connect to db after retries: %v", err)
		}

		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("Failed to migrate session table: %v", err)
		}

		store := session.NewPostgresStore(db, cfg.Session.TTL, log)

		go store.RunCleanup(ctx, cfg.Session.CleanupInterval)

		return store, func() { _ = db.Close() }
	default:
		client, err := cache.NewRedisClient(ctx, cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, log)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		return session.NewRedisStore(client, cfg.Session.TTL), func() { _ = client.Close() }
	}
}
