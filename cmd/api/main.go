package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	"github.com/BruksfildServices01/quickfixx-site/internal/config"
	dbpkg "github.com/BruksfildServices01/quickfixx-site/internal/db"
	"github.com/BruksfildServices01/quickfixx-site/internal/logging"
	"github.com/BruksfildServices01/quickfixx-site/internal/media"
	"github.com/BruksfildServices01/quickfixx-site/internal/middleware"
	"github.com/BruksfildServices01/quickfixx-site/internal/routes"
	"github.com/BruksfildServices01/quickfixx-site/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db := dbpkg.NewDB(cfg, logger)

	// ------------------------------
	// Sessions
	// ------------------------------
	var store session.Store
	if cfg.RedisURL != "" {
		rs, err := session.NewRedisStoreFromURL(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer func() { _ = rs.Close() }()
		store = rs
		logger.Info("session revocation enabled")
	} else {
		logger.Warn("REDIS_URL not set, sessions cannot be revoked before they expire")
	}
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, store)

	// ------------------------------
	// Audit
	// ------------------------------
	dispatcher := audit.NewDispatcher(audit.New(db), logger)

	// ------------------------------
	// Uploads
	// ------------------------------
	var mediaStore media.Store
	if cfg.UploadsEnabled() {
		mediaStore = media.NewS3Store(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	} else {
		logger.Warn("S3_BUCKET not set, uploads are disabled")
	}

	// ------------------------------
	// HTTP
	// ------------------------------
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Sessions: sessions,
		Audit:    dispatcher,
		Media:    mediaStore,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	dispatcher.Close()
}
