package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/docstream/docstream-api/api/swagger"
	"github.com/docstream/docstream-api/internal/handler"
	"github.com/docstream/docstream-api/internal/middleware"
	"github.com/docstream/docstream-api/internal/service"
	"github.com/docstream/docstream-api/pkg/cache"
	"github.com/docstream/docstream-api/pkg/config"
	"github.com/docstream/docstream-api/pkg/database"
	"github.com/docstream/docstream-api/pkg/logger"
	corsmiddleware "github.com/docstream/docstream-api/pkg/middleware/cors"
	reqidmiddleware "github.com/docstream/docstream-api/pkg/middleware/requestid"
	"github.com/docstream/docstream-api/pkg/migrate"
)

// @title DocStream API
// @version 1.0.0
// @description Staff directory, authentication and operational records for the corporate back office.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logr, db); err != nil {
		return err
	}

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	} else {
		logr.Info("redis disabled, session revocation falls back to postgres")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()
	app := wire(cfg, logr, db, redisClient, metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.RegisterRoutes(r, cfg.APIPrefix, app.handlers, handler.RouteDeps{
		Tokens: app.auth,
		Audit:  app.users,
		Logger: logr,
	})

	if !cfg.IsProduction() {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
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

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
