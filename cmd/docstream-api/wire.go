package main

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/handler"
	"github.com/docstream/docstream-api/internal/repository"
	"github.com/docstream/docstream-api/internal/service"
	"github.com/docstream/docstream-api/pkg/config"
	"github.com/docstream/docstream-api/pkg/export"
	"github.com/docstream/docstream-api/pkg/validation"
)

type application struct {
	handlers handler.Handlers
	auth     *service.AuthService
	users    *repository.UserRepository
}

func authConfig(cfg *config.Config) service.AuthConfig {
	return service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
		BcryptCost:         cfg.Auth.BcryptCost,
		MinPasswordLength:  cfg.Auth.MinPasswordLength,
	}
}

func wire(cfg *config.Config, logr *zap.Logger, db *sqlx.DB, redisClient *redis.Client, metrics *service.MetricsService) *application {
	validate := validation.New()

	users := repository.NewUserRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	var revocations service.SessionRevoker
	if redisClient != nil {
		revocations = repository.NewSessionBlacklist(redisClient)
	}

	authSvc := service.NewAuthService(users, staffRepo, revocations, validate, logr, authConfig(cfg))
	staffSvc := service.NewStaffService(staffRepo, validate, logr, service.WithSessionEnder(authSvc))
	exportSvc := service.NewExportService(staffRepo, logr, export.NewCSVExporter(), export.NewPDFExporter())

	itemSvc := service.NewItemRequestService(repository.NewItemRequestRepository(db), validate, logr)
	vehicleSvc := service.NewVehicleRequestService(repository.NewVehicleRequestRepository(db), validate, logr)
	checklistSvc := service.NewInventoryChecklistService(repository.NewInventoryChecklistRepository(db), validate, logr)
	activitySvc := service.NewActivityLogService(repository.NewActivityLogRepository(db), validate, logr)
	facilitySvc := service.NewFacilityService(repository.NewFacilityRepository(db), validate, logr)

	checks := map[string]handler.ReadinessCheck{
		"postgres": db.PingContext,
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	return &application{
		handlers: handler.Handlers{
			Auth:               handler.NewAuthHandler(authSvc),
			Staff:              handler.NewStaffHandler(staffSvc, exportSvc),
			ItemRequests:       handler.NewItemRequestHandler(itemSvc),
			VehicleRequests:    handler.NewVehicleRequestHandler(vehicleSvc),
			InventoryChecklist: handler.NewInventoryChecklistHandler(checklistSvc),
			ActivityLogs:       handler.NewActivityLogHandler(activitySvc),
			Facilities:         handler.NewFacilityHandler(facilitySvc),
			Metrics:            handler.NewMetricsHandler(metrics, checks),
		},
		auth:  authSvc,
		users: users,
	}
}
