package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/docstream/docstream-api/internal/repository"
	"github.com/docstream/docstream-api/internal/service"
	"github.com/docstream/docstream-api/pkg/config"
	"github.com/docstream/docstream-api/pkg/database"
	"github.com/docstream/docstream-api/pkg/logger"
	"github.com/docstream/docstream-api/pkg/validation"
)

func main() {
	email := flag.String("email", "", "superuser email")
	password := flag.String("password", os.Getenv("SUPERUSER_PASSWORD"), "superuser password (defaults to $SUPERUSER_PASSWORD)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create-superuser -email admin@example.com -password secret")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	auth := service.NewAuthService(
		repository.NewUserRepository(db),
		repository.NewStaffRepository(db),
		nil,
		validation.New(),
		logr,
		service.AuthConfig{
			AccessTokenSecret: cfg.JWT.Secret,
			Issuer:            cfg.JWT.Issuer,
			BcryptCost:        cfg.Auth.BcryptCost,
			MinPasswordLength: cfg.Auth.MinPasswordLength,
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := auth.CreateSuperuser(ctx, *email, *password)
	if err != nil {
		logr.Fatal("failed to create superuser", zap.Error(err))
	}
	logr.Info("superuser created", zap.String("id", user.ID), zap.String("email", user.Email))
}
