package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/docstream/docstream-api/pkg/config"
	"github.com/docstream/docstream-api/pkg/database"
	"github.com/docstream/docstream-api/pkg/logger"
	"github.com/docstream/docstream-api/pkg/migrate"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|down|status|redo|reset|version")
	version := flag.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck
	logr = logr.With(zap.String("cmd", *cmd), zap.String("env", cfg.Env))

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	switch *cmd {
	case "up", "down", "status", "redo", "reset":
		err = migrate.Run(ctx, db.DB, *cmd)
	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "missing -version for version command")
			os.Exit(1)
		}
		err = migrate.MigrateTo(ctx, db.DB, *version)
	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
	if err != nil {
		logr.Fatal("migration failed", zap.Error(err))
	}
	logr.Info("migration finished")
}
