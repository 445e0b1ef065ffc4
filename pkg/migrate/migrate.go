package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strconv"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dir is the directory inside the embedded filesystem holding the SQL migrations.
const Dir = "migrations"

//go:embed migrations/*.sql
var embedded embed.FS

var setupOnce sync.Once
var setupErr error

func setup() error {
	setupOnce.Do(func() {
		goose.SetBaseFS(embedded)
		setupErr = goose.SetDialect("postgres")
	})
	if setupErr != nil {
		return fmt.Errorf("set goose dialect: %w", setupErr)
	}
	return nil
}

// Run executes a goose command (up, down, status, redo, reset, version) against db.
func Run(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if err := setup(); err != nil {
		return err
	}
	if err := goose.RunContext(ctx, command, db, Dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// MigrateTo moves the schema up or down until it reaches target.
func MigrateTo(ctx context.Context, db *sql.DB, target string) error {
	if target == "" {
		return fmt.Errorf("target version is required")
	}
	version, err := strconv.ParseInt(target, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", target, err)
	}
	if err := setup(); err != nil {
		return err
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == version:
		return nil
	case current < version:
		if err := goose.UpToContext(ctx, db, Dir, version); err != nil {
			return fmt.Errorf("goose up-to %d: %w", version, err)
		}
	default:
		if err := goose.DownToContext(ctx, db, Dir, version); err != nil {
			return fmt.Errorf("goose down-to %d: %w", version, err)
		}
	}
	return nil
}
