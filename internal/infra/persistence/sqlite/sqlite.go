// Package sqlite contains the concrete implementation of the persistence layer using GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"credence/config"
	"credence/internal/domain/lifecycle"
	"credence/internal/errors"
	"credence/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database, runs the schema migration, and registers
// lifecycle hooks for ping-on-start and close-on-stop.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(sqlDB.Close(), "failed to close SQLite")
		},
	})

	return db, nil
}

// Open creates the GORM SQLite handle without fx lifecycle management.
// Tests use it directly against a temporary database file.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	path := "data/app.db"
	if cfg != nil && cfg.Database != nil && cfg.Database.Path != "" {
		path = cfg.Database.Path
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create database directory")
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// TranslateError maps the driver's unique-constraint failure to
		// gorm.ErrDuplicatedKey, which the repository relies on.
		TranslateError: true,
		Logger:         newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate users table")
	}

	return db, nil
}
