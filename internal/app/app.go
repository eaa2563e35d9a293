// Package app defines the App struct that composes the main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - database pool
//   - repositories and services built on that pool
package app

import (
	"context"
	"fmt"

	"github.com/Nishaantmazarallo/Mini-project/internal/config"
	"github.com/Nishaantmazarallo/Mini-project/internal/database"
	"github.com/Nishaantmazarallo/Mini-project/internal/repository"
	"github.com/Nishaantmazarallo/Mini-project/internal/service"
	"github.com/rs/zerolog"
)

// App is the application container that holds shared resources.
type App struct {
	Config   *config.Config
	Logger   *zerolog.Logger
	DB       *database.Database
	Repos    *repository.Repositories
	Services *service.Services
}

// New connects to the database and wires the repositories and services.
// Migrations are not run here; see database.Migrate.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	db, err := database.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repos := repository.NewRepositories(db.Pool, cfg.Auth.BcryptCost)

	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Repos:    repos,
		Services: service.NewService(logger, repos),
	}, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	if err := a.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
