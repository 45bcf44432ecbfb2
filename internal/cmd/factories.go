package cmd

import (
	"context"
	"fmt"
	"time"

	adapteridentity "github.com/renato0307/flowpomo/internal/adapters/identity"
	adapterlock "github.com/renato0307/flowpomo/internal/adapters/lock"
	adaptersound "github.com/renato0307/flowpomo/internal/adapters/sound"
	adapterstorage "github.com/renato0307/flowpomo/internal/adapters/storage"
	"github.com/renato0307/flowpomo/internal/config"
	"github.com/renato0307/flowpomo/internal/ports"
	"github.com/renato0307/flowpomo/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Locker *adapterlock.FileLocker

	// Services
	CategoryService     *services.CategoryService
	NotificationService *services.NotificationService
	StatsService        *services.StatsService

	Settings *config.Settings

	// Internal - for engines and cleanup
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	soundPlayer := adaptersound.NewPlayer()

	// "flowpomo categories add" runs in its own process; running timers poll for it
	categoryService := services.NewCategoryService(repo)
	categoryService.SetPollInterval(services.DefaultCategoryPollInterval)

	return &Container{
		CategoryService:     categoryService,
		Locker:              adapterlock.NewFileLocker(config.GetHome()),
		NotificationService: services.NewNotificationService(soundPlayer, settings.IsSoundEnabled()),
		Settings:            settings,
		StatsService:        services.NewStatsService(repo, repo),
		repo:                repo,
	}, nil
}

// NewEngine builds a timer engine recording sessions for userID.
// An empty userID gives an anonymous engine that records nothing.
func (c *Container) NewEngine(ctx context.Context, userID string) (*services.Engine, error) {
	deps := services.EngineDeps{
		Clock:    ports.ClockFunc(time.Now),
		Identity: adapteridentity.Anonymous(),
		Sink:     c.repo,
	}
	if userID != "" {
		deps.Identity = adapteridentity.NewStatic(userID)
		deps.Categories = c.CategoryService.Source(userID)
	}

	engine, err := services.NewEngine(ctx, deps, services.EngineConfig{
		CommitOnClose: c.Settings.ShouldCommitOnExit(),
		Durations:     c.Settings.Durations(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start timer: %w", err)
	}
	return engine, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
