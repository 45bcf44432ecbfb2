package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/flowpomo/internal/adapters/identity"
	"github.com/renato0307/flowpomo/internal/config"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/ports"
	"github.com/renato0307/flowpomo/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Anonymous   bool             `help:"Run without a user; no sessions are recorded"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	User        string           `help:"User whose sessions are recorded (overrides $FLOWPOMO_USER and settings.json)"`

	Categories CategoriesCmd `cmd:"categories" help:"Manage categories (list, add, del)"`
	Run        RunCmd        `cmd:"" help:"Start the flowpomo timer (default)" default:"1"`
	Serve      ServeCmd      `cmd:"serve" help:"Serve the timer over SSH, one timer per connection"`
	Sessions   SessionsCmd   `cmd:"sessions" help:"List and export recorded focus sessions"`
	Settings   SettingsCmd   `cmd:"settings" help:"Manage settings (meta, init)"`
	Stats      StatsCmd      `cmd:"stats" help:"Show focus time per category"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply loads settings, initializes logging and builds the container
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		c.settings = settings
	}

	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		File:        c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// Later GORM connections and the SSH handlers log to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, strconv.Itoa(c.MaxLogFiles))
	}

	if err := c.settings.Durations().Validate(); err != nil {
		return fmt.Errorf("invalid durations in settings.json: %w", err)
	}

	// Create container AFTER logging is initialized so GORM logs land in the file
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// LocalUser returns the user sessions are recorded for, "" when anonymous
func (c *CLI) LocalUser() string {
	if c.Anonymous {
		return ""
	}
	var settingsUser string
	if c.settings != nil {
		settingsUser = c.settings.UserID
	}
	return identity.Resolve(c.User, settingsUser)
}

// keyMap validates the configured key bindings and builds the key map
func (c *CLI) keyMap() (ui.KeyMap, error) {
	var keysConfig config.KeyBindingsConfig
	if c.settings != nil && c.settings.Keys != nil {
		if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return ui.KeyMap{}, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = c.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}
	return ui.NewKeyMap(keysConfig), nil
}

// RunCmd starts the TUI timer
type RunCmd struct {
	Dev bool `help:"Enable development mode (shows version info in the header)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting flowpomo TUI")

	keys, err := cli.keyMap()
	if err != nil {
		return err
	}

	userID := cli.LocalUser()
	release, err := acquireInstanceLock(cli.Container.Locker, userID)
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine, err := cli.Container.NewEngine(ctx, userID)
	if err != nil {
		return err
	}
	defer engine.Close()

	model := ui.NewModel(engine, keys, userID, r.Dev)

	if cli.Container.Settings.IsSoundEnabled() {
		events := engine.Timer().Subscribe(8)
		go cli.Container.NotificationService.Watch(ctx, events)
	}

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program", "user", userID)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// acquireInstanceLock takes the per-user lock; the returned release logs its own failure
func acquireInstanceLock(locker ports.InstanceLocker, userID string) (func(), error) {
	release, err := locker.Acquire(userID)
	if err != nil {
		// The locker already names the lock file
		return nil, err
	}
	return func() {
		if err := release(); err != nil {
			logging.Logger.Warn("Failed to release instance lock", "error", err)
		}
	}, nil
}
