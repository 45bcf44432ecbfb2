package logging

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the number of log files kept when rotating
const DefaultMaxLogFiles = 1000

// Environment variables that carry the debug setup into later runs and SSH handlers
const (
	EnvDebug       = "FLOWPOMO_DEBUG"
	EnvDebugFile   = "FLOWPOMO_DEBUG_FILE"
	EnvMaxLogFiles = "FLOWPOMO_MAX_LOG_FILES"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = discardLogger()

// Options selects where debug logs go
type Options struct {
	Debug       bool
	File        string // Fixed log file, never rotated
	MaxLogFiles int    // Rotation limit for the log directory, 0 keeps everything
}

// Enabled reports whether anything gets logged
func (o Options) Enabled() bool {
	return o.Debug || o.File != ""
}

// withEnv fills options that were left at their defaults from the environment
func (o Options) withEnv(getenv func(string) string) Options {
	if getenv(EnvDebug) == "1" {
		o.Debug = true
	}
	if o.File == "" {
		o.File = getenv(EnvDebugFile)
	}
	if o.MaxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(getenv(EnvMaxLogFiles)); err == nil {
			o.MaxLogFiles = n
		}
	}
	return o
}

// Initialize points Logger at a JSON log file when debugging is enabled.
// It returns the file in use, or "" when logs are discarded.
func Initialize(opts Options) (string, error) {
	inherited := os.Getenv(EnvDebug) != ""
	opts = opts.withEnv(os.Getenv)

	if !opts.Enabled() {
		Logger = discardLogger()
		return "", nil
	}

	path, err := logFilePath(opts)
	if err != nil {
		return "", err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	// The TUI and every SSH connection may share one file
	Logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("pid", os.Getpid())

	if !inherited {
		Logger.Info("Debug logging initialized", "log_file", path)
		fmt.Printf("Debug mode enabled. Logs: %s\n", path)
	}
	return path, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// logFilePath returns the fixed file, or a fresh uuid-named file in the rotated log dir
func logFilePath(opts Options) (string, error) {
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.File, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	dir := logDir(runtime.GOOS, home, os.Getenv)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := rotateLogs(dir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// rotateLogs deletes the oldest *.log files so that a new one fits under keep
func rotateLogs(dir string, keep int) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		modTime time.Time
		path    string
	}
	files := make([]logFile, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, logFile{modTime: info.ModTime(), path: path})
	}

	excess := len(files) - keep + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(files, func(a, b logFile) int {
		return a.modTime.Compare(b.modTime)
	})
	for _, f := range files[:min(excess, len(files))] {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.path, err)
		}
	}
	return nil
}

// logDir returns the per-OS state directory for flowpomo logs
func logDir(goos, home string, getenv func(string) string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "flowpomo")
	case "linux":
		return filepath.Join(cmp.Or(getenv("XDG_STATE_HOME"), filepath.Join(home, ".local", "state")), "flowpomo")
	case "windows":
		return filepath.Join(cmp.Or(getenv("LOCALAPPDATA"), filepath.Join(home, "AppData", "Local")), "flowpomo", "logs")
	default:
		return filepath.Join(home, ".flowpomo", "logs")
	}
}
