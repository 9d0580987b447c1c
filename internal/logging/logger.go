package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// maxLogSize is the log file size that triggers rotation (2 MB).
	maxLogSize = 2 * 1024 * 1024
	// maxLogBackups is how many rotated files are kept.
	maxLogBackups = 2
)

// InitLogger opens the platform log file for appName and returns a JSON
// logger writing to it:
//   - macOS:   ~/Library/Logs/<app>/<app>.log
//   - Linux:   $XDG_STATE_HOME/<app>/<app>.log, default ~/.local/state
//   - Windows: %LOCALAPPDATA%\<app>\Logs\<app>.log
//
// debug lowers the level to DEBUG and records source locations.
func InitLogger(appName string, debug bool) (*slog.Logger, error) {
	logPath, err := LogFilePath(appName)
	if err != nil {
		return nil, fmt.Errorf("resolve log file path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if err := rotate(logPath); err != nil {
		return nil, fmt.Errorf("rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", logPath, err)
	}

	return slog.New(slog.NewJSONHandler(logFile, handlerOptions(debug))), nil
}

// NewConsoleLogger returns a text logger for command-line tools.
func NewConsoleLogger(w io.Writer, debug bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, handlerOptions(debug)))
}

// NewNopLogger returns a logger that discards everything. Used in tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func handlerOptions(debug bool) *slog.HandlerOptions {
	if debug {
		return &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true}
	}
	return &slog.HandlerOptions{Level: slog.LevelInfo}
}

// rotate moves logPath to logPath.1 once it reaches maxLogSize, shifting
// older backups up and dropping the oldest.
func rotate(logPath string) error {
	info, err := os.Stat(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < maxLogSize {
		return nil
	}

	_ = os.Remove(backupName(logPath, maxLogBackups))
	for i := maxLogBackups - 1; i >= 1; i-- {
		_ = os.Rename(backupName(logPath, i), backupName(logPath, i+1))
	}
	return os.Rename(logPath, backupName(logPath, 1))
}

func backupName(logPath string, n int) string {
	return fmt.Sprintf("%s.%d", logPath, n)
}

// LogFilePath returns where InitLogger writes for appName on this platform.
func LogFilePath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}

	file := appName + ".log"
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appName, file), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(base, appName, "Logs", file), nil
	default:
		base := os.Getenv("XDG_STATE_HOME")
		if base == "" {
			base = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(base, appName, file), nil
	}
}
