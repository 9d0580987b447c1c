package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"

	docsnipApp "github.com/shhac/docsnip/internal/app"
	"github.com/shhac/docsnip/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Bootstrap logger until the file logger is ready
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting docsnip")

	cfg := docsnipApp.ConfigFromEnv()

	fyneApp := app.NewWithID("com.shhac.docsnip")

	a, err := docsnipApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mode := ui.LoadThemePreference(fyneApp, cfg.Theme)
	a.Logger().Debug("theme applied", slog.String("mode", mode))

	mainWindow := ui.NewMainWindow(a.FyneApp(), a)

	// Blocks until the window closes
	a.Run(mainWindow.Window())

	a.Logger().Info("application shutdown complete")
	return nil
}
