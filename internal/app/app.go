package app

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"

	"github.com/shhac/docsnip/internal/clipboard"
	"github.com/shhac/docsnip/internal/logging"
	"github.com/shhac/docsnip/internal/model"
	"github.com/shhac/docsnip/internal/ui/settings"
)

// App wires configuration, logging, tool state and the clipboard publisher.
type App struct {
	fyneApp   fyne.App
	config    *Config
	logger    *slog.Logger
	state     *model.AppState
	publisher *clipboard.Publisher
}

// New creates an App that logs to the platform log file.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger("docsnip", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(fyneApp, cfg, logger), nil
}

// NewWithLogger creates an App with an existing logger.
func NewWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger) *App {
	logger.Info("initializing docsnip",
		slog.Bool("debug", cfg.Debug),
		slog.String("theme", cfg.Theme),
	)

	publisher := clipboard.NewPublisher(clipboard.FyneWriter{App: fyneApp}, logger)

	a := &App{
		fyneApp:   fyneApp,
		config:    cfg,
		logger:    logger,
		state:     model.NewAppState(),
		publisher: publisher,
	}
	a.ApplyResetDelay()
	return a
}

// ApplyResetDelay reloads the indicator delay from config and preferences.
func (a *App) ApplyResetDelay() {
	ms := a.fyneApp.Preferences().Int(settings.PrefCopyResetDelay)
	d := a.config.EffectiveResetDelay(time.Duration(ms) * time.Millisecond)
	a.publisher.SetResetDelay(d)
	a.logger.Debug("copy indicator delay applied", slog.Duration("delay", d))
}

// Run shows the window and blocks in the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.logger.Info("starting application")
	window.ShowAndRun()
}

// Config returns the active configuration.
func (a *App) Config() *Config {
	return a.config
}

// State returns the state of all tools.
func (a *App) State() *model.AppState {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Publisher returns the clipboard publisher.
func (a *App) Publisher() *clipboard.Publisher {
	return a.publisher
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
