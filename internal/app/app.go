package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/amidakuji/game"
	"github.com/katalvlaran/amidakuji/internal/config"
	"github.com/katalvlaran/amidakuji/internal/ctxlog"
	"github.com/katalvlaran/amidakuji/internal/render"
	"github.com/katalvlaran/amidakuji/trace"
)

// App owns one session and the writers it reports to.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	session *game.Session
}

// NewApp resolves settings (defaults, then the settings file, then command
// line overrides) and starts a session. Logs go to logW so that outW carries
// only the board.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config) (*App, error) {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := ParseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	logger := newLogger(level, format, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	settings := game.DefaultSettings()
	if cfg.SettingsPath != "" {
		settings, err = config.Load(ctx, cfg.SettingsPath, settings)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
	}
	settings = cfg.Overrides.Apply(settings)

	session, err := game.New(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return &App{outW: outW, logger: logger, session: session}, nil
}

// Session returns the application's session. This is primarily for testing.
func (a *App) Session() *game.Session {
	return a.session
}

// Run performs the selection requested by cfg and renders the result.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	a.logger.Debug("App.Run method started.")

	if cfg.Start > 0 {
		sel, err := a.session.Select(cfg.Start - 1)
		if err != nil {
			return fmt.Errorf("failed to trace lane %d: %w", cfg.Start, err)
		}
		a.logger.Info("Lane traced.", "start", cfg.Start, "result", sel.Result()+1)
	}

	view := a.session.View()
	var path trace.Path
	if view.Selection != nil {
		path = view.Selection.Path
	}
	if err := render.Board(a.outW, view.Ladder, view.Roster, path); err != nil {
		return err
	}

	if cfg.ShowPath && view.Selection != nil {
		if err := render.Path(a.outW, view.Selection.Path); err != nil {
			return err
		}
	}
	if cfg.All {
		if err := render.Outcomes(a.outW, view.Roster, a.session.Outcomes()); err != nil {
			return err
		}
	}
	fmt.Fprintf(a.outW, "seed: %d\n", a.session.Seed())

	a.logger.Debug("App.Run method finished.")
	return nil
}
