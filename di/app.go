package di

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/cfgmap"
	"github.com/0xalexb/cfgmap/config"
	"github.com/0xalexb/cfgmap/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for application using Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
//
// When WithConfig is given, the container is loaded before the Fx graph is built and
// supplied as *cfgmap.Map. Its "log" section sets the logger when WithLogLevel is not used.
// A loading failure is reported by Start.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options, os.Stderr),
	}
}

func configure(options *Options, w io.Writer) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel}

	var (
		cfg     *cfgmap.Map
		loadErr error
	)

	if options.Source != nil {
		cfg, loadErr = config.Load(options.Source.DefaultKey, options.Source.Parser, options.Source.Fetcher)
		if loadErr == nil {
			loggerConfig = mergeLoggerConfig(loggerConfig, logging.ConfigFromMap(cfg))
		}
	}

	logger := logging.NewLogger(loggerConfig, w)
	slog.SetDefault(logger)

	if cfg != nil {
		config.LogLoaded(logger, cfg)
	}

	fxOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
	}

	switch {
	case loadErr != nil:
		fxOptions = append(fxOptions, fx.Error(fmt.Errorf("loading configuration: %w", loadErr)))
	case cfg != nil:
		fxOptions = append(fxOptions, fx.Supply(cfg))
	}

	fxOptions = append(fxOptions, fx.Options(options.Modules...))

	return fx.New(fxOptions...)
}

// mergeLoggerConfig keeps explicitly set fields of base and fills the rest from loaded.
func mergeLoggerConfig(base, loaded logging.LoggerConfig) logging.LoggerConfig {
	if base.Level == "" {
		base.Level = loaded.Level
	}

	if base.Format == "" {
		base.Format = loaded.Format
	}

	return base
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
