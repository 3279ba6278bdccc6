package di

import (
	"github.com/0xalexb/cfgmap/config"

	"go.uber.org/fx"
)

// Source describes where the application configuration comes from.
type Source struct {
	Fetcher    config.DataFetcher
	Parser     config.Parser
	DefaultKey string
}

// Options holds configuration settings for the application.
type Options struct {
	Modules  []fx.Option
	LogLevel string
	Source   *Source
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfig loads the application configuration from fetcher with parser and supplies
// the resulting *cfgmap.Map. defaultKey names its default section.
func WithConfig(fetcher config.DataFetcher, parser config.Parser, defaultKey string) Option {
	return func(opts *Options) {
		opts.Source = &Source{
			Fetcher:    fetcher,
			Parser:     parser,
			DefaultKey: defaultKey,
		}
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set, the level comes from the configuration, then defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
