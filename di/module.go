package di

import (
	"github.com/0xalexb/cfgmap/config"

	"go.uber.org/fx"
)

// ConfigModule returns an Fx module providing *cfgmap.Map.
//
// newFetcher and newParser are Fx constructors for a config.DataFetcher and a
// config.Parser, such as file.NewFetcher("app.yaml") and yaml.NewParser.
// Unlike WithConfig, loading happens inside the graph and the logger is not derived
// from the result.
func ConfigModule(newFetcher, newParser any, defaultKey string) fx.Option {
	return fx.Module("config",
		fx.Provide(
			fx.Annotate(newParser, fx.As(new(config.Parser))),
			fx.Annotate(newFetcher, fx.As(new(config.DataFetcher))),
			config.Provider(defaultKey),
		),
	)
}

// SectionProvider returns an Fx option providing *T decoded from section of the
// container with config.Section.
func SectionProvider[T any](section string) fx.Option {
	return fx.Provide(config.Section(new(T), section))
}
