package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/cfgmap"
)

// ErrSectionNotFound is returned when a section to decode does not exist.
var ErrSectionNotFound = errors.New("section not found")

// ErrNotSection is returned when a section to decode is not a map.
var ErrNotSection = errors.New("section is not a map")

// Parser defines an interface for converting raw configuration data into a container.
//
// Implementations own the format: see config/parser for YAML, JSON, TOML, HCL and dotenv.
type Parser interface {
	Parse(data []byte) (*cfgmap.Map, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads and parses configuration data into a container
// whose default section is defaultKey. An empty defaultKey makes the container root the
// fallback for options.
func Provider(defaultKey string) func(Parser, DataFetcher) (*cfgmap.Map, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*cfgmap.Map, error) {
		cfg, err := Load(defaultKey, parser, dataSourcer)
		if err != nil {
			return nil, err
		}

		LogLoaded(slog.Default(), cfg)

		return cfg, nil
	}
}

// Load reads and parses configuration data like Provider, without logging.
func Load(defaultKey string, parser Parser, dataSourcer DataFetcher) (*cfgmap.Map, error) {
	data, err := dataSourcer.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	cfg, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	cfg.SetDefaultKey(defaultKey)

	return cfg, nil
}

// LogLoaded records a loaded container on logger.
func LogLoaded(logger *slog.Logger, cfg *cfgmap.Map) {
	logger.Info("configuration loaded",
		slog.Int("entries", cfg.Len()),
		slog.String("default_key", cfg.DefaultKey()),
	)
}

// Section returns a function that decodes the options of section into target, sets
// defaults and validates it.
//
// The decoded options are those returned by Options. An empty section decodes the whole
// container.
func Section[T any](target *T, section string) func(*cfgmap.Map) (*T, error) {
	return func(cfg *cfgmap.Map) (*T, error) {
		options, err := Options(cfg, section)
		if err != nil {
			return nil, err
		}

		value := cfgmap.MapValue(options)

		err = Decode(&value, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("section", section))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// Options returns the effective options of section: every option of the named default
// section followed by the options of section itself, where section overrides the default.
// Option keys are taken literally, so a key containing the path separator is kept.
// The section must exist and be a map.
//
// When the container has no default key only the section's own options are returned; the
// root-level fallback still applies to individual GetOption lookups.
func Options(cfg *cfgmap.Map, section string) (*cfgmap.Map, error) {
	own := cfg.Get(section)
	if own == nil {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, section)
	}

	ownMap, ok := own.AsMap()
	if !ok {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotSection, section, own.Kind())
	}

	if section == "" || cfg.DefaultKey() == "" || section == cfg.DefaultKey() {
		return ownMap.Clone(), nil
	}

	out := cfgmap.New()

	defaults, _ := cfg.Get(cfg.DefaultKey()).AsMap()
	for _, key := range append(defaults.Keys(), ownMap.Keys()...) {
		if out.Entry(key) != nil {
			continue
		}

		option := ownMap.Entry(key)
		if option == nil {
			option = defaults.Entry(key)
		}

		out.Insert(key, option.Clone())
	}

	return out, nil
}
