// Package config loads configuration containers and decodes their sections into structs.
//
// The package uses an interface-based design with four extension points:
//   - Parser: converts raw data into a *cfgmap.Map (YAML, JSON, TOML, HCL, dotenv)
//   - DataFetcher: retrieves raw config data (file, embedded bytes, etc.)
//   - Validator: validates a decoded section
//   - Defaulter: applies default values before validation
//
// # Loading
//
// Provider fetches and parses the data and designates the default section of the
// resulting container:
//
//	cfg, err := config.Provider("default")(yamlparser.NewParser(), fetcher)
//
// # Sections
//
// Section decodes one section into a struct. Options missing from the section are taken
// from the default section, exactly as cfgmap.Map.GetOption resolves them:
//
//	type HTTPConfig struct {
//	    Address string        `config:"address"`
//	    Timeout time.Duration `config:"timeout"`
//	}
//
//	httpCfg, err := config.Section(&HTTPConfig{}, "http")(cfg)
//
// Struct fields are matched with the `config` tag. Durations may be written as strings
// ("5s") or integers (nanoseconds); strings are also accepted by any type implementing
// encoding.TextUnmarshaler.
package config
