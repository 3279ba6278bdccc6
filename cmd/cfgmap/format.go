package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/cfgmap/config"
	"github.com/0xalexb/cfgmap/config/parser/dotenv"
	"github.com/0xalexb/cfgmap/config/parser/hcl"
	"github.com/0xalexb/cfgmap/config/parser/json"
	"github.com/0xalexb/cfgmap/config/parser/toml"
	"github.com/0xalexb/cfgmap/config/parser/yaml"
)

var errUnknownFormat = errors.New("unknown format")

// parserFor returns the parser for a format name or file extension.
func parserFor(format, path string) (config.Parser, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.NewParser(), nil
	case "json", "jsonc":
		return json.NewParser(), nil
	case "toml":
		return toml.NewParser(), nil
	case "hcl":
		return hcl.NewParser().WithFilename(path), nil
	case "env", "dotenv":
		return dotenv.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w %q for %s, use --format", errUnknownFormat, format, path)
	}
}
