package toml

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/0xalexb/cfgmap"
	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrLocalTime is returned for local time values, which carry no date.
var ErrLocalTime = errors.New("local time values are not supported")

// Parser implements config.Parser interface for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a TOML document into a container.
func (p *Parser) Parse(data []byte) (*cfgmap.Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var doc map[string]any

	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	normalized, err := normalize(doc, "")
	if err != nil {
		return nil, err
	}

	cfg, err := cfgmap.MapFromNative(normalized.(map[string]any)) //nolint:forcetypeassert // tables stay tables
	if err != nil {
		return nil, fmt.Errorf("conversion error: %w", err)
	}

	return cfg, nil
}

// normalize replaces the go-toml local date types with time.Time.
func normalize(node any, path string) (any, error) {
	switch x := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))

		for key, item := range x {
			v, err := normalize(item, joinPath(path, key))
			if err != nil {
				return nil, err
			}

			out[key] = v
		}

		return out, nil
	case []any:
		out := make([]any, len(x))

		for i, item := range x {
			v, err := normalize(item, joinPath(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil
	case toml.LocalDate:
		return x.AsTime(time.UTC), nil
	case toml.LocalDateTime:
		return x.AsTime(time.UTC), nil
	case toml.LocalTime:
		return nil, fmt.Errorf("%w: %s at %q", ErrLocalTime, x, path)
	default:
		return node, nil
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}

	return path + cfgmap.Separator + segment
}
