package yaml

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/0xalexb/cfgmap"
	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Parser implements config.Parser interface for YAML data.
// It decodes with goccy/go-yaml ordered maps so mapping order survives conversion.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a YAML document into a container.
// A document holding only comments or null yields an empty container.
func (p *Parser) Parse(data []byte) (*cfgmap.Map, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var doc any

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if doc == nil {
		return cfgmap.New(), nil
	}

	root, ok := doc.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}

	return convertMapping(root, "")
}

func convertMapping(items yaml.MapSlice, path string) (*cfgmap.Map, error) {
	out := cfgmap.New()

	for _, item := range items {
		key, err := convertKey(item.Key, path)
		if err != nil {
			return nil, err
		}

		value, err := convertNode(item.Value, joinPath(path, key))
		if err != nil {
			return nil, err
		}

		out.Insert(key, value)
	}

	return out, nil
}

func convertNode(node any, path string) (cfgmap.Value, error) {
	switch x := node.(type) {
	case yaml.MapSlice:
		m, err := convertMapping(x, path)
		if err != nil {
			return cfgmap.Value{}, err
		}

		return cfgmap.MapValue(m), nil
	case []any:
		items := make([]cfgmap.Value, 0, len(x))

		for i, item := range x {
			value, err := convertNode(item, joinPath(path, strconv.Itoa(i)))
			if err != nil {
				return cfgmap.Value{}, err
			}

			items = append(items, value)
		}

		return cfgmap.List(items...), nil
	default:
		value, err := cfgmap.FromNative(x)
		if err != nil {
			return cfgmap.Value{}, fmt.Errorf("at %q: %w", path, err)
		}

		return value, nil
	}
}

// convertKey stringifies scalar mapping keys. Collection keys are rejected.
func convertKey(key any, path string) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(k), nil
	default:
		return "", fmt.Errorf("%w: mapping key %T under %q", cfgmap.ErrUnsupportedType, key, path)
	}
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}

	return path + cfgmap.Separator + segment
}
