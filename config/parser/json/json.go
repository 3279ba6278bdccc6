package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/0xalexb/cfgmap"
	"github.com/tidwall/jsonc"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotMapping is returned when the document root is not an object.
var ErrNotMapping = errors.New("document root is not an object")

// ErrTrailingData is returned when data follows the root object.
var ErrTrailingData = errors.New("trailing data after document")

// Parser implements config.Parser interface for JSON and JSONC data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a JSON document into a container.
func (p *Parser) Parse(data []byte) (*cfgmap.Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: starts with %v", ErrNotMapping, tok)
	}

	root, err := decodeObject(dec, "")
	if err != nil {
		return nil, err
	}

	tok, err = dec.Token()
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrTrailingData, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrTrailingData, tok)
	}

	return root, nil
}

// decodeObject reads object members up to and including the closing brace.
func decodeObject(dec *json.Decoder, path string) (*cfgmap.Map, error) {
	out := cfgmap.New()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("unmarshal error at %q: %w", path, err)
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unmarshal error at %q: unexpected key %v", path, tok)
		}

		value, err := decodeValue(dec, joinPath(path, key))
		if err != nil {
			return nil, err
		}

		out.Insert(key, value)
	}

	_, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("unmarshal error at %q: %w", path, err)
	}

	return out, nil
}

func decodeValue(dec *json.Decoder, path string) (cfgmap.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return cfgmap.Value{}, fmt.Errorf("unmarshal error at %q: %w", path, err)
	}

	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			m, err := decodeObject(dec, path)
			if err != nil {
				return cfgmap.Value{}, err
			}

			return cfgmap.MapValue(m), nil
		case '[':
			return decodeArray(dec, path)
		default:
			return cfgmap.Value{}, fmt.Errorf("unmarshal error at %q: unexpected %v", path, x)
		}
	case json.Number:
		return convertNumber(x, path)
	case string:
		return cfgmap.String(x), nil
	case bool:
		return cfgmap.Bool(x), nil
	case nil:
		return cfgmap.Null(), nil
	default:
		return cfgmap.Value{}, fmt.Errorf("%w: %T at %q", cfgmap.ErrUnsupportedType, tok, path)
	}
}

func decodeArray(dec *json.Decoder, path string) (cfgmap.Value, error) {
	var items []cfgmap.Value

	for i := 0; dec.More(); i++ {
		value, err := decodeValue(dec, joinPath(path, strconv.Itoa(i)))
		if err != nil {
			return cfgmap.Value{}, err
		}

		items = append(items, value)
	}

	_, err := dec.Token()
	if err != nil {
		return cfgmap.Value{}, fmt.Errorf("unmarshal error at %q: %w", path, err)
	}

	return cfgmap.List(items...), nil
}

func convertNumber(n json.Number, path string) (cfgmap.Value, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return cfgmap.Int(i), nil
		}
	}

	f, err := n.Float64()
	if err != nil {
		return cfgmap.Value{}, fmt.Errorf("number %q at %q: %w", n, path, err)
	}

	return cfgmap.Float(f), nil
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}

	return path + cfgmap.Separator + segment
}
