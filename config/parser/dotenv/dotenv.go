package dotenv

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/0xalexb/cfgmap"
	"github.com/joho/godotenv"
)

// DefaultSeparator splits variable names into nested keys.
const DefaultSeparator = "__"

var (
	// ErrEmptyData is returned when the input data is empty.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidKey is returned when a variable name has an empty segment.
	ErrInvalidKey = errors.New("invalid key")
	// ErrKeyConflict is returned when a key is used both as a value and as a section.
	ErrKeyConflict = errors.New("key is both a value and a section")
)

// Option configures a Parser.
type Option func(*Parser)

// WithSeparator sets the string that splits variable names into nested keys.
// An empty separator disables nesting.
func WithSeparator(sep string) Option {
	return func(p *Parser) {
		p.separator = sep
	}
}

// WithLowercase lower-cases every key.
func WithLowercase() Option {
	return func(p *Parser) {
		p.lowercase = true
	}
}

// WithPrefix keeps only variables starting with prefix and strips it from their names.
func WithPrefix(prefix string) Option {
	return func(p *Parser) {
		p.prefix = prefix
	}
}

// Parser implements config.Parser interface for dotenv data.
type Parser struct {
	separator string
	prefix    string
	lowercase bool
}

// NewParser creates a new dotenv parser instance.
func NewParser(opts ...Option) *Parser {
	p := &Parser{separator: DefaultSeparator}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses dotenv data into a container.
func (p *Parser) Parse(data []byte) (*cfgmap.Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	vars, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}

	slices.Sort(names)

	out := cfgmap.New()

	for _, name := range names {
		chain, ok := p.keyChain(name)
		if !ok {
			continue
		}

		err = setKeyChain(out, chain, cfgmap.String(vars[name]))
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
	}

	return out, nil
}

// keyChain returns the nested keys for a variable name, or false if the prefix filters it out.
func (p *Parser) keyChain(name string) ([]string, bool) {
	if p.prefix != "" {
		rest, ok := strings.CutPrefix(name, p.prefix)
		if !ok {
			return nil, false
		}

		name = rest
	}

	if p.lowercase {
		name = strings.ToLower(name)
	}

	if p.separator == "" {
		return []string{name}, true
	}

	return strings.Split(name, p.separator), true
}

func setKeyChain(m *cfgmap.Map, chain []string, v cfgmap.Value) error {
	if slices.Contains(chain, "") {
		return fmt.Errorf("%w: empty segment in %q", ErrInvalidKey, strings.Join(chain, cfgmap.Separator))
	}

	current := m

	for _, key := range chain[:len(chain)-1] {
		entry := current.Entry(key)
		if entry == nil {
			child := cfgmap.New()
			current.Insert(key, cfgmap.MapValue(child))
			current = child

			continue
		}

		child, ok := entry.AsMap()
		if !ok {
			return fmt.Errorf("%w: %q", ErrKeyConflict, key)
		}

		current = child
	}

	last := chain[len(chain)-1]
	if current.Entry(last).IsMap() {
		return fmt.Errorf("%w: %q", ErrKeyConflict, last)
	}

	current.Insert(last, v)

	return nil
}
