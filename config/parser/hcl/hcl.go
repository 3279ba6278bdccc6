package hcl

import (
	"cmp"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strconv"

	"github.com/0xalexb/cfgmap"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFilename is the name reported in diagnostics when none is set.
const DefaultFilename = "config.hcl"

var (
	// ErrEmptyData is returned when the input data is empty.
	ErrEmptyData = errors.New("empty data")
	// ErrDuplicateBlock is returned when a block lands on an existing entry.
	ErrDuplicateBlock = errors.New("duplicate block")
	// ErrUnknownValue is returned when an expression does not evaluate to a known value.
	ErrUnknownValue = errors.New("value is not known")
	// errUnexpectedBody is returned if the parsed file is not native syntax.
	errUnexpectedBody = errors.New("unexpected body type")
)

// Parser implements config.Parser interface for HCL data.
type Parser struct {
	filename string
}

// NewParser creates a new HCL parser instance.
func NewParser() *Parser {
	return &Parser{filename: DefaultFilename}
}

// WithFilename sets the file name used in diagnostics.
func (p *Parser) WithFilename(name string) *Parser {
	p.filename = name

	return p
}

// Parse parses an HCL document into a container.
func (p *Parser) Parse(data []byte) (*cfgmap.Map, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	// hclparse caches files by name, so every call gets its own parser.
	file, diags := hclparse.NewParser().ParseHCL(data, p.filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse error: %w", diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%w: %T", errUnexpectedBody, file.Body)
	}

	out := cfgmap.New()

	err := convertBody(body, out, "")
	if err != nil {
		return nil, err
	}

	return out, nil
}

func convertBody(body *hclsyntax.Body, out *cfgmap.Map, path string) error {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}

	slices.SortFunc(attrs, func(a, b *hclsyntax.Attribute) int {
		return cmp.Compare(a.SrcRange.Start.Byte, b.SrcRange.Start.Byte)
	})

	for _, attr := range attrs {
		attrPath := joinPath(path, attr.Name)

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating %q: %w", attrPath, diags)
		}

		value, err := fromCty(val, attrPath)
		if err != nil {
			return err
		}

		out.Insert(attr.Name, value)
	}

	for _, block := range body.Blocks {
		target, targetPath, err := blockTarget(out, path, block)
		if err != nil {
			return err
		}

		err = convertBody(block.Body, target, targetPath)
		if err != nil {
			return err
		}
	}

	return nil
}

// blockTarget creates the map a block body is written to, following the block type and labels.
func blockTarget(out *cfgmap.Map, path string, block *hclsyntax.Block) (*cfgmap.Map, string, error) {
	segments := append([]string{block.Type}, block.Labels...)
	current := out

	for i, segment := range segments {
		path = joinPath(path, segment)

		entry := current.Entry(segment)
		if entry == nil {
			child := cfgmap.New()
			current.Insert(segment, cfgmap.MapValue(child))
			current = child

			continue
		}

		child, ok := entry.AsMap()
		if !ok || i == len(segments)-1 {
			return nil, "", fmt.Errorf("%w: %q at line %d", ErrDuplicateBlock, path, block.TypeRange.Start.Line)
		}

		current = child
	}

	return current, path, nil
}

func fromCty(v cty.Value, path string) (cfgmap.Value, error) {
	if !v.IsWhollyKnown() {
		return cfgmap.Value{}, fmt.Errorf("%w at %q", ErrUnknownValue, path)
	}

	if v.IsNull() {
		return cfgmap.Null(), nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return cfgmap.String(v.AsString()), nil
	case ty == cty.Bool:
		return cfgmap.Bool(v.True()), nil
	case ty == cty.Number:
		return fromNumber(v.AsBigFloat()), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]cfgmap.Value, 0, v.LengthInt())

		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()

			item, err := fromCty(elem, joinPath(path, strconv.Itoa(len(items))))
			if err != nil {
				return cfgmap.Value{}, err
			}

			items = append(items, item)
		}

		return cfgmap.List(items...), nil
	case ty.IsObjectType() || ty.IsMapType():
		m := cfgmap.New()

		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			name := key.AsString()

			item, err := fromCty(elem, joinPath(path, name))
			if err != nil {
				return cfgmap.Value{}, err
			}

			m.Insert(name, item)
		}

		return cfgmap.MapValue(m), nil
	default:
		return cfgmap.Value{}, fmt.Errorf("%w: %s at %q", cfgmap.ErrUnsupportedType, ty.FriendlyName(), path)
	}
}

func fromNumber(bf *big.Float) cfgmap.Value {
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return cfgmap.Int(i)
		}
	}

	f, _ := bf.Float64()

	return cfgmap.Float(f)
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}

	return path + cfgmap.Separator + segment
}
