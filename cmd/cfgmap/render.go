package main

import (
	"fmt"
	"io"

	"github.com/0xalexb/cfgmap"
	"github.com/goccy/go-yaml"
)

// render writes v as a YAML document, keeping map order.
func render(w io.Writer, v *cfgmap.Value) error {
	out, err := yaml.Marshal(toYAML(v))
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	_, err = w.Write(out)

	return err //nolint:wrapcheck // writer errors are reported as is
}

func toYAML(v *cfgmap.Value) any {
	if m, ok := v.AsMap(); ok {
		out := make(yaml.MapSlice, 0, m.Len())
		for key, item := range m.All() {
			out = append(out, yaml.MapItem{Key: key, Value: toYAML(item)})
		}

		return out
	}

	if items, ok := v.AsList(); ok {
		out := make([]any, len(items))
		for i := range items {
			out[i] = toYAML(&items[i])
		}

		return out
	}

	return v.Interface()
}
