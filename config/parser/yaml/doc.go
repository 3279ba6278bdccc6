// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered maps, so the keys of every
// mapping keep their document order in the resulting container.
//
// Usage:
//
//	parser := yaml.NewParser()
//	cfg, err := parser.Parse(data)
//	port, ok := cfg.Get("server/port").AsInt()
//
// Conversion:
//   - mapping -> Map, sequence -> List
//   - integers -> Int (values above math.MaxInt64 are rejected), floats -> Float
//   - booleans and strings keep their kind, null -> Null
//   - scalar mapping keys other than strings are stringified ("1", "true")
package yaml
