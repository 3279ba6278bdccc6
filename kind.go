package cfgmap

import (
	"fmt"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds. KindInvalid is the kind of the zero Value.
const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindList
	KindMap
	KindDatetime
	KindNull
)

//nolint:gochecknoglobals // lookup table
var kindNames = map[Kind]string{
	KindInvalid:  "invalid",
	KindInt:      "int",
	KindFloat:    "float",
	KindBool:     "bool",
	KindString:   "string",
	KindList:     "list",
	KindMap:      "map",
	KindDatetime: "datetime",
	KindNull:     "null",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return name
}

// Condition returns the condition that matches values of this kind.
// KindInvalid yields IsAbsent.
func (k Kind) Condition() Condition {
	if k == KindInvalid {
		return IsAbsent
	}

	return Condition{op: opKind, kind: k}
}

// ParseKind parses a kind name. Matching is case-insensitive and accepts
// "str" and "integer" as aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int", "integer":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	case "bool", "boolean":
		return KindBool, nil
	case "string", "str":
		return KindString, nil
	case "list":
		return KindList, nil
	case "map":
		return KindMap, nil
	case "datetime":
		return KindDatetime, nil
	case "null":
		return KindNull, nil
	default:
		return KindInvalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}
