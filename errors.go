package cfgmap

import "errors"

// ErrUnsupportedType is returned when a native Go value has no corresponding Value kind.
var ErrUnsupportedType = errors.New("unsupported value type")

// ErrUnknownKind is returned by ParseKind for names that do not denote a Kind.
var ErrUnknownKind = errors.New("unknown kind")
