package cfgmap

import (
	"strconv"
	"strings"
)

// Separator separates the segments of a path.
const Separator = "/"

// splitPath splits path into segments. It fails when any segment is empty,
// so "a//b", "/a" and "a/" never resolve. The empty path has no segments.
func splitPath(path string) ([]string, bool) {
	if path == "" {
		return nil, true
	}

	segments := strings.Split(path, Separator)
	for _, segment := range segments {
		if segment == "" {
			return nil, false
		}
	}

	return segments, true
}

// parseIndex parses a list index: a non-empty run of ASCII digits.
func parseIndex(segment string) (int, bool) {
	if segment == "" {
		return 0, false
	}

	for i := range len(segment) {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, false
		}
	}

	idx, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}

	return idx, true
}

// descend returns the child of node addressed by segment, or nil.
func descend(node *Value, segment string) *Value {
	switch node.Kind() {
	case KindMap:
		return node.m.Entry(segment)
	case KindList:
		idx, ok := parseIndex(segment)
		if !ok || idx >= len(node.list) {
			return nil
		}

		return &node.list[idx]
	default:
		return nil
	}
}

func (m *Map) root() *Value {
	return &Value{kind: KindMap, m: m}
}

// Get resolves path and returns the value found there, or nil when any
// segment is missing, a list index is invalid or out of range, or a scalar is
// reached before the last segment. The empty path returns the map itself
// wrapped in a Value.
//
// The returned pointer aliases the stored value: assigning through it
// updates the map. Pointers to list elements are invalidated when that list
// grows or shrinks.
func (m *Map) Get(path string) *Value {
	if m == nil {
		return nil
	}

	segments, ok := splitPath(path)
	if !ok {
		return nil
	}

	node := m.root()
	for _, segment := range segments {
		node = descend(node, segment)
		if node == nil {
			return nil
		}
	}

	return node
}

// locate resolves every segment of path but the last and returns the
// container holding the last segment. The container is a map or a list.
func (m *Map) locate(path string) (*Value, string, bool) {
	if m == nil {
		return nil, "", false
	}

	segments, ok := splitPath(path)
	if !ok || len(segments) == 0 {
		return nil, "", false
	}

	last := len(segments) - 1
	parent := m.Get(strings.Join(segments[:last], Separator))

	if !parent.IsMap() && !parent.IsList() {
		return nil, "", false
	}

	return parent, segments[last], true
}
