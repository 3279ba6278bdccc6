package cfgmap

import (
	"iter"
	"slices"
)

// Map is the configuration container: an insertion-ordered mapping from
// string keys to Values, plus the key of the section that acts as fallback
// for GetOption and UpdateOption.
//
// Path-aware methods (Get, Has, Add, Set, Remove) interpret "/" as a
// separator. Entry, Insert and Delete address top-level keys literally and are
// the only way to reach keys that contain "/".
//
// A Map is not safe for concurrent mutation.
type Map struct {
	keys       []string
	entries    map[string]*Value
	defaultKey string
}

// New returns an empty Map whose default section is the map root.
func New() *Map {
	return &Map{
		keys:       nil,
		entries:    make(map[string]*Value),
		defaultKey: "",
	}
}

// WithDefault returns an empty Map whose default section is the top-level
// entry named key.
func WithDefault(key string) *Map {
	m := New()
	m.defaultKey = key

	return m
}

// DefaultKey returns the key of the default section. An empty key means the
// map root is the default section.
func (m *Map) DefaultKey() string {
	if m == nil {
		return ""
	}

	return m.defaultKey
}

// SetDefaultKey changes the default section. The section does not have to
// exist; a missing section simply never matches.
func (m *Map) SetDefaultKey(key string) {
	m.defaultKey = key
}

// Len returns the number of top-level entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns the top-level keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// All iterates the top-level entries in insertion order. The map must not be
// modified during iteration.
func (m *Map) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if m == nil {
			return
		}

		for _, key := range m.keys {
			if !yield(key, m.entries[key]) {
				return
			}
		}
	}
}

// Entry returns the top-level entry named key without path interpretation.
func (m *Map) Entry(key string) *Value {
	if m == nil {
		return nil
	}

	return m.entries[key]
}

// Insert stores v under the top-level key without path interpretation,
// replacing any existing entry. It returns the replaced value, if any.
// Zero Values are not stored.
func (m *Map) Insert(key string, v Value) (Value, bool) {
	if v.kind == KindInvalid {
		return Value{}, false
	}

	if m.entries == nil {
		m.entries = make(map[string]*Value)
	}

	if existing, ok := m.entries[key]; ok {
		old := *existing
		*existing = v

		return old, true
	}

	m.keys = append(m.keys, key)
	m.entries[key] = &v

	return Value{}, false
}

// Delete removes the top-level key without path interpretation.
func (m *Map) Delete(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}

	existing, ok := m.entries[key]
	if !ok {
		return Value{}, false
	}

	delete(m.entries, key)

	if idx := slices.Index(m.keys, key); idx >= 0 {
		m.keys = slices.Delete(m.keys, idx, idx+1)
	}

	return *existing, true
}

// Has reports whether path resolves to a value.
func (m *Map) Has(path string) bool {
	return m.Get(path) != nil
}

// Add stores v at path only if nothing is stored there yet. The parent of the
// last segment must already exist. For a list parent the last segment must be
// the list length, which appends. Add never overwrites.
func (m *Map) Add(path string, v Value) bool {
	if v.kind == KindInvalid {
		return false
	}

	parent, last, ok := m.locate(path)
	if !ok {
		return false
	}

	switch parent.kind {
	case KindMap:
		if parent.m.Entry(last) != nil {
			return false
		}

		parent.m.Insert(last, v)

		return true
	case KindList:
		idx, ok := parseIndex(last)
		if !ok || idx != len(parent.list) {
			return false
		}

		parent.list = append(parent.list, v)

		return true
	default:
		return false
	}
}

// Set stores v at path, replacing any existing value. The parent of the last
// segment must already exist. For a list parent the index must be in range or
// equal to the list length, which appends.
func (m *Map) Set(path string, v Value) bool {
	if v.kind == KindInvalid {
		return false
	}

	parent, last, ok := m.locate(path)
	if !ok {
		return false
	}

	switch parent.kind {
	case KindMap:
		parent.m.Insert(last, v)

		return true
	case KindList:
		idx, ok := parseIndex(last)
		if !ok || idx > len(parent.list) {
			return false
		}

		if idx == len(parent.list) {
			parent.list = append(parent.list, v)
		} else {
			parent.list[idx] = v
		}

		return true
	default:
		return false
	}
}

// Remove deletes the value at path and returns it. Removing a list element
// shifts the following elements down by one.
func (m *Map) Remove(path string) (Value, bool) {
	parent, last, ok := m.locate(path)
	if !ok {
		return Value{}, false
	}

	switch parent.kind {
	case KindMap:
		return parent.m.Delete(last)
	case KindList:
		idx, ok := parseIndex(last)
		if !ok || idx >= len(parent.list) {
			return Value{}, false
		}

		old := parent.list[idx]
		parent.list = slices.Delete(parent.list, idx, idx+1)

		return old, true
	default:
		return Value{}, false
	}
}

// Clone returns a deep copy of m, including its default key.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}

	out := &Map{
		keys:       slices.Clone(m.keys),
		entries:    make(map[string]*Value, len(m.entries)),
		defaultKey: m.defaultKey,
	}

	for key, v := range m.entries {
		c := v.Clone()
		out.entries[key] = &c
	}

	return out
}

// Equal reports whether m and other hold structurally equal entries.
// Insertion order and default keys are ignored.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}

	for key, v := range m.All() {
		if !v.Equal(other.Entry(key)) {
			return false
		}
	}

	return true
}

// Interface returns the map as a map[string]any tree. See Value.Interface.
func (m *Map) Interface() map[string]any {
	out := make(map[string]any, m.Len())

	for key, v := range m.All() {
		out[key] = v.Interface()
	}

	return out
}
