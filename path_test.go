package cfgmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Paths(t *testing.T) {
	t.Parallel()

	m := sample()

	testCases := []struct {
		name     string
		path     string
		expected Condition
	}{
		{name: "top level", path: "name", expected: IsExactlyStr("app")},
		{name: "nested map", path: "http/port", expected: IsExactlyInt(8080)},
		{name: "list index", path: "tags/0", expected: IsExactlyStr("x")},
		{name: "map inside list", path: "servers/1/host", expected: IsExactlyStr("b")},
		{name: "list itself", path: "servers", expected: IsListWith(IsMap)},
		{name: "missing key", path: "http/missing", expected: IsAbsent},
		{name: "index out of range", path: "tags/2", expected: IsAbsent},
		{name: "non numeric index", path: "tags/foo", expected: IsAbsent},
		{name: "negative index", path: "tags/-1", expected: IsAbsent},
		{name: "signed index", path: "tags/+1", expected: IsAbsent},
		{name: "descend into scalar", path: "name/x", expected: IsAbsent},
		{name: "descend into list scalar", path: "tags/0/x", expected: IsAbsent},
		{name: "leading separator", path: "/name", expected: IsAbsent},
		{name: "trailing separator", path: "http/", expected: IsAbsent},
		{name: "double separator", path: "http//port", expected: IsAbsent},
		{name: "lone separator", path: "/", expected: IsAbsent},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := m.Get(testCase.path)
			assert.True(t, got.CheckThat(testCase.expected), "path %q gave %s, want %s",
				testCase.path, got, testCase.expected)
		})
	}
}

func TestGet_EmptyPathIsRoot(t *testing.T) {
	t.Parallel()

	m := sample()

	root := m.Get("")
	require.True(t, root.CheckThat(IsMap))

	rootMap, ok := root.AsMap()
	require.True(t, ok)
	assert.Same(t, m, rootMap)
}

// manualGet descends one segment at a time using only the accessors.
func manualGet(m *Map, path string) *Value {
	current := MapValue(m)
	node := &current

	for _, segment := range strings.Split(path, "/") {
		if sub, ok := node.AsMap(); ok {
			node = sub.Entry(segment)
		} else if list, ok := node.AsList(); ok {
			idx, ok := parseIndex(segment)
			if !ok || idx >= len(list) {
				return nil
			}

			node = &list[idx]
		} else {
			return nil
		}

		if node == nil {
			return nil
		}
	}

	return node
}

func TestGet_MatchesManualDescent(t *testing.T) {
	t.Parallel()

	m := sample()

	paths := []string{
		"name", "http", "http/host", "http/port", "http/port/x",
		"servers/0", "servers/0/host", "servers/2/host", "tags/1", "tags/1/0", "nope/x",
	}

	for _, path := range paths {
		expected := manualGet(m, path)
		got := m.Get(path)

		assert.True(t, expected.Equal(got), "path %q", path)
	}
}

func TestPathPolicy_AppliesToWrites(t *testing.T) {
	t.Parallel()

	m := sample()

	assert.False(t, m.Set("http//port", Int(1)))
	assert.False(t, m.Add("http/", Int(1)))
	assert.False(t, m.Add("/x", Int(1)))

	_, ok := m.Remove("/name")
	assert.False(t, ok)

	assert.Nil(t, m.Entry(""))
}

func TestParseIndex(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		index int
		ok    bool
	}{
		{input: "0", index: 0, ok: true},
		{input: "12", index: 12, ok: true},
		{input: "007", index: 7, ok: true},
		{input: "", index: 0, ok: false},
		{input: "-1", index: 0, ok: false},
		{input: "1a", index: 0, ok: false},
		{input: "99999999999999999999999", index: 0, ok: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			idx, ok := parseIndex(testCase.input)
			assert.Equal(t, testCase.ok, ok)
			assert.Equal(t, testCase.index, idx)
		})
	}
}
