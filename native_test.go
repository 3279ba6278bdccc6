package cfgmap

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNative_Scalars(t *testing.T) {
	t.Parallel()

	when := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)

	testCases := []struct {
		name  string
		input any
		want  Condition
	}{
		{name: "nil", input: nil, want: IsNull},
		{name: "bool", input: true, want: IsExactlyBool(true)},
		{name: "string", input: "s", want: IsExactlyStr("s")},
		{name: "int", input: 5, want: IsExactlyInt(5)},
		{name: "int8", input: int8(-5), want: IsExactlyInt(-5)},
		{name: "int64 max", input: int64(math.MaxInt64), want: IsExactlyInt(math.MaxInt64)},
		{name: "uint32", input: uint32(7), want: IsExactlyInt(7)},
		{name: "uint64 in range", input: uint64(1 << 62), want: IsExactlyInt(1 << 62)},
		{name: "float32", input: float32(0.5), want: IsExactlyFloat(0.5)},
		{name: "float64", input: 0.1, want: IsExactlyFloat(0.1)},
		{name: "time", input: when, want: IsExactlyDatetime(when)},
		{name: "typed nil pointer", input: (*int)(nil), want: IsNull},
		{name: "named string", input: time.Duration(3).String(), want: IsExactlyStr("3ns")},
		{name: "pointer to int", input: func() *int { i := 4; return &i }(), want: IsExactlyInt(4)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			v, err := FromNative(testCase.input)
			require.NoError(t, err)
			assert.True(t, v.CheckThat(testCase.want), "got %s, want %s", &v, testCase.want)
		})
	}
}

func TestFromNative_Tree(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"name":  "app",
		"ports": []any{80, 443},
		"http": map[string]any{
			"hosts": []string{"a", "b"},
			"limits": map[string]int{
				"rps": 10,
			},
		},
	}

	m, err := MapFromNative(input)
	require.NoError(t, err)

	assert.Equal(t, []string{"http", "name", "ports"}, m.Keys(), "keys are sorted")
	assert.True(t, m.Get("ports/1").CheckThat(IsExactlyInt(443)))
	assert.True(t, m.Get("http/hosts").CheckThat(IsListWith(IsStr)))
	assert.True(t, m.Get("http/limits/rps").CheckThat(IsExactlyInt(10)))
}

func TestFromNative_Unsupported(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   any
		message string
	}{
		{name: "struct", input: struct{}{}, message: "struct {}"},
		{name: "channel", input: make(chan int), message: "chan int"},
		{name: "int keys", input: map[int]any{1: "a"}, message: "map[int]interface {}"},
		{name: "overflow", input: uint64(math.MaxUint64), message: "overflows int64"},
		{name: "zero value", input: Value{}, message: "cfgmap.Value"},
		{
			name:    "nested",
			input:   map[string]any{"a": []any{1, func() {}}},
			message: `at "a/1"`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := FromNative(testCase.input)
			require.ErrorIs(t, err, ErrUnsupportedType)
			assert.Contains(t, err.Error(), testCase.message)
		})
	}
}

func TestFromNative_CopiesValuesAndMaps(t *testing.T) {
	t.Parallel()

	inner := New()
	inner.Insert("k", Int(1))

	v, err := FromNative(map[string]any{"m": inner, "v": List(Int(1))})
	require.NoError(t, err)

	inner.Insert("k", Int(2))

	m, ok := v.AsMap()
	require.True(t, ok)
	assert.True(t, m.Get("m/k").CheckThat(IsExactlyInt(1)))
	assert.True(t, m.Get("v/0").CheckThat(IsExactlyInt(1)))
}

func TestFromNative_RoundTripsInterface(t *testing.T) {
	t.Parallel()

	m := sample()

	back, err := MapFromNative(m.Interface())
	require.NoError(t, err)
	assert.True(t, m.Equal(back))
}
