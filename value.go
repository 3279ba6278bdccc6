package cfgmap

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Value is a single configuration datum. It holds exactly one of the kinds
// listed in Kind. A Value owns everything nested below it: lists and maps are
// never shared between two values stored in a container.
//
// Methods are defined on *Value and accept a nil receiver, which stands for an
// absent value. This lets lookups chain without intermediate checks:
//
//	port, ok := cfg.Get("http/port").AsInt()
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
	t    time.Time
	list []Value
	m    *Map
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating point Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// List returns a list Value holding items. The list takes ownership of items.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{kind: KindList, list: items}
}

// MapValue returns a Value holding m. A nil m is replaced by an empty map.
func MapValue(m *Map) Value {
	if m == nil {
		m = New()
	}

	return Value{kind: KindMap, m: m}
}

// Datetime returns a date-time Value. Only format adapters that understand
// dates produce it.
func Datetime(t time.Time) Value {
	return Value{kind: KindDatetime, t: t}
}

// Null returns the null Value. Only format adapters that have an explicit
// null produce it.
func Null() Value {
	return Value{kind: KindNull}
}

// Kind reports the variant held by v. A nil v reports KindInvalid.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}

	return v.kind
}

func (v *Value) is(k Kind) bool {
	return v != nil && v.kind == k
}

// IsInt reports whether v holds an integer.
func (v *Value) IsInt() bool { return v.is(KindInt) }

// IsFloat reports whether v holds a float.
func (v *Value) IsFloat() bool { return v.is(KindFloat) }

// IsBool reports whether v holds a boolean.
func (v *Value) IsBool() bool { return v.is(KindBool) }

// IsString reports whether v holds a string.
func (v *Value) IsString() bool { return v.is(KindString) }

// IsList reports whether v holds a list.
func (v *Value) IsList() bool { return v.is(KindList) }

// IsMap reports whether v holds a map.
func (v *Value) IsMap() bool { return v.is(KindMap) }

// IsDatetime reports whether v holds a date-time.
func (v *Value) IsDatetime() bool { return v.is(KindDatetime) }

// IsNull reports whether v is the null Value.
func (v *Value) IsNull() bool { return v.is(KindNull) }

// AsInt returns the integer held by v.
func (v *Value) AsInt() (int64, bool) {
	if !v.is(KindInt) {
		return 0, false
	}

	return v.i, true
}

// AsFloat returns the float held by v.
func (v *Value) AsFloat() (float64, bool) {
	if !v.is(KindFloat) {
		return 0, false
	}

	return v.f, true
}

// AsBool returns the boolean held by v.
func (v *Value) AsBool() (bool, bool) {
	if !v.is(KindBool) {
		return false, false
	}

	return v.b, true
}

// AsString returns the string held by v.
func (v *Value) AsString() (string, bool) {
	if !v.is(KindString) {
		return "", false
	}

	return v.s, true
}

// AsList returns the list held by v. The slice aliases the stored list, so
// element assignments are visible to the owning container.
func (v *Value) AsList() ([]Value, bool) {
	if !v.is(KindList) {
		return nil, false
	}

	return v.list, true
}

// AsMap returns the map held by v.
func (v *Value) AsMap() (*Map, bool) {
	if !v.is(KindMap) {
		return nil, false
	}

	return v.m, true
}

// AsDatetime returns the date-time held by v.
func (v *Value) AsDatetime() (time.Time, bool) {
	if !v.is(KindDatetime) {
		return time.Time{}, false
	}

	return v.t, true
}

// ToInt returns v as an integer, truncating floats toward zero. NaN and
// floats outside the int64 range do not convert.
func (v *Value) ToInt() (int64, bool) {
	switch v.Kind() {
	case KindInt:
		return v.i, true
	case KindFloat:
		if math.IsNaN(v.f) || v.f < math.MinInt64 || v.f >= -math.MinInt64 {
			return 0, false
		}

		return int64(v.f), true
	default:
		return 0, false
	}
}

// ToFloat returns v as a float, widening integers.
func (v *Value) ToFloat() (float64, bool) {
	switch v.Kind() {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// Equal reports whether v and other hold the same variant with structurally
// equal contents. Int(3) and Float(3) are not equal. Two absent values are
// equal.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == nil && other == nil
	}

	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindDatetime:
		return v.t.Equal(other.t)
	case KindList:
		return equalLists(v.list, other.list)
	case KindMap:
		return v.m.Equal(other.m)
	case KindInvalid, KindNull:
		return true
	}

	return false
}

func equalLists(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of v. Cloning an absent value yields the zero Value.
func (v *Value) Clone() Value {
	if v == nil {
		return Value{}
	}

	out := *v

	switch v.kind {
	case KindList:
		out.list = make([]Value, len(v.list))
		for i := range v.list {
			out.list[i] = v.list[i].Clone()
		}
	case KindMap:
		out.m = v.m.Clone()
	default:
	}

	return out
}

// Interface returns v as a plain Go value: int64, float64, bool, string,
// time.Time, []any, map[string]any or nil.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindDatetime:
		return v.t
	case KindList:
		out := make([]any, len(v.list))
		for i := range v.list {
			out[i] = v.list[i].Interface()
		}

		return out
	case KindMap:
		return v.m.Interface()
	case KindInvalid, KindNull:
	}

	return nil
}

// String formats v for diagnostics. Strings are quoted; maps print their
// entries in insertion order.
func (v *Value) String() string {
	var sb strings.Builder

	v.format(&sb)

	return sb.String()
}

func (v *Value) format(sb *strings.Builder) {
	switch v.Kind() {
	case KindInvalid:
		sb.WriteString("<absent>")
	case KindNull:
		sb.WriteString("null")
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindDatetime:
		sb.WriteString(v.t.Format(time.RFC3339Nano))
	case KindList:
		sb.WriteByte('[')

		for i := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}

			v.list[i].format(sb)
		}

		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')

		for i, key := range v.m.keys {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(key)
			sb.WriteString(": ")
			v.m.entries[key].format(sb)
		}

		sb.WriteByte('}')
	}
}
