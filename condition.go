package cfgmap

import (
	"slices"
	"strings"
	"time"
)

type op int

const (
	opInvalid op = iota
	opKind
	opAbsent
	opPresent
	opEqual
	opListWith
	opMapWith
	opAnd
	opOr
	opNot
)

// Condition is a predicate over an optional Value. Conditions are immutable
// and evaluating one never modifies the value it inspects. Leaves test the
// kind or contents of a value and fail on absence, except IsAbsent and
// IsPresent; And, Or and Not combine conditions.
//
// The zero Condition never holds.
type Condition struct {
	op      op
	kind    Kind
	literal Value
	sub     []Condition
}

// Kind conditions. Each holds iff the value is present and of that kind.
//
//nolint:gochecknoglobals // immutable predicate vocabulary
var (
	IsInt      = Condition{op: opKind, kind: KindInt}
	IsFloat    = Condition{op: opKind, kind: KindFloat}
	IsBool     = Condition{op: opKind, kind: KindBool}
	IsStr      = Condition{op: opKind, kind: KindString}
	IsList     = Condition{op: opKind, kind: KindList}
	IsMap      = Condition{op: opKind, kind: KindMap}
	IsDatetime = Condition{op: opKind, kind: KindDatetime}
	IsNull     = Condition{op: opKind, kind: KindNull}
)

// Presence conditions.
//
//nolint:gochecknoglobals // immutable predicate vocabulary
var (
	IsAbsent  = Condition{op: opAbsent}
	IsPresent = Condition{op: opPresent}
)

// IsExactly holds iff the value is structurally equal to v.
func IsExactly(v Value) Condition {
	return Condition{op: opEqual, literal: v.Clone()}
}

// IsExactlyInt holds iff the value is the integer i.
func IsExactlyInt(i int64) Condition { return IsExactly(Int(i)) }

// IsExactlyFloat holds iff the value is the float f.
func IsExactlyFloat(f float64) Condition { return IsExactly(Float(f)) }

// IsExactlyBool holds iff the value is the boolean b.
func IsExactlyBool(b bool) Condition { return IsExactly(Bool(b)) }

// IsExactlyStr holds iff the value is the string s.
func IsExactlyStr(s string) Condition { return IsExactly(String(s)) }

// IsExactlyDatetime holds iff the value is a date-time denoting the same instant as t.
func IsExactlyDatetime(t time.Time) Condition { return IsExactly(Datetime(t)) }

// IsExactlyList holds iff the value is a list equal to items.
func IsExactlyList(items []Value) Condition { return IsExactly(List(items...)) }

// IsExactlyMap holds iff the value is a map with entries equal to m.
func IsExactlyMap(m *Map) Condition { return IsExactly(MapValue(m)) }

// IsListWith holds iff the value is a list whose every element satisfies c.
// An empty list satisfies any IsListWith.
func IsListWith(c Condition) Condition {
	return Condition{op: opListWith, sub: []Condition{c}}
}

// IsMapWith holds iff the value is a map whose every entry satisfies c.
// An empty map satisfies any IsMapWith.
func IsMapWith(c Condition) Condition {
	return Condition{op: opMapWith, sub: []Condition{c}}
}

// And holds iff every condition holds. And() holds.
func And(conds ...Condition) Condition {
	return Condition{op: opAnd, sub: slices.Clone(conds)}
}

// Or holds iff at least one condition holds. Or() never holds.
func Or(conds ...Condition) Condition {
	return Condition{op: opOr, sub: slices.Clone(conds)}
}

// Not inverts c. Not(IsInt) holds for absent values.
func Not(c Condition) Condition {
	return Condition{op: opNot, sub: []Condition{c}}
}

// And is shorthand for And(c, other).
func (c Condition) And(other Condition) Condition { return And(c, other) }

// Or is shorthand for Or(c, other).
func (c Condition) Or(other Condition) Condition { return Or(c, other) }

// Not is shorthand for Not(c).
func (c Condition) Not() Condition { return Not(c) }

// Eval reports whether c holds for v. A nil v is an absent value.
func (c Condition) Eval(v *Value) bool {
	switch c.op {
	case opKind:
		return v.Kind() == c.kind
	case opAbsent:
		return v == nil
	case opPresent:
		return v != nil
	case opEqual:
		return v != nil && c.literal.Equal(v)
	case opListWith:
		list, ok := v.AsList()
		if !ok {
			return false
		}

		for i := range list {
			if !c.sub[0].Eval(&list[i]) {
				return false
			}
		}

		return true
	case opMapWith:
		m, ok := v.AsMap()
		if !ok {
			return false
		}

		for _, entry := range m.All() {
			if !c.sub[0].Eval(entry) {
				return false
			}
		}

		return true
	case opAnd:
		for _, sub := range c.sub {
			if !sub.Eval(v) {
				return false
			}
		}

		return true
	case opOr:
		for _, sub := range c.sub {
			if sub.Eval(v) {
				return true
			}
		}

		return false
	case opNot:
		return !c.sub[0].Eval(v)
	case opInvalid:
	}

	return false
}

// CheckThat reports whether v satisfies c. It is safe to call on the nil
// result of a failed lookup, so checks chain directly off Get and GetOption:
//
//	cfg.Get("http/port").CheckThat(cfgmap.IsInt)
func (v *Value) CheckThat(c Condition) bool {
	return c.Eval(v)
}

// String renders c in function notation, e.g. "or(int, float)".
func (c Condition) String() string {
	switch c.op {
	case opKind:
		return c.kind.String()
	case opAbsent:
		return "absent"
	case opPresent:
		return "present"
	case opEqual:
		return "exactly(" + c.literal.String() + ")"
	case opListWith:
		return "list_with(" + c.sub[0].String() + ")"
	case opMapWith:
		return "map_with(" + c.sub[0].String() + ")"
	case opAnd:
		return "and(" + joinConditions(c.sub) + ")"
	case opOr:
		return "or(" + joinConditions(c.sub) + ")"
	case opNot:
		return "not(" + c.sub[0].String() + ")"
	case opInvalid:
	}

	return "invalid"
}

func joinConditions(conds []Condition) string {
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = c.String()
	}

	return strings.Join(parts, ", ")
}
