package cfgmap

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"time"
)

// FromNative converts a plain Go value tree into a Value:
//
//   - nil and nil pointers become Null
//   - bool, string and time.Time become Bool, String and Datetime
//   - every int, uint and float kind becomes Int or Float; unsigned values
//     above math.MaxInt64 are rejected
//   - slices and arrays become List
//   - maps with string keys become Map, entries ordered by key
//   - Value and *Map are deep-copied
//
// Anything else fails with ErrUnsupportedType, naming the path of the
// offending element.
func FromNative(v any) (Value, error) {
	return fromNative(v, "")
}

// MapFromNative converts a map[string]any into a Map. See FromNative.
func MapFromNative(in map[string]any) (*Map, error) {
	return mapFromNative(in, "")
}

func childPath(path, segment string) string {
	if path == "" {
		return segment
	}

	return path + Separator + segment
}

func unsupported(v any, path string) error {
	if path == "" {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	return fmt.Errorf("%w: %T at %q", ErrUnsupportedType, v, path)
}

//nolint:cyclop,gocyclo // flat type switch over the supported kinds
func fromNative(v any, path string) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		if x.kind == KindInvalid {
			return Value{}, unsupported(v, path)
		}

		return x.Clone(), nil
	case *Map:
		return MapValue(x.Clone()), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case time.Time:
		return Datetime(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint:
		return fromUint(uint64(x), path)
	case uint64:
		return fromUint(x, path)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case []any:
		return fromSlice(reflect.ValueOf(x), path)
	case map[string]any:
		m, err := mapFromNative(x, path)
		if err != nil {
			return Value{}, err
		}

		return MapValue(m), nil
	}

	return fromReflect(reflect.ValueOf(v), v, path)
}

func fromUint(u uint64, path string) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64 at %q", ErrUnsupportedType, u, path)
	}

	return Int(int64(u)), nil
}

func fromReflect(rv reflect.Value, v any, path string) (Value, error) {
	//nolint:exhaustive // remaining kinds are unsupported
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}

		return fromNative(rv.Elem().Interface(), path)
	case reflect.Slice, reflect.Array:
		return fromSlice(rv, path)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, unsupported(v, path)
		}

		converted := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			converted[iter.Key().String()] = iter.Value().Interface()
		}

		m, err := mapFromNative(converted, path)
		if err != nil {
			return Value{}, err
		}

		return MapValue(m), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUint(rv.Uint(), path)
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	default:
		return Value{}, unsupported(v, path)
	}
}

func fromSlice(rv reflect.Value, path string) (Value, error) {
	items := make([]Value, 0, rv.Len())

	for i := range rv.Len() {
		item, err := fromNative(rv.Index(i).Interface(), childPath(path, strconv.Itoa(i)))
		if err != nil {
			return Value{}, err
		}

		items = append(items, item)
	}

	return List(items...), nil
}

func mapFromNative(in map[string]any, path string) (*Map, error) {
	out := New()

	for _, key := range sortedKeys(in) {
		v, err := fromNative(in[key], childPath(path, key))
		if err != nil {
			return nil, err
		}

		out.Insert(key, v)
	}

	return out, nil
}

func sortedKeys(in map[string]any) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}
