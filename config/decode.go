package config

import (
	"encoding"
	"fmt"
	"reflect"
	"time"

	"github.com/0xalexb/cfgmap"
	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag consulted when decoding into structs.
const TagName = "config"

//nolint:gochecknoglobals // reflection constants
var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	durationType        = reflect.TypeOf(time.Duration(0))
)

// Decode decodes v into target, which must be a non-nil pointer. Struct fields are matched
// by their `config` tag, falling back to a case-insensitive field name match.
//
// Strings are decoded into types implementing encoding.TextUnmarshaler and into
// time.Duration via time.ParseDuration; integers are decoded into time.Duration as
// nanoseconds. Scalars are converted weakly, so the string "8080" decodes into an int.
func Decode(v *cfgmap.Value, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{ //nolint:exhaustruct // defaults are fine
		TagName:          TagName,
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			textUnmarshalerHookFunc(),
			durationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = dec.Decode(v.Interface())
	if err != nil {
		return fmt.Errorf("decoding %s: %w", v.Kind(), err)
	}

	return nil
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || !reflect.PointerTo(to).Implements(textUnmarshalerType) {
			return data, nil
		}

		str, ok := data.(string)
		if !ok {
			return data, nil
		}

		result := reflect.New(to)

		unmarshaler, _ := result.Interface().(encoding.TextUnmarshaler)

		err := unmarshaler.UnmarshalText([]byte(str))
		if err != nil {
			return nil, fmt.Errorf("unmarshaling %q into %s: %w", str, to, err)
		}

		return result.Elem().Interface(), nil
	}
}

func durationHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType {
			return data, nil
		}

		//nolint:exhaustive // other kinds are left to mapstructure
		switch from.Kind() {
		case reflect.String:
			str, _ := data.(string)

			d, err := time.ParseDuration(str)
			if err != nil {
				return nil, fmt.Errorf("parsing duration %q: %w", str, err)
			}

			return d, nil
		case reflect.Int, reflect.Int64:
			return time.Duration(reflect.ValueOf(data).Int()), nil
		default:
			return data, nil
		}
	}
}
