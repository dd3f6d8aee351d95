package types

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
)

// TextCodec creates a bridge for a type implementing encoding.TextMarshaler and, through
// its pointer, encoding.TextUnmarshaler. The storage form is the marshaled text.
func TextCodec[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](name string) *Codec[T, string] {
	if _, ok := any(*new(T)).(encoding.TextMarshaler); !ok {
		panic(fmt.Errorf("%w: %s does not implement encoding.TextMarshaler",
			ErrUnsupportedType, reflect.TypeFor[T]()))
	}

	marshal := func(v T) string {
		out, err := any(v).(encoding.TextMarshaler).MarshalText() //nolint:forcetypeassert
		if err != nil {
			return ""
		}
		return string(out)
	}

	return NewCodec(Invalid, name, CodecFuncs[T, string]{
		ToStorage: marshal,
		ToReal: func(s string) T {
			var v T
			if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
				var zero T
				return zero
			}
			return v
		},
		Parse: func(in string) (string, error) {
			var v T
			if err := PT(&v).UnmarshalText([]byte(in)); err != nil {
				return "", err
			}
			return marshal(v), nil
		},
		Format: func(s string) string { return s },
	})
}

// RegisterText registers a text-marshaling type in r under a fresh identifier.
func RegisterText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](r *Registry, name string) (Bridge, error) {
	return r.Register(TextCodec[T, PT](name))
}

// JSONCodec creates a bridge for an arbitrary JSON-serializable type.
// The storage form is the compact JSON document.
func JSONCodec[T any](name string) *Codec[T, string] {
	marshal := func(v T) string {
		out, err := json.Marshal(v)
		if err != nil {
			return "null"
		}
		return string(out)
	}

	return NewCodec(Invalid, name, CodecFuncs[T, string]{
		ToStorage: marshal,
		ToReal: func(s string) T {
			var v T
			if err := json.Unmarshal([]byte(s), &v); err != nil {
				var zero T
				return zero
			}
			return v
		},
		Parse: func(in string) (string, error) {
			if !json.Valid([]byte(in)) {
				return "", fmt.Errorf("invalid json")
			}
			var v T
			if err := json.Unmarshal([]byte(in), &v); err != nil {
				return "", err
			}
			return marshal(v), nil
		},
		Format: func(s string) string { return s },
	})
}

// RegisterJSON registers T in r as a JSON document type under a fresh identifier.
func RegisterJSON[T any](r *Registry, name string) (Bridge, error) {
	return r.Register(JSONCodec[T](name))
}
