package types

import (
	"errors"
	"fmt"
	"reflect"
)

// Error types.
var (
	ErrInvalidArgumentValue = errors.New("invalid argument value")
	ErrUnsupportedType      = errors.New("unsupported type")
	ErrAlreadyRegistered    = errors.New("type has already been registered")
	ErrIDAlreadyUsed        = errors.New("type id has already been used")
)

// ValueError is a custom error type that wraps both external and internal errors,
// providing additional context about the argument and the target type involved in the error.
type ValueError struct {
	external error
	internal error
	arg, t   string
}

// Error returns a formatted error message indicating the conversion failure.
func (e ValueError) Error() string {
	if e.external == nil {
		return fmt.Sprintf("%v: '%s': for type '%s'", e.internal, e.arg, e.t)
	}

	return fmt.Sprintf("%v: '%s': for type '%s': '%v'", e.internal, e.arg, e.t, e.external)
}

// Is checks if the target error matches the internal error.
func (e ValueError) Is(target error) bool {
	return e.internal == target
}

// Unwrap returns the external error, if any.
func (e ValueError) Unwrap() error {
	return e.external
}

// NewValueError constructs an error message for invalid argument value conversions.
func NewValueError(arg string, t reflect.Type, errOrNil error) error {
	return ValueError{
		external: errOrNil,
		internal: ErrInvalidArgumentValue,
		arg:      arg,
		t:        t.String(),
	}
}
