package callable

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/signature"
	"github.com/anoideaopen/invoker/core/types"
)

var errorType = reflect.TypeFor[error]()

// FromFunc creates an adapter for an arbitrary function value. Every parameter and the
// result must have a registered bridge. Besides plain results the function may return
// (R, error) or a single error; the error is reported by the checked entry points and
// turns into the default result on the others.
func FromFunc(fn any, opts ...Option) (*Adapter, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotAFunction, fn)
	}

	return fromValue(v, newOptions(opts))
}

// FromMethod creates an adapter for the exported method of recv with the given name.
// The method name is used as the adapter name unless WithName is given.
func FromMethod(recv any, name string, opts ...Option) (*Adapter, error) {
	m := reflect.ValueOf(recv).MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, name)
	}

	o := newOptions(append([]Option{WithName(name)}, opts...))
	a, err := fromValue(m, o)
	if err != nil {
		return nil, fmt.Errorf("%w: method %s", err, name)
	}

	return a, nil
}

// MustFromFunc is like FromFunc but panics on error.
func MustFromFunc(fn any, opts ...Option) *Adapter {
	a, err := FromFunc(fn, opts...)
	if err != nil {
		panic(err)
	}

	return a
}

func fromValue(fn reflect.Value, o options) (*Adapter, error) {
	t := fn.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic %s", ErrNotAFunction, t)
	}
	if t.NumIn() > signature.MaxParams {
		return nil, fmt.Errorf(
			"%w: found %d but at most %d are supported",
			params.ErrTooManyParams,
			t.NumIn(),
			signature.MaxParams,
		)
	}

	in := make([]types.Bridge, t.NumIn())
	for i := range in {
		b, ok := o.registry.Lookup(t.In(i))
		if !ok {
			return nil, fmt.Errorf("%w: %s: argument %d", types.ErrUnsupportedType, t.In(i), i)
		}
		in[i] = b
	}

	ret, returnsError, err := results(t, o.registry)
	if err != nil {
		return nil, err
	}

	layout, err := params.NewLayout(ret, in...)
	if err != nil {
		return nil, err
	}

	return newAdapter(layout, o, func(b *params.Block) (any, error) {
		args := make([]reflect.Value, len(in))
		for i, bridge := range in {
			args[i] = realValue(bridge, t.In(i), b.Slot(i))
		}

		out := fn.Call(args)

		if returnsError {
			if errValue := out[len(out)-1]; !errValue.IsNil() {
				return nil, errValue.Interface().(error) //nolint:forcetypeassert
			}
			out = out[:len(out)-1]
		}

		if ret == nil {
			return nil, nil
		}

		return ret.ToStorage(out[0].Interface()), nil
	}), nil
}

// results resolves the bridge of the result, nil for void functions, and reports
// whether the last result is an error.
func results(t reflect.Type, r *types.Registry) (types.Bridge, bool, error) {
	n := t.NumOut()
	returnsError := n > 0 && t.Out(n-1) == errorType
	if returnsError {
		n--
	}

	switch n {
	case 0:
		return nil, returnsError, nil
	case 1:
		b, ok := r.Lookup(t.Out(0))
		if !ok {
			return nil, false, fmt.Errorf("%w: %s: result", types.ErrUnsupportedType, t.Out(0))
		}

		return b, returnsError, nil
	default:
		return nil, false, fmt.Errorf("%w: %s", ErrUnsupportedResult, t)
	}
}

func realValue(b types.Bridge, t reflect.Type, storage any) reflect.Value {
	v := reflect.ValueOf(b.ToReal(storage))
	if !v.IsValid() || v.Type() != t {
		return reflect.Zero(t)
	}

	return v
}
