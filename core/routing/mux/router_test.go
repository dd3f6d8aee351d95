package mux

import (
	"testing"

	"github.com/anoideaopen/invoker/core/callable"
	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/routing"
	"github.com/anoideaopen/invoker/core/routing/reflect"
	"github.com/anoideaopen/invoker/core/routing/table"
	"github.com/stretchr/testify/require"
)

type greeter struct{}

func (greeter) Hello(name string) string { return "hello, " + name }

func newRouter(t *testing.T) *Router {
	t.Helper()

	tbl := table.NewRouter().
		MustRegister("sum", callable.Func2(func(a, b int32) int32 { return a + b }))

	r, err := NewRouter(reflect.MustNewRouter(greeter{}), tbl)
	require.NoError(t, err)

	return r
}

func TestRoutes(t *testing.T) {
	r := newRouter(t)

	require.Len(t, r.Methods(), 2)

	out, err := r.Invoke("hello", "world")
	require.NoError(t, err)
	require.Equal(t, "hello, world", out)

	out, err = r.Invoke("sum", "3,4")
	require.NoError(t, err)
	require.Equal(t, "7", out)

	out, err = r.InvokeDocument("sum", params.Elements("1", "1"))
	require.NoError(t, err)
	require.Equal(t, "2", out)

	require.NoError(t, r.Check("sum", "1,2"))
	require.Error(t, r.Check("sum", "1"))
}

func TestUnsupported(t *testing.T) {
	r := newRouter(t)

	_, err := r.Invoke("nope", "")
	require.ErrorIs(t, err, routing.ErrUnsupportedMethod)
	_, err = r.InvokeDocument("nope", nil)
	require.ErrorIs(t, err, routing.ErrUnsupportedMethod)
	require.ErrorIs(t, r.Check("nope", ""), routing.ErrUnsupportedMethod)
}

func TestDuplicates(t *testing.T) {
	a := table.NewRouter().MustRegister("hello", callable.Action0(func() {}))

	_, err := NewRouter(reflect.MustNewRouter(greeter{}), a)
	require.ErrorIs(t, err, routing.ErrMethodAlreadyDefined)

	require.Panics(t, func() { MustNewRouter(a, a) })
}

func TestRoutesMethodsRegisteredLater(t *testing.T) {
	tbl := table.NewRouter()
	r := MustNewRouter(reflect.MustNewRouter(greeter{}), tbl)

	_, err := r.Invoke("late", "")
	require.ErrorIs(t, err, routing.ErrUnsupportedMethod)

	tbl.MustRegister("late", callable.Func0(func() string { return "on time" }))

	out, err := r.Invoke("late", "")
	require.NoError(t, err)
	require.Equal(t, "on time", out)
	require.NoError(t, r.Check("late", ""))
	require.Contains(t, r.Methods(), "late")

	// A later duplicate never shadows the router that defined the method first.
	tbl.MustRegister("hello", callable.Func1(func(string) string { return "shadowed" }))

	out, err = r.Invoke("hello", "world")
	require.NoError(t, err)
	require.Equal(t, "hello, world", out)
}
