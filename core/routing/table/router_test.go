package table

import (
	"sync"
	"testing"

	"github.com/anoideaopen/invoker/core/callable"
	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/routing"
	"github.com/anoideaopen/invoker/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silent hides the checked entry points of an adapter.
type silent struct {
	callable.Callable
}

func newRouter(t *testing.T) *Router {
	t.Helper()

	r := NewRouter()
	require.NoError(t, r.Register("sum", callable.Func2(func(a, b int32) int32 { return a + b }, callable.WithName("Sum"))))
	require.NoError(t, r.Register("upper", silent{callable.Func1(func(s string) string { return s + "!" })}))

	return r
}

func TestRegister(t *testing.T) {
	r := newRouter(t)

	m, ok := r.Lookup("sum")
	require.True(t, ok)
	require.Equal(t, "Sum", m.MethodName)
	require.Equal(t, 2, m.NumArgs)
	require.Equal(t, types.Int32, m.ReturnType)
	require.Equal(t, []types.TypeID{types.Int32, types.Int32}, m.ParamTypes)

	m, ok = r.Lookup("upper")
	require.True(t, ok)
	require.Equal(t, "upper", m.MethodName)

	err := r.Register("sum", callable.Action0(func() {}))
	require.ErrorIs(t, err, routing.ErrMethodAlreadyDefined)

	require.ErrorIs(t, r.Register("", callable.Action0(func() {})), routing.ErrInvalidMethodName)
	require.Panics(t, func() { r.MustRegister("sum", callable.Action0(func() {})) })

	require.Len(t, r.Methods(), 2)
}

func TestInvoke(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name     string
		function string
		args     string
		want     string
		err      error
	}{
		{name: "sum", function: "sum", args: "3,4", want: "7"},
		{name: "bad argument", function: "sum", args: "3,x", err: types.ErrInvalidArgumentValue},
		{name: "missing argument", function: "sum", args: "3", err: params.ErrIncorrectArgumentCount},
		{name: "unchecked callable", function: "upper", args: "hi", want: "hi!"},
		{name: "unchecked callable tolerates extras", function: "upper", args: "hi,there", want: "hi!"},
		{name: "unknown", function: "mul", args: "1,2", err: routing.ErrUnsupportedMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Invoke(tt.function, tt.args)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestCheck(t *testing.T) {
	r := newRouter(t)

	require.NoError(t, r.Check("sum", "1,2"))
	require.ErrorIs(t, r.Check("sum", "1"), params.ErrIncorrectArgumentCount)
	require.NoError(t, r.Check("upper", ""))
	require.ErrorIs(t, r.Check("nope", ""), routing.ErrUnsupportedMethod)
}

func TestInvokeDocument(t *testing.T) {
	r := newRouter(t)

	out, err := r.InvokeDocument("sum", params.Elements("5", "6"))
	require.NoError(t, err)
	require.Equal(t, "11", out)

	out, err = r.InvokeDocument("upper", params.Elements("doc"))
	require.NoError(t, err)
	require.Equal(t, "doc!", out)

	_, err = r.InvokeDocument("nope", nil)
	require.ErrorIs(t, err, routing.ErrUnsupportedMethod)
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRouter()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			assert.NoError(t, r.Register(name, callable.Func0(func() int { return i })))
			_, _ = r.Invoke(name, "")
		}()
	}
	wg.Wait()

	require.Len(t, r.Methods(), 16)
	out, err := r.Invoke("c", "")
	require.NoError(t, err)
	require.Equal(t, "2", out)
}

func TestDescribe(t *testing.T) {
	r := newRouter(t)

	desc := routing.Describe(r, types.Default())
	require.Len(t, desc, 2)
	require.Equal(t, "sum", desc[0].Function)
	require.Equal(t, "int32(int32, int32)", desc[0].Text)
	require.Equal(t, "int32", desc[0].ReturnType)
	require.Equal(t, []string{"int32", "int32"}, desc[0].ParamTypes)
	require.Len(t, desc[0].Fingerprint, 64)
	require.Equal(t, "upper", desc[1].Function)
}
