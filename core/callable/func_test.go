package callable

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/types"
	"github.com/stretchr/testify/require"
)

var errEmpty = errors.New("empty name")

type greeter struct {
	prefix string
	seen   []string
}

func (g *greeter) Greet(name string) (string, error) {
	if name == "" {
		return "", errEmpty
	}
	return g.prefix + name, nil
}

func (g *greeter) Remember(name string) {
	g.seen = append(g.seen, name)
}

func (g *greeter) Forget() error {
	if len(g.seen) == 0 {
		return errEmpty
	}
	g.seen = g.seen[:len(g.seen)-1]
	return nil
}

func (g *greeter) Pair() (string, string) { return "a", "b" }

func TestFromFunc(t *testing.T) {
	a, err := FromFunc(func(d time.Duration, n int64) string {
		return strings.Repeat(d.String(), int(n))
	})
	require.NoError(t, err)

	require.Equal(t, types.String, a.ReturnTypeID())
	require.Equal(t, types.Duration, a.ParamTypeID(0))
	require.Equal(t, "1s1s", a.CallText("1s,2"))

	// Same shape as the generated constructor.
	typed := Func2(func(d time.Duration, n int64) string { return "" })
	require.Equal(t, typed.Signature(), a.Signature())
}

func TestFromFuncErrors(t *testing.T) {
	type unknown struct{}

	tests := []struct {
		name string
		fn   any
		err  error
	}{
		{name: "not a function", fn: 42, err: ErrNotAFunction},
		{name: "nil function", fn: (func())(nil), err: ErrNotAFunction},
		{name: "variadic", fn: func(...int) {}, err: ErrNotAFunction},
		{name: "unknown argument", fn: func(unknown) {}, err: types.ErrUnsupportedType},
		{name: "unknown result", fn: func() unknown { return unknown{} }, err: types.ErrUnsupportedType},
		{name: "two results", fn: func() (int, int) { return 0, 0 }, err: ErrUnsupportedResult},
		{
			name: "too many parameters",
			fn:   func(_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _ int) {},
			err:  params.ErrTooManyParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromFunc(tt.fn)
			require.ErrorIs(t, err, tt.err)
		})
	}

	require.Panics(t, func() { MustFromFunc(42) })
}

func TestFromMethod(t *testing.T) {
	g := &greeter{prefix: "hello, "}

	greet, err := FromMethod(g, "Greet")
	require.NoError(t, err)
	require.Equal(t, "Greet", greet.Name())
	require.Equal(t, "hello, bob", greet.CallText("bob"))

	// The error turns into the default result on the silent path.
	require.Equal(t, "", greet.CallText(""))
	_, err = greet.TryCallText(`""`)
	require.ErrorIs(t, err, errEmpty)

	b := greet.BlockFromText("amy")
	require.NoError(t, greet.TryCall(b))
	require.Equal(t, "hello, amy", params.Result[string](b))

	remember, err := FromMethod(g, "Remember", WithName("remember"))
	require.NoError(t, err)
	require.Equal(t, "remember", remember.Name())
	require.Equal(t, types.Void, remember.ReturnTypeID())
	remember.CallText("x")
	remember.Call(remember.BlockFromText("y"))
	require.Equal(t, []string{"x", "y"}, g.seen)

	forget, err := FromMethod(g, "Forget")
	require.NoError(t, err)
	require.Equal(t, types.Void, forget.ReturnTypeID())
	_, err = forget.TryCallText("")
	require.NoError(t, err)
	_, err = forget.TryCallText("")
	require.NoError(t, err)
	_, err = forget.TryCallText("")
	require.ErrorIs(t, err, errEmpty)

	_, err = FromMethod(g, "Missing")
	require.ErrorIs(t, err, ErrMethodNotFound)

	_, err = FromMethod(g, "Pair")
	require.ErrorIs(t, err, ErrUnsupportedResult)
}

type node struct{ name string }

func TestFromFuncHandles(t *testing.T) {
	r := types.NewRegistry()
	table := types.NewHandleTable[node]()
	_, err := types.RegisterHandle(r, "node", table)
	require.NoError(t, err)

	rename, err := FromFunc(func(n *node, name string) *node {
		if n == nil {
			return nil
		}
		n.name = name
		return n
	}, WithRegistry(r))
	require.NoError(t, err)

	n := &node{name: "old"}
	require.Equal(t, types.Handle(1), table.Put(n))

	out := rename.CallText("1,new")
	require.Equal(t, "new", n.name)
	require.Equal(t, "1", out)

	require.Equal(t, "0", rename.CallText("0,ignored"))
}
