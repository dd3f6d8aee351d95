package callable

import (
	"errors"
	"testing"

	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/signature"
	"github.com/anoideaopen/invoker/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumFromText(t *testing.T) {
	sum := Func2(func(a, b int32) int32 { return a + b }, WithName("sum"))

	require.Equal(t, signature.ID("5:2:5,5"), sum.Signature())
	require.Equal(t, "7", sum.CallText("3,4"))
	require.Equal(t, "sum int32(int32, int32)", sum.String())

	b := sum.BlockFromText("3,4")
	sum.Call(b)
	require.Equal(t, int32(7), params.Result[int32](b))
}

func TestVoidRecordsString(t *testing.T) {
	var recorded string
	record := Action1(func(s string) { recorded = s })

	require.Equal(t, types.Void, record.ReturnTypeID())
	require.Equal(t, "", record.CallText("hello"))
	require.Equal(t, "hello", recorded)
}

func TestZeroArity(t *testing.T) {
	calls := 0
	pi := Func0(func() float32 {
		calls++
		return 3.25
	})

	require.Equal(t, 0, pi.ParamCount())
	require.Equal(t, "3.25", pi.CallText(""))
	require.Equal(t, 1, calls)
}

func TestMalformedFieldUsesDefault(t *testing.T) {
	got := int32(-1)
	echo := Func1(func(v int32) int32 {
		got = v
		return v
	})

	require.Equal(t, "0", echo.CallText("abc"))
	require.Equal(t, int32(0), got)
}

func TestMismatchIsNoop(t *testing.T) {
	called := false
	sum := Func2(func(a, b int32) int32 {
		called = true
		return a + b
	})

	i64 := types.For[int64]()
	other := params.MustLayout(i64, i64, i64).FromText("3,4")
	other.SetReturn(int64(42))

	sum.Call(other)
	sum.CallConst(other)
	sum.Call(nil)
	sum.CallConst(nil)

	require.False(t, called)
	require.Equal(t, int64(42), other.Return())
	require.Equal(t, int64(3), params.Get[int64](other, 0))

	err := sum.TryCall(other)
	require.ErrorIs(t, err, ErrSignatureMismatch)
	require.ErrorIs(t, sum.TryCall(nil), ErrSignatureMismatch)
	require.False(t, called)
}

type (
	color int8
	shape int8
)

func TestMismatchAcrossRegistries(t *testing.T) {
	colors, shapes := types.NewRegistry(), types.NewRegistry()
	_, err := types.RegisterEnum(colors, "color", map[color]string{1: "red"})
	require.NoError(t, err)
	_, err = types.RegisterEnum(shapes, "shape", map[shape]string{1: "circle"})
	require.NoError(t, err)

	called := false
	draw := Action1(func(shape) { called = true }, WithRegistry(shapes))
	paint := Action1(func(color) {}, WithRegistry(colors))
	require.NotEqual(t, paint.Signature(), draw.Signature())

	b := paint.BlockFromText("red")
	draw.Call(b)
	draw.CallConst(b)
	require.False(t, called)
	require.ErrorIs(t, draw.TryCall(b), ErrSignatureMismatch)
}

func TestCallConstDiscardsResult(t *testing.T) {
	calls := 0
	sum := Func2(func(a, b int32) int32 {
		calls++
		return a + b
	})

	b := sum.BlockFromText("3,4")
	b.SetReturn(int32(100))
	sum.CallConst(b)

	require.Equal(t, 1, calls)
	require.Equal(t, int32(100), b.Return())
}

func TestCallDocument(t *testing.T) {
	sum := Func2(func(a, b int32) int32 { return a + b })

	require.Equal(t, "7", sum.CallDocument(params.Elements("3", "4")))
	require.Equal(t, "3", sum.CallDocument(params.Elements("3")))
	require.Equal(t, "0", sum.CallDocument(nil))

	root, err := params.ParseXML([]byte("<sum><a>10</a><b>-4</b></sum>"))
	require.NoError(t, err)
	require.Equal(t, "6", sum.CallDocument(root))

	var recorded string
	record := Action1(func(s string) { recorded = s })
	require.Equal(t, "", record.CallDocument(params.Elements("doc")))
	require.Equal(t, "doc", recorded)
}

func TestCallDocumentNilXMLNode(t *testing.T) {
	sum := Func2(func(a, b int32) int32 { return a + b })

	var root *params.XMLNode
	require.Equal(t, "0", sum.CallDocument(root))

	_, err := sum.TryCallDocument(root)
	require.ErrorIs(t, err, params.ErrIncorrectArgumentCount)
	require.ErrorIs(t, sum.ValidateDocument(root), params.ErrIncorrectArgumentCount)
}

func TestDialectOption(t *testing.T) {
	join := Func2(func(a, b string) string { return a + "+" + b }, WithDialect(params.Dialect{Delimiter: ';'}))

	require.Equal(t, "a,b+c", join.CallText("a,b;c"))
	require.Equal(t, "x;y", join.Layout().FormatDialect(join.BlockFromText("x;y"), params.Dialect{Delimiter: ';'}))
}

func TestTryCall(t *testing.T) {
	sum := Func2(func(a, b int32) int32 { return a + b })

	b := sum.BlockFromText("3,4")
	require.NoError(t, sum.TryCall(b))
	require.Equal(t, int32(7), params.Result[int32](b))

	out, err := sum.TryCallText("3,4")
	require.NoError(t, err)
	require.Equal(t, "7", out)

	_, err = sum.TryCallText("3,x")
	require.ErrorIs(t, err, types.ErrInvalidArgumentValue)

	_, err = sum.TryCallText("3")
	require.ErrorIs(t, err, params.ErrIncorrectArgumentCount)

	out, err = sum.TryCallDocument(params.Elements("1", "2"))
	require.NoError(t, err)
	require.Equal(t, "3", out)
}

func TestTryCallRecoversPanic(t *testing.T) {
	boom := Func1(func(v int32) int32 {
		if v == 0 {
			panic("division by zero")
		}
		return 100 / v
	})

	_, err := boom.TryCallText("0")
	require.ErrorIs(t, err, ErrPanicked)
	require.Contains(t, err.Error(), "division by zero")

	b := boom.BlockFromText("0")
	b.SetReturn(int32(5))
	require.ErrorIs(t, boom.TryCall(b), ErrPanicked)
	require.Equal(t, int32(5), b.Return())

	require.Panics(t, func() { boom.CallText("0") })
}

type amount int64

var errNegative = errors.New("negative amount")

func (a amount) Check() error {
	if a < 0 {
		return errNegative
	}
	return nil
}

func TestValidate(t *testing.T) {
	r := types.NewRegistry()
	_, err := types.RegisterEnum(r, "amount", map[amount]string(nil))
	require.NoError(t, err)

	pay := Func2(func(to string, a amount) bool { return a > 0 }, WithRegistry(r))

	require.NoError(t, pay.Validate("alice,10"))

	err = pay.Validate("alice,-10")
	require.ErrorIs(t, err, types.ErrInvalidArgumentValue)
	require.Contains(t, err.Error(), "negative amount")

	require.ErrorIs(t, pay.Validate("alice"), params.ErrIncorrectArgumentCount)
	require.ErrorIs(t, pay.ValidateDocument(params.Elements("bob", "x")), types.ErrInvalidArgumentValue)

	_, err = pay.TryCallText("alice,-1")
	require.Error(t, err)
	require.Equal(t, "false", pay.CallText("alice,-1"))
}

func TestNull(t *testing.T) {
	i32 := types.For[int32]()
	layout := params.MustLayout(i32, i32, i32)
	null := Null(layout)

	require.Equal(t, layout.Signature(), null.Signature())
	require.Equal(t, "0", null.CallText("3,4"))

	b := layout.New()
	b.SetReturn(int32(9))
	null.Call(b)
	require.Equal(t, int32(0), b.Return())

	void := Null(params.MustLayout(nil, i32))
	require.Equal(t, "", void.CallText("1"))
	require.NoError(t, void.TryCall(void.NewBlock()))
}

func TestCustomInvokeFunc(t *testing.T) {
	str := types.For[string]()
	upper := New(params.MustLayout(str, str), func(b *params.Block) (any, error) {
		return params.Get[string](b, 0) + "!", nil
	}, WithName("shout"))

	assert.Equal(t, "shout", upper.Name())
	assert.Equal(t, "hi!", upper.CallText("hi"))
}

func TestQueries(t *testing.T) {
	f := Func3(func(a bool, b string, c float64) int64 { return 0 })

	assert.Equal(t, 3, f.ParamCount())
	assert.Equal(t, types.Int64, f.ReturnTypeID())
	assert.Equal(t, types.Bool, f.ParamTypeID(0))
	assert.Equal(t, types.String, f.ParamTypeID(1))
	assert.Equal(t, types.Float64, f.ParamTypeID(2))
	assert.Equal(t, types.Invalid, f.ParamTypeID(3))
	assert.Equal(t, types.Invalid, f.ParamTypeID(-1))
}

func TestUnregisteredTypePanicsAtConstruction(t *testing.T) {
	type unknown struct{}

	require.Panics(t, func() {
		Func1(func(unknown) int32 { return 0 })
	})
}
