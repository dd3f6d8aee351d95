package callable

import (
	"strconv"
	"strings"
	"testing"

	"github.com/anoideaopen/invoker/core/types"
	"github.com/stretchr/testify/require"
)

// arities returns, for every arity, an adapter summing its int arguments and an action
// storing the sum into got.
func arities(got *int) [][2]*Adapter {
	return [][2]*Adapter{
		{
			Func0(func() int { return 0 }),
			Action0(func() { *got = 0 }),
		},
		{
			Func1(func(a int) int { return a }),
			Action1(func(a int) { *got = a }),
		},
		{
			Func2(func(a, b int) int { return a + b }),
			Action2(func(a, b int) { *got = a + b }),
		},
		{
			Func3(func(a, b, c int) int { return a + b + c }),
			Action3(func(a, b, c int) { *got = a + b + c }),
		},
		{
			Func4(func(a, b, c, d int) int { return a + b + c + d }),
			Action4(func(a, b, c, d int) { *got = a + b + c + d }),
		},
		{
			Func5(func(a, b, c, d, e int) int { return a + b + c + d + e }),
			Action5(func(a, b, c, d, e int) { *got = a + b + c + d + e }),
		},
		{
			Func6(func(a, b, c, d, e, f int) int { return a + b + c + d + e + f }),
			Action6(func(a, b, c, d, e, f int) { *got = a + b + c + d + e + f }),
		},
		{
			Func7(func(a, b, c, d, e, f, g int) int { return a + b + c + d + e + f + g }),
			Action7(func(a, b, c, d, e, f, g int) { *got = a + b + c + d + e + f + g }),
		},
		{
			Func8(func(a, b, c, d, e, f, g, h int) int { return a + b + c + d + e + f + g + h }),
			Action8(func(a, b, c, d, e, f, g, h int) { *got = a + b + c + d + e + f + g + h }),
		},
		{
			Func9(func(a, b, c, d, e, f, g, h, i int) int { return a + b + c + d + e + f + g + h + i }),
			Action9(func(a, b, c, d, e, f, g, h, i int) { *got = a + b + c + d + e + f + g + h + i }),
		},
		{
			Func10(func(a, b, c, d, e, f, g, h, i, j int) int { return a + b + c + d + e + f + g + h + i + j }),
			Action10(func(a, b, c, d, e, f, g, h, i, j int) { *got = a + b + c + d + e + f + g + h + i + j }),
		},
		{
			Func11(func(a, b, c, d, e, f, g, h, i, j, k int) int { return a + b + c + d + e + f + g + h + i + j + k }),
			Action11(func(a, b, c, d, e, f, g, h, i, j, k int) { *got = a + b + c + d + e + f + g + h + i + j + k }),
		},
		{
			Func12(func(a, b, c, d, e, f, g, h, i, j, k, l int) int { return a + b + c + d + e + f + g + h + i + j + k + l }),
			Action12(func(a, b, c, d, e, f, g, h, i, j, k, l int) { *got = a + b + c + d + e + f + g + h + i + j + k + l }),
		},
		{
			Func13(func(a, b, c, d, e, f, g, h, i, j, k, l, m int) int { return a + b + c + d + e + f + g + h + i + j + k + l + m }),
			Action13(func(a, b, c, d, e, f, g, h, i, j, k, l, m int) { *got = a + b + c + d + e + f + g + h + i + j + k + l + m }),
		},
		{
			Func14(func(a, b, c, d, e, f, g, h, i, j, k, l, m, n int) int { return a + b + c + d + e + f + g + h + i + j + k + l + m + n }),
			Action14(func(a, b, c, d, e, f, g, h, i, j, k, l, m, n int) { *got = a + b + c + d + e + f + g + h + i + j + k + l + m + n }),
		},
		{
			Func15(func(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o int) int { return a + b + c + d + e + f + g + h + i + j + k + l + m + n + o }),
			Action15(func(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o int) { *got = a + b + c + d + e + f + g + h + i + j + k + l + m + n + o }),
		},
		{
			Func16(func(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p int) int { return a + b + c + d + e + f + g + h + i + j + k + l + m + n + o + p }),
			Action16(func(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p int) { *got = a + b + c + d + e + f + g + h + i + j + k + l + m + n + o + p }),
		},
	}
}

func TestArityCoverage(t *testing.T) {
	var got int
	shapes := arities(&got)
	require.Len(t, shapes, 17)

	for n, pair := range shapes {
		fields := make([]string, n)
		want := 0
		for i := range fields {
			fields[i] = strconv.Itoa(i + 1)
			want += i + 1
		}
		text := strings.Join(fields, ",")

		fn, action := pair[0], pair[1]

		require.Equal(t, n, fn.ParamCount(), "func arity %d", n)
		require.Equal(t, types.Int, fn.ReturnTypeID())
		require.Equal(t, strconv.Itoa(want), fn.CallText(text))

		require.Equal(t, n, action.ParamCount(), "action arity %d", n)
		require.Equal(t, types.Void, action.ReturnTypeID())
		got = -1
		require.Equal(t, "", action.CallText(text))
		require.Equal(t, want, got)

		for i := 0; i < n; i++ {
			require.Equal(t, types.Int, fn.ParamTypeID(i))
			require.Equal(t, types.Int, action.ParamTypeID(i))
		}
		for i := n; i <= 16; i++ {
			require.Equal(t, types.Invalid, fn.ParamTypeID(i))
			require.Equal(t, types.Invalid, action.ParamTypeID(i))
		}

		require.NotEqual(t, fn.Signature(), action.Signature())
	}
}
