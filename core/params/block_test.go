package params

import (
	"testing"

	"github.com/anoideaopen/invoker/core/types"
	"github.com/stretchr/testify/require"
)

func TestBlockSlots(t *testing.T) {
	b := sumLayout().New()

	require.Equal(t, 2, b.Len())
	require.Equal(t, int32(0), b.Slot(0))
	require.Nil(t, b.Slot(2))

	require.True(t, b.SetSlot(0, int32(11)))
	require.Equal(t, int32(11), Get[int32](b, 0))

	// Wrong storage type falls back to the default.
	require.True(t, b.SetSlot(1, "eleven"))
	require.Equal(t, int32(0), b.Slot(1))

	require.False(t, b.SetSlot(5, int32(1)))

	Set(b, 7, int32(1))
	require.Equal(t, int32(0), Get[int32](b, 7))
}

func TestBlockReturn(t *testing.T) {
	b := sumLayout().New()

	require.True(t, b.HasReturn())
	require.Equal(t, int32(0), b.Return())

	b.SetReturn(int32(9))
	require.Equal(t, int32(9), Result[int32](b))

	require.Equal(t, int32(9), b.TakeReturn())
	require.Equal(t, int32(0), b.Return())

	SetResult(b, int32(-3))
	require.Equal(t, int32(-3), b.Return())
}

func TestVoidBlockReturn(t *testing.T) {
	b := MustLayout(nil, types.For[string]()).New()

	require.False(t, b.HasReturn())
	b.SetReturn("ignored")
	SetResult(b, "ignored")
	require.Nil(t, b.Return())
	require.Nil(t, b.TakeReturn())
	require.Equal(t, "", Result[string](b))
}

func TestGetWithWrongType(t *testing.T) {
	b := sumLayout().FromText("3,4")
	require.Equal(t, "", Get[string](b, 0))
}
