package types

import (
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type testColor int32

const (
	testRed testColor = iota + 1
	testGreen
)

type testNode struct {
	Name string
}

type testPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()

	for id := Bool; id <= BigInt; id++ {
		b, ok := r.ByID(id)
		require.True(t, ok, id.String())
		require.Equal(t, id, b.TypeID())
		require.Equal(t, id.String(), b.Name())

		same, ok := r.Lookup(b.RealType())
		require.True(t, ok)
		require.Equal(t, id, same.TypeID())
	}

	_, ok := r.ByID(Invalid)
	require.False(t, ok)
	_, ok = r.ByID(Void)
	require.False(t, ok)
}

func TestRegistryCustomIDs(t *testing.T) {
	r := NewRegistry()

	colors, err := RegisterEnum(r, "color", map[testColor]string{testRed: "red", testGreen: "green"})
	require.NoError(t, err)
	require.GreaterOrEqual(t, colors.TypeID(), FirstCustom)

	points, err := RegisterJSON[testPoint](r, "point")
	require.NoError(t, err)
	require.Greater(t, points.TypeID(), colors.TypeID())

	require.Equal(t, "color", r.NameOf(colors.TypeID()))
	require.Equal(t, "type#200", r.NameOf(200))

	_, err = RegisterEnum(r, "color-again", map[testColor]string{})
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	bridges := r.Bridges()
	require.Equal(t, Bool, bridges[0].TypeID())
	require.Equal(t, points.TypeID(), bridges[len(bridges)-1].TypeID())
}

func TestCustomIDsAreUniqueAcrossRegistries(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()

	colors, err := RegisterEnum(a, "color", map[testColor]string{testRed: "red"})
	require.NoError(t, err)
	points, err := RegisterJSON[testPoint](b, "point")
	require.NoError(t, err)
	require.NotEqual(t, colors.TypeID(), points.TypeID())

	// The same Go type registered twice still gets two identifiers.
	again, err := RegisterEnum(b, "color", map[testColor]string{testRed: "red"})
	require.NoError(t, err)
	require.NotEqual(t, colors.TypeID(), again.TypeID())

	_, ok := a.ByID(points.TypeID())
	require.False(t, ok)
}

func TestExplicitCustomIDIsReserved(t *testing.T) {
	explicit := allocateID() + 10

	r := NewRegistry()
	_, err := r.Register(NewCodec(explicit, "node-id", CodecFuncs[testNode, string]{
		ToStorage: func(n testNode) string { return n.Name },
		ToReal:    func(s string) testNode { return testNode{Name: s} },
		Parse:     func(s string) (string, error) { return s, nil },
		Format:    identity[string],
	}))
	require.NoError(t, err)

	require.Greater(t, allocateID(), explicit)
}

func TestRegistryRejectsReusedID(t *testing.T) {
	r := NewRegistry()

	_, err := r.Register(NewCodec(Int32, "other", CodecFuncs[testColor, testColor]{
		ToStorage: identity[testColor],
		ToReal:    identity[testColor],
		Parse:     func(string) (testColor, error) { return 0, nil },
		Format:    func(testColor) string { return "" },
	}))
	require.ErrorIs(t, err, ErrIDAlreadyUsed)
}

func TestForPanicsOnUnregisteredType(t *testing.T) {
	require.PanicsWithError(t, "unsupported type: types.testPoint", func() {
		ForIn[testPoint](NewRegistry())
	})

	_, ok := LookupType[testPoint](NewRegistry())
	require.False(t, ok)
}

func TestEnumCodec(t *testing.T) {
	b := EnumCodec("color", map[testColor]string{testRed: "red", testGreen: "green"})

	require.Equal(t, int64(2), b.ToStorage(testGreen))
	require.Equal(t, testGreen, b.ToReal(int64(2)))
	require.Equal(t, "green", b.Format(int64(2)))
	require.Equal(t, "9", b.Format(int64(9)))
	require.Equal(t, int64(1), b.Parse("red"))
	require.Equal(t, int64(9), b.Parse("9"))
	require.Equal(t, int64(0), b.Parse("purple"))
}

func TestHandleCodec(t *testing.T) {
	table := NewHandleTable[testNode]()
	b := HandleCodec("node", table)

	n := &testNode{Name: "root"}
	h := b.ToStorage(n)
	require.Equal(t, Handle(1), h)
	require.Same(t, n, b.ToReal(h))
	require.Equal(t, h, b.ToStorage(n))
	require.Equal(t, "1", b.Format(h))
	require.Equal(t, h, b.Parse(b.Format(h)))

	require.Equal(t, Handle(0), b.ToStorage((*testNode)(nil)))
	require.Nil(t, b.ToReal(Handle(0)))
	require.Nil(t, b.Default())

	table.Release(Handle(1))
	require.Nil(t, table.Get(Handle(1)))
	require.Zero(t, table.Len())
	require.Equal(t, Handle(2), table.Put(n))
}

func TestProtoCodec(t *testing.T) {
	b := ProtoCodec[*wrapperspb.StringValue]("string-value")

	v := wrapperspb.String("hello, world")
	storage := b.ToStorage(v)
	require.True(t, proto.Equal(v, b.ToReal(storage).(*wrapperspb.StringValue)))

	text := b.Format(storage)
	require.JSONEq(t, `"hello, world"`, text)
	require.Equal(t, storage, b.Parse(text))

	def, ok := b.Default().(*wrapperspb.StringValue)
	require.True(t, ok)
	require.NotNil(t, def)
	require.Empty(t, def.GetValue())

	_, err := b.ParseStrict("{not json")
	require.ErrorIs(t, err, ErrInvalidArgumentValue)
}

func TestTextCodec(t *testing.T) {
	b := TextCodec[netip.Addr]("addr")

	addr := netip.MustParseAddr("192.168.0.1")
	storage := b.ToStorage(addr)
	require.Equal(t, "192.168.0.1", storage)
	require.Equal(t, addr, b.ToReal(storage))
	require.Equal(t, storage, b.Parse(b.Format(storage)))
	require.Equal(t, "", b.Parse("999.1.1.1"))
}

func TestJSONCodec(t *testing.T) {
	b := JSONCodec[testPoint]("point")

	storage := b.ToStorage(testPoint{X: 1, Y: -2})
	require.JSONEq(t, `{"x":1,"y":-2}`, storage.(string))
	require.Equal(t, testPoint{X: 1, Y: -2}, b.ToReal(storage))
	require.Equal(t, storage, b.Parse(b.Format(storage)))
	require.Equal(t, storage, b.Parse(`{ "y": -2, "x": 1 }`))

	def, err := json.Marshal(testPoint{})
	require.NoError(t, err)
	require.Equal(t, string(def), b.Parse("[1,2"))
}
