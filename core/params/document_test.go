package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseXML(t *testing.T) {
	doc := `<?xml version="1.0"?>
<sum name="demo">
  <a>3</a>
  <b> 4 </b>
  <!-- ignored -->
  <c><nested>x</nested>tail</c>
</sum>`

	root, err := ParseXML([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, "sum", root.Name.Local)

	name, ok := root.Attr("name")
	require.True(t, ok)
	require.Equal(t, "demo", name)

	children := root.Children()
	require.Len(t, children, 3)
	require.Equal(t, "3", children[0].Text())
	require.Equal(t, " 4 ", children[1].Text())
	require.Equal(t, "tail", children[2].Text())
	require.Len(t, children[2].Children(), 1)

	b := sumLayout().FromDocument(root)
	require.Equal(t, int32(3), Get[int32](b, 0))
	require.Equal(t, int32(4), Get[int32](b, 1))
}

func TestNilXMLNode(t *testing.T) {
	var n *XMLNode

	require.Nil(t, n.Children())
	require.Empty(t, n.Text())
	_, ok := n.Attr("name")
	require.False(t, ok)

	b := sumLayout().FromDocument(n)
	require.Equal(t, int32(0), Get[int32](b, 0))
	require.Equal(t, int32(0), Get[int32](b, 1))
}

func TestParseXMLErrors(t *testing.T) {
	_, err := ParseXML([]byte(""))
	require.ErrorIs(t, err, ErrEmptyDocument)

	_, err = ParseXML([]byte("<a><b></a>"))
	require.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "sequence", doc: "[3, 4]"},
		{name: "block sequence", doc: "- 3\n- 4\n"},
		{name: "mapping", doc: "a: 3\nb: 4\n"},
		{name: "anchors", doc: "x: &three 3\nargs:\n  - *three\n  - 4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseYAML([]byte(tt.doc))
			require.NoError(t, err)

			if tt.name == "anchors" {
				n = n.Children()[1]
			}

			b := sumLayout().FromDocument(n)
			require.Equal(t, int32(3), Get[int32](b, 0))
			require.Equal(t, int32(4), Get[int32](b, 1))
		})
	}
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := ParseYAML([]byte(""))
	require.ErrorIs(t, err, ErrEmptyDocument)

	_, err = ParseYAML([]byte("[1, 2"))
	require.Error(t, err)
}

func TestElements(t *testing.T) {
	n := Elements("a", "b")
	require.Empty(t, n.Text())
	require.Len(t, n.Children(), 2)
	require.Equal(t, "b", n.Children()[1].Text())

	tree := Element("root", Element("leaf"))
	require.Equal(t, "root", tree.Text())
	require.Equal(t, "leaf", tree.Children()[0].Text())
}
