package params

// Node is an element of a structured document. Arguments are read from the children of
// a node in document order, one child per parameter.
type Node interface {
	Children() []Node
	Text() string
}

type element struct {
	text     string
	children []Node
}

func (e element) Children() []Node { return e.children }

func (e element) Text() string { return e.text }

// Element returns an in-memory node with the given text and children.
func Element(text string, children ...Node) Node {
	return element{text: text, children: children}
}

// Elements returns a node whose children are text leaves, one per argument.
func Elements(texts ...string) Node {
	children := make([]Node, len(texts))
	for i, t := range texts {
		children[i] = element{text: t}
	}

	return element{children: children}
}
