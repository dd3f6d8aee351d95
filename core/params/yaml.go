package params

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlNode struct {
	n *yaml.Node
}

// YAMLNode adapts a YAML node. Sequence items and mapping values become children in
// document order; scalars expose their value as text.
func YAMLNode(n *yaml.Node) Node {
	return yamlNode{n: resolve(n)}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}

	return nil
}

func (y yamlNode) Children() []Node {
	if y.n == nil {
		return nil
	}

	var children []Node
	switch y.n.Kind {
	case yaml.SequenceNode:
		children = make([]Node, 0, len(y.n.Content))
		for _, c := range y.n.Content {
			children = append(children, YAMLNode(c))
		}
	case yaml.MappingNode:
		children = make([]Node, 0, len(y.n.Content)/2)
		for i := 1; i < len(y.n.Content); i += 2 {
			children = append(children, YAMLNode(y.n.Content[i]))
		}
	}

	return children
}

func (y yamlNode) Text() string {
	if y.n == nil || y.n.Kind != yaml.ScalarNode {
		return ""
	}

	return y.n.Value
}

// ParseYAML parses a YAML document, e.g. "[3, 4]" or "{a: 3, b: 4}".
func ParseYAML(data []byte) (Node, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if resolve(&n) == nil || n.Kind == 0 {
		return nil, ErrEmptyDocument
	}

	return YAMLNode(&n), nil
}
