package ast

// SimpleNode is a concrete, map-backed implementation of Node. It is the
// in-memory representation a JSON-decoded program takes (see cmd/brewin) and
// the type Builder produces.
type SimpleNode struct {
	kind  Kind
	pos   Position
	nodes map[string]Node
	seqs  map[string][]Node
	strs  map[string]string
	val   interface{}
}

var _ Node = (*SimpleNode)(nil)

func (n *SimpleNode) Kind() Kind { return n.kind }

func (n *SimpleNode) Attr(name string) (Node, bool) {
	v, ok := n.nodes[name]
	return v, ok
}

func (n *SimpleNode) Attrs(name string) []Node {
	return n.seqs[name]
}

func (n *SimpleNode) Str(name string) (string, bool) {
	v, ok := n.strs[name]
	return v, ok
}

func (n *SimpleNode) Val() interface{} { return n.val }

func (n *SimpleNode) Pos() Position { return n.pos }
