package ast

import "encoding/json"

// wireNode is the on-disk JSON shape cmd/brewin loads in place of a real
// Brewin parser: one object per AST node, named the same as the Node
// contract's accessors so a hand-written test fixture reads naturally.
type wireNode struct {
	Kind Kind                  `json:"kind"`
	Pos  *Position             `json:"pos,omitempty"`
	Str  map[string]string     `json:"str,omitempty"`
	Val  json.RawMessage       `json:"val,omitempty"`
	Node map[string]wireNode   `json:"node,omitempty"`
	Seq  map[string][]wireNode `json:"seq,omitempty"`
}

// FromJSON decodes a program previously serialized in the wire shape above.
// It is the stand-in cmd/brewin uses for "hand the driver whatever an
// external Brewin parser produced"; the parser itself is out of scope.
func FromJSON(data []byte) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return w.build(), nil
}

func (w wireNode) build() *SimpleNode {
	n := node(w.Kind)
	if w.Pos != nil {
		n.pos = *w.Pos
	}
	for k, v := range w.Str {
		n.strs[k] = v
	}
	for k, v := range w.Node {
		n.nodes[k] = v.build()
	}
	for k, vs := range w.Seq {
		built := make([]Node, len(vs))
		for i, v := range vs {
			built[i] = v.build()
		}
		n.seqs[k] = built
	}
	if len(w.Val) > 0 {
		n.val = decodeVal(w.Val)
	}
	return n
}

// decodeVal interprets a literal's JSON value as the Go type evalExpr expects
// for that node's kind: int/string/bool literal nodes carry an int64,
// string, or bool respectively. encoding/json decodes numbers as float64, so
// integers are re-cast to int64 here.
func decodeVal(raw json.RawMessage) interface{} {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	if f, ok := v.(float64); ok {
		return int64(f)
	}
	return v
}
