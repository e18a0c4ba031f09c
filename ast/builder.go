package ast

// Builder constructs Node trees programmatically. It stands in for the
// out-of-scope external parser: tests (and cmd/brewin's JSON loader) use it
// to hand the driver an already-parsed program, exactly as an embedding
// driver would after invoking a real Brewin grammar.
type Builder struct{}

func node(kind Kind) *SimpleNode {
	return &SimpleNode{kind: kind, nodes: map[string]Node{}, seqs: map[string][]Node{}, strs: map[string]string{}}
}

// WithPos sets the source position used in diagnostics and returns n.
func WithPos(n *SimpleNode, line, col int) *SimpleNode {
	n.pos = Position{Line: line, Col: col}
	return n
}

// Program builds a `program` node.
func Program(functions []Node, structs []Node) *SimpleNode {
	n := node(KindProgram)
	n.seqs["functions"] = functions
	n.seqs["structs"] = structs
	return n
}

// Func builds a `func` node. returnType may be "" for v1/v2.
func Func(name string, args []Node, statements []Node, returnType string) *SimpleNode {
	n := node(KindFunc)
	n.strs["name"] = name
	n.seqs["args"] = args
	n.seqs["statements"] = statements
	if returnType != "" {
		n.strs["return_type"] = returnType
	}
	return n
}

// Arg builds an `arg` node. varType may be "" for v1/v2.
func Arg(name, varType string) *SimpleNode {
	n := node(KindArg)
	n.strs["name"] = name
	if varType != "" {
		n.strs["var_type"] = varType
	}
	return n
}

// Struct builds a v3 `struct` node.
func Struct(name string, fields []Node) *SimpleNode {
	n := node(KindStruct)
	n.strs["name"] = name
	n.seqs["fields"] = fields
	return n
}

// Field builds a struct field descriptor.
func Field(name, varType string) *SimpleNode {
	n := node(KindField)
	n.strs["name"] = name
	n.strs["var_type"] = varType
	return n
}

// VarDef builds a `vardef` statement. varType may be "" for v1/v2.
func VarDef(name, varType string) *SimpleNode {
	n := node(KindVarDef)
	n.strs["name"] = name
	if varType != "" {
		n.strs["var_type"] = varType
	}
	return n
}

// Assign builds an `=` statement. name may be a dotted path in v3 (e.g. "a.b.c").
func Assign(name string, expr Node) *SimpleNode {
	n := node(KindAssign)
	n.strs["name"] = name
	n.nodes["expression"] = expr
	return n
}

// FcallStatement builds a bare function-call statement (result discarded).
func FcallStatement(name string, args []Node) *SimpleNode {
	return Fcall(name, args)
}

// If builds an `if` statement. elseStatements may be nil.
func If(condition Node, statements, elseStatements []Node) *SimpleNode {
	n := node(KindIf)
	n.nodes["condition"] = condition
	n.seqs["statements"] = statements
	if elseStatements != nil {
		n.seqs["else_statements"] = elseStatements
	}
	return n
}

// For builds a `for` statement.
func For(init, condition, update Node, statements []Node) *SimpleNode {
	n := node(KindFor)
	n.nodes["init"] = init
	n.nodes["condition"] = condition
	n.nodes["update"] = update
	n.seqs["statements"] = statements
	return n
}

// Return builds a `return` statement. expr may be nil.
func Return(expr Node) *SimpleNode {
	n := node(KindReturn)
	if expr != nil {
		n.nodes["expression"] = expr
	}
	return n
}

// IntLit builds an int value node.
func IntLit(v int64) *SimpleNode {
	n := node(KindInt)
	n.val = v
	return n
}

// StringLit builds a string value node.
func StringLit(v string) *SimpleNode {
	n := node(KindString)
	n.val = v
	return n
}

// BoolLit builds a bool value node.
func BoolLit(v bool) *SimpleNode {
	n := node(KindBool)
	n.val = v
	return n
}

// NilLit builds a nil value node.
func NilLit() *SimpleNode {
	return node(KindNil)
}

// Var builds a variable-reference node. name may be a dotted path in v3.
func Var(name string) *SimpleNode {
	n := node(KindVar)
	n.strs["name"] = name
	return n
}

// Binary builds a binary-operator node.
func Binary(op Kind, op1, op2 Node) *SimpleNode {
	n := node(op)
	n.nodes["op1"] = op1
	n.nodes["op2"] = op2
	return n
}

// Unary builds a unary-operator node (neg, !).
func Unary(op Kind, op1 Node) *SimpleNode {
	n := node(op)
	n.nodes["op1"] = op1
	return n
}

// Fcall builds a function-call expression node.
func Fcall(name string, args []Node) *SimpleNode {
	n := node(KindFcall)
	n.strs["name"] = name
	n.seqs["args"] = args
	return n
}

// New builds a v3 `new T` expression node.
func New(structType string) *SimpleNode {
	n := node(KindNew)
	n.strs["struct_type"] = structType
	return n
}
