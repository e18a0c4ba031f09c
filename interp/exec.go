package interp

import (
	"context"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/symbol"
)

// execBlock runs a code block: statements execute in a fresh child scope of
// parent, so names declared inside the block (or shadowing an ancestor's)
// disappear once the block ends.
func (ip *Interpreter) execBlock(ctx context.Context, frame *Frame, stmts []ast.Node, parent *VariableScope) {
	ip.execStatements(ctx, frame, newVariableScope(parent), stmts)
}

// execStatements runs stmts in scope in order, stopping as soon as the frame
// has returned, checked after every statement so a return nested
// arbitrarily deep in if/for bodies unwinds the whole call.
func (ip *Interpreter) execStatements(ctx context.Context, frame *Frame, scope *VariableScope, stmts []ast.Node) {
	for _, st := range stmts {
		ip.execStmt(ctx, frame, scope, st)
		if frame.hasReturned {
			return
		}
	}
}

// forceCellAt returns a force callback bound to ctx, for passing into
// VariableScope.resolvePath.
func (ip *Interpreter) forceCellAt(ctx context.Context) func(ast.Node, *cell) Value {
	return func(at ast.Node, c *cell) Value {
		return ip.forceCell(ctx, at, c)
	}
}

func (ip *Interpreter) execStmt(ctx context.Context, frame *Frame, scope *VariableScope, stmt ast.Node) {
	switch stmt.Kind() {
	case ast.KindVarDef:
		ip.execVarDef(scope, stmt)
	case ast.KindAssign:
		ip.execAssign(ctx, scope, stmt)
	case ast.KindFcall:
		ip.evalExpr(ctx, scope, stmt)
	case ast.KindIf:
		ip.execIf(ctx, frame, scope, stmt)
	case ast.KindFor:
		ip.execFor(ctx, frame, scope, stmt)
	case ast.KindReturn:
		ip.execReturn(ctx, frame, scope, stmt)
	default:
		panic(newError(Internal, stmt, "unexpected statement kind %q", stmt.Kind()))
	}
}

func (ip *Interpreter) execVarDef(scope *VariableScope, stmt ast.Node) {
	name, _ := stmt.Str("name")
	var declaredType *TypeDef
	if ip.version == V3 {
		vtype, _ := stmt.Str("var_type")
		declaredType = ip.types.MustLookup(stmt, vtype)
	}
	scope.declare(stmt, symbol.Intern(name), declaredType, ip.types)
}

func (ip *Interpreter) execAssign(ctx context.Context, scope *VariableScope, stmt ast.Node) {
	name, _ := stmt.Str("name")
	exprNode, _ := stmt.Attr("expression")

	var value Value
	if ip.version == V4 {
		// v4: assignments store a thunk, not a value (call-by-need).
		// The expression is not evaluated here at all; it runs later,
		// at most once, against the scope captured right now.
		value = NewThunkValue(newThunk(scope, exprNode))
	} else {
		value = ip.evalExpr(ctx, scope, exprNode)
	}
	scope.assignPath(stmt, name, value, ip.forceCellAt(ctx))
}

func (ip *Interpreter) execIf(ctx context.Context, frame *Frame, scope *VariableScope, stmt ast.Node) {
	condNode, _ := stmt.Attr("condition")
	cond := ip.evalExpr(ctx, scope, condNode)
	if requireBool(condNode, cond, ip.ifForCoerce()) {
		ip.execBlock(ctx, frame, stmt.Attrs("statements"), scope)
		return
	}
	if elseStmts := stmt.Attrs("else_statements"); len(elseStmts) > 0 {
		ip.execBlock(ctx, frame, elseStmts, scope)
	}
}

func (ip *Interpreter) execFor(ctx context.Context, frame *Frame, scope *VariableScope, stmt ast.Node) {
	initNode, _ := stmt.Attr("init")
	condNode, _ := stmt.Attr("condition")
	updateNode, _ := stmt.Attr("update")
	body := stmt.Attrs("statements")

	ip.execStmt(ctx, frame, scope, initNode)
	for {
		cond := ip.evalExpr(ctx, scope, condNode)
		if !requireBool(condNode, cond, ip.ifForCoerce()) {
			return
		}
		ip.execBlock(ctx, frame, body, scope)
		if frame.hasReturned {
			return
		}
		ip.execStmt(ctx, frame, scope, updateNode)
	}
}

func (ip *Interpreter) execReturn(ctx context.Context, frame *Frame, scope *VariableScope, stmt ast.Node) {
	exprNode, hasExpr := stmt.Attr("expression")
	if !hasExpr {
		if ip.version == V3 && frame.retType != nil {
			panic(typeErrorf(stmt, "function must return a value of type %s", frame.retType.Name.Str()))
		}
		frame.setReturn(Nil)
		return
	}

	value := ip.evalExpr(ctx, scope, exprNode)
	if ip.version == V3 {
		if frame.isVoidFn {
			panic(typeErrorf(stmt, "void function must not return a value"))
		}
		if frame.retType != nil {
			value = conform(stmt, value, frame.retType)
		}
	}
	frame.setReturn(value)
}

// evalExpr evaluates an expression node to a concrete (never ThunkType)
// value. A bare variable reference forces and memoizes its cell; every other
// expression kind only ever hands out values it itself produced, so no
// further forcing is needed at the call sites above.
func (ip *Interpreter) evalExpr(ctx context.Context, scope *VariableScope, node ast.Node) Value {
	switch node.Kind() {
	case ast.KindInt:
		return NewInt(node.Val().(int64))
	case ast.KindString:
		return NewString(node.Val().(string))
	case ast.KindBool:
		return NewBool(node.Val().(bool))
	case ast.KindNil:
		return Nil
	case ast.KindVar:
		name, _ := node.Str("name")
		c := scope.resolvePath(node, name, ip.forceCellAt(ctx))
		return ip.forceCell(ctx, node, c)
	case ast.KindNew:
		structType, _ := node.Str("struct_type")
		def := ip.types.MustLookup(node, structType)
		if def.Kind != StructType {
			panic(typeErrorf(node, "new: %q is not a struct type", structType))
		}
		return NewStructValue(newLiveStruct(ip.types, def))
	case ast.KindFcall:
		return ip.evalCall(ctx, scope, node)
	case ast.KindNeg, ast.KindNot:
		op1, _ := node.Attr("op1")
		v := ip.evalExpr(ctx, scope, op1)
		return ip.applyUnary(node, node.Kind(), v)
	default:
		op1, ok1 := node.Attr("op1")
		op2, ok2 := node.Attr("op2")
		if !ok1 || !ok2 {
			panic(newError(Internal, node, "unexpected expression kind %q", node.Kind()))
		}
		a := ip.evalExpr(ctx, scope, op1)
		b := ip.evalExpr(ctx, scope, op2)
		return ip.applyBinary(node, node.Kind(), a, b)
	}
}

func (ip *Interpreter) evalCall(ctx context.Context, scope *VariableScope, node ast.Node) Value {
	name, _ := node.Str("name")
	argNodes := node.Attrs("args")
	f := ip.globalFuncs.lookup(node, symbol.Intern(name), len(argNodes))

	args := make([]Value, len(argNodes))
	for i, a := range argNodes {
		if ip.version == V4 && f.builtin == nil {
			// v4 user-function parameters are call-by-need: each argument
			// becomes a thunk over the caller's scope as of right now.
			args[i] = NewThunkValue(newThunk(scope, a))
		} else {
			// Built-ins take concrete values even in v4, evaluated against
			// the live scope so a bare variable argument forces and
			// memoizes its own cell rather than a throwaway snapshot.
			args[i] = ip.evalExpr(ctx, scope, a)
		}
	}
	return f.call(ctx, node, ip, args)
}
