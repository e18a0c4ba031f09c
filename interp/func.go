package interp

import (
	"context"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/symbol"
)

// Param is one declared parameter of a user function: a name and, in v3
// only, a declared type (v4 drops the type system entirely; see
// interp/driver.go's registerFunc).
type Param struct {
	Name         symbol.ID
	DeclaredType *TypeDef
}

// BuiltinFunc is the callback behind a built-in (print, inputi, inputs).
// Built-ins never defer evaluation of their arguments (the call site
// evaluates them against the live scope, even in v4), so the callback only
// ever sees concrete values.
type BuiltinFunc func(ctx context.Context, at ast.Node, ip *Interpreter, args []Value) Value

// Func represents a callable: either a user-defined function (captured body
// and declared signature) or a built-in. Brewin functions are plain
// top-level named callables, not first-class values, so there is no closure
// environment to carry.
type Func struct {
	name     symbol.ID
	params   []Param
	variadic bool // true only for built-ins registered with the arity sentinel

	// User-defined function fields.
	body    []ast.Node
	retType *TypeDef // nil for a declared `void` return type, or v1/v2 (untyped)
	isVoid  bool

	// Built-in function field.
	builtin BuiltinFunc
}

// call invokes f with already-evaluated (or, in v4, already-thunked) actual
// arguments. For a user function this allocates a fresh Frame whose
// variable scope is parented at the *global* variable scope (lexical, not
// dynamic), never at the caller's locals.
func (f *Func) call(ctx context.Context, at ast.Node, ip *Interpreter, args []Value) Value {
	if f.builtin != nil {
		return f.builtin(ctx, at, ip, args)
	}

	ip.log.Debugw("frame push", "func", f.name.Str(), "arity", len(f.params))
	defer ip.log.Debugw("frame pop", "func", f.name.Str())
	frame := newFrame(newVariableScope(ip.globalVars))
	frame.retType = f.retType
	frame.isVoidFn = f.isVoid
	for i, p := range f.params {
		frame.scope.declare(at, p.Name, p.DeclaredType, ip.types)
		frame.scope.assign(at, p.Name, args[i])
	}

	ip.execBlock(ctx, frame, f.body, frame.scope)
	if !frame.hasReturned {
		// Only v3 demands the declared return type be void when the body
		// falls through; v1/v2/v4 simply return NIL. For v4 this also avoids
		// forcing a never-read thunk just to perform a type check that
		// laziness would otherwise defer indefinitely.
		if ip.version == V3 && !f.isVoid {
			panic(typeErrorf(at, "function %q must return a value of type %s", f.name.Str(), f.retType.Name.Str()))
		}
		return Nil
	}
	return frame.returnValue
}
