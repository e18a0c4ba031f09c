package interp

import (
	"context"

	"github.com/brewin-lang/brewin/ast"
)

// Thunk is a v4 deferred expression: a captured-environment snapshot plus
// the unevaluated AST node. It is an immutable record: the "has this been
// forced yet" state lives on the *cell* the thunk inhabits, not on the
// Thunk itself, so other cells or captured snapshots holding the same thunk
// force independently (per-cell memoization).
type Thunk struct {
	capturedScope *VariableScope
	expr          ast.Node
}

// newThunk wraps expr with a deep-cloned snapshot of scope, so that later
// mutations to the names in scope do not affect this thunk's eventual
// result.
func newThunk(scope *VariableScope, expr ast.Node) *Thunk {
	return &Thunk{capturedScope: scope.clone(), expr: expr}
}

// forceCell evaluates the thunk held by c (if any) in its captured scope and
// overwrites c with the resulting value, memoizing at most once per cell,
// not once per thunk, so a second variable that still holds a reference to
// the same (unforced) thunk value forces it independently.
func (ip *Interpreter) forceCell(ctx context.Context, at ast.Node, c *cell) Value {
	if c.value.Type() != ThunkType {
		return c.value
	}
	t := c.value.Thunk()
	result := ip.evalExpr(ctx, t.capturedScope, t.expr)
	if c.declaredType != nil {
		result = conform(at, result, c.declaredType)
	}
	c.value = result
	return result
}
