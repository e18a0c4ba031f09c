package interp

// Frame is the runtime record for one active function call: a local
// variable scope (chained to the global variables, not to the caller's
// locals) and a return slot. Function dispatch always goes through the
// global function scope, the only one Brewin has, so the frame does not
// carry its own.
//
// Frame.hasReturned is a two-state machine: running -> returned
// (terminal). Every block-executing loop checks hasReturned after
// each statement and unwinds immediately once it is set, so a return from a
// deeply nested if/for body terminates the whole call with no further
// visible side effects.
type Frame struct {
	scope       *VariableScope
	returnValue Value
	hasReturned bool

	// retType/isVoidFn describe the enclosing function's declared return
	// type (v3 only; v4 has no type system) so that a `return` statement
	// can coerce/type-check against it without threading the Func itself
	// through execBlock.
	retType  *TypeDef
	isVoidFn bool
}

func newFrame(scope *VariableScope) *Frame {
	return &Frame{scope: scope}
}

// setReturn transitions the frame to "returned" with the given value.
func (f *Frame) setReturn(v Value) {
	f.returnValue = v
	f.hasReturned = true
}
