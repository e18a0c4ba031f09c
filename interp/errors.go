package interp

import (
	"fmt"

	"github.com/brewin-lang/brewin/ast"
	"github.com/pkg/errors"
)

// ErrorKind is the small enum of user-visible error categories the host
// façade reports, plus an Internal kind for AST-contract violations and
// other programming errors that are not the user's fault.
type ErrorKind int

const (
	// Name covers undeclared variables/functions (including wrong arity),
	// duplicate declarations in the same scope, and a missing main.
	Name ErrorKind = iota
	// Type covers operand/arity/return/field/coercion failures, division by
	// zero, unparsable inputi, undeclared types, and struct-type mismatches.
	Type
	// Fault covers field access on a typed-NIL struct (v3 only).
	Fault
	// Internal covers AST-contract violations: a programming error in the
	// parser or embedding driver, not a user-visible language error.
	Internal
)

func (k ErrorKind) String() string {
	switch k {
	case Name:
		return "NAME"
	case Type:
		return "TYPE"
	case Fault:
		return "FAULT"
	default:
		return "INTERNAL"
	}
}

// Error is the error type raised by every evaluator failure. Construction
// always attaches a stack trace via pkg/errors, so a fatal error can be
// debugged after the fact without needing to reproduce it.
type Error struct {
	Kind    ErrorKind
	Message string
	Pos     ast.Position
	cause   error
}

func (e *Error) Error() string {
	if e.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// Unwrap exposes the stack-trace-carrying cause to errors.As/errors.Is.
func (e *Error) Unwrap() error { return e.cause }

// newError builds an Error with a stack trace attached.
func newError(kind ErrorKind, at ast.Node, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	pos := ast.Position{}
	if at != nil {
		pos = at.Pos()
	}
	return &Error{
		Kind:    kind,
		Message: msg,
		Pos:     pos,
		cause:   errors.WithStack(fmt.Errorf("%s", msg)),
	}
}

func nameErrorf(at ast.Node, format string, args ...interface{}) *Error {
	return newError(Name, at, format, args...)
}

func typeErrorf(at ast.Node, format string, args ...interface{}) *Error {
	return newError(Type, at, format, args...)
}

func faultErrorf(at ast.Node, format string, args ...interface{}) *Error {
	return newError(Fault, at, format, args...)
}

// Recover runs cb, turning any panic it raises into an *Error. A panic whose
// value is already an *Error is passed through with its kind intact; any
// other panic (AST-contract violation, unreachable switch branch, slice
// out-of-range) is reported as an Internal error, converting panics into
// errors at one well-defined boundary rather than crashing the process.
func Recover(cb func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				return
			}
			err = &Error{
				Kind:    Internal,
				Message: fmt.Sprintf("%v", r),
				cause:   errors.WithStack(fmt.Errorf("%v", r)),
			}
		}
	}()
	cb()
	return nil
}
