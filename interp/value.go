package interp

import (
	"fmt"

	"github.com/brewin-lang/brewin/ast"
)

// Value is a unified representation of a runtime Brewin value. It can hold a
// scalar (int/string/bool), the sole NIL marker, a struct reference (live or
// typed-NIL), or, internal to the evaluator and never observed by user code,
// a thunk. A Value is immutable once constructed; the tag and its payload
// are plain fields.
type Value struct {
	typ ValueType
	i   int64
	s   string
	b   bool
	st  *StructValue
	th  *Thunk
}

// Valid reports whether v holds a value. A default-constructed Value is not
// valid; Nil, by contrast, is a valid value that represents "no value".
func (v Value) Valid() bool { return v.typ != InvalidType }

// Type returns the tag of the value.
func (v Value) Type() ValueType { return v.typ }

// Nil is the singleton NIL value.
var Nil = Value{typ: NilType}

// NewInt creates an INT value.
func NewInt(v int64) Value { return Value{typ: IntType, i: v} }

// NewString creates a STRING value.
func NewString(v string) Value { return Value{typ: StringType, s: v} }

// NewBool creates a BOOL value.
func NewBool(v bool) Value { return Value{typ: BoolType, b: v} }

// NewStructValue wraps a struct reference (live or typed-NIL) as a Value.
func NewStructValue(s *StructValue) Value { return Value{typ: StructType, st: s} }

// NewThunkValue wraps a thunk as a Value. Internal to the evaluator: a
// variable cell may transiently hold this, but forceCell always resolves it
// before handing a Value to user-visible expression evaluation.
func NewThunkValue(t *Thunk) Value { return Value{typ: ThunkType, th: t} }

func (v Value) wrongTypeError(at ast.Node, want string) *Error {
	return typeErrorf(at, "expected value of type %s, found %s (%s)", want, v.typ, v.describe())
}

// Int extracts the integer payload.
//
// REQUIRES: v.Type() == IntType.
func (v Value) Int(at ast.Node) int64 {
	if v.typ != IntType {
		panic(v.wrongTypeError(at, "int"))
	}
	return v.i
}

// StrVal extracts the string payload.
//
// REQUIRES: v.Type() == StringType.
func (v Value) StrVal(at ast.Node) string {
	if v.typ != StringType {
		panic(v.wrongTypeError(at, "string"))
	}
	return v.s
}

// Bool extracts the boolean payload.
//
// REQUIRES: v.Type() == BoolType.
func (v Value) Bool(at ast.Node) bool {
	if v.typ != BoolType {
		panic(v.wrongTypeError(at, "bool"))
	}
	return v.b
}

// Struct extracts the struct reference.
//
// REQUIRES: v.Type() == StructType.
func (v Value) Struct(at ast.Node) *StructValue {
	if v.typ != StructType {
		panic(v.wrongTypeError(at, "struct"))
	}
	return v.st
}

// Thunk extracts the thunk payload.
//
// REQUIRES: v.Type() == ThunkType.
func (v Value) Thunk() *Thunk {
	if v.typ != ThunkType {
		panic("value: not a thunk")
	}
	return v.th
}

func (v Value) describe() string {
	switch v.typ {
	case InvalidType:
		return "<invalid>"
	case IntType:
		return fmt.Sprintf("%d", v.i)
	case StringType:
		return fmt.Sprintf("%q", v.s)
	case BoolType:
		return fmt.Sprintf("%v", v.b)
	case NilType:
		return "nil"
	case StructType:
		return v.st.describe()
	case ThunkType:
		return "<thunk>"
	default:
		return "?"
	}
}

// String renders v the way the print() builtin does: booleans as true/false,
// NIL (and typed-NIL structs) as nil, integers in base 10, strings verbatim.
func (v Value) String() string {
	switch v.typ {
	case IntType:
		return fmt.Sprintf("%d", v.i)
	case StringType:
		return v.s
	case BoolType:
		if v.b {
			return "true"
		}
		return "false"
	case NilType:
		return "nil"
	case StructType:
		if v.st.IsNil() {
			return "nil"
		}
		return v.st.debugString()
	case ThunkType:
		return "<unforced thunk>"
	default:
		return "<invalid>"
	}
}

// valuesIdenticalPrimitive compares two same-tag primitive values. The
// caller (Interpreter.compareEqual) is responsible for coercion, tag
// agreement, and the NIL-vs-struct special case.
func valuesIdenticalPrimitive(a, b Value) bool {
	switch a.typ {
	case IntType:
		return a.i == b.i
	case StringType:
		return a.s == b.s
	case BoolType:
		return a.b == b.b
	case NilType:
		return true
	default:
		return false
	}
}
