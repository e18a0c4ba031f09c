package interp

import "github.com/brewin-lang/brewin/ast"

// requireBool coerces v to bool when allowCoerce is set (the v3 int->bool
// rule applies at every boolean-required position: if/for conditions,
// && / ||, unary !), then asserts it is a bool. Every version that does not
// allow coercion at a given position demands the operand already be bool.
func requireBool(at ast.Node, v Value, allowCoerce bool) bool {
	if allowCoerce {
		v = coerce(v, &TypeDef{Kind: BoolType})
	}
	return v.Bool(at)
}

// ifForCoerce reports whether if/for conditions may coerce int to bool at
// this version. Only v3 has the coercion machinery at all; v4 dropped the
// type system along with it and asserts the condition is already bool, the
// same as its treatment of && / || / ! operands.
func (ip *Interpreter) ifForCoerce() bool { return ip.version == V3 }

// logicalCoerce reports whether && / || may coerce their operands. v3
// coerces; v4 explicitly reverts to asserting the operands are already bool.
func (ip *Interpreter) logicalCoerce() bool { return ip.version == V3 }

// notCoerce mirrors logicalCoerce for unary !.
func (ip *Interpreter) notCoerce() bool { return ip.version == V3 }

// applyBinary implements +, -, *, /, the comparisons, ==/!=, and &&/||. a and
// b have already been evaluated (and, for a v4 operand that was itself a bare
// variable read, forced) left-to-right with no short-circuiting; Brewin's
// &&/|| always evaluate both sides.
func (ip *Interpreter) applyBinary(at ast.Node, op ast.Kind, a, b Value) Value {
	switch op {
	case ast.KindAdd:
		if a.Type() == IntType && b.Type() == IntType {
			return NewInt(a.Int(at) + b.Int(at))
		}
		if ip.version != V2 && a.Type() == StringType && b.Type() == StringType {
			return NewString(a.StrVal(at) + b.StrVal(at))
		}
		panic(typeErrorf(at, "+ requires two ints%s, found %s and %s", addStringHint(ip.version), a.Type(), b.Type()))
	case ast.KindSub:
		return NewInt(a.Int(at) - b.Int(at))
	case ast.KindMul:
		return NewInt(a.Int(at) * b.Int(at))
	case ast.KindDiv:
		denom := b.Int(at)
		if denom == 0 {
			panic(typeErrorf(at, "division by zero"))
		}
		return NewInt(a.Int(at) / denom)
	case ast.KindLt:
		return NewBool(a.Int(at) < b.Int(at))
	case ast.KindLeq:
		return NewBool(a.Int(at) <= b.Int(at))
	case ast.KindGt:
		return NewBool(a.Int(at) > b.Int(at))
	case ast.KindGeq:
		return NewBool(a.Int(at) >= b.Int(at))
	case ast.KindEq:
		return NewBool(ip.compareEqual(at, a, b))
	case ast.KindNeq:
		return NewBool(!ip.compareEqual(at, a, b))
	case ast.KindAnd:
		return NewBool(requireBool(at, a, ip.logicalCoerce()) && requireBool(at, b, ip.logicalCoerce()))
	case ast.KindOr:
		return NewBool(requireBool(at, a, ip.logicalCoerce()) || requireBool(at, b, ip.logicalCoerce()))
	default:
		panic(newError(Internal, at, "unhandled binary operator %q", op))
	}
}

func addStringHint(v Version) string {
	if v == V2 {
		return ""
	}
	return " (or two strings)"
}

// applyUnary implements unary - and !.
func (ip *Interpreter) applyUnary(at ast.Node, op ast.Kind, v Value) Value {
	switch op {
	case ast.KindNeg:
		return NewInt(-v.Int(at))
	case ast.KindNot:
		return NewBool(!requireBool(at, v, ip.notCoerce()))
	default:
		panic(newError(Internal, at, "unhandled unary operator %q", op))
	}
}

// compareEqual implements == across the version family:
//   - in v3, if exactly one side is bool, the other is coerced from int if
//     possible (no other version has the coercion machinery);
//   - if either side is a struct, the other must be NIL or the same struct
//     type (NIL-vs-struct compares on emptiness);
//   - otherwise both sides must share a tag, v4 answering a mismatch with
//     "unequal" where the earlier versions raise TYPE.
func (ip *Interpreter) compareEqual(at ast.Node, a, b Value) bool {
	if ip.version == V3 {
		if a.Type() == BoolType && b.Type() == IntType {
			b = NewBool(b.Int(at) != 0)
		} else if b.Type() == BoolType && a.Type() == IntType {
			a = NewBool(a.Int(at) != 0)
		}
	}

	if a.Type() == StructType || b.Type() == StructType {
		return ip.compareStructEqual(at, a, b)
	}

	if a.Type() != b.Type() {
		if ip.version == V4 {
			return false
		}
		panic(typeErrorf(at, "cannot compare %s and %s", a.Type(), b.Type()))
	}
	return valuesIdenticalPrimitive(a, b)
}

func (ip *Interpreter) compareStructEqual(at ast.Node, a, b Value) bool {
	var sa, sb *StructValue
	if a.Type() == StructType {
		sa = a.Struct(at)
	}
	if b.Type() == StructType {
		sb = b.Struct(at)
	}

	switch {
	case sa != nil && sb != nil:
		if sa.TypeName() != sb.TypeName() {
			if ip.version == V4 {
				return false
			}
			panic(typeErrorf(at, "cannot compare struct %q and struct %q", sa.TypeName().Str(), sb.TypeName().Str()))
		}
		return structsEqual(sa, sb)
	case sa != nil && b.Type() == NilType:
		return sa.IsNil()
	case sb != nil && a.Type() == NilType:
		return sb.IsNil()
	default:
		if ip.version == V4 {
			return false
		}
		panic(typeErrorf(at, "cannot compare struct and %s", otherStructCompareType(a, b)))
	}
}

func otherStructCompareType(a, b Value) ValueType {
	if a.Type() == StructType {
		return b.Type()
	}
	return a.Type()
}
