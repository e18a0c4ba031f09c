package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brewin-lang/brewin/ast"
)

func TestDivisionTruncatesTowardZero(t *testing.T) {
	body := []ast.Node{
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindDiv, ast.Unary(ast.KindNeg, ast.IntLit(7)), ast.IntLit(2)),
		}),
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindDiv, ast.IntLit(7), ast.IntLit(2)),
		}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	io, err := runProgram(t, V1, root)
	require.NoError(t, err)
	require.Equal(t, []string{"-3", "3"}, io.Lines)
}

func TestComparisonRequiresInts(t *testing.T) {
	body := []ast.Node{
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindLt, ast.StringLit("a"), ast.StringLit("b")),
		}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	_, err := runProgram(t, V1, root)
	require.Error(t, err)
	require.Equal(t, Type, err.(*Error).Kind)
}

func TestUnaryNegRequiresInt(t *testing.T) {
	body := []ast.Node{
		ast.FcallStatement("print", []ast.Node{ast.Unary(ast.KindNeg, ast.BoolLit(true))}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	_, err := runProgram(t, V1, root)
	require.Error(t, err)
	require.Equal(t, Type, err.(*Error).Kind)
}

// TestV3LogicalCoercesInts: v3 applies the int->bool rule to the operands of
// && / || and unary !, so integer operands are legal there.
func TestV3LogicalCoercesInts(t *testing.T) {
	body := []ast.Node{
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindAnd, ast.IntLit(1), ast.BoolLit(true)),
		}),
		ast.FcallStatement("print", []ast.Node{ast.Unary(ast.KindNot, ast.IntLit(0))}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "void")}, nil)

	io, err := runProgram(t, V3, root)
	require.NoError(t, err)
	require.Equal(t, []string{"true", "true"}, io.Lines)
}

// TestV4LogicalRequiresBool: v4 dropped the coercion machinery, so an int
// operand to && is a TYPE error rather than a truthiness test.
func TestV4LogicalRequiresBool(t *testing.T) {
	body := []ast.Node{
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindAnd, ast.IntLit(1), ast.BoolLit(true)),
		}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	_, err := runProgram(t, V4, root)
	require.Error(t, err)
	require.Equal(t, Type, err.(*Error).Kind)
}

// TestIfConditionCoercionByVersion: an integer if-condition coerces in v3
// only; v4 (like v1/v2) demands the condition already be bool.
func TestIfConditionCoercionByVersion(t *testing.T) {
	build := func(retType string) ast.Node {
		body := []ast.Node{
			ast.If(ast.IntLit(1), []ast.Node{
				ast.FcallStatement("print", []ast.Node{ast.StringLit("ran")}),
			}, nil),
		}
		return ast.Program([]ast.Node{mainFunc(body, retType)}, nil)
	}

	io, err := runProgram(t, V3, build("void"))
	require.NoError(t, err)
	require.Equal(t, []string{"ran"}, io.Lines)

	_, err = runProgram(t, V4, build(""))
	require.Error(t, err)
	require.Equal(t, Type, err.(*Error).Kind)
}

// TestLogicalOperatorsAreStrict: && always evaluates both operands, so the
// right-hand side's side effect fires even when the left side is false.
func TestLogicalOperatorsAreStrict(t *testing.T) {
	rhs := ast.Func("rhs", nil, []ast.Node{
		ast.FcallStatement("print", []ast.Node{ast.StringLit("rhs ran")}),
		ast.Return(ast.BoolLit(true)),
	}, "")
	body := []ast.Node{
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindAnd, ast.BoolLit(false), ast.Fcall("rhs", nil)),
		}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, ""), rhs}, nil)

	io, err := runProgram(t, V1, root)
	require.NoError(t, err)
	require.Equal(t, []string{"rhs ran", "false"}, io.Lines)
}

// TestV3EqCoercesBoolAgainstInt: with exactly one bool side, the int side
// coerces before comparing.
func TestV3EqCoercesBoolAgainstInt(t *testing.T) {
	body := []ast.Node{
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindEq, ast.BoolLit(true), ast.IntLit(5)),
		}),
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindNeq, ast.BoolLit(false), ast.IntLit(0)),
		}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "void")}, nil)

	io, err := runProgram(t, V3, root)
	require.NoError(t, err)
	require.Equal(t, []string{"true", "false"}, io.Lines)
}

// TestV4EqDoesNotCoerceBoolAgainstInt: the one-side-is-bool coercion inside
// == is a v3 rule; in v4 an int/bool pair is a plain tag mismatch and
// compares unequal.
func TestV4EqDoesNotCoerceBoolAgainstInt(t *testing.T) {
	body := []ast.Node{
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindEq, ast.IntLit(5), ast.BoolLit(true)),
		}),
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindNeq, ast.IntLit(0), ast.BoolLit(false)),
		}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	io, err := runProgram(t, V4, root)
	require.NoError(t, err)
	require.Equal(t, []string{"false", "true"}, io.Lines)
}

// TestV3StructCompareAgainstPrimitiveIsTypeError: a struct may only be
// compared against NIL or a struct of the same declared type.
func TestV3StructCompareAgainstPrimitiveIsTypeError(t *testing.T) {
	point := ast.Struct("Point", []ast.Node{ast.Field("n", "int")})
	body := []ast.Node{
		ast.VarDef("p", "Point"),
		ast.FcallStatement("print", []ast.Node{
			ast.Binary(ast.KindEq, ast.Var("p"), ast.IntLit(0)),
		}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "void")}, []ast.Node{point})

	_, err := runProgram(t, V3, root)
	require.Error(t, err)
	require.Equal(t, Type, err.(*Error).Kind)
}
