package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brewin-lang/brewin/ast"
)

// TestAssignmentWritesThroughToOuterScope: a block that does not redeclare a
// name assigns into the innermost enclosing declaration, so the write is
// visible after the block exits.
func TestAssignmentWritesThroughToOuterScope(t *testing.T) {
	body := []ast.Node{
		ast.VarDef("x", ""),
		ast.Assign("x", ast.IntLit(1)),
		ast.If(ast.BoolLit(true), []ast.Node{
			ast.Assign("x", ast.IntLit(5)),
		}, nil),
		ast.FcallStatement("print", []ast.Node{ast.Var("x")}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	io, err := runProgram(t, V1, root)
	require.NoError(t, err)
	require.Equal(t, []string{"5"}, io.Lines)
}

func TestDuplicateDeclarationInSameScopeIsNameError(t *testing.T) {
	body := []ast.Node{
		ast.VarDef("x", ""),
		ast.VarDef("x", ""),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	_, err := runProgram(t, V1, root)
	require.Error(t, err)
	require.Equal(t, Name, err.(*Error).Kind)
}

func TestAssignToUndeclaredIsNameError(t *testing.T) {
	body := []ast.Node{
		ast.Assign("ghost", ast.IntLit(1)),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	_, err := runProgram(t, V1, root)
	require.Error(t, err)
	require.Equal(t, Name, err.(*Error).Kind)
}

// TestForBodyScopeIsFreshPerIteration: a name declared in the loop body can
// be redeclared on the next iteration without a duplicate-name error.
func TestForBodyScopeIsFreshPerIteration(t *testing.T) {
	body := []ast.Node{
		ast.VarDef("i", ""),
		ast.For(
			ast.Assign("i", ast.IntLit(0)),
			ast.Binary(ast.KindLt, ast.Var("i"), ast.IntLit(3)),
			ast.Assign("i", ast.Binary(ast.KindAdd, ast.Var("i"), ast.IntLit(1))),
			[]ast.Node{
				ast.VarDef("tmp", ""),
				ast.Assign("tmp", ast.Var("i")),
				ast.FcallStatement("print", []ast.Node{ast.Var("tmp")}),
			},
		),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	io, err := runProgram(t, V1, root)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, io.Lines)
}

// TestFunctionLocalsAreLexical: a callee does not see the caller's locals:
// its scope chains to the globals, so reading the caller's name is NAME.
func TestFunctionLocalsAreLexical(t *testing.T) {
	peek := ast.Func("peek", nil, []ast.Node{
		ast.FcallStatement("print", []ast.Node{ast.Var("callerLocal")}),
	}, "")
	body := []ast.Node{
		ast.VarDef("callerLocal", ""),
		ast.Assign("callerLocal", ast.IntLit(7)),
		ast.FcallStatement("peek", nil),
	}
	root := ast.Program([]ast.Node{mainFunc(body, ""), peek}, nil)

	_, err := runProgram(t, V1, root)
	require.Error(t, err)
	require.Equal(t, Name, err.(*Error).Kind)
}

// TestStructReferenceSemantics: passing a struct to a function shares the
// instance, so a field write in the callee is visible to the caller.
func TestStructReferenceSemantics(t *testing.T) {
	point := ast.Struct("Point", []ast.Node{ast.Field("n", "int")})
	bump := ast.Func("bump", []ast.Node{ast.Arg("p", "Point")}, []ast.Node{
		ast.Assign("p.n", ast.IntLit(41)),
	}, "void")
	body := []ast.Node{
		ast.VarDef("q", "Point"),
		ast.Assign("q", ast.New("Point")),
		ast.FcallStatement("bump", []ast.Node{ast.Var("q")}),
		ast.FcallStatement("print", []ast.Node{ast.Var("q.n")}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "void"), bump}, []ast.Node{point})

	io, err := runProgram(t, V3, root)
	require.NoError(t, err)
	require.Equal(t, []string{"41"}, io.Lines)
}

// TestV3AssignNilToStructVariable: assigning the nil literal to a
// struct-typed variable reverts it to a typed-NIL of its declared type:
// equal to nil again, and FAULTing on field access.
func TestV3AssignNilToStructVariable(t *testing.T) {
	point := ast.Struct("Point", []ast.Node{ast.Field("n", "int")})
	body := []ast.Node{
		ast.VarDef("p", "Point"),
		ast.Assign("p", ast.New("Point")),
		ast.Assign("p", ast.NilLit()),
		ast.FcallStatement("print", []ast.Node{ast.Binary(ast.KindEq, ast.Var("p"), ast.NilLit())}),
		ast.FcallStatement("print", []ast.Node{ast.Var("p.n")}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "void")}, []ast.Node{point})

	io, err := runProgram(t, V3, root)
	require.Error(t, err)
	require.Equal(t, Fault, err.(*Error).Kind)
	require.Equal(t, []string{"true"}, io.Lines)
}

// TestErrorReportedThroughFacade: a fatal error surfaces both as the Run
// return value and through HostIO.ReportError.
func TestErrorReportedThroughFacade(t *testing.T) {
	body := []ast.Node{
		ast.FcallStatement("print", []ast.Node{ast.Var("ghost")}),
	}
	root := ast.Program([]ast.Node{mainFunc(body, "")}, nil)

	io, err := runProgram(t, V1, root)
	require.Error(t, err)
	require.Len(t, io.Errors, 1)
	require.Contains(t, io.Errors[0], "NAME")
}

func TestMissingMainIsNameError(t *testing.T) {
	other := ast.Func("notMain", nil, nil, "")
	root := ast.Program([]ast.Node{other}, nil)

	_, err := runProgram(t, V1, root)
	require.Error(t, err)
	require.Equal(t, Name, err.(*Error).Kind)
}
