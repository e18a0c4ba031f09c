package interp

import (
	"context"
	"io"
	"strconv"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/symbol"
)

// registerBuiltins installs print, inputi, and inputs into the global
// function scope. print is variadic; inputi/inputs are registered
// twice each, at arity 0 and arity 1, since Brewin dispatches built-ins on
// (name, arity) the same as user functions.
func registerBuiltins(ip *Interpreter) {
	ip.globalFuncs.add(&Func{name: symbol.Intern("print"), variadic: true, builtin: builtinPrint})
	ip.globalFuncs.add(&Func{name: symbol.Intern("inputi"), params: nil, builtin: builtinInputi})
	ip.globalFuncs.add(&Func{name: symbol.Intern("inputi"), params: []Param{{}}, builtin: builtinInputi})
	ip.globalFuncs.add(&Func{name: symbol.Intern("inputs"), params: nil, builtin: builtinInputs})
	ip.globalFuncs.add(&Func{name: symbol.Intern("inputs"), params: []Param{{}}, builtin: builtinInputs})
}

// builtinPrint concatenates the String() rendering of every argument with no
// separator and writes the result as a single line. Called with zero
// arguments, it writes an empty line.
func builtinPrint(ctx context.Context, at ast.Node, ip *Interpreter, args []Value) Value {
	var line string
	for _, a := range args {
		line += a.String()
	}
	ip.io.WriteLine(line)
	return Nil
}

func builtinPrompt(ip *Interpreter, args []Value) {
	if len(args) == 1 {
		ip.io.WriteLine(args[0].String())
	}
}

// builtinInputi reads one line, writing the optional prompt argument first,
// and parses it as a signed integer. An unparsable line is a TYPE error.
func builtinInputi(ctx context.Context, at ast.Node, ip *Interpreter, args []Value) Value {
	builtinPrompt(ip, args)
	line, err := ip.io.ReadLine()
	if err != nil && err != io.EOF {
		panic(typeErrorf(at, "inputi: %v", err))
	}
	n, perr := strconv.ParseInt(line, 10, 64)
	if perr != nil {
		panic(typeErrorf(at, "inputi: %q is not a valid integer", line))
	}
	return NewInt(n)
}

// builtinInputs reads one line, writing the optional prompt argument first,
// and returns it verbatim.
func builtinInputs(ctx context.Context, at ast.Node, ip *Interpreter, args []Value) Value {
	builtinPrompt(ip, args)
	line, err := ip.io.ReadLine()
	if err != nil && err != io.EOF {
		panic(typeErrorf(at, "inputs: %v", err))
	}
	return NewString(line)
}
