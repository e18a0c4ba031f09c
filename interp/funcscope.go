package interp

import (
	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/symbol"
)

// variadicArity is the sentinel arity used by variadic built-ins (print).
// It lives in the function-scope lookup key itself, since Brewin dispatches
// on (name, arity) rather than on a richer formal-argument list.
const variadicArity = -1

type funcKey struct {
	name  symbol.ID
	arity int
}

// FunctionScope is a mapping from (name, arity) pairs to callables, with a
// parent pointer. Lookup tries exact arity first, then the variadic
// sentinel, in the same scope, before recursing to the parent, so a
// function call site resolves to the innermost-declared function with a
// matching signature.
type FunctionScope struct {
	parent *FunctionScope
	funcs  map[funcKey]*Func
}

func newFunctionScope(parent *FunctionScope) *FunctionScope {
	return &FunctionScope{parent: parent, funcs: map[funcKey]*Func{}}
}

// add registers a callable under (name, arity). A variadic callable is
// registered under variadicArity.
func (fs *FunctionScope) add(f *Func) {
	arity := len(f.params)
	if f.variadic {
		arity = variadicArity
	}
	fs.funcs[funcKey{f.name, arity}] = f
}

// lookup resolves (name, arity): exact match, else variadic match in the same
// scope, else recurse to parent. Fails NAME if no candidate exists anywhere
// in the chain; the error names the requested name and arity only.
func (fs *FunctionScope) lookup(at ast.Node, name symbol.ID, arity int) *Func {
	for scope := fs; scope != nil; scope = scope.parent {
		if f, ok := scope.funcs[funcKey{name, arity}]; ok {
			return f
		}
		if f, ok := scope.funcs[funcKey{name, variadicArity}]; ok {
			return f
		}
	}
	panic(nameErrorf(at, "undeclared function %q/%d", name.Str(), arity))
}
