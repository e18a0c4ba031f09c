package interp

import (
	"strings"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/symbol"
)

// cell is a single variable binding: a current value plus, in v3, a declared
// type. The held value either matches the declared type or is a typed-NIL
// appropriate for that declared type; coercion is applied before type-check
// on assignment.
type cell struct {
	value        Value
	declaredType *TypeDef // nil when the interpreter version carries no types (v1/v2)
}

// VariableScope is a mapping from names to variable cells, with a parent
// pointer forming a chain, one node per lexical block (function frame,
// if-body, for-body), so that nested if/for bodies get their own scope.
type VariableScope struct {
	parent *VariableScope
	cells  map[symbol.ID]*cell
}

func newVariableScope(parent *VariableScope) *VariableScope {
	return &VariableScope{parent: parent, cells: map[symbol.ID]*cell{}}
}

// declare adds a new cell in this scope. It fails NAME if name is already
// declared in *this* scope (shadowing an ancestor's declaration is fine).
func (s *VariableScope) declare(at ast.Node, name symbol.ID, declaredType *TypeDef, reg *TypeRegistry) {
	if s.exists(name, false) {
		panic(nameErrorf(at, "variable %q already declared in this scope", name.Str()))
	}
	var def Value
	if declaredType != nil {
		def = reg.defaultValue(declaredType)
	} else {
		def = Nil
	}
	s.cells[name] = &cell{value: def, declaredType: declaredType}
}

// declareWithDefault is used internally (e.g. struct field initialization)
// where the caller has already computed the default value and there is no
// possibility of a duplicate-name conflict.
func (s *VariableScope) declareWithDefault(name symbol.ID, declaredType *TypeDef, def Value) {
	s.cells[name] = &cell{value: def, declaredType: declaredType}
}

// findCell climbs the chain looking for the first scope that declares name.
func (s *VariableScope) findCell(name symbol.ID) *cell {
	for scope := s; scope != nil; scope = scope.parent {
		if c, ok := scope.cells[name]; ok {
			return c
		}
	}
	return nil
}

// assign climbs to the first scope declaring name and stores value there,
// applying v3 coercion then type-check against the cell's declared type
// first. Fails NAME if nowhere declared.
//
// A v4 thunk is stored unchecked: coercion and the type-check against the
// cell's declared type can't run until the thunk is forced, since only then
// is there an actual value to check; forceCell applies both at that point.
func (s *VariableScope) assign(at ast.Node, name symbol.ID, value Value) {
	c := s.findCell(name)
	if c == nil {
		panic(nameErrorf(at, "assignment to undeclared variable %q", name.Str()))
	}
	assignCell(at, c, value)
}

func assignCell(at ast.Node, c *cell, value Value) {
	if c.declaredType != nil && value.Type() != ThunkType {
		value = conform(at, value, c.declaredType)
	}
	c.value = value
}

// lookup returns the cell bound to name, without forcing thunks;
// forcing is the expression evaluator's job (exec.go), since only it knows
// the containing cell to memoize into.
func (s *VariableScope) lookup(at ast.Node, name symbol.ID) *cell {
	c := s.findCell(name)
	if c == nil {
		panic(nameErrorf(at, "undeclared variable %q", name.Str()))
	}
	return c
}

// exists reports whether name is declared, optionally searching ancestors.
func (s *VariableScope) exists(name symbol.ID, recursive bool) bool {
	if recursive {
		return s.findCell(name) != nil
	}
	_, ok := s.cells[name]
	return ok
}

// resolvePath resolves a (possibly dotted, v3-only) name to the cell that
// ultimately holds the value: "a.b.c" finds "a" in the chain, then descends
// into each struct's field scope. Dereferencing a typed-NIL struct raises
// FAULT. force resolves an intermediate thunk to the struct it names and
// memoizes the result into the cell that held it; it is supplied by the
// caller (exec.go) since only the evaluator knows how to run an expression
// node against a captured scope.
func (s *VariableScope) resolvePath(at ast.Node, dotted string, force func(ast.Node, *cell) Value) *cell {
	parts := strings.Split(dotted, ".")
	c := s.lookup(at, symbol.Intern(parts[0]))
	for _, part := range parts[1:] {
		v := force(at, c)
		st := v.Struct(at)
		if st.IsNil() {
			panic(faultErrorf(at, "field %q accessed on nil struct %q", part, st.TypeName().Str()))
		}
		fieldSym := symbol.Intern(part)
		next, ok := st.fields.cells[fieldSym]
		if !ok {
			panic(nameErrorf(at, "struct %q has no field %q", st.TypeName().Str(), part))
		}
		c = next
	}
	return c
}

// assignPath stores value at the variable or dotted field path named by
// dotted. A plain name goes through assign (climbing the scope chain); a
// dotted v3 path resolves to the target field cell and applies the same
// coerce-then-typecheck sequence against that cell's declared type.
func (s *VariableScope) assignPath(at ast.Node, dotted string, value Value, force func(ast.Node, *cell) Value) {
	if !strings.Contains(dotted, ".") {
		s.assign(at, symbol.Intern(dotted), value)
		return
	}
	c := s.resolvePath(at, dotted, force)
	assignCell(at, c, value)
}

// clone performs a deep copy of the *entire* scope chain rooted at s, used
// by v4 thunk creation to snapshot the caller's environment at the moment of
// assignment, so that later mutations to those names do not affect an
// already-captured thunk.
func (s *VariableScope) clone() *VariableScope {
	if s == nil {
		return nil
	}
	n := &VariableScope{
		parent: s.parent.clone(),
		cells:  make(map[symbol.ID]*cell, len(s.cells)),
	}
	for k, c := range s.cells {
		copied := *c
		n.cells[k] = &copied
	}
	return n
}
