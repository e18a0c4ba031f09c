package interp

import (
	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/symbol"
)

// primitive type names, pre-interned so the registry can compare symbol.ID
// values instead of strings.
var (
	intTypeName    = symbol.Intern("int")
	stringTypeName = symbol.Intern("string")
	boolTypeName   = symbol.Intern("bool")
)

// FieldDef is one entry in a struct schema: a field name paired with its
// declared type name.
type FieldDef struct {
	Name    symbol.ID
	VarType symbol.ID
}

// TypeDef describes one entry in the v3 type registry: either one of the
// three primitives or a user struct schema.
type TypeDef struct {
	Name   symbol.ID
	Kind   ValueType // IntType, StringType, BoolType, or StructType
	Fields []FieldDef
}

// TypeRegistry is the v3 mapping from type name to TypeDef. It starts out
// populated with the three primitives.
type TypeRegistry struct {
	types map[symbol.ID]*TypeDef
}

// NewTypeRegistry builds a registry pre-populated with int/string/bool.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{types: map[symbol.ID]*TypeDef{}}
	r.types[intTypeName] = &TypeDef{Name: intTypeName, Kind: IntType}
	r.types[stringTypeName] = &TypeDef{Name: stringTypeName, Kind: StringType}
	r.types[boolTypeName] = &TypeDef{Name: boolTypeName, Kind: BoolType}
	return r
}

// Lookup resolves a type name, returning false if it is not registered.
func (r *TypeRegistry) Lookup(name symbol.ID) (*TypeDef, bool) {
	t, ok := r.types[name]
	return t, ok
}

// MustLookup resolves a type name at an AST position, raising TYPE if it is
// not registered. Every type named in a field, variable, parameter, or
// return position must already be registered when the name is read.
func (r *TypeRegistry) MustLookup(at ast.Node, name string) *TypeDef {
	sym := symbol.Intern(name)
	t, ok := r.types[sym]
	if !ok {
		panic(typeErrorf(at, "undeclared type %q", name))
	}
	return t
}

// RegisterStruct adds a struct schema. It fails TYPE if the name is already
// defined or any field's declared type is not yet defined; forward
// references across structs are not supported.
func (r *TypeRegistry) RegisterStruct(at ast.Node, name string, fields []FieldDef) {
	sym := symbol.Intern(name)
	if _, ok := r.types[sym]; ok {
		panic(typeErrorf(at, "type %q already defined", name))
	}
	for _, f := range fields {
		if _, ok := r.types[f.VarType]; !ok {
			panic(typeErrorf(at, "struct %q: field %q has undeclared type %q", name, f.Name.Str(), f.VarType.Str()))
		}
	}
	r.types[sym] = &TypeDef{Name: sym, Kind: StructType, Fields: fields}
}

// defaultValue returns the zero value for a declared type: 0 for int, "" for
// string, false for bool, typed-NIL for a struct type.
func (r *TypeRegistry) defaultValue(t *TypeDef) Value {
	switch t.Kind {
	case IntType:
		return NewInt(0)
	case StringType:
		return NewString("")
	case BoolType:
		return NewBool(false)
	case StructType:
		return NewStructValue(newTypedNilStruct(t.Name))
	default:
		panic("types: unreachable type kind")
	}
}

// coerce applies the single narrow int->bool conversion the language
// defines, and is a no-op for every other (source, target) pair. It runs
// before typeCheck at every assignment target and at every boolean-required
// position.
func coerce(v Value, target *TypeDef) Value {
	if target != nil && target.Kind == BoolType && v.Type() == IntType {
		return NewBool(v.i != 0)
	}
	return v
}

// conform makes v fit a declared target type or dies trying: it applies
// coercion, adopts the untyped NIL into a typed-NIL when the target is a
// struct type (so a struct-typed cell never holds the bare NIL marker), and
// then type-checks. Every assignment into a typed cell, every forced thunk
// landing in one, and every typed return value goes through here.
func conform(at ast.Node, v Value, target *TypeDef) Value {
	v = coerce(v, target)
	if target.Kind == StructType && v.Type() == NilType {
		v = NewStructValue(newTypedNilStruct(target.Name))
	}
	typeCheck(at, v, target)
	return v
}

// typeCheck verifies v's runtime tag matches target after coercion. A
// typed-NIL of the same struct name is accepted for a struct-typed target;
// nothing else is.
func typeCheck(at ast.Node, v Value, target *TypeDef) {
	switch target.Kind {
	case StructType:
		if v.Type() != StructType {
			panic(typeErrorf(at, "expected struct %q, found %s", target.Name.Str(), v.Type()))
		}
		if v.st.TypeName() != target.Name {
			panic(typeErrorf(at, "expected struct %q, found struct %q", target.Name.Str(), v.st.TypeName().Str()))
		}
	default:
		if v.Type() != target.Kind {
			panic(typeErrorf(at, "expected %s, found %s", target.Kind, v.Type()))
		}
	}
}
