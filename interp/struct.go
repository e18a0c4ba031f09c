package interp

import (
	"fmt"
	"strings"

	"github.com/brewin-lang/brewin/symbol"
)

// StructValue is a v3 record instance, backed by a VariableScope so field
// cells get the same declare/assign/coerce discipline as ordinary
// variables.
//
// A StructValue is either:
//   - live: owns a VariableScope whose cells are pre-declared from the
//     schema, each initialized to the default for its declared type; or
//   - typed-NIL: carries a struct-type tag but no field storage. Any field
//     access on a typed-NIL struct raises FAULT.
//
// Struct references have reference semantics: assignment and argument
// passing share the same *StructValue.
type StructValue struct {
	typeName symbol.ID
	def      *TypeDef       // schema; nil iff typed-NIL
	fields   *VariableScope // nil iff typed-NIL
}

// TypeName returns the struct's declared type name.
func (s *StructValue) TypeName() symbol.ID { return s.typeName }

// IsNil reports whether s is a typed-NIL reference (no field storage).
func (s *StructValue) IsNil() bool { return s.fields == nil }

// newTypedNilStruct builds a typed-NIL reference for the given struct type.
func newTypedNilStruct(typeName symbol.ID) *StructValue {
	return &StructValue{typeName: typeName}
}

// newLiveStruct allocates a live instance: an empty field scope with each
// field from the schema declared at its declared type (and thereby
// initialized to that type's default), per `new T` semantics.
func newLiveStruct(reg *TypeRegistry, def *TypeDef) *StructValue {
	scope := newVariableScope(nil)
	for _, f := range def.Fields {
		fieldType, _ := reg.Lookup(f.VarType)
		scope.declareWithDefault(f.Name, fieldType, reg.defaultValue(fieldType))
	}
	return &StructValue{typeName: def.Name, def: def, fields: scope}
}

func (s *StructValue) describe() string {
	if s.IsNil() {
		return fmt.Sprintf("nil(%s)", s.typeName.Str())
	}
	return fmt.Sprintf("<struct %s>", s.typeName.Str())
}

// debugString produces a stable debug form for printing a live struct,
// listing fields in schema declaration order. The exact text is not part of
// the language's observable contract.
func (s *StructValue) debugString() string {
	parts := make([]string, len(s.def.Fields))
	for i, f := range s.def.Fields {
		parts[i] = f.Name.Str() + ":" + s.fields.cells[f.Name].value.String()
	}
	return s.typeName.Str() + "{" + strings.Join(parts, ", ") + "}"
}

// structsEqual implements the v3 struct-equality rule: two references
// compare equal iff both are typed-NIL of compatible struct types and both
// have empty field storage; otherwise equality between live structs is
// identity. Mismatched struct types are rejected by the caller (operators.go)
// before this is reached.
func structsEqual(a, b *StructValue) bool {
	if a.IsNil() && b.IsNil() {
		return true
	}
	return a == b
}
