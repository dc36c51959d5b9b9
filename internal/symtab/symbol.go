// Package symtab implements the scoped symbol table: a stack of
// name->symbol scopes, and the three symbol record variants that live
// inside them.
package symtab

import "fmt"

// FieldMap is an ordered name->symbol mapping, used by struct-typed
// symbols to record their fields in declaration order. The zero value
// is the absent map — a Variable whose type isn't a struct carries a
// zero FieldMap.
//
// FieldMap is handed around by value, but Index and Names are
// reference types, so every copy shares the same underlying map and
// slice: a StructType symbol's fields map and every Variable that
// references that struct all observe the same snapshot, per the
// sharing rule name analysis depends on for struct field resolution.
type FieldMap struct {
	Names []string
	Index map[string]Symbol
}

// NewFieldMap returns an empty, non-absent FieldMap ready to be built
// up with Set.
func NewFieldMap() FieldMap {
	return FieldMap{Index: make(map[string]Symbol)}
}

// IsAbsent reports whether this FieldMap carries no fields at all —
// the zero value, meaning "not a struct".
func (m FieldMap) IsAbsent() bool {
	return m.Index == nil
}

// Set appends name->sym, preserving declaration order. Set must only
// be called while the map is being built (during StructDecl analysis);
// the map is treated as immutable afterward.
func (m *FieldMap) Set(name string, sym Symbol) {
	if _, exists := m.Index[name]; !exists {
		m.Names = append(m.Names, name)
	}
	m.Index[name] = sym
}

// Get looks up a field by name.
func (m FieldMap) Get(name string) (Symbol, bool) {
	if m.Index == nil {
		return nil, false
	}
	sym, ok := m.Index[name]
	return sym, ok
}

// Symbol is the sum type of the three kinds of binding a scope can
// hold. It is sealed to this package's three concrete types — callers
// switch on concrete type, never on a Kind field, so there is no
// variant tag to accidentally mutate after construction.
type Symbol interface {
	Name() string
	String() string
	symbol()
}

// Variable is a binding for a declared variable, formal parameter, or
// struct field of primitive or struct type. TypeName is "int", "bool",
// or a struct name — never "void". Fields is non-absent exactly when
// TypeName names a struct, and is the referenced struct's own fields
// map (shared by reference, not copied).
type Variable struct {
	VarName  string
	TypeName string
	Fields   FieldMap
}

func (v *Variable) Name() string { return v.VarName }
func (*Variable) symbol()        {}

func (v *Variable) String() string {
	return fmt.Sprintf("variable %s: %s", v.VarName, v.TypeName)
}

// Function is a binding for a declared function: its return type and
// the ordered list of its formal parameter types.
type Function struct {
	FnName      string
	ReturnType  string
	FormalTypes []string
}

func (f *Function) Name() string { return f.FnName }
func (*Function) symbol()        {}

func (f *Function) String() string {
	return fmt.Sprintf("function %s(%s): %s", f.FnName, joinTypes(f.FormalTypes), f.ReturnType)
}

func joinTypes(types []string) string {
	out := ""
	for i, t := range types {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}

// StructType is a binding for a declared struct: its ordered field
// map, captured once at struct-declaration time.
type StructType struct {
	TypeName string
	Fields   FieldMap
}

func (s *StructType) Name() string { return s.TypeName }
func (*StructType) symbol()        {}

func (s *StructType) String() string {
	return fmt.Sprintf("struct %s (%d fields)", s.TypeName, len(s.Fields.Names))
}
