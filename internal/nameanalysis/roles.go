package nameanalysis

import (
	"github.com/hassan/harambe/internal/ast"
	"github.com/hassan/harambe/internal/symtab"
)

// This file holds the per-occurrence role functions the analyzer
// dispatches to. Which role applies to a given Id is decided by its
// parent node, never by the Id itself — an Id is a plain data carrier,
// not an actor with a "kind" of its own.

// analyzeTypedDecl declares a variable or formal of the given type:
// decl_primitive for int/bool/void, decl_struct_var for a struct type.
func (a *Analyzer) analyzeTypedDecl(id *ast.Id, t ast.Type) {
	switch t.Kind {
	case ast.KindVoid:
		a.declPrimitive(id, "void")
	case ast.KindInt:
		a.declPrimitive(id, "int")
	case ast.KindBool:
		a.declPrimitive(id, "bool")
	case ast.KindStruct:
		fields, ok := a.useStructType(t.StructId)
		if !ok {
			return
		}
		a.declStructVar(id, fields, t.StructId.Lexeme)
	}
}

// declPrimitive declares a variable/formal of a primitive type (or
// rejects a void one). void never gets inserted, even though its
// diagnostic looks like the usual duplicate check — a void decl is
// simply invalid, not merely unchecked for duplicates.
func (a *Analyzer) declPrimitive(id *ast.Id, typeName string) {
	if typeName == "void" {
		a.report(id, "Non-function declared void")
		return
	}
	if _, exists := a.table.LookupLocal(id.Lexeme); exists {
		a.report(id, "Multiply declared identifier")
		return
	}
	sym := &symtab.Variable{VarName: id.Lexeme, TypeName: typeName}
	a.declare(id, sym)
}

// declStructVar declares a variable of a previously-resolved struct
// type. fields is the struct's own field map, shared by reference.
func (a *Analyzer) declStructVar(id *ast.Id, fields symtab.FieldMap, typeName string) {
	if _, exists := a.table.LookupLocal(id.Lexeme); exists {
		a.report(id, "Multiply declared identifier")
		return
	}
	sym := &symtab.Variable{VarName: id.Lexeme, TypeName: typeName, Fields: fields}
	a.declare(id, sym)
}

// declFn declares a function binding in the enclosing scope.
func (a *Analyzer) declFn(id *ast.Id, formalTypes []string, returnType string) {
	if _, exists := a.table.LookupLocal(id.Lexeme); exists {
		a.report(id, "Multiply declared identifier")
		return
	}
	sym := &symtab.Function{FnName: id.Lexeme, ReturnType: returnType, FormalTypes: formalTypes}
	a.declare(id, sym)
}

// declStruct declares a struct type binding in the enclosing scope.
func (a *Analyzer) declStruct(id *ast.Id, fields symtab.FieldMap) {
	if _, exists := a.table.LookupLocal(id.Lexeme); exists {
		a.report(id, "Multiply declared identifier")
		return
	}
	sym := &symtab.StructType{TypeName: id.Lexeme, Fields: fields}
	a.declare(id, sym)
}

func (a *Analyzer) declare(id *ast.Id, sym symtab.Symbol) {
	if err := a.table.Declare(id.Lexeme, sym); err != nil {
		a.log.Errorw("name analysis declare invariant violated", "error", err, "name", id.Lexeme)
		return
	}
	a.log.Debugw("declare", "symbol", sym.String())
}

// use resolves a plain identifier occurrence: a read of a variable, a
// reference to a function or struct name used as a bare value, etc.
func (a *Analyzer) use(id *ast.Id) {
	sym, ok := a.table.LookupGlobal(id.Lexeme)
	if !ok {
		a.report(id, "Undeclared identifier")
		return
	}
	a.log.Debugw("lookup", "name", id.Lexeme, "resolved", sym.String())
	id.Symbol = sym
	id.ResolvedType = typeNameOf(sym)
	if v, isVar := sym.(*symtab.Variable); isVar && !v.Fields.IsAbsent() {
		id.Fields = v.Fields
	}
}

// useStructType resolves the struct-name position of a `struct T x;`
// declaration. Absent → Invalid name of struct type, and the caller
// must decline to declare the variable (no cascading Undeclared).
func (a *Analyzer) useStructType(id *ast.Id) (symtab.FieldMap, bool) {
	sym, ok := a.table.LookupGlobal(id.Lexeme)
	if !ok {
		a.report(id, "Invalid name of struct type")
		return symtab.FieldMap{}, false
	}
	st, isStruct := sym.(*symtab.StructType)
	if !isStruct {
		a.report(id, "Invalid name of struct type")
		return symtab.FieldMap{}, false
	}
	id.Symbol = sym
	id.ResolvedType = st.TypeName
	id.Fields = st.Fields
	return st.Fields, true
}

// useLhsOfDot resolves the left-hand side of a dot access that is a
// plain Id (not itself a nested dot). A struct-typed variable carries
// its struct's field map from declaration time; anything else — an
// undeclared name or a variable of non-struct type — fails here.
func (a *Analyzer) useLhsOfDot(id *ast.Id) (symtab.FieldMap, bool) {
	sym, ok := a.table.LookupGlobal(id.Lexeme)
	if !ok {
		a.report(id, "Undeclared identifier")
		return symtab.FieldMap{}, false
	}
	id.Symbol = sym
	id.ResolvedType = typeNameOf(sym)
	v, isVar := sym.(*symtab.Variable)
	if !isVar || v.Fields.IsAbsent() {
		a.report(id, "Dot-access of non-struct type")
		return symtab.FieldMap{}, false
	}
	id.Fields = v.Fields
	return v.Fields, true
}

// useRhsOfDot resolves the field name on the right of a dot, given the
// container's field map already determined by the caller (either from
// useLhsOfDot for a plain-Id LHS, or from the inner dot's own resolved
// fields for a chained access). absentMessage is which diagnostic to
// use if containerFields itself turns out absent — the two call sites
// disagree on that message per the source's own behavior.
func (a *Analyzer) useRhsOfDot(fieldId *ast.Id, containerFields symtab.FieldMap, absentMessage string) {
	if containerFields.IsAbsent() {
		a.report(fieldId, absentMessage)
		return
	}
	sym, ok := containerFields.Get(fieldId.Lexeme)
	if !ok {
		a.report(fieldId, "Invalid struct field name")
		return
	}
	fieldId.Symbol = sym
	fieldId.ResolvedType = typeNameOf(sym)
	if v, isVar := sym.(*symtab.Variable); isVar && !v.Fields.IsAbsent() {
		fieldId.Fields = v.Fields
	}
}

// useFnCall resolves a call target. No arity or argument-type checking
// happens here — that belongs to a later phase this front end doesn't
// implement. When the resolved symbol isn't actually a Function (a
// malformed call to a non-function name), CallFormals stays nil and
// the unparser renders the call without an argument list, per the
// call-site annotation rule.
func (a *Analyzer) useFnCall(id *ast.Id) {
	sym, ok := a.table.LookupGlobal(id.Lexeme)
	if !ok {
		a.report(id, "Undeclared identifier")
		return
	}
	id.Symbol = sym
	id.ResolvedType = typeNameOf(sym)
	id.IsCallTarget = true
	if fn, isFn := sym.(*symtab.Function); isFn {
		id.CallFormals = fn.FormalTypes
		id.CallReturn = fn.ReturnType
	} else {
		id.CallReturn = typeNameOf(sym)
	}
}
