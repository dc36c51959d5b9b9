package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMap_AbsentByDefault(t *testing.T) {
	var m FieldMap
	assert.True(t, m.IsAbsent())
	_, ok := m.Get("x")
	assert.False(t, ok)
}

func TestFieldMap_SetPreservesOrder(t *testing.T) {
	m := NewFieldMap()
	assert.False(t, m.IsAbsent())

	m.Set("b", &Variable{VarName: "b", TypeName: "int"})
	m.Set("a", &Variable{VarName: "a", TypeName: "bool"})
	m.Set("c", &Variable{VarName: "c", TypeName: "int"})

	assert.Equal(t, []string{"b", "a", "c"}, m.Names)

	sym, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "bool", sym.(*Variable).TypeName)
}

func TestFieldMap_SharedByReference(t *testing.T) {
	fields := NewFieldMap()
	fields.Set("x", &Variable{VarName: "x", TypeName: "int"})

	structSym := &StructType{TypeName: "Point", Fields: fields}
	varSym := &Variable{VarName: "p", TypeName: "Point", Fields: structSym.Fields}

	fields.Set("y", &Variable{VarName: "y", TypeName: "int"})

	_, ok := varSym.Fields.Get("y")
	assert.True(t, ok, "field added after sharing must be visible through every reference")
}

func TestTable_PushPopBalance(t *testing.T) {
	tab := NewTable()
	assert.Equal(t, 0, tab.Depth())

	tab.PushScope()
	tab.PushScope()
	assert.Equal(t, 2, tab.Depth())

	require.NoError(t, tab.PopScope())
	require.NoError(t, tab.PopScope())
	assert.Equal(t, 0, tab.Depth())
}

func TestTable_PopEmptyStack(t *testing.T) {
	tab := NewTable()
	err := tab.PopScope()
	assert.ErrorIs(t, err, ErrEmptyScopeStack)
}

func TestTable_DeclareEmptyStack(t *testing.T) {
	tab := NewTable()
	err := tab.Declare("x", &Variable{VarName: "x", TypeName: "int"})
	assert.ErrorIs(t, err, ErrEmptyScopeStack)
}

func TestTable_DeclareNullName(t *testing.T) {
	tab := NewTable()
	tab.PushScope()
	err := tab.Declare("", &Variable{VarName: "", TypeName: "int"})
	assert.ErrorIs(t, err, ErrNullName)
}

func TestTable_DeclareDuplicate(t *testing.T) {
	tab := NewTable()
	tab.PushScope()
	require.NoError(t, tab.Declare("x", &Variable{VarName: "x", TypeName: "int"}))

	err := tab.Declare("x", &Variable{VarName: "x", TypeName: "bool"})
	assert.ErrorIs(t, err, ErrDuplicateInScope)

	sym, ok := tab.LookupLocal("x")
	require.True(t, ok)
	assert.Equal(t, "int", sym.(*Variable).TypeName, "original binding must survive a duplicate declaration")
}

func TestTable_LookupLocalDoesNotCascade(t *testing.T) {
	tab := NewTable()
	tab.PushScope()
	require.NoError(t, tab.Declare("x", &Variable{VarName: "x", TypeName: "int"}))
	tab.PushScope()

	_, ok := tab.LookupLocal("x")
	assert.False(t, ok, "lookup_local must not see outer scopes")

	sym, ok := tab.LookupGlobal("x")
	require.True(t, ok)
	assert.Equal(t, "x", sym.Name())
}

func TestTable_LookupGlobalShadowing(t *testing.T) {
	tab := NewTable()
	tab.PushScope()
	require.NoError(t, tab.Declare("x", &Variable{VarName: "x", TypeName: "int"}))

	tab.PushScope()
	require.NoError(t, tab.Declare("x", &Variable{VarName: "x", TypeName: "bool"}))

	sym, ok := tab.LookupGlobal("x")
	require.True(t, ok)
	assert.Equal(t, "bool", sym.(*Variable).TypeName, "inner declaration must shadow the outer one")

	require.NoError(t, tab.PopScope())

	sym, ok = tab.LookupGlobal("x")
	require.True(t, ok)
	assert.Equal(t, "int", sym.(*Variable).TypeName, "popping the inner scope must reveal the outer binding again")
}

func TestTable_LookupOnEmptyStackIsAbsentNotError(t *testing.T) {
	tab := NewTable()
	_, ok := tab.LookupGlobal("x")
	assert.False(t, ok)
	_, ok = tab.LookupLocal("x")
	assert.False(t, ok)
}

func TestFunctionSymbol(t *testing.T) {
	fn := &Function{FnName: "add", ReturnType: "int", FormalTypes: []string{"int", "int"}}
	assert.Equal(t, "add", fn.Name())
	assert.Equal(t, []string{"int", "int"}, fn.FormalTypes)
	assert.Equal(t, "function add(int, int): int", fn.String())
}

func TestSymbol_StringVariants(t *testing.T) {
	assert.Equal(t, "variable x: int", (&Variable{VarName: "x", TypeName: "int"}).String())
	fields := NewFieldMap()
	fields.Set("a", &Variable{VarName: "a", TypeName: "int"})
	assert.Equal(t, "struct Point (1 fields)", (&StructType{TypeName: "Point", Fields: fields}).String())
}

func TestTable_DebugString(t *testing.T) {
	tab := NewTable()
	tab.PushScope()
	require.NoError(t, tab.Declare("x", &Variable{VarName: "x", TypeName: "int"}))
	tab.PushScope()
	require.NoError(t, tab.Declare("y", &Variable{VarName: "y", TypeName: "bool"}))

	out := tab.DebugString()
	assert.Contains(t, out, "variable x: int")
	assert.Contains(t, out, "variable y: bool")
	assert.Less(t,
		indexOf(out, "variable x: int"),
		indexOf(out, "variable y: bool"),
		"DebugString renders outermost scope before innermost",
	)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
