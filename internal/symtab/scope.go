package symtab

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the scope-stack operations. These signal
// programmer bugs in the analyzer, not user-facing diagnostics — a
// well-formed walk never triggers them, since every push_scope is
// paired with a pop_scope and every declare carries a non-empty name.
var (
	ErrEmptyScopeStack = errors.New("empty scope stack")
	ErrDuplicateInScope = errors.New("duplicate name in innermost scope")
	ErrNullName         = errors.New("declare called with empty name")
)

type scope struct {
	symbols map[string]Symbol
	order   []string
}

func newScope() *scope {
	return &scope{symbols: make(map[string]Symbol)}
}

// Table is the scoped symbol table: an ordered stack of scopes, index
// 0 always being the innermost (top-of-stack) scope.
type Table struct {
	scopes []*scope
}

// NewTable returns an empty table with no scopes pushed.
func NewTable() *Table {
	return &Table{}
}

// PushScope appends a fresh, empty scope as the new innermost scope.
func (t *Table) PushScope() {
	t.scopes = append([]*scope{newScope()}, t.scopes...)
}

// PopScope removes the innermost scope. Returns ErrEmptyScopeStack if
// there is no scope to remove.
func (t *Table) PopScope() error {
	if len(t.scopes) == 0 {
		return ErrEmptyScopeStack
	}
	t.scopes = t.scopes[1:]
	return nil
}

// Depth reports how many scopes are currently pushed.
func (t *Table) Depth() int {
	return len(t.scopes)
}

// Declare inserts sym under name into the innermost scope. Returns
// ErrNullName if name is empty, ErrEmptyScopeStack if there is no
// scope to declare into, or ErrDuplicateInScope if name already exists
// in the innermost scope — in which case the existing binding is left
// untouched, matching the rule that a redeclaration never overwrites
// the original.
func (t *Table) Declare(name string, sym Symbol) error {
	if name == "" {
		return ErrNullName
	}
	if len(t.scopes) == 0 {
		return ErrEmptyScopeStack
	}
	innermost := t.scopes[0]
	if _, exists := innermost.symbols[name]; exists {
		return ErrDuplicateInScope
	}
	innermost.symbols[name] = sym
	innermost.order = append(innermost.order, name)
	return nil
}

// SnapshotInnermost captures the innermost scope as a FieldMap,
// preserving declaration order. Used when a StructDecl finishes
// collecting its fields: the temporary scope is about to be popped,
// but its contents need to live on as the struct's authoritative field
// map.
func (t *Table) SnapshotInnermost() FieldMap {
	fm := NewFieldMap()
	if len(t.scopes) == 0 {
		return fm
	}
	innermost := t.scopes[0]
	for _, name := range innermost.order {
		fm.Set(name, innermost.symbols[name])
	}
	return fm
}

// LookupLocal returns the symbol bound to name in the innermost scope
// only. Absent (not an error) if the stack is empty or name isn't
// bound there.
func (t *Table) LookupLocal(name string) (Symbol, bool) {
	if len(t.scopes) == 0 {
		return nil, false
	}
	sym, ok := t.scopes[0].symbols[name]
	return sym, ok
}

// LookupGlobal searches from innermost to outermost scope and returns
// the first hit — shadow-respecting, so an inner binding always wins
// over an outer one of the same name.
func (t *Table) LookupGlobal(name string) (Symbol, bool) {
	for _, s := range t.scopes {
		if sym, ok := s.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// DebugString renders every pushed scope, outermost first, with its
// symbols in declaration order — used by tests, never by name analysis
// itself (its -v tracing logs individual Symbol.String() values).
func (t *Table) DebugString() string {
	out := ""
	for depth := len(t.scopes) - 1; depth >= 0; depth-- {
		s := t.scopes[depth]
		out += fmt.Sprintf("scope %d (%d symbols)\n", len(t.scopes)-1-depth, len(s.order))
		for _, name := range s.order {
			out += "  " + s.symbols[name].String() + "\n"
		}
	}
	return out
}
