// Package nameanalysis implements the name-resolution pass: a
// depth-first, left-to-right walk of the AST that populates the
// scoped symbol table, attaches resolved symbols and type strings to
// every identifier occurrence, and reports diagnostics for
// redeclarations, undeclared uses, and malformed struct access.
//
// The walk never aborts on a single error — every diagnostic is
// reported at its site and the walk continues, so unrelated problems
// in the same file surface together in one run.
package nameanalysis

import (
	"github.com/hassan/harambe/internal/ast"
	"github.com/hassan/harambe/internal/diag"
	"github.com/hassan/harambe/internal/obslog"
	"github.com/hassan/harambe/internal/symtab"
)

// Analyzer holds the mutable state of one name-analysis run: the scope
// stack being built up and torn down as the walk descends and returns,
// and the sink diagnostics are reported to. It implements ast.Visitor,
// so the tree drives the walk through Accept calls; the Visit methods
// below only perform the GENERIC dispatch (an Id encountered as a
// plain sub-expression resolves via the "use" role). Declaration
// sites, dot-access sides, call targets and struct-type references
// all have a specific role and are resolved by their parent node
// calling the matching method in roles.go directly, bypassing Accept.
type Analyzer struct {
	table *symtab.Table
	sink  *diag.Sink
	log   *obslog.Logger
}

var _ ast.Visitor = (*Analyzer)(nil)

// Option configures an Analyzer at construction time.
type Option func(*Analyzer)

// WithLogger attaches a trace logger for internal invariant violations
// (empty scope pop, null-name declare) — these indicate analyzer bugs,
// not user errors, and are never routed through the diagnostic sink.
func WithLogger(log *obslog.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// New returns an Analyzer reporting to sink.
func New(sink *diag.Sink, opts ...Option) *Analyzer {
	a := &Analyzer{
		table: symtab.NewTable(),
		sink:  sink,
		log:   obslog.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze walks prog, mutating its Id nodes in place and reporting
// diagnostics to the sink. After it returns the scope stack is back to
// depth zero.
func (a *Analyzer) Analyze(prog *ast.Program) {
	a.VisitProgram(prog)
}

func (a *Analyzer) VisitProgram(p *ast.Program) {
	a.pushScope()
	for _, d := range p.Decls {
		d.Accept(a)
	}
	a.popScope()
}

func (a *Analyzer) VisitVarDecl(d *ast.VarDecl) {
	a.analyzeTypedDecl(d.Id, d.Type)
}

func (a *Analyzer) VisitFormalDecl(d *ast.FormalDecl) {
	a.analyzeTypedDecl(d.Id, d.Type)
}

func (a *Analyzer) VisitFnDecl(d *ast.FnDecl) {
	formalTypes := make([]string, len(d.Formals))
	for i, f := range d.Formals {
		formalTypes[i] = f.Type.String()
	}
	a.declFn(d.Id, formalTypes, d.ReturnType.String())

	a.pushScope()
	for _, f := range d.Formals {
		f.Accept(a)
	}
	for _, decl := range d.Body.Decls {
		decl.Accept(a)
	}
	for _, stmt := range d.Body.Stmts {
		stmt.Accept(a)
	}
	a.popScope()
}

func (a *Analyzer) VisitStructDecl(d *ast.StructDecl) {
	a.pushScope()
	for _, f := range d.Fields {
		f.Accept(a)
	}
	fields := a.table.SnapshotInnermost()
	a.popScope()
	a.declStruct(d.Id, fields)
}

func (a *Analyzer) visitBlock(b *ast.Block) {
	a.pushScope()
	for _, d := range b.Decls {
		d.Accept(a)
	}
	for _, s := range b.Stmts {
		s.Accept(a)
	}
	a.popScope()
}

func (a *Analyzer) VisitAssignStmt(s *ast.AssignStmt) {
	s.Lhs.Accept(a)
	s.Rhs.Accept(a)
}

func (a *Analyzer) VisitPostIncStmt(s *ast.PostIncStmt) { s.Lhs.Accept(a) }
func (a *Analyzer) VisitPostDecStmt(s *ast.PostDecStmt) { s.Lhs.Accept(a) }
func (a *Analyzer) VisitReadStmt(s *ast.ReadStmt)       { s.Lhs.Accept(a) }
func (a *Analyzer) VisitWriteStmt(s *ast.WriteStmt)     { s.Expr.Accept(a) }

func (a *Analyzer) VisitIfStmt(s *ast.IfStmt) {
	s.Cond.Accept(a)
	a.visitBlock(s.Body)
}

func (a *Analyzer) VisitIfElseStmt(s *ast.IfElseStmt) {
	s.Cond.Accept(a)
	a.visitBlock(s.Then)
	a.visitBlock(s.Else)
}

func (a *Analyzer) VisitWhileStmt(s *ast.WhileStmt) {
	s.Cond.Accept(a)
	a.visitBlock(s.Body)
}

func (a *Analyzer) VisitCallStmt(s *ast.CallStmt) { s.Call.Accept(a) }

func (a *Analyzer) VisitReturnStmt(s *ast.ReturnStmt) {
	if s.Expr != nil {
		s.Expr.Accept(a)
	}
}

func (a *Analyzer) VisitIntLit(*ast.IntLit)     {}
func (a *Analyzer) VisitStrLit(*ast.StrLit)     {}
func (a *Analyzer) VisitTrueLit(*ast.TrueLit)   {}
func (a *Analyzer) VisitFalseLit(*ast.FalseLit) {}

// VisitId is only reached via Accept from a generic expression
// position (a binary operand, a call argument, a write/return
// expression...). Every context with a more specific role calls that
// role's method directly and never routes through here.
func (a *Analyzer) VisitId(id *ast.Id) { a.use(id) }

// VisitDotAccess implements the dot-access evaluation rule: a chain of
// dots resolves left to right, each link consuming the previous
// link's resolved fields map rather than re-walking from the root.
func (a *Analyzer) VisitDotAccess(d *ast.DotAccess) {
	if inner, chained := d.Loc.(*ast.DotAccess); chained {
		a.VisitDotAccess(inner)
		a.useRhsOfDot(d.Field, inner.Fields(), "Dot-access of non-struct type")
		return
	}
	if locId, isId := d.Loc.(*ast.Id); isId {
		fields, ok := a.useLhsOfDot(locId)
		if !ok {
			return
		}
		a.useRhsOfDot(d.Field, fields, "Invalid struct field name")
		return
	}
	// Non-location LHS (e.g. a literal) — nothing resolvable; walk it
	// for completeness but emit nothing.
	d.Loc.Accept(a)
}

func (a *Analyzer) VisitAssignExpr(e *ast.AssignExpr) {
	e.Lhs.Accept(a)
	e.Rhs.Accept(a)
}

func (a *Analyzer) VisitCallExpr(e *ast.CallExpr) {
	a.useFnCall(e.Id)
	for _, arg := range e.Args {
		arg.Accept(a)
	}
}

func (a *Analyzer) VisitUnaryExpr(e *ast.UnaryExpr) { e.Operand.Accept(a) }

func (a *Analyzer) VisitBinaryExpr(e *ast.BinaryExpr) {
	e.Left.Accept(a)
	e.Right.Accept(a)
}

func (a *Analyzer) pushScope() {
	a.table.PushScope()
	a.log.Debugw("push scope", "depth", a.table.Depth())
}

func (a *Analyzer) popScope() {
	a.log.Debugw("pop scope", "depth", a.table.Depth())
	if err := a.table.PopScope(); err != nil {
		a.log.Errorw("name analysis scope invariant violated", "error", err)
	}
}

func (a *Analyzer) report(id *ast.Id, message string) {
	a.sink.Report(id.Position.Line, id.Position.Column, message)
}

func typeNameOf(sym symtab.Symbol) string {
	switch s := sym.(type) {
	case *symtab.Variable:
		return s.TypeName
	case *symtab.Function:
		return s.ReturnType
	case *symtab.StructType:
		return s.TypeName
	default:
		return ""
	}
}
