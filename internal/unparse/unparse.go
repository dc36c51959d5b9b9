// Package unparse renders a name-analyzed tree back to source-like
// text, annotating every resolved identifier use with its resolved
// type so the output doubles as a resolution report.
package unparse

import (
	"strconv"
	"strings"

	"github.com/hassan/harambe/internal/ast"
)

// Unparser implements ast.Visitor, building annotated source text as
// it walks. Indentation is carried as a counter rather than threaded
// through every call's arguments, matching how the rest of this
// front end keeps per-walk state on the visitor itself.
type Unparser struct {
	buf    strings.Builder
	indent int

	// plain suppresses every resolved-type and call-site annotation,
	// rendering bare identifiers and bare call argument lists instead,
	// and writes dot access without the parentheses around its left
	// side. Used to produce re-parseable source for the round-trip property
	// (unparse, strip annotations, reparse) without a separate
	// string-level annotation stripper.
	plain bool
}

var _ ast.Visitor = (*Unparser)(nil)

// New returns an empty Unparser that renders full annotations.
func New() *Unparser {
	return &Unparser{}
}

// NewPlain returns an empty Unparser that renders unannotated,
// re-parseable source text.
func NewPlain() *Unparser {
	return &Unparser{plain: true}
}

// Unparse renders prog to annotated text in one call.
func Unparse(prog *ast.Program) string {
	u := New()
	u.VisitProgram(prog)
	return u.String()
}

// UnparsePlain renders prog with every annotation stripped, producing
// text a parser can read back in.
func UnparsePlain(prog *ast.Program) string {
	u := NewPlain()
	u.VisitProgram(prog)
	return u.String()
}

// String returns everything rendered so far.
func (u *Unparser) String() string {
	return u.buf.String()
}

func (u *Unparser) writeIndent() {
	u.buf.WriteString(strings.Repeat("    ", u.indent))
}

func (u *Unparser) VisitProgram(p *ast.Program) {
	for _, d := range p.Decls {
		d.Accept(u)
	}
}

// writeType renders a type, prefixing struct types with "struct ".
func (u *Unparser) writeType(t ast.Type) {
	if t.Kind == ast.KindStruct {
		u.buf.WriteString("struct ")
	}
	u.buf.WriteString(t.String())
}

func (u *Unparser) VisitVarDecl(d *ast.VarDecl) {
	u.writeIndent()
	u.writeType(d.Type)
	u.buf.WriteString(" ")
	u.buf.WriteString(d.Id.Lexeme)
	if d.SizeTag != nil {
		u.buf.WriteString("[")
		u.buf.WriteString(strconv.FormatInt(d.SizeTag.Value, 10))
		u.buf.WriteString("]")
	}
	u.buf.WriteString(";\n")
}

// VisitFormalDecl renders a bare "type name" fragment with no
// trailing punctuation — FnDecl joins these with ", " itself.
func (u *Unparser) VisitFormalDecl(f *ast.FormalDecl) {
	u.writeType(f.Type)
	u.buf.WriteString(" ")
	u.buf.WriteString(f.Id.Lexeme)
}

func (u *Unparser) VisitFnDecl(d *ast.FnDecl) {
	u.writeIndent()
	u.writeType(d.ReturnType)
	u.buf.WriteString(" ")
	u.buf.WriteString(d.Id.Lexeme)
	u.buf.WriteString("(")
	for i, f := range d.Formals {
		if i > 0 {
			u.buf.WriteString(", ")
		}
		f.Accept(u)
	}
	u.buf.WriteString(") {\n")
	u.indent++
	for _, decl := range d.Body.Decls {
		decl.Accept(u)
	}
	for _, stmt := range d.Body.Stmts {
		stmt.Accept(u)
	}
	u.indent--
	u.writeIndent()
	u.buf.WriteString("}\n\n")
}

func (u *Unparser) VisitStructDecl(d *ast.StructDecl) {
	u.writeIndent()
	u.buf.WriteString("struct ")
	u.buf.WriteString(d.Id.Lexeme)
	u.buf.WriteString(" {\n")
	u.indent++
	for _, f := range d.Fields {
		f.Accept(u)
	}
	u.indent--
	u.writeIndent()
	u.buf.WriteString("};\n")
}

func (u *Unparser) VisitAssignStmt(s *ast.AssignStmt) {
	u.writeIndent()
	s.Lhs.Accept(u)
	u.buf.WriteString(" = ")
	s.Rhs.Accept(u)
	u.buf.WriteString(";\n")
}

func (u *Unparser) VisitPostIncStmt(s *ast.PostIncStmt) {
	u.writeIndent()
	s.Lhs.Accept(u)
	u.buf.WriteString("++;\n")
}

func (u *Unparser) VisitPostDecStmt(s *ast.PostDecStmt) {
	u.writeIndent()
	s.Lhs.Accept(u)
	u.buf.WriteString("--;\n")
}

func (u *Unparser) VisitReadStmt(s *ast.ReadStmt) {
	u.writeIndent()
	u.buf.WriteString("read ")
	s.Lhs.Accept(u)
	u.buf.WriteString(";\n")
}

func (u *Unparser) VisitWriteStmt(s *ast.WriteStmt) {
	u.writeIndent()
	u.buf.WriteString("write ")
	s.Expr.Accept(u)
	u.buf.WriteString(";\n")
}

func (u *Unparser) VisitIfStmt(s *ast.IfStmt) {
	u.writeIndent()
	u.buf.WriteString("if (")
	s.Cond.Accept(u)
	u.buf.WriteString(") {\n")
	u.writeBlockBody(s.Body)
	u.writeIndent()
	u.buf.WriteString("}\n")
}

func (u *Unparser) VisitIfElseStmt(s *ast.IfElseStmt) {
	u.writeIndent()
	u.buf.WriteString("if (")
	s.Cond.Accept(u)
	u.buf.WriteString(") {\n")
	u.writeBlockBody(s.Then)
	u.writeIndent()
	u.buf.WriteString("} else {\n")
	u.writeBlockBody(s.Else)
	u.writeIndent()
	u.buf.WriteString("}\n")
}

func (u *Unparser) VisitWhileStmt(s *ast.WhileStmt) {
	u.writeIndent()
	u.buf.WriteString("while (")
	s.Cond.Accept(u)
	u.buf.WriteString(") {\n")
	u.writeBlockBody(s.Body)
	u.writeIndent()
	u.buf.WriteString("}\n")
}

func (u *Unparser) writeBlockBody(b *ast.Block) {
	u.indent++
	for _, d := range b.Decls {
		d.Accept(u)
	}
	for _, s := range b.Stmts {
		s.Accept(u)
	}
	u.indent--
}

func (u *Unparser) VisitCallStmt(s *ast.CallStmt) {
	u.writeIndent()
	s.Call.Accept(u)
	u.buf.WriteString(";\n")
}

func (u *Unparser) VisitReturnStmt(s *ast.ReturnStmt) {
	u.writeIndent()
	u.buf.WriteString("return")
	if s.Expr != nil {
		u.buf.WriteString(" ")
		s.Expr.Accept(u)
	}
	u.buf.WriteString(";\n")
}

func (u *Unparser) VisitIntLit(e *ast.IntLit) {
	u.buf.WriteString(strconv.FormatInt(e.Value, 10))
}

func (u *Unparser) VisitStrLit(e *ast.StrLit) {
	u.buf.WriteString(strconv.Quote(e.Value))
}

func (u *Unparser) VisitTrueLit(*ast.TrueLit) {
	u.buf.WriteString("true")
}

func (u *Unparser) VisitFalseLit(*ast.FalseLit) {
	u.buf.WriteString("false")
}

// VisitId renders the generic "use" annotation: bare name when
// unresolved (a diagnostic already fired for it), name(type) once
// resolved.
func (u *Unparser) VisitId(id *ast.Id) {
	u.buf.WriteString(id.Lexeme)
	if !u.plain && id.ResolvedType != "" {
		u.buf.WriteString("(")
		u.buf.WriteString(id.ResolvedType)
		u.buf.WriteString(")")
	}
}

// VisitDotAccess renders `(loc).field`, each side carrying its own
// resolved-type annotation. Plain mode renders `loc.field` instead,
// since the parser only accepts a bare identifier chain as a location.
func (u *Unparser) VisitDotAccess(d *ast.DotAccess) {
	if u.plain {
		d.Loc.Accept(u)
		u.buf.WriteString(".")
		u.buf.WriteString(d.Field.Lexeme)
		return
	}
	u.buf.WriteString("(")
	d.Loc.Accept(u)
	u.buf.WriteString(").")
	u.buf.WriteString(d.Field.Lexeme)
	if !u.plain && d.Field.ResolvedType != "" {
		u.buf.WriteString("(")
		u.buf.WriteString(d.Field.ResolvedType)
		u.buf.WriteString(")")
	}
}

// VisitAssignExpr parenthesizes the assignment, unlike VisitAssignStmt
// — assignment used as a value needs grouping an assignment statement
// doesn't.
func (u *Unparser) VisitAssignExpr(e *ast.AssignExpr) {
	u.buf.WriteString("(")
	e.Lhs.Accept(u)
	u.buf.WriteString(" = ")
	e.Rhs.Accept(u)
	u.buf.WriteString(")")
}

// VisitCallExpr renders the call target with the call-site annotation
// (formal types and return type, not the resolved_type form a plain
// use gets) followed by the actual argument list.
func (u *Unparser) VisitCallExpr(e *ast.CallExpr) {
	u.buf.WriteString(e.Id.Lexeme)
	if !u.plain {
		u.buf.WriteString("(")
		u.buf.WriteString(joinTypeList(e.Id.CallFormals))
		u.buf.WriteString("->")
		u.buf.WriteString(e.Id.CallReturn)
		u.buf.WriteString(")")
	}
	u.buf.WriteString("(")
	for i, arg := range e.Args {
		if i > 0 {
			u.buf.WriteString(", ")
		}
		arg.Accept(u)
	}
	u.buf.WriteString(")")
}

func (u *Unparser) VisitUnaryExpr(e *ast.UnaryExpr) {
	u.buf.WriteString(e.Op.String())
	e.Operand.Accept(u)
}

// VisitBinaryExpr wraps every binary expression in parentheses so the
// rendered text keeps the tree's grouping when parsed again.
func (u *Unparser) VisitBinaryExpr(e *ast.BinaryExpr) {
	u.buf.WriteString("(")
	e.Left.Accept(u)
	u.buf.WriteString(" ")
	u.buf.WriteString(e.Op.String())
	u.buf.WriteString(" ")
	e.Right.Accept(u)
	u.buf.WriteString(")")
}

// joinTypeList renders a formal-type list for a call-site annotation.
// The first pair of entries is joined without a space after the
// comma; every entry after that gets one. An empty list renders empty
// so the annotation degrades to "(->ret)" when formal types weren't
// captured (a call to a name that didn't resolve to a function).
func joinTypeList(types []string) string {
	var b strings.Builder
	for i, t := range types {
		switch i {
		case 0:
			b.WriteString(t)
		case 1:
			b.WriteString(",")
			b.WriteString(t)
		default:
			b.WriteString(", ")
			b.WriteString(t)
		}
	}
	return b.String()
}
