package ast

import (
	"github.com/hassan/harambe/internal/lexer"
	"github.com/hassan/harambe/internal/symtab"
)

type IntLit struct {
	Position lexer.Position
	Value    int64
}

func (e *IntLit) Pos() lexer.Position { return e.Position }
func (*IntLit) exprNode()             {}
func (e *IntLit) Accept(v Visitor)    { v.VisitIntLit(e) }

type StrLit struct {
	Position lexer.Position
	Value    string
}

func (e *StrLit) Pos() lexer.Position { return e.Position }
func (*StrLit) exprNode()             {}
func (e *StrLit) Accept(v Visitor)    { v.VisitStrLit(e) }

type TrueLit struct {
	Position lexer.Position
}

func (e *TrueLit) Pos() lexer.Position { return e.Position }
func (*TrueLit) exprNode()             {}
func (e *TrueLit) Accept(v Visitor)    { v.VisitTrueLit(e) }

type FalseLit struct {
	Position lexer.Position
}

func (e *FalseLit) Pos() lexer.Position { return e.Position }
func (*FalseLit) exprNode()             {}
func (e *FalseLit) Accept(v Visitor)    { v.VisitFalseLit(e) }

// Id is an identifier occurrence: a declaration site or a use. The
// fields below the Lexeme are empty until name analysis assigns a role
// to this occurrence and resolves it; which fields get filled depends
// on that role (see internal/nameanalysis).
type Id struct {
	Position lexer.Position
	Lexeme   string

	// Symbol is the binding this occurrence resolved to. Nil until
	// name analysis runs, and nil forever for an unresolved use.
	Symbol symtab.Symbol

	// ResolvedType is the type-name string recorded for a use; empty
	// for a declaration site.
	ResolvedType string

	// Fields is set when this Id denotes a value of struct type — its
	// own declared struct's fields, or (for a dot-access RHS that is
	// itself a struct) the nested struct's fields, so a further dot
	// access can chain off of it.
	Fields symtab.FieldMap

	// CallFormals and CallReturn are set only when this Id is the
	// target of a function call, captured at resolution time for the
	// annotated unparse of the call site.
	CallFormals []string
	CallReturn  string
	IsCallTarget bool
}

func (e *Id) Pos() lexer.Position { return e.Position }
func (*Id) exprNode()             {}

// Accept dispatches to VisitId, the generic "use" role. Contexts that
// need a different role (a declaration site, a dot-access side, a
// call target, a struct-type reference) must call that role's analyzer
// method directly instead of going through Accept — see
// internal/nameanalysis for the full role table.
func (e *Id) Accept(v Visitor) { v.VisitId(e) }

// DotAccess is `loc.field`. Loc may itself be a DotAccess, in which
// case this node chains off of Loc's resolved struct fields rather
// than re-resolving Loc's own LHS role.
type DotAccess struct {
	Position lexer.Position
	Loc      Expr
	Field    *Id
}

func (e *DotAccess) Pos() lexer.Position { return e.Position }
func (*DotAccess) exprNode()             {}
func (e *DotAccess) Accept(v Visitor)    { v.VisitDotAccess(e) }

// ResolvedType reports the type name this dot access resolved to,
// taken from its field Id — valid only after name analysis runs.
func (e *DotAccess) ResolvedType() string { return e.Field.ResolvedType }

// Fields exposes the struct fields map this dot access's value carries
// (if its resolved type is itself a struct), so a further dot access
// chained off of it can resolve without re-walking the LHS.
func (e *DotAccess) Fields() symtab.FieldMap { return e.Field.Fields }

// AssignExpr is `loc = expr` used as an operand of a larger expression
// rather than as a standalone statement; the unparser parenthesizes it
// in that position, unlike AssignStmt.
type AssignExpr struct {
	Position lexer.Position
	Lhs      Expr
	Rhs      Expr
}

func (e *AssignExpr) Pos() lexer.Position { return e.Position }
func (*AssignExpr) exprNode()             {}
func (e *AssignExpr) Accept(v Visitor)    { v.VisitAssignExpr(e) }

// CallExpr is `id(args...)` used as a value.
type CallExpr struct {
	Position lexer.Position
	Id       *Id
	Args     []Expr
}

func (e *CallExpr) Pos() lexer.Position { return e.Position }
func (*CallExpr) exprNode()             {}
func (e *CallExpr) Accept(v Visitor)    { v.VisitCallExpr(e) }

// UnaryOp distinguishes the two unary operators the language has.
type UnaryOp int

const (
	OpUnaryMinus UnaryOp = iota
	OpNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpUnaryMinus:
		return "-"
	case OpNot:
		return "!"
	default:
		return "?"
	}
}

type UnaryExpr struct {
	Position lexer.Position
	Op       UnaryOp
	Operand  Expr
}

func (e *UnaryExpr) Pos() lexer.Position { return e.Position }
func (*UnaryExpr) exprNode()             {}
func (e *UnaryExpr) Accept(v Visitor)    { v.VisitUnaryExpr(e) }

// BinaryOp enumerates the binary and logical operators.
type BinaryOp int

const (
	OpPlus BinaryOp = iota
	OpMinus
	OpTimes
	OpDivide
	OpAnd
	OpOr
	OpEquals
	OpNotEquals
	OpLess
	OpGreater
	OpLessEq
	OpGreaterEq
)

func (op BinaryOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpTimes:
		return "*"
	case OpDivide:
		return "/"
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpEquals:
		return "=="
	case OpNotEquals:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEq:
		return "<="
	case OpGreaterEq:
		return ">="
	default:
		return "?"
	}
}

type BinaryExpr struct {
	Position lexer.Position
	Op       BinaryOp
	Left     Expr
	Right    Expr
}

func (e *BinaryExpr) Pos() lexer.Position { return e.Position }
func (*BinaryExpr) exprNode()             {}
func (e *BinaryExpr) Accept(v Visitor)    { v.VisitBinaryExpr(e) }
