package ast

import "github.com/hassan/harambe/internal/lexer"

// AssignStmt is `loc = expr;` used as a statement. Lhs is a location
// expression (Id or DotAccess); the parser rejects anything else.
type AssignStmt struct {
	Position lexer.Position
	Lhs      Expr
	Rhs      Expr
}

func (s *AssignStmt) Pos() lexer.Position { return s.Position }
func (*AssignStmt) stmtNode()             {}
func (s *AssignStmt) Accept(v Visitor)    { v.VisitAssignStmt(s) }

// PostIncStmt is `loc++;`.
type PostIncStmt struct {
	Position lexer.Position
	Lhs      Expr
}

func (s *PostIncStmt) Pos() lexer.Position { return s.Position }
func (*PostIncStmt) stmtNode()             {}
func (s *PostIncStmt) Accept(v Visitor)    { v.VisitPostIncStmt(s) }

// PostDecStmt is `loc--;`.
type PostDecStmt struct {
	Position lexer.Position
	Lhs      Expr
}

func (s *PostDecStmt) Pos() lexer.Position { return s.Position }
func (*PostDecStmt) stmtNode()             {}
func (s *PostDecStmt) Accept(v Visitor)    { v.VisitPostDecStmt(s) }

// ReadStmt is `read loc;`.
type ReadStmt struct {
	Position lexer.Position
	Lhs      Expr
}

func (s *ReadStmt) Pos() lexer.Position { return s.Position }
func (*ReadStmt) stmtNode()             {}
func (s *ReadStmt) Accept(v Visitor)    { v.VisitReadStmt(s) }

// WriteStmt is `write expr;`.
type WriteStmt struct {
	Position lexer.Position
	Expr     Expr
}

func (s *WriteStmt) Pos() lexer.Position { return s.Position }
func (*WriteStmt) stmtNode()             {}
func (s *WriteStmt) Accept(v Visitor)    { v.VisitWriteStmt(s) }

// IfStmt is a single-branch conditional. Body introduces its own scope.
type IfStmt struct {
	Position lexer.Position
	Cond     Expr
	Body     *Block
}

func (s *IfStmt) Pos() lexer.Position { return s.Position }
func (*IfStmt) stmtNode()             {}
func (s *IfStmt) Accept(v Visitor)    { v.VisitIfStmt(s) }

// IfElseStmt is a two-branch conditional. Then and Else each introduce
// their own, independent scope.
type IfElseStmt struct {
	Position lexer.Position
	Cond     Expr
	Then     *Block
	Else     *Block
}

func (s *IfElseStmt) Pos() lexer.Position { return s.Position }
func (*IfElseStmt) stmtNode()             {}
func (s *IfElseStmt) Accept(v Visitor)    { v.VisitIfElseStmt(s) }

// WhileStmt is a loop. Body introduces its own scope, re-entered fresh
// on every iteration conceptually (name analysis only walks it once).
type WhileStmt struct {
	Position lexer.Position
	Cond     Expr
	Body     *Block
}

func (s *WhileStmt) Pos() lexer.Position { return s.Position }
func (*WhileStmt) stmtNode()             {}
func (s *WhileStmt) Accept(v Visitor)    { v.VisitWhileStmt(s) }

// CallStmt is a function call used as a statement, its result discarded.
type CallStmt struct {
	Position lexer.Position
	Call     *CallExpr
}

func (s *CallStmt) Pos() lexer.Position { return s.Position }
func (*CallStmt) stmtNode()             {}
func (s *CallStmt) Accept(v Visitor)    { v.VisitCallStmt(s) }

// ReturnStmt may carry no expression — a bare `return;` is legal at
// this phase regardless of the enclosing function's return type.
type ReturnStmt struct {
	Position lexer.Position
	Expr     Expr
}

func (s *ReturnStmt) Pos() lexer.Position { return s.Position }
func (*ReturnStmt) stmtNode()             {}
func (s *ReturnStmt) Accept(v Visitor)    { v.VisitReturnStmt(s) }
