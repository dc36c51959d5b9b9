// Package ast defines the tree produced by the parser: declarations,
// statements, expressions and the types they carry. Nodes are created
// once by the parser and never change shape afterward — name analysis
// only fills in the resolved fields on Id nodes, it never adds, removes
// or reorders a node.
package ast

import "github.com/hassan/harambe/internal/lexer"

// Node is implemented by every tree element. Pos reports where the
// node begins in the source file, for diagnostics and unparse.
type Node interface {
	Pos() lexer.Position
}

// Decl is a top-level or block-level declaration.
type Decl interface {
	Node
	Accept(Visitor)
	declNode()
}

// Stmt is a statement inside a function or control-flow body.
type Stmt interface {
	Node
	Accept(Visitor)
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	Accept(Visitor)
	exprNode()
}

// Program is the root of the tree: the ordered list of top-level
// declarations (variables, functions, structs) as they appeared in the
// source file.
type Program struct {
	Decls []Decl
}

func (p *Program) Pos() lexer.Position {
	if len(p.Decls) == 0 {
		return lexer.Position{}
	}
	return p.Decls[0].Pos()
}

// Visitor lets a walker dispatch on concrete node type without a
// type switch at every call site. Name analysis and unparse both
// implement it.
type Visitor interface {
	VisitProgram(*Program)

	VisitVarDecl(*VarDecl)
	VisitFnDecl(*FnDecl)
	VisitFormalDecl(*FormalDecl)
	VisitStructDecl(*StructDecl)

	VisitAssignStmt(*AssignStmt)
	VisitPostIncStmt(*PostIncStmt)
	VisitPostDecStmt(*PostDecStmt)
	VisitReadStmt(*ReadStmt)
	VisitWriteStmt(*WriteStmt)
	VisitIfStmt(*IfStmt)
	VisitIfElseStmt(*IfElseStmt)
	VisitWhileStmt(*WhileStmt)
	VisitCallStmt(*CallStmt)
	VisitReturnStmt(*ReturnStmt)

	VisitIntLit(*IntLit)
	VisitStrLit(*StrLit)
	VisitTrueLit(*TrueLit)
	VisitFalseLit(*FalseLit)
	VisitId(*Id)
	VisitDotAccess(*DotAccess)
	VisitAssignExpr(*AssignExpr)
	VisitCallExpr(*CallExpr)
	VisitUnaryExpr(*UnaryExpr)
	VisitBinaryExpr(*BinaryExpr)
}
