package ast

import "github.com/hassan/harambe/internal/lexer"

// Block is a scope-introducing body: an ordered list of local
// declarations followed by statements. FnDecl, IfStmt and WhileStmt
// each own one, IfElseStmt owns two; the function body is the one
// exception that
// does not get its own scope push, since the enclosing FnDecl already
// pushed one for the formals.
type Block struct {
	Position lexer.Position
	Decls    []Decl
	Stmts    []Stmt
}

func (b *Block) Pos() lexer.Position { return b.Position }

// VarDecl declares a variable of the given type. SizeTag is non-nil
// for an array declaration (`int x[10];`) and carries the declared
// length; arrays are otherwise untyped by this front end — their
// element type is Type.
type VarDecl struct {
	Position lexer.Position
	Type     Type
	Id       *Id
	SizeTag  *IntLit
}

func (d *VarDecl) Pos() lexer.Position { return d.Position }
func (*VarDecl) declNode()             {}
func (d *VarDecl) Accept(v Visitor)    { v.VisitVarDecl(d) }

// FnDecl declares a function: its return type, name, ordered formals
// and body block.
type FnDecl struct {
	Position   lexer.Position
	ReturnType Type
	Id         *Id
	Formals    []*FormalDecl
	Body       *Block
}

func (d *FnDecl) Pos() lexer.Position { return d.Position }
func (*FnDecl) declNode()             {}
func (d *FnDecl) Accept(v Visitor)    { v.VisitFnDecl(d) }

// FormalDecl is a single parameter in a function's formal list.
type FormalDecl struct {
	Position lexer.Position
	Type     Type
	Id       *Id
}

func (d *FormalDecl) Pos() lexer.Position { return d.Position }
func (*FormalDecl) declNode()             {}
func (d *FormalDecl) Accept(v Visitor)    { v.VisitFormalDecl(d) }

// StructDecl declares a struct type and its ordered fields. Fields are
// plain VarDecls scoped to the struct's temporary field-collection
// scope; SizeTag on a field is legal (an array-typed field).
type StructDecl struct {
	Position lexer.Position
	Id       *Id
	Fields   []*VarDecl
}

func (d *StructDecl) Pos() lexer.Position { return d.Position }
func (*StructDecl) declNode()             {}
func (d *StructDecl) Accept(v Visitor)    { v.VisitStructDecl(d) }
