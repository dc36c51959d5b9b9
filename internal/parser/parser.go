// Package parser implements a recursive-descent parser for harambe.
//
// PARSING STRATEGY:
// 1. Recursive descent for declarations and statements — the grammar
//    is small enough that each production maps to one method.
// 2. Precedence climbing for expressions — binary operators are
//    ranked by binaryPrecedence and folded left-associatively; unary
//    and assignment are handled outside that climb since neither is a
//    left-associative binary chain.
//
// ERROR HANDLING STRATEGY:
// Errors are accumulated rather than aborting at the first one, so a
// single run surfaces every malformed declaration instead of just the
// first. Recovery happens at declaration boundaries via panic/recover:
// a parse method panics with a sentinel on failure, parseDecl recovers
// and synchronize skips ahead to the next declaration boundary.
package parser

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/hassan/harambe/internal/ast"
	"github.com/hassan/harambe/internal/lexer"
)

// errParseFailed is panicked by a parse method that has already
// recorded its error and wants to unwind to the nearest recovery
// point without producing a partial node.
var errParseFailed = errors.New("parse failed")

// Parser converts a token stream into an *ast.Program.
type Parser struct {
	lex *lexer.Lexer

	current  lexer.Token
	previous lexer.Token

	errs []error
}

// New returns a Parser reading from lex. It primes the first token
// immediately, so a freshly constructed Parser is ready to parse.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	return p
}

// ParseProgram parses a complete source file and returns the
// top-level declarations parsed along with every error encountered.
// A non-empty error slice means the returned program is incomplete —
// callers must not run name analysis over it.
func (p *Parser) ParseProgram() (*ast.Program, []error) {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		decl := p.parseDecl()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
	}
	return prog, p.errs
}

// parseDecl parses one top-level declaration. `struct Name {` starts
// a StructDecl; otherwise a type followed by an identifier starts
// either a VarDecl or a FnDecl, disambiguated by what follows the
// name.
func (p *Parser) parseDecl() (decl ast.Decl) {
	defer func() {
		if r := recover(); r != nil {
			if r != errParseFailed {
				panic(r)
			}
			decl = nil
			p.synchronize()
		}
	}()

	if p.check(lexer.TokenStruct) && p.peekIsStructDecl() {
		return p.parseStructDecl()
	}

	typ := p.parseType()
	id := p.expectIdentifier("expected a name after type")

	if p.check(lexer.TokenLeftParen) {
		return p.parseFnDecl(typ, id)
	}
	return p.parseVarDeclTail(typ, id)
}

// peekIsStructDecl distinguishes `struct Name {` (a type declaration)
// from `struct Name var;` (a variable of struct type) without
// consuming anything — both start with the same two tokens, and only
// the third tells them apart.
func (p *Parser) peekIsStructDecl() bool {
	save := *p.lex
	savedCurrent, savedPrevious := p.current, p.previous

	p.advance() // consume 'struct'
	if !p.check(lexer.TokenIdentifier) {
		*p.lex = save
		p.current, p.previous = savedCurrent, savedPrevious
		return false
	}
	p.advance() // consume the struct's name
	isDecl := p.check(lexer.TokenLeftBrace)

	*p.lex = save
	p.current, p.previous = savedCurrent, savedPrevious
	return isDecl
}

func (p *Parser) parseStructDecl() *ast.StructDecl {
	pos := p.current.Position
	p.consume(lexer.TokenStruct, "expected 'struct'")
	id := p.expectIdentifier("expected struct name")
	p.consume(lexer.TokenLeftBrace, "expected '{' after struct name")

	var fields []*ast.VarDecl
	for !p.check(lexer.TokenRightBrace) && !p.isAtEnd() {
		fieldType := p.parseType()
		fieldID := p.expectIdentifier("expected field name")
		fields = append(fields, p.parseVarDeclTail(fieldType, fieldID))
	}
	p.consume(lexer.TokenRightBrace, "expected '}' after struct fields")
	p.consume(lexer.TokenSemicolon, "expected ';' after struct declaration")

	return &ast.StructDecl{Position: pos, Id: id, Fields: fields}
}

// parseVarDeclTail finishes a VarDecl whose type and name have already
// been consumed by the caller — shared between top-level/local
// declarations and struct field declarations.
func (p *Parser) parseVarDeclTail(typ ast.Type, id *ast.Id) *ast.VarDecl {
	decl := &ast.VarDecl{Position: id.Position, Type: typ, Id: id}
	if p.match(lexer.TokenLeftBracket) {
		sizeTok := p.current
		p.consume(lexer.TokenIntLit, "expected array size")
		size, err := strconv.ParseInt(sizeTok.Lexeme, 10, 64)
		if err != nil {
			p.error(fmt.Sprintf("invalid array size %q", sizeTok.Lexeme))
		}
		decl.SizeTag = &ast.IntLit{Position: sizeTok.Position, Value: size}
		p.consume(lexer.TokenRightBracket, "expected ']' after array size")
	}
	p.consume(lexer.TokenSemicolon, "expected ';' after declaration")
	return decl
}

func (p *Parser) parseFnDecl(returnType ast.Type, id *ast.Id) *ast.FnDecl {
	fn := &ast.FnDecl{Position: id.Position, ReturnType: returnType, Id: id}
	p.consume(lexer.TokenLeftParen, "expected '(' after function name")
	for !p.check(lexer.TokenRightParen) {
		formalType := p.parseType()
		formalID := p.expectIdentifier("expected parameter name")
		fn.Formals = append(fn.Formals, &ast.FormalDecl{Position: formalID.Position, Type: formalType, Id: formalID})
		if !p.match(lexer.TokenComma) {
			break
		}
	}
	p.consume(lexer.TokenRightParen, "expected ')' after parameters")
	fn.Body = p.parseBlock()
	return fn
}

// parseType parses a type reference: a primitive keyword, or
// `struct` followed by the referenced struct's name.
func (p *Parser) parseType() ast.Type {
	switch {
	case p.match(lexer.TokenInt):
		return ast.IntType()
	case p.match(lexer.TokenBool):
		return ast.BoolType()
	case p.match(lexer.TokenVoid):
		return ast.VoidType()
	case p.match(lexer.TokenStruct):
		id := p.expectIdentifier("expected struct type name")
		return ast.StructTypeRef(id)
	default:
		p.error(fmt.Sprintf("expected a type, got %s", p.current.Type))
		panic(errParseFailed)
	}
}

// parseBlock parses `{ Decl* Stmt* }`. Once a statement is seen, a
// following declaration would be a grammar violation, but this parser
// doesn't enforce that ordering — it accepts interleaved decls the
// grammar forbids rather than rejecting otherwise-valid programs over
// an ordering quirk the rest of this front end doesn't rely on.
func (p *Parser) parseBlock() *ast.Block {
	pos := p.current.Position
	p.consume(lexer.TokenLeftBrace, "expected '{'")
	block := &ast.Block{Position: pos}
	for !p.check(lexer.TokenRightBrace) && !p.isAtEnd() {
		if p.startsDecl() {
			block.Decls = append(block.Decls, p.parseLocalDecl())
		} else {
			block.Stmts = append(block.Stmts, p.parseStmt())
		}
	}
	p.consume(lexer.TokenRightBrace, "expected '}'")
	return block
}

// startsDecl reports whether the current token can only begin a local
// declaration (a type keyword) rather than a statement.
func (p *Parser) startsDecl() bool {
	switch p.current.Type {
	case lexer.TokenInt, lexer.TokenBool, lexer.TokenVoid, lexer.TokenStruct:
		return !(p.current.Type == lexer.TokenStruct && !p.peekIsStructVarDecl())
	}
	return false
}

// peekIsStructVarDecl distinguishes `struct T v;` (a local variable
// declaration) from a dangling `struct` that cannot appear as a
// statement — in practice the grammar never allows the latter inside
// a block, so this always returns true for a well-formed program; it
// exists so a malformed one fails inside parseLocalDecl with a
// specific message instead of silently being read as a statement.
func (p *Parser) peekIsStructVarDecl() bool {
	return true
}

func (p *Parser) parseLocalDecl() *ast.VarDecl {
	typ := p.parseType()
	id := p.expectIdentifier("expected variable name")
	return p.parseVarDeclTail(typ, id)
}

// parseStmt parses one statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.current.Type {
	case lexer.TokenIf:
		return p.parseIfStmt()
	case lexer.TokenWhile:
		return p.parseWhileStmt()
	case lexer.TokenRead:
		return p.parseReadStmt()
	case lexer.TokenWrite:
		return p.parseWriteStmt()
	case lexer.TokenReturn:
		return p.parseReturnStmt()
	case lexer.TokenIdentifier:
		return p.parseIdentifierLedStmt()
	default:
		p.error(fmt.Sprintf("expected a statement, got %s", p.current.Type))
		panic(errParseFailed)
	}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	pos := p.current.Position
	p.consume(lexer.TokenIf, "expected 'if'")
	p.consume(lexer.TokenLeftParen, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.consume(lexer.TokenRightParen, "expected ')' after condition")
	then := p.parseBlock()
	if !p.match(lexer.TokenElse) {
		return &ast.IfStmt{Position: pos, Cond: cond, Body: then}
	}
	els := p.parseBlock()
	return &ast.IfElseStmt{Position: pos, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	pos := p.current.Position
	p.consume(lexer.TokenWhile, "expected 'while'")
	p.consume(lexer.TokenLeftParen, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.consume(lexer.TokenRightParen, "expected ')' after condition")
	body := p.parseBlock()
	return &ast.WhileStmt{Position: pos, Cond: cond, Body: body}
}

func (p *Parser) parseReadStmt() ast.Stmt {
	pos := p.current.Position
	p.consume(lexer.TokenRead, "expected 'read'")
	loc := p.parseLoc()
	p.consume(lexer.TokenSemicolon, "expected ';' after read statement")
	return &ast.ReadStmt{Position: pos, Lhs: loc}
}

func (p *Parser) parseWriteStmt() ast.Stmt {
	pos := p.current.Position
	p.consume(lexer.TokenWrite, "expected 'write'")
	expr := p.parseExpr()
	p.consume(lexer.TokenSemicolon, "expected ';' after write statement")
	return &ast.WriteStmt{Position: pos, Expr: expr}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	pos := p.current.Position
	p.consume(lexer.TokenReturn, "expected 'return'")
	ret := &ast.ReturnStmt{Position: pos}
	if !p.check(lexer.TokenSemicolon) {
		ret.Expr = p.parseExpr()
	}
	p.consume(lexer.TokenSemicolon, "expected ';' after return statement")
	return ret
}

// parseIdentifierLedStmt handles the four statement forms that start
// with a bare identifier: a call (`id(...)`), an assignment, a
// post-increment, or a post-decrement — the last three share a Loc
// prefix that may itself be a dotted chain.
func (p *Parser) parseIdentifierLedStmt() ast.Stmt {
	startID := p.expectIdentifier("expected identifier")
	if p.check(lexer.TokenLeftParen) {
		call := p.parseCallTail(startID)
		p.consume(lexer.TokenSemicolon, "expected ';' after call")
		return &ast.CallStmt{Position: call.Position, Call: call}
	}

	loc := p.parseLocTail(startID)
	switch {
	case p.match(lexer.TokenAssign):
		rhs := p.parseExpr()
		p.consume(lexer.TokenSemicolon, "expected ';' after assignment")
		return &ast.AssignStmt{Position: loc.Pos(), Lhs: loc, Rhs: rhs}
	case p.match(lexer.TokenPlusPlus):
		p.consume(lexer.TokenSemicolon, "expected ';' after '++'")
		return &ast.PostIncStmt{Position: loc.Pos(), Lhs: loc}
	case p.match(lexer.TokenMinusMinus):
		p.consume(lexer.TokenSemicolon, "expected ';' after '--'")
		return &ast.PostDecStmt{Position: loc.Pos(), Lhs: loc}
	default:
		p.error("expected '=', '++' or '--' after location")
		panic(errParseFailed)
	}
}

// parseLoc parses `id ('.' id)*`.
func (p *Parser) parseLoc() ast.Expr {
	id := p.expectIdentifier("expected identifier")
	return p.parseLocTail(id)
}

// parseLocTail continues a Loc whose leading identifier has already
// been consumed as start.
func (p *Parser) parseLocTail(start *ast.Id) ast.Expr {
	var loc ast.Expr = start
	for p.match(lexer.TokenDot) {
		field := p.expectIdentifier("expected field name after '.'")
		loc = &ast.DotAccess{Position: loc.Pos(), Loc: loc, Field: field}
	}
	return loc
}

func (p *Parser) parseCallTail(id *ast.Id) *ast.CallExpr {
	call := &ast.CallExpr{Position: id.Position, Id: id}
	p.consume(lexer.TokenLeftParen, "expected '(' after function name")
	for !p.check(lexer.TokenRightParen) {
		call.Args = append(call.Args, p.parseExpr())
		if !p.match(lexer.TokenComma) {
			break
		}
	}
	p.consume(lexer.TokenRightParen, "expected ')' after arguments")
	return call
}

// parseExpr parses a full expression, including assignment used as a
// value: `Loc '=' Exp`. Assignment is checked for after parsing a
// primary/unary operand, since only a Loc — never a general binary
// result — can appear on its left.
func (p *Parser) parseExpr() ast.Expr {
	left := p.parseUnary()
	if p.check(lexer.TokenAssign) && isLoc(left) {
		pos := left.Pos()
		p.advance()
		rhs := p.parseExpr()
		return &ast.AssignExpr{Position: pos, Lhs: left, Rhs: rhs}
	}
	return p.parseBinaryRHS(left, PrecNone)
}

func isLoc(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Id, *ast.DotAccess:
		return true
	default:
		return false
	}
}

// parseBinaryRHS folds binary operators onto left via precedence
// climbing: an operator is only consumed while its precedence meets
// minPrec, and every operator here is left-associative.
func (p *Parser) parseBinaryRHS(left ast.Expr, minPrec Precedence) ast.Expr {
	for {
		prec := binaryPrecedence(p.current.Type)
		if prec < minPrec || prec == PrecNone {
			return left
		}
		opTok := p.current
		p.advance()
		right := p.parseUnary()
		for binaryPrecedence(p.current.Type) > prec {
			right = p.parseBinaryRHS(right, prec+1)
		}
		left = &ast.BinaryExpr{Position: opTok.Position, Op: binaryOpFor(opTok.Type), Left: left, Right: right}
	}
}

// parseUnary parses a prefix unary operator or falls through to a
// primary expression.
func (p *Parser) parseUnary() ast.Expr {
	switch p.current.Type {
	case lexer.TokenMinus:
		pos := p.current.Position
		p.advance()
		return &ast.UnaryExpr{Position: pos, Op: ast.OpUnaryMinus, Operand: p.parseUnary()}
	case lexer.TokenNot:
		pos := p.current.Position
		p.advance()
		return &ast.UnaryExpr{Position: pos, Op: ast.OpNot, Operand: p.parseUnary()}
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.current.Type {
	case lexer.TokenIntLit:
		tok := p.current
		p.advance()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			p.error(fmt.Sprintf("invalid integer literal %q", tok.Lexeme))
		}
		return &ast.IntLit{Position: tok.Position, Value: value}
	case lexer.TokenStrLit:
		tok := p.current
		p.advance()
		return &ast.StrLit{Position: tok.Position, Value: tok.Lexeme}
	case lexer.TokenTrue:
		tok := p.current
		p.advance()
		return &ast.TrueLit{Position: tok.Position}
	case lexer.TokenFalse:
		tok := p.current
		p.advance()
		return &ast.FalseLit{Position: tok.Position}
	case lexer.TokenLeftParen:
		p.advance()
		inner := p.parseExpr()
		p.consume(lexer.TokenRightParen, "expected ')' after expression")
		return inner
	case lexer.TokenIdentifier:
		id := p.expectIdentifier("expected identifier")
		if p.check(lexer.TokenLeftParen) {
			return p.parseCallTail(id)
		}
		return p.parseLocTail(id)
	default:
		p.error(fmt.Sprintf("expected an expression, got %s", p.current.Type))
		panic(errParseFailed)
	}
}

// expectIdentifier consumes an identifier token and wraps it as an Id
// node, or records message and panics to unwind to the nearest
// recovery point.
func (p *Parser) expectIdentifier(message string) *ast.Id {
	if !p.check(lexer.TokenIdentifier) {
		p.error(message)
		panic(errParseFailed)
	}
	tok := p.current
	p.advance()
	return &ast.Id{Position: tok.Position, Lexeme: tok.Lexeme}
}

func (p *Parser) advance() {
	p.previous = p.current
	tok, err := p.lex.NextToken()
	if err != nil {
		p.error(err.Error())
		p.current = lexer.Token{Type: lexer.TokenInvalid, Position: p.previous.Position}
		return
	}
	p.current = tok
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.current.Type == tt
}

func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(tt lexer.TokenType, message string) {
	if p.check(tt) {
		p.advance()
		return
	}
	p.error(message)
	panic(errParseFailed)
}

func (p *Parser) isAtEnd() bool {
	return p.current.Type == lexer.TokenEOF
}

func (p *Parser) error(message string) {
	p.errs = append(p.errs, errors.Errorf("%s: %s", p.current.Position.String(), message))
}

// synchronize skips at least one token, then stops just after a ';' or
// '}' or at a type keyword that can start a fresh top-level
// declaration, so one malformed declaration doesn't cascade into
// spurious errors for everything after it.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		p.advance()
		if p.previous.Type == lexer.TokenSemicolon || p.previous.Type == lexer.TokenRightBrace {
			return
		}
		switch p.current.Type {
		case lexer.TokenInt, lexer.TokenBool, lexer.TokenVoid, lexer.TokenStruct:
			return
		}
	}
}
