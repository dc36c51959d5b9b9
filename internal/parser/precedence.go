package parser

import (
	"github.com/hassan/harambe/internal/ast"
	"github.com/hassan/harambe/internal/lexer"
)

// Precedence ranks harambe's binary operators. Higher binds tighter.
// The surface grammar in SPEC_FULL.md §0 lists the operators as one
// unprioritized alternation, so this ordering is a resolved ambiguity:
// it follows the conventional C ranking the language otherwise
// imitates (logical looser than equality, equality looser than
// relational, relational looser than additive, additive looser than
// multiplicative).
type Precedence int

const (
	PrecNone Precedence = iota
	PrecOr                 // ||
	PrecAnd                // &&
	PrecEquality           // ==, !=
	PrecRelational         // <, <=, >, >=
	PrecAdditive           // +, -
	PrecMultiplicative     // *, /
)

// binaryPrecedence returns tt's precedence, or PrecNone if tt is not
// one of harambe's binary operators.
func binaryPrecedence(tt lexer.TokenType) Precedence {
	switch tt {
	case lexer.TokenOr:
		return PrecOr
	case lexer.TokenAnd:
		return PrecAnd
	case lexer.TokenEqual, lexer.TokenNotEqual:
		return PrecEquality
	case lexer.TokenLess, lexer.TokenLessEqual, lexer.TokenGreater, lexer.TokenGreaterEqual:
		return PrecRelational
	case lexer.TokenPlus, lexer.TokenMinus:
		return PrecAdditive
	case lexer.TokenStar, lexer.TokenSlash:
		return PrecMultiplicative
	default:
		return PrecNone
	}
}

// binaryOpFor maps a binary-operator token to its ast.BinaryOp. Only
// called once binaryPrecedence has confirmed tt is one of these.
func binaryOpFor(tt lexer.TokenType) ast.BinaryOp {
	switch tt {
	case lexer.TokenPlus:
		return ast.OpPlus
	case lexer.TokenMinus:
		return ast.OpMinus
	case lexer.TokenStar:
		return ast.OpTimes
	case lexer.TokenSlash:
		return ast.OpDivide
	case lexer.TokenAnd:
		return ast.OpAnd
	case lexer.TokenOr:
		return ast.OpOr
	case lexer.TokenEqual:
		return ast.OpEquals
	case lexer.TokenNotEqual:
		return ast.OpNotEquals
	case lexer.TokenLess:
		return ast.OpLess
	case lexer.TokenGreater:
		return ast.OpGreater
	case lexer.TokenLessEqual:
		return ast.OpLessEq
	case lexer.TokenGreaterEqual:
		return ast.OpGreaterEq
	default:
		return ast.OpPlus
	}
}
