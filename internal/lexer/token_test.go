package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_String(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			name: "identifier token",
			token: Token{
				Type:     TokenIdentifier,
				Lexeme:   "foo",
				Position: Position{Filename: "test.harambe", Line: 1, Column: 1},
			},
			expected: "IDENTIFIER(foo) at test.harambe:1:1",
		},
		{
			name: "intlit token",
			token: Token{
				Type:     TokenIntLit,
				Lexeme:   "42",
				Position: Position{Filename: "test.harambe", Line: 5, Column: 10},
			},
			expected: "INTLIT(42) at test.harambe:5:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.String())
		})
	}
}

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		name     string
		tt       TokenType
		expected string
	}{
		{"EOF", TokenEOF, "EOF"},
		{"Invalid", TokenInvalid, "INVALID"},
		{"IntLit", TokenIntLit, "INTLIT"},
		{"StrLit", TokenStrLit, "STRLIT"},
		{"Identifier", TokenIdentifier, "IDENTIFIER"},
		{"If keyword", TokenIf, "IF"},
		{"Plus operator", TokenPlus, "PLUS"},
		{"Left paren", TokenLeftParen, "LPAREN"},
		{"Unknown type", TokenType(9999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tt.String())
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expected   TokenType
	}{
		{"if keyword", "if", TokenIf},
		{"else keyword", "else", TokenElse},
		{"while keyword", "while", TokenWhile},
		{"return keyword", "return", TokenReturn},
		{"struct keyword", "struct", TokenStruct},
		{"read keyword", "read", TokenRead},
		{"write keyword", "write", TokenWrite},
		{"true keyword", "true", TokenTrue},
		{"false keyword", "false", TokenFalse},
		{"int keyword", "int", TokenInt},
		{"bool keyword", "bool", TokenBool},
		{"void keyword", "void", TokenVoid},
		{"not a keyword", "foobar", TokenIdentifier},
		{"case sensitive - If", "If", TokenIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LookupKeyword(tt.identifier))
		})
	}
}
