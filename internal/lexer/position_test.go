package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{
			name:     "valid position",
			pos:      Position{Filename: "test.harambe", Line: 42, Column: 15, Offset: 100},
			expected: "test.harambe:42:15",
		},
		{
			name:     "zero position",
			pos:      Position{},
			expected: ":0:0",
		},
		{
			name:     "line 1 column 1",
			pos:      Position{Filename: "main.harambe", Line: 1, Column: 1},
			expected: "main.harambe:1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pos.String())
		})
	}
}

func TestPosition_IsValid(t *testing.T) {
	assert.True(t, Position{Filename: "t", Line: 1, Column: 1}.IsValid())
	assert.False(t, Position{Filename: "t", Line: 0, Column: 1}.IsValid())
	assert.False(t, Position{Filename: "t", Line: -1, Column: 1}.IsValid())
}

func TestPosition_Before(t *testing.T) {
	assert.True(t, Position{Offset: 10}.Before(Position{Offset: 20}))
	assert.False(t, Position{Offset: 30}.Before(Position{Offset: 20}))
	assert.False(t, Position{Offset: 20}.Before(Position{Offset: 20}))
}
