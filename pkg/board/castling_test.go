package board_test

import (
	"testing"

	"github.com/herohde/fidechess/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestCastlingIsAllowed(t *testing.T) {
	c := board.WhiteKingSideCastle | board.BlackQueenSideCastle

	assert.True(t, c.IsAllowed(board.WhiteKingSideCastle))
	assert.True(t, c.IsAllowed(board.BlackQueenSideCastle))
	assert.False(t, c.IsAllowed(board.WhiteQueenSideCastle))
	assert.False(t, c.IsAllowed(board.BlackKingSideCastle))
}

func TestCastlingString(t *testing.T) {
	tests := []struct {
		c        board.Castling
		expected string
	}{
		{board.ZeroCastling, "-"},
		{board.FullCastingRights, "KQkq"},
		{board.WhiteKingSideCastle | board.BlackQueenSideCastle, "Kq"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.c.String())
	}
}
