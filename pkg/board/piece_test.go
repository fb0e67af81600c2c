package board_test

import (
	"testing"

	"github.com/herohde/fidechess/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestParsePieceType(t *testing.T) {
	tests := []struct {
		r        rune
		expected board.PieceType
	}{
		{'P', board.Pawn}, {'p', board.Pawn},
		{'N', board.Knight}, {'n', board.Knight},
		{'B', board.Bishop}, {'b', board.Bishop},
		{'R', board.Rook}, {'r', board.Rook},
		{'Q', board.Queen}, {'q', board.Queen},
		{'K', board.King}, {'k', board.King},
	}

	for _, tt := range tests {
		pt, ok := board.ParsePieceType(tt.r)
		assert.True(t, ok)
		assert.Equal(t, tt.expected, pt)
	}

	_, ok := board.ParsePieceType('x')
	assert.False(t, ok)
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "P", board.Piece{Type: board.Pawn, Color: board.White}.String())
	assert.Equal(t, "p", board.Piece{Type: board.Pawn, Color: board.Black}.String())
	assert.Equal(t, "K", board.Piece{Type: board.King, Color: board.White}.String())
	assert.Equal(t, ".", board.NoPiece.String())
}

func TestPieceIsEmpty(t *testing.T) {
	assert.True(t, board.NoPiece.IsEmpty())
	assert.False(t, board.Piece{Type: board.Pawn, Color: board.White}.IsEmpty())
}
