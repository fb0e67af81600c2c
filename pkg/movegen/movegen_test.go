package movegen_test

import (
	"testing"

	"github.com/herohde/fidechess/pkg/board"
	"github.com/herohde/fidechess/pkg/board/fen"
	"github.com/herohde/fidechess/pkg/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMovesInitialPosition(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Len(t, movegen.LegalMoves(b, board.White), 20)
	assert.Len(t, movegen.LegalMoves(b, board.Black), 20)
}

func TestLegalMovesPromotion(t *testing.T) {
	b, err := fen.Decode("8/P7/8/8/8/8/8/k1K5 w - - 0 1")
	require.NoError(t, err)

	var promos int
	for _, m := range movegen.LegalMoves(b, board.White) {
		if m.From == board.NewSquare(board.FileA, board.Rank7) {
			promos++
		}
	}
	assert.Equal(t, 4, promos) // queen, rook, bishop, knight
}

func TestLegalMovesPinnedPieceCannotMove(t *testing.T) {
	// White king e1, white rook e2 pinned by black rook e8.
	b, err := fen.Decode("4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	for _, m := range movegen.LegalMoves(b, board.White) {
		assert.False(t, m.From == board.NewSquare(board.FileE, board.Rank2) && m.To.File() != board.FileE,
			"pinned rook must not leave the e-file: %v", m)
	}
}

func TestLegalMovesKingCannotMoveIntoCheck(t *testing.T) {
	b, err := fen.Decode("4k3/8/4r3/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	for _, m := range movegen.LegalMoves(b, board.White) {
		assert.NotEqual(t, board.NewSquare(board.FileE, board.Rank2), m.To)
	}
}

func TestLegalMovesCastlingKingside(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	var found bool
	for _, m := range movegen.LegalMoves(b, board.White) {
		if m.From == board.E1 && m.To == board.G1 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLegalMovesCastlingBlockedThroughCheck(t *testing.T) {
	// Black rook on f7 attacks f1, the king's transit square: castling must not be offered.
	b, err := fen.Decode("4k2r/5r2/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	for _, m := range movegen.LegalMoves(b, board.White) {
		assert.False(t, m.From == board.E1 && m.To == board.G1)
	}
}

func TestLegalMovesEnPassant(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	var found bool
	for _, m := range movegen.LegalMoves(b, board.White) {
		if m.From == board.NewSquare(board.FileE, board.Rank5) && m.To == board.NewSquare(board.FileD, board.Rank6) {
			found = true
		}
	}
	assert.True(t, found)
}
