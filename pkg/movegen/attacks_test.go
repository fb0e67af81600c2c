package movegen_test

import (
	"testing"

	"github.com/herohde/fidechess/pkg/board"
	"github.com/herohde/fidechess/pkg/board/fen"
	"github.com/herohde/fidechess/pkg/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAttackedBySlider(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, movegen.IsAttacked(b, board.NewSquare(board.FileD, board.Rank1), board.White))
	assert.False(t, movegen.IsAttacked(b, board.NewSquare(board.FileB, board.Rank2), board.White))
}

func TestIsAttackedBlockedBySlider(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/4P3/4RK2 w - - 0 1")
	require.NoError(t, err)

	// The rook's own pawn on e2 blocks the ray before it reaches e8.
	assert.False(t, movegen.IsAttacked(b, board.NewSquare(board.FileE, board.Rank8), board.White))
}

func TestIsAttackedByPawn(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/3P4/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, movegen.IsAttacked(b, board.NewSquare(board.FileC, board.Rank4), board.White))
	assert.True(t, movegen.IsAttacked(b, board.NewSquare(board.FileE, board.Rank4), board.White))
	assert.False(t, movegen.IsAttacked(b, board.NewSquare(board.FileD, board.Rank4), board.White))
}

func TestIsCheck(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	require.NoError(t, err)

	assert.False(t, movegen.IsCheck(b, board.Black))

	b2, err := fen.Decode("4k3/8/8/8/8/8/8/4K2R b - - 0 1")
	require.NoError(t, err)
	assert.False(t, movegen.IsCheck(b2, board.Black))
}

func TestIsCheckmate(t *testing.T) {
	b, err := fen.Decode("6k1/5QQ1/8/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)

	assert.True(t, movegen.IsCheckmate(b, board.Black))
	assert.False(t, movegen.IsStalemate(b, board.Black))
}

func TestIsStalemate(t *testing.T) {
	// Black king a8 boxed in by the white king and queen, not in check: stalemate.
	b, err := fen.Decode("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	assert.False(t, movegen.IsCheck(b, board.Black))
	assert.True(t, movegen.IsStalemate(b, board.Black))
	assert.False(t, movegen.IsCheckmate(b, board.Black))
}
