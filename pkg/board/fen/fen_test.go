package fen_test

import (
	"testing"

	"github.com/herohde/fidechess/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/3pP3/8/8/8/8 w - d6 0 1",
	}

	for _, tt := range tests {
		b, err := fen.Decode(tt)
		require.NoError(t, err)

		assert.Equal(t, tt, fen.Encode(b))
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []string{
		"",
		"not a fen string",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"8/8/8/8/8/8/8/8 x - - 0 1",
		"4P3P/8/8/8/8/8/8/8 w - - 0 1",
		"7/8/8/8/8/8/8/8 w - - 0 1",
		"8/8/8/8/8/8/8 w - - 0 1",
		"9/8/8/8/8/8/8/8 w - - 0 1",
	}

	for _, tt := range tests {
		_, err := fen.Decode(tt)
		assert.Error(t, err)
	}
}
