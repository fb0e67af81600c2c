package engine_test

import (
	"context"
	"testing"

	"github.com/herohde/fidechess/pkg/board"
	"github.com/herohde/fidechess/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMoveConsultsBook(t *testing.T) {
	ctx := context.Background()

	book, err := engine.NewBook([]engine.Line{{"e2e4"}})
	require.NoError(t, err)

	e := engine.New(ctx, "test", "tester", engine.WithBook(book))

	m, ok := e.GetMove(ctx)
	require.True(t, ok)
	assert.Equal(t, "e2e4", m.String())
}

func TestGetMoveFallsBackToSearchPastBook(t *testing.T) {
	ctx := context.Background()

	book, err := engine.NewBook([]engine.Line{{"e2e4"}})
	require.NoError(t, err)

	e := engine.New(ctx, "test", "tester", engine.WithBook(book))
	e.SetSearchDepth(2)
	require.NoError(t, e.Move(ctx, "e2e4"))
	require.NoError(t, e.Move(ctx, "e7e5"))

	// Position is past the single book line; GetMove must fall back to search rather than
	// returning an empty book result.
	_, ok := e.GetMove(ctx)
	assert.True(t, ok)
}

func TestGetMoveDefaultsToNoBook(t *testing.T) {
	ctx := context.Background()

	e := engine.New(ctx, "test", "tester")
	e.SetSearchDepth(2)
	m, ok := e.GetMove(ctx)
	require.True(t, ok)
	assert.NotEqual(t, board.Move{}, m)
}
