// Package engine implements the synchronous engine façade: start, set board, get move.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/herohde/fidechess/pkg/board"
	"github.com/herohde/fidechess/pkg/board/fen"
	"github.com/herohde/fidechess/pkg/eval"
	"github.com/herohde/fidechess/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 89, 3)

const defaultDepth = 5

// Options are engine creation options.
type Options struct {
	// Depth is the default search depth in plies.
	Depth uint
	// Noise adds some millipawn randomness to leaf evaluations, for play variety.
	Noise uint
	// Profile is the search profile (quiescence extensions, alpha-beta, pruning).
	Profile search.Profile
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, noise=%v, profile=%+v}", o.Depth, o.Noise, o.Profile)
}

// Engine is a single-threaded, synchronous chess engine. A single GetMove call is an
// uninterruptible computation over a private working set: the core has no internal event
// loop and nothing is shared across goroutines (spec.md §5's concurrency model). Callers
// wanting to bound search time must enforce it externally, e.g. by running GetMove on its
// own goroutine and abandoning the result.
type Engine struct {
	name, author string

	zt   *board.ZobristTable
	seed int64
	opts Options

	b     *board.Board
	color board.Color
	noise eval.Random
	rnd   *rand.Rand
	book  Book

	lastBest    board.Move
	hasLastBest bool

	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithZobrist configures the engine to use the given random seed instead of the default
// seed of zero, for both the Zobrist table and leaf noise/root tie-breaking.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithBook configures an opening book, consulted by GetMove before falling back to search.
func WithBook(book Book) Option {
	return func(e *Engine) {
		e.book = book
	}
}

// New creates a new engine, initialized to the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		opts:   Options{Depth: defaultDepth},
		book:   NoBook,
	}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.seed)
	e.rnd = rand.New(rand.NewSource(e.seed))
	if e.opts.Noise > 0 {
		e.noise = eval.NewRandom(int(e.opts.Noise), e.seed)
	}

	b, err := fen.Decode(fen.Initial)
	if err != nil {
		panic(err) // fen.Initial is a constant; a parse failure here is a bug, not a runtime condition
	}
	e.b = b

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Start initializes the engine to the given board and the color the engine plays.
func (e *Engine) Start(ctx context.Context, b *board.Board, color board.Color) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Start %v, color=%v", fen.Encode(b), color)

	e.b = b.Fork()
	e.color = color
	e.hasLastBest = false
}

// SetBoard replaces the current position.
func (e *Engine) SetBoard(ctx context.Context, b *board.Board) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "SetBoard %v", fen.Encode(b))

	e.b = b.Fork()
	e.hasLastBest = false
}

// SetPosition replaces the current position from a FEN string. Convenience wrapper around
// SetBoard; accepts "startpos" as a synonym for the standard initial position.
func (e *Engine) SetPosition(ctx context.Context, position string) error {
	if position == "startpos" {
		position = fen.Initial
	}
	b, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.SetBoard(ctx, b)
	return nil
}

// Position returns the current position in FEN format.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b)
}

// Board returns a forked copy of the current board.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Fork()
}

// SetSearchDepth configures the ply depth used by GetMove.
func (e *Engine) SetSearchDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

// GetMove consults the opening book first and, on a miss, builds a move tree to the
// configured depth and returns the best move at the root, breaking ties among equally-rated
// root moves uniformly at random. If the previous GetMove call on this same position found a
// best move, it is forced first in root move ordering (search.Tree.SetHint) before falling
// back to MVVLVA; the hint is discarded whenever the position changes. Returns false if there
// is no legal move (checkmate or stalemate); the caller distinguishes the two via
// movegen.IsCheck.
func (e *Engine) GetMove(ctx context.Context) (board.Move, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos := fen.Encode(e.b)

	book, err := e.book.Find(ctx, pos)
	if err != nil {
		logw.Infof(ctx, "GetMove %v: book lookup failed: %v", pos, err)
	} else if len(book) > 0 {
		m := book[e.rnd.Intn(len(book))]
		logw.Infof(ctx, "GetMove %v: book move %v", pos, m)
		return m, true
	}

	depth := int(e.opts.Depth)
	if depth <= 0 {
		depth = defaultDepth
	}

	tree := search.NewTree(e.opts.Profile, e.zt, e.noise, e.rnd)
	if e.hasLastBest {
		tree.SetHint(e.lastBest)
	}
	tree.BuildTree(e.b, depth)

	m, ok := tree.BestMove()
	if !ok {
		logw.Infof(ctx, "GetMove %v: no legal move", pos)
		e.hasLastBest = false
		return board.Move{}, false
	}

	e.lastBest, e.hasLastBest = m, true

	logw.Infof(ctx, "GetMove %v: %v", pos, m)
	return m, true
}

// Move applies the given move to the current position, usually an opponent move.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	e.b.ApplyMove(m)
	e.hasLastBest = false
	logw.Infof(ctx, "Move %v: %v", m, fen.Encode(e.b))
	return nil
}

// Stop releases resources. Safe to call multiple times; the core has no background state to
// tear down since every GetMove call is already synchronous and self-contained.
func (e *Engine) Stop(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Stop")
}
