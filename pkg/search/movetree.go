package search

import (
	"math"
	"math/rand"
	"sort"

	"github.com/herohde/fidechess/pkg/board"
	"github.com/herohde/fidechess/pkg/eval"
	"github.com/herohde/fidechess/pkg/movegen"
)

// pruneMargin is how far below the best rating seen so far (in pawns) a sibling must fall
// before EnablePruning drops it without recursing into its subtree.
const pruneMargin = 3.0

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// NodeID addresses a Node in a Tree's arena.
type NodeID int32

// Node is one ply of a MoveTree: the move that was played to reach it, its rating from the
// mover's point of view, and (if expanded) its own children. Leaves have a nil Children.
type Node struct {
	Move   board.Move
	Mover  board.Color
	Rating float64

	Children []NodeID

	IsCapture   bool
	IsCastle    bool
	IsEnPassant bool
	IsCheck     bool
	IsCheckmate bool
}

// Tree is an arena-backed move tree rooted at a board position: nodes are addressed by
// NodeID into a single flat slice, rather than as a graph of heap-allocated, pointer-linked
// structs. BuildTree expands the whole tree depth plies deep in one call; repeated calls
// rebuild from scratch (a Tree is not incrementally deepened).
type Tree struct {
	profile Profile
	zobrist *board.ZobristTable
	noise   eval.Random
	rnd     *rand.Rand

	nodes []Node
	roots []NodeID
	seen  map[board.ZobristHash]struct{}

	hint    board.Move
	hasHint bool
}

// SetHint forces m first in root-level move ordering on the next BuildTree call, e.g. the
// best move found by a previous, shallower search over the same position. It has no effect
// below the root; ordering there always falls back to MVVLVA.
func (t *Tree) SetHint(m board.Move) {
	t.hint = m
	t.hasHint = true
}

// NewTree returns an empty tree with the given search profile. zobrist is used for the
// transposition dedup set at depth >= 3; noise perturbs leaf ratings for play variety; rnd
// breaks ties among equally-rated root moves (nil disables tie-breaking, always picking the
// first).
func NewTree(profile Profile, zobrist *board.ZobristTable, noise eval.Random, rnd *rand.Rand) *Tree {
	return &Tree{profile: profile, zobrist: zobrist, noise: noise, rnd: rnd}
}

// BuildTree expands the full tree of legal lines depth plies deep from b, rating every leaf
// and propagating interior ratings by negamax. At depth >= 3, positions already reached by
// another line are not inserted a second time (the evaluator is history-free, so their
// subtrees would be identical).
func (t *Tree) BuildTree(b *board.Board, depth int) {
	t.nodes = t.nodes[:0]
	t.roots = nil
	t.seen = nil
	if depth >= 3 {
		t.seen = make(map[board.ZobristHash]struct{})
	}

	t.roots = t.generate(b, b.Turn(), depth-1, negInf, posInf, true)
}

// generate enumerates side's legal moves from b, creating and rating one node per
// (non-duplicate) move, recursing while remaining plies are left or a quiescence extension
// applies. Children are returned sorted best-first. alpha/beta bound this call's rating from
// the caller's point of view; once alpha >= beta (only tracked when AlphaBeta is enabled),
// remaining siblings are not explored at all.
func (t *Tree) generate(b *board.Board, side board.Color, remaining int, alpha, beta float64, isRoot bool) []NodeID {
	moves := movegen.LegalMoves(b, side)
	if len(moves) == 0 {
		return nil
	}

	fn := func(m board.Move) Priority { return MVVLVA(b, m) }
	if isRoot && t.hasHint {
		hint := First(t.hint)
		fn = func(m board.Move) Priority { return hint.Priority(b, m) }
	}
	list := NewMoveList(moves, fn)
	responder := side.Opponent()

	var ids []NodeID
	best := negInf

	for {
		m, ok := list.Next()
		if !ok {
			break
		}

		moving := b.PieceAt(m.From)
		wasCapture := !b.PieceAt(m.To).IsEmpty()
		wasCastle := moving.Type == board.King && fileDelta(m) == 2
		ept, epOK := b.EnPassant()
		wasEnPassant := moving.Type == board.Pawn && epOK && m.To == ept && m.From.File() != m.To.File()

		child := b.Fork()
		child.ApplyMove(m)

		if t.seen != nil {
			h := t.zobrist.Hash(child)
			if _, dup := t.seen[h]; dup {
				continue
			}
			t.seen[h] = struct{}{}
		}

		isCheck := movegen.IsCheck(child, responder)

		id := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, Node{
			Move: m, Mover: side,
			IsCapture: wasCapture, IsCastle: wasCastle, IsEnPassant: wasEnPassant,
			IsCheck: isCheck,
		})

		static := eval.Rate(child, side) + t.noise.Noise()
		extend := remaining <= 0 && ((t.profile.FollowCaptures && wasCapture) || (t.profile.FollowChecks && isCheck))
		pruned := t.profile.EnablePruning && remaining > 0 && len(ids) > 0 && static < best-pruneMargin

		var rating float64
		if (remaining > 0 || extend) && !pruned {
			next := remaining - 1
			if next < 0 {
				next = 0
			}
			childAlpha, childBeta := negInf, posInf
			if t.profile.AlphaBeta {
				childAlpha, childBeta = -beta, -alpha
			}

			kids := t.generate(child, responder, next, childAlpha, childBeta, false)
			t.nodes[id].Children = kids
			if len(kids) == 0 {
				rating = static
				t.nodes[id].IsCheckmate = isCheck && len(movegen.LegalMoves(child, responder)) == 0
				if t.nodes[id].IsCheckmate {
					rating += float64(remaining) // more plies left means a shorter mate
				}
			} else {
				rating = -t.nodes[kids[0]].Rating // kids are sorted best-first
			}
		} else {
			rating = static
			if len(movegen.LegalMoves(child, responder)) == 0 {
				t.nodes[id].IsCheckmate = isCheck
			}
		}

		t.nodes[id].Rating = rating
		ids = append(ids, id)

		if rating > best {
			best = rating
		}
		if t.profile.AlphaBeta {
			if rating > alpha {
				alpha = rating
			}
			if alpha >= beta {
				break
			}
		}
	}

	sort.SliceStable(ids, func(i, j int) bool { return t.nodes[ids[i]].Rating > t.nodes[ids[j]].Rating })
	return ids
}

func fileDelta(m board.Move) int {
	d := int(m.To.File()) - int(m.From.File())
	if d < 0 {
		d = -d
	}
	return d
}

// BestMove returns the root move with the highest rating, breaking ties uniformly at
// random among equally-rated candidates. Returns false if the tree has no legal root move.
func (t *Tree) BestMove() (board.Move, bool) {
	if len(t.roots) == 0 {
		return board.Move{}, false
	}

	best := t.nodes[t.roots[0]].Rating
	var top []NodeID
	for _, id := range t.roots {
		if t.nodes[id].Rating != best {
			break // roots are sorted best-first
		}
		top = append(top, id)
	}

	pick := top[0]
	if len(top) > 1 && t.rnd != nil {
		pick = top[t.rnd.Intn(len(top))]
	}
	return t.nodes[pick].Move, true
}

// walkLeaves visits every leaf (childless node) reachable from the roots.
func (t *Tree) walkLeaves(fn func(n *Node)) {
	var rec func(ids []NodeID)
	rec = func(ids []NodeID) {
		for _, id := range ids {
			n := &t.nodes[id]
			if len(n.Children) == 0 {
				fn(n)
			} else {
				rec(n.Children)
			}
		}
	}
	rec(t.roots)
}

// CountFinalPositions returns the number of leaves in the tree.
func (t *Tree) CountFinalPositions() int {
	n := 0
	t.walkLeaves(func(*Node) { n++ })
	return n
}

// CountFinalCaptures returns the number of leaves whose move was a capture.
func (t *Tree) CountFinalCaptures() int {
	n := 0
	t.walkLeaves(func(l *Node) {
		if l.IsCapture {
			n++
		}
	})
	return n
}

// CountFinalChecks returns the number of leaves whose move delivered check.
func (t *Tree) CountFinalChecks() int {
	n := 0
	t.walkLeaves(func(l *Node) {
		if l.IsCheck {
			n++
		}
	})
	return n
}

// CountFinalCheckmates returns the number of leaves whose move delivered checkmate.
func (t *Tree) CountFinalCheckmates() int {
	n := 0
	t.walkLeaves(func(l *Node) {
		if l.IsCheckmate {
			n++
		}
	})
	return n
}

// CountFinalCastles returns the number of leaves whose move was a castle.
func (t *Tree) CountFinalCastles() int {
	n := 0
	t.walkLeaves(func(l *Node) {
		if l.IsCastle {
			n++
		}
	})
	return n
}

// CountFinalEnPassants returns the number of leaves whose move was an en-passant capture.
func (t *Tree) CountFinalEnPassants() int {
	n := 0
	t.walkLeaves(func(l *Node) {
		if l.IsEnPassant {
			n++
		}
	})
	return n
}
