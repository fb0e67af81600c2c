package search

import (
	"container/heap"
	"fmt"

	"github.com/herohde/fidechess/pkg/board"
	"github.com/herohde/fidechess/pkg/eval"
)

// Priority represents the move order priority.
type Priority int16

// MoveList is a move priority queue for move ordering ahead of alpha-beta: faithful
// ordering is what makes the pruning effective.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priorities.
func NewMoveList(moves []board.Move, fn func(move board.Move) Priority) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move. It is the highest priority move in the list.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.Size() == 0 {
		return board.Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   board.Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}

// MVVLVA returns the "most valuable victim, least valuable attacker" priority for m on b,
// prior to m being applied.
func MVVLVA(b *board.Board, m board.Move) Priority {
	victim := b.PieceAt(m.To)
	if victim.IsEmpty() {
		return 0
	}
	attacker := b.PieceAt(m.From)
	return Priority(100*eval.NominalValue(victim.Type) - eval.NominalValue(attacker.Type))
}

// First puts the given move first. Otherwise falls back to MVVLVA.
type First board.Move

func (f First) Priority(b *board.Board, m board.Move) Priority {
	if m.Equals(board.Move(f)) {
		return 10000
	}
	return MVVLVA(b, m)
}
