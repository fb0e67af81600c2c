// Package eval contains static position evaluation logic.
package eval

import (
	"github.com/herohde/fidechess/pkg/board"
	"github.com/herohde/fidechess/pkg/movegen"
)

const (
	mateScore           = 100000
	pawnAdvanceWeight   = 1e-4
	blockedMajorPenalty = 0.01
	castlingRightWeight = 0.01
)

// NominalValue is the absolute nominal value in pawns of a piece type.
func NominalValue(t board.PieceType) float64 {
	switch t {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 2
	case board.Rook:
		return 5
	case board.Queen:
		return 10
	case board.King:
		return 1000
	default:
		return 0
	}
}

// Rate returns a static score for the position from side's point of view. Positive favors
// side. Only the mate terminal and material sign/ordering are a testable contract; the
// remaining terms are design-tunable.
func Rate(b *board.Board, side board.Color) float64 {
	if movegen.IsCheckmate(b, side.Opponent()) {
		return mateScore
	}
	if movegen.IsCheckmate(b, side) {
		return -mateScore
	}

	score := material(b, side)
	score += pawnAdvancement(b, side)
	score += blockedMajors(b, side)
	score += castlingRights(b, side)
	return score
}

func material(b *board.Board, side board.Color) float64 {
	var score float64
	for _, po := range b.Pieces(side) {
		score += NominalValue(po.Piece.Type)
	}
	for _, po := range b.Pieces(side.Opponent()) {
		score -= NominalValue(po.Piece.Type)
	}
	return score
}

func pawnAdvancement(b *board.Board, side board.Color) float64 {
	var score float64
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for _, po := range b.Pieces(c) {
			if po.Piece.Type != board.Pawn {
				continue
			}

			var progress float64
			if po.Piece.Color == board.White {
				progress = float64(po.Square.Rank().V()) / 7
			} else {
				progress = float64(7-po.Square.Rank().V()) / 7
			}

			bonus := progress * pawnAdvanceWeight
			if c == side {
				score += bonus
			} else {
				score -= bonus
			}
		}
	}
	return score
}

// blockedMajors penalizes a queen or rook with no reachable neighbour square (every
// neighbour occupied by a piece of the same color).
func blockedMajors(b *board.Board, side board.Color) float64 {
	var own, opp int
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for _, po := range b.Pieces(c) {
			var neighbours []board.Square
			switch po.Piece.Type {
			case board.Queen:
				neighbours = board.AllNeighbours(po.Square)
			case board.Rook:
				neighbours = board.RookRayNeighbours(po.Square)
			default:
				continue
			}
			if len(neighbours) == 0 || !isBlocked(b, neighbours, c) {
				continue
			}
			if c == side {
				own++
			} else {
				opp++
			}
		}
	}
	return float64(opp-own) * blockedMajorPenalty
}

func isBlocked(b *board.Board, neighbours []board.Square, color board.Color) bool {
	for _, n := range neighbours {
		p := b.PieceAt(n)
		if p.IsEmpty() || p.Color != color {
			return false
		}
	}
	return true
}

func castlingRights(b *board.Board, side board.Color) float64 {
	ks, qs := board.WhiteKingSideCastle, board.WhiteQueenSideCastle
	if side == board.Black {
		ks, qs = board.BlackKingSideCastle, board.BlackQueenSideCastle
	}

	var score float64
	c := b.Castling()
	if c.IsAllowed(ks) {
		score += castlingRightWeight
	}
	if c.IsAllowed(qs) {
		score += castlingRightWeight
	}
	return score
}
