package movegen

import "github.com/herohde/fidechess/pkg/board"

// IsAttacked reports whether sq is attacked by any piece of the given color. It iterates
// the attacking color's piece list and tests each piece with a piece-specific routine,
// rather than casting rays outward from sq.
func IsAttacked(b *board.Board, sq board.Square, by board.Color) bool {
	for _, po := range b.Pieces(by) {
		if attacks(b, po, sq) {
			return true
		}
	}
	return false
}

func attacks(b *board.Board, attacker board.PieceOnSquare, target board.Square) bool {
	switch attacker.Piece.Type {
	case board.Pawn:
		return board.PawnAttacks(attacker.Piece.Color, attacker.Square).Test(target)
	case board.Knight:
		return board.KnightAttacks(attacker.Square).Test(target)
	case board.King:
		return board.KingAttacks(attacker.Square).Test(target)
	case board.Bishop:
		return slideAttacks(b, attacker.Square, board.BishopDirections, target)
	case board.Rook:
		return slideAttacks(b, attacker.Square, board.RookDirections, target)
	case board.Queen:
		return slideAttacks(b, attacker.Square, board.QueenDirections, target)
	default:
		return false
	}
}

// slideAttacks ray-casts from a slider's square in each direction; it hits iff target is
// the first square encountered (empty squares in between, nothing blocking).
func slideAttacks(b *board.Board, from board.Square, dirs []board.Offset, target board.Square) bool {
	for _, d := range dirs {
		cur := from
		for {
			to, ok := cur.Add(d.DF, d.DR)
			if !ok {
				break
			}
			if to == target {
				return true
			}
			if !b.PieceAt(to).IsEmpty() {
				break
			}
			cur = to
		}
	}
	return false
}

// IsCheck reports whether side's king is currently attacked.
func IsCheck(b *board.Board, side board.Color) bool {
	return IsAttacked(b, b.KingSquare(side), side.Opponent())
}

// IsCheckmate reports whether side is in check with no legal move available.
func IsCheckmate(b *board.Board, side board.Color) bool {
	return IsCheck(b, side) && len(LegalMoves(b, side)) == 0
}

// IsStalemate reports whether side is not in check but has no legal move available.
func IsStalemate(b *board.Board, side board.Color) bool {
	return !IsCheck(b, side) && len(LegalMoves(b, side)) == 0
}
