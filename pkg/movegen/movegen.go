// Package movegen generates pseudo-legal and legal chess moves and detects check/checkmate.
package movegen

import "github.com/herohde/fidechess/pkg/board"

// PseudoLegalMoves enumerates every pseudo-legal move for side: piece destinations are
// bounds-checked and do not land on a same-colored piece, but the moving side's own king
// may be left in check. Every promoting pawn move (push or capture) emits all four
// promotion types.
func PseudoLegalMoves(b *board.Board, side board.Color) []board.Move {
	var moves []board.Move
	for _, po := range b.Pieces(side) {
		switch po.Piece.Type {
		case board.Pawn:
			moves = append(moves, pawnMoves(b, side, po.Square)...)
		case board.Knight:
			moves = append(moves, jumpMoves(b, side, po.Square, board.KnightOffsets)...)
		case board.Bishop:
			moves = append(moves, slideMoves(b, side, po.Square, board.BishopDirections)...)
		case board.Rook:
			moves = append(moves, slideMoves(b, side, po.Square, board.RookDirections)...)
		case board.Queen:
			moves = append(moves, slideMoves(b, side, po.Square, board.QueenDirections)...)
		case board.King:
			moves = append(moves, kingMoves(b, side, po.Square)...)
		}
	}
	return moves
}

// LegalMoves filters PseudoLegalMoves down to those that do not leave side's own king in
// check: the board is copied, the move applied to the copy, and the copy discarded.
func LegalMoves(b *board.Board, side board.Color) []board.Move {
	pseudo := PseudoLegalMoves(b, side)
	ret := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		fork := b.Fork()
		fork.ApplyMove(m)
		if !IsAttacked(fork, fork.KingSquare(side), side.Opponent()) {
			ret = append(ret, m)
		}
	}
	return ret
}

func pawnMoves(b *board.Board, side board.Color, sq board.Square) []board.Move {
	var moves []board.Move

	dr := 1
	startRank := board.Rank2
	promoRank := board.Rank8
	if side == board.Black {
		dr = -1
		startRank = board.Rank7
		promoRank = board.Rank1
	}

	if one, ok := sq.Add(0, dr); ok && b.PieceAt(one).IsEmpty() {
		moves = append(moves, promotionsOrMove(sq, one, one.Rank() == promoRank)...)

		if sq.Rank() == startRank {
			if two, ok := sq.Add(0, 2*dr); ok && b.PieceAt(two).IsEmpty() {
				moves = append(moves, board.Move{From: sq, To: two})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := sq.Add(df, dr)
		if !ok {
			continue
		}

		target := b.PieceAt(to)
		isEnPassant := false
		if ept, has := b.EnPassant(); has && to == ept {
			isEnPassant = true
		}

		if isEnPassant || (!target.IsEmpty() && target.Color != side) {
			moves = append(moves, promotionsOrMove(sq, to, to.Rank() == promoRank)...)
		}
	}

	return moves
}

func promotionsOrMove(from, to board.Square, promote bool) []board.Move {
	if !promote {
		return []board.Move{{From: from, To: to}}
	}
	return []board.Move{
		{From: from, To: to, Promotion: board.Queen},
		{From: from, To: to, Promotion: board.Rook},
		{From: from, To: to, Promotion: board.Bishop},
		{From: from, To: to, Promotion: board.Knight},
	}
}

func jumpMoves(b *board.Board, side board.Color, sq board.Square, offsets []board.Offset) []board.Move {
	var moves []board.Move
	for _, o := range offsets {
		to, ok := sq.Add(o.DF, o.DR)
		if !ok {
			continue
		}
		p := b.PieceAt(to)
		if p.IsEmpty() || p.Color != side {
			moves = append(moves, board.Move{From: sq, To: to})
		}
	}
	return moves
}

func slideMoves(b *board.Board, side board.Color, sq board.Square, dirs []board.Offset) []board.Move {
	var moves []board.Move
	for _, d := range dirs {
		cur := sq
		for {
			to, ok := cur.Add(d.DF, d.DR)
			if !ok {
				break
			}
			p := b.PieceAt(to)
			if p.IsEmpty() {
				moves = append(moves, board.Move{From: sq, To: to})
				cur = to
				continue
			}
			if p.Color != side {
				moves = append(moves, board.Move{From: sq, To: to})
			}
			break
		}
	}
	return moves
}

// kingMoves generates king steps plus castling. Castling requires the right to still be
// held, the squares between king and rook empty, and -- correcting an observed source bug
// that only checked the king's current square -- that the king's current, transit and
// destination squares are all unattacked.
func kingMoves(b *board.Board, side board.Color, sq board.Square) []board.Move {
	moves := jumpMoves(b, side, sq, board.KingOffsets)

	rank := board.Rank1
	ks, qs := board.WhiteKingSideCastle, board.WhiteQueenSideCastle
	if side == board.Black {
		rank = board.Rank8
		ks, qs = board.BlackKingSideCastle, board.BlackQueenSideCastle
	}
	if sq != board.NewSquare(board.FileE, rank) {
		return moves
	}

	opp := side.Opponent()
	castling := b.Castling()

	if castling.IsAllowed(ks) {
		f := board.NewSquare(board.FileF, rank)
		g := board.NewSquare(board.FileG, rank)
		if b.PieceAt(f).IsEmpty() && b.PieceAt(g).IsEmpty() &&
			!IsAttacked(b, sq, opp) && !IsAttacked(b, f, opp) && !IsAttacked(b, g, opp) {
			moves = append(moves, board.Move{From: sq, To: g})
		}
	}
	if castling.IsAllowed(qs) {
		d := board.NewSquare(board.FileD, rank)
		c := board.NewSquare(board.FileC, rank)
		bsq := board.NewSquare(board.FileB, rank)
		if b.PieceAt(d).IsEmpty() && b.PieceAt(c).IsEmpty() && b.PieceAt(bsq).IsEmpty() &&
			!IsAttacked(b, sq, opp) && !IsAttacked(b, d, opp) && !IsAttacked(b, c, opp) {
			moves = append(moves, board.Move{From: sq, To: c})
		}
	}

	return moves
}
