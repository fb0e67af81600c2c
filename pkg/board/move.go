package board

import "fmt"

// Move represents a not-necessarily-legal move in pure coordinate form: a from/to
// square pair plus an optional promotion piece type. It carries no other context
// (no capture flag, no castling/en-passant tag) — that context is derived from the
// board the move is applied to, not stored redundantly on the move itself.
type Move struct {
	From, To  Square
	Promotion PieceType // NoPieceType unless this is a promoting pawn move.
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePieceType(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}

	return Move{From: from, To: to}, nil
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.Promotion != NoPieceType {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
