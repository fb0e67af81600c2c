package board

// PieceType represents a chess piece kind without color. 3 bits.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	ZeroPieceType PieceType = Pawn
	NumPieceTypes PieceType = King + 1
)

func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

func (p PieceType) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p PieceType) String() string {
	switch p {
	case NoPieceType:
		return " "
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a piece kind paired with a color. The zero value is the empty square: a
// NoPieceType piece, whose Color is never consulted.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece marks an empty square.
var NoPiece = Piece{Type: NoPieceType}

func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	if p.Color == White {
		return upper(p.Type.String())
	}
	return p.Type.String()
}

func upper(s string) string {
	if len(s) == 0 {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
