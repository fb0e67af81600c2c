package board

import "fmt"

// File represents a chess board file, FileA=0 .. FileH=7. 3 bits.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	ZeroFile File = 0
	NumFiles File = 8
)

// Add returns the file offset by delta, and whether the result stayed on the board.
func (f File) Add(delta int) (File, bool) {
	v := int(f) + delta
	if v < 0 || v > 7 {
		return 0, false
	}
	return File(v), true
}

func ParseFile(r rune) (File, bool) {
	switch r {
	case 'a', 'A':
		return FileA, true
	case 'b', 'B':
		return FileB, true
	case 'c', 'C':
		return FileC, true
	case 'd', 'D':
		return FileD, true
	case 'e', 'E':
		return FileE, true
	case 'f', 'F':
		return FileF, true
	case 'g', 'G':
		return FileG, true
	case 'h', 'H':
		return FileH, true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f <= FileH
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	if !f.IsValid() {
		return "?"
	}
	return string(rune('a' + f))
}

// Rank represents a chess board rank, Rank1=0 .. Rank8=7. 3 bits.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	ZeroRank Rank = 0
	NumRanks Rank = 8
)

// Add returns the rank offset by delta, and whether the result stayed on the board.
func (r Rank) Add(delta int) (Rank, bool) {
	v := int(r) + delta
	if v < 0 || v > 7 {
		return 0, false
	}
	return Rank(v), true
}

func ParseRank(r rune) (Rank, bool) {
	switch r {
	case '1':
		return Rank1, true
	case '2':
		return Rank2, true
	case '3':
		return Rank3, true
	case '4':
		return Rank4, true
	case '5':
		return Rank5, true
	case '6':
		return Rank6, true
	case '7':
		return Rank7, true
	case '8':
		return Rank8, true
	default:
		return 0, false
	}
}

func (r Rank) IsValid() bool {
	return r <= Rank8
}

func (r Rank) V() int {
	return int(r)
}

func (r Rank) String() string {
	if !r.IsValid() {
		return "?"
	}
	return string(rune('1' + r))
}

// Square represents a single square on the board as a packed (file, rank) pair: 6 bits,
// index = file<<3 | rank. A1=0, A8=7, H1=56, H8=63.
type Square uint8

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
)

// NewSquare packs a file/rank pair into a Square.
func NewSquare(f File, r Rank) Square {
	return Square(f&0x7)<<3 | Square(r&0x7)
}

func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return 0, fmt.Errorf("invalid file: %v", f)
	}
	rank, ok := ParseRank(r)
	if !ok {
		return 0, fmt.Errorf("invalid rank: %v", r)
	}
	return NewSquare(file, rank), nil
}

func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: '%v'", str)
	}
	return ParseSquare(runes[0], runes[1])
}

func (s Square) IsValid() bool {
	return s < NumSquares
}

func (s Square) File() File {
	return File((s >> 3) & 0x7)
}

func (s Square) Rank() Rank {
	return Rank(s & 0x7)
}

// Add offsets the square by (df, dr) files/ranks. Returns false if the result left the board.
func (s Square) Add(df, dr int) (Square, bool) {
	f, ok := s.File().Add(df)
	if !ok {
		return 0, false
	}
	r, ok := s.Rank().Add(dr)
	if !ok {
		return 0, false
	}
	return NewSquare(f, r), true
}

func (s Square) String() string {
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// Common named squares used by castling/en-passant logic.
const (
	A1 = Square(0<<3 | 0)
	A8 = Square(0<<3 | 7)
	C1 = Square(2<<3 | 0)
	C8 = Square(2<<3 | 7)
	D1 = Square(3<<3 | 0)
	D8 = Square(3<<3 | 7)
	E1 = Square(4<<3 | 0)
	E8 = Square(4<<3 | 7)
	F1 = Square(5<<3 | 0)
	F8 = Square(5<<3 | 7)
	G1 = Square(6<<3 | 0)
	G8 = Square(6<<3 | 7)
	H1 = Square(7<<3 | 0)
	H8 = Square(7<<3 | 7)
)
