// Package fen contains utilities for reading and writing boards in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/herohde/fidechess/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode builds a board from a FEN description.
//
// Example:
//   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*board.Board, error) {
	// A FEN record contains six fields. The separator between fields is a
	// space. The fields are:

	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	// (1) Piece placement (from white's perspective). Each rank is described,
	// starting with rank 8 and ending with rank 1; within each rank, the
	// contents of each square are described from file a through file h.

	b := board.NewBoard()

	f, r := board.ZeroFile, board.Rank8
	ranks := 1
	for _, c := range []rune(parts[0]) {
		switch {
		case c == '/':
			// "/" separate ranks. Each rank must account for exactly 8 squares before
			// the next one starts, or the file count silently wraps (Square masks the
			// file to 3 bits) and corrupts the board instead of failing to parse.
			if f != board.NumFiles {
				return nil, fmt.Errorf("rank does not sum to %v squares in FEN: '%v'", board.NumFiles, fen)
			}
			f, r = board.ZeroFile, r-1
			ranks++

		case unicode.IsDigit(c):
			// Blank squares are noted using digits 1 through 8 (the number of blank squares).
			if c == '0' {
				return nil, fmt.Errorf("invalid blank-square count in FEN: '%v'", fen)
			}
			f += board.File(c - '0')
			if f > board.NumFiles {
				return nil, fmt.Errorf("rank exceeds %v squares in FEN: '%v'", board.NumFiles, fen)
			}

		case unicode.IsLetter(c):
			// Following the Standard Algebraic Notation (SAN), each piece is
			// identified by a single letter taken from the standard English names
			// (pawn = "P", knight = "N", bishop = "B", rook = "R", queen = "Q" and
			// king = "K"). White pieces are designated using upper-case letters
			// ("PNBRQK") while Black take lowercase ("pnbrqk").

			if f >= board.NumFiles {
				return nil, fmt.Errorf("rank exceeds %v squares in FEN: '%v'", board.NumFiles, fen)
			}

			pt, ok := board.ParsePieceType(c)
			if !ok {
				return nil, fmt.Errorf("invalid piece '%v' in FEN: '%v'", c, fen)
			}
			color := board.Black
			if unicode.IsUpper(c) {
				color = board.White
			}
			if err := b.Place(board.NewSquare(f, r), board.Piece{Type: pt, Color: color}); err != nil {
				return nil, fmt.Errorf("invalid placement in FEN: '%v': %w", fen, err)
			}
			f++

		default:
			return nil, fmt.Errorf("invalid character in FEN: '%v'", fen)
		}
	}
	if f != board.NumFiles {
		return nil, fmt.Errorf("rank does not sum to %v squares in FEN: '%v'", board.NumFiles, fen)
	}
	if ranks != 8 {
		return nil, fmt.Errorf("invalid number of ranks in FEN: '%v'", fen)
	}

	// (2) Active color. "w" means white moves next, "b" means black.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: '%v'", fen)
	}
	b.SetTurn(active)

	// (3) Castling availability. If neither side can castle, this is
	// "-". Otherwise, this has one or more letters: "K" (White can castle
	// kingside), "Q" (White can castle queenside), "k" (Black can castle
	// kingside), and/or "q" (Black can castle queenside).

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: '%v'", fen)
	}
	b.SetCastling(castling)

	// (4) En passant target square in algebraic notation. If there's no en
	// passant target square, this is "-". If a pawn has just made a
	// 2-square move, this is the position "behind" the pawn.

	if parts[3] == "-" {
		b.SetEnPassant(board.ZeroSquare, false)
	} else {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: '%v'", fen)
		}
		b.SetEnPassant(sq, true)
	}

	// (5) Halfmove clock: This is the number of halfmoves since the last pawn
	// advance or capture. This is used to determine if a draw can be
	// claimed under the fifty move rule.

	hm, err := strconv.Atoi(parts[4])
	if err != nil || hm < 0 {
		return nil, fmt.Errorf("invalid halfmove in FEN: '%v'", fen)
	}
	b.SetHalfmoveClock(hm)

	// (6) Fullmove number: The number of the full move. It starts at 1, and is
	// incremented after Black's move.

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 0 {
		return nil, fmt.Errorf("invalid full moves in FEN: '%v'", fen)
	}
	b.SetFullmoveNumber(fm)

	return b, nil
}

// Encode encodes the board in FEN notation.
func Encode(b *board.Board) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			p := b.PieceAt(board.NewSquare(f, r))
			if p.IsEmpty() {
				blanks++
				continue
			}

			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(p.String())
		}

		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}

		if r == board.ZeroRank {
			break
		}
		sb.WriteString("/")
	}

	turn := printColor(b.Turn())
	castling := printCastling(b.Castling())

	ep := "-"
	if sq, ok := b.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), turn, castling, ep, b.HalfmoveClock(), b.FullmoveNumber())
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling

	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	if c == board.ZeroCastling {
		return "-"
	}

	ret := ""
	if c.IsAllowed(board.WhiteKingSideCastle) {
		ret += "K"
	}
	if c.IsAllowed(board.WhiteQueenSideCastle) {
		ret += "Q"
	}
	if c.IsAllowed(board.BlackKingSideCastle) {
		ret += "k"
	}
	if c.IsAllowed(board.BlackQueenSideCastle) {
		ret += "q"
	}
	return ret
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}
