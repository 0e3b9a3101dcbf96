package common

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// Board is an 8x8 grid of pieces. It is a plain value: assigning a Board clones it.
type Board struct {
	squares [NumSquares]Piece
}

// At expects a square on the board; check IsValid first for host input.
func (b *Board) At(sq Square) Piece {
	return b.squares[sq.Index()]
}

// Get expects 0 <= x, y < 8.
func (b *Board) Get(x, y int) Piece {
	return b.squares[y*NumColumns+x]
}

func (b *Board) Set(sq Square, p Piece) {
	b.squares[sq.Index()] = p
}

// MakeMove writes into child the board after m. The receiver is left unchanged.
func (b *Board) MakeMove(m Move, child *Board) {
	*child = *b
	child.squares[m.To.Index()] = child.squares[m.From.Index()]
	child.squares[m.From.Index()] = Empty
}

func (b *Board) Apply(m Move) Board {
	var child Board
	b.MakeMove(m, &child)
	return child
}

func (b *Board) KingSquare(c Color) (Square, bool) {
	var king = MakePiece(King, c)
	for i, p := range b.squares {
		if p == king {
			return SquareFromIndex(i), true
		}
	}
	return SquareNone, false
}

// IsTerminal reports that a king has been captured.
func (b *Board) IsTerminal() bool {
	var _, white = b.KingSquare(White)
	var _, black = b.KingSquare(Black)
	return !white || !black
}

func ParseFEN(fen string) (Board, Color, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) == 0 {
		return Board{}, White, fmt.Errorf("%w: empty", ErrInvalidFEN)
	}

	var b Board
	var kings [2]int
	var rows = strings.Split(tokens[0], "/")
	if len(rows) != NumRows {
		return Board{}, White, fmt.Errorf("%w: %v", ErrInvalidFEN, fen)
	}
	for y, row := range rows {
		var x = 0
		for i := 0; i < len(row); i++ {
			var ch = row[i]
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			var piece, ok = parsePiece(ch)
			if !ok || x >= NumColumns {
				return Board{}, White, fmt.Errorf("%w: %v", ErrInvalidFEN, fen)
			}
			if piece.Kind() == King {
				kings[piece.Color()]++
				if kings[piece.Color()] > 1 {
					return Board{}, White, fmt.Errorf("%w: more than one %v king", ErrInvalidFEN, piece.Color())
				}
			}
			b.Set(MakeSquare(x, y), piece)
			x++
		}
		if x != NumColumns {
			return Board{}, White, fmt.Errorf("%w: %v", ErrInvalidFEN, fen)
		}
	}

	var side = White
	if len(tokens) > 1 {
		switch tokens[1] {
		case "w":
		case "b":
			side = Black
		default:
			return Board{}, White, fmt.Errorf("%w: side %q", ErrInvalidFEN, tokens[1])
		}
	}
	return b, side, nil
}

// String returns the piece placement field of FEN.
func (b *Board) String() string {
	var sb bytes.Buffer
	for y := 0; y < NumRows; y++ {
		var emptyCount = 0
		for x := 0; x < NumColumns; x++ {
			var piece = b.Get(x, y)
			if piece == Empty {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteString(piece.String())
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if y != NumRows-1 {
			sb.WriteString("/")
		}
	}
	return sb.String()
}

// MirrorBoard flips the board vertically and swaps piece colors.
func MirrorBoard(b *Board) Board {
	var result Board
	for i, p := range b.squares {
		if p == Empty {
			continue
		}
		var sq = SquareFromIndex(i).Mirror()
		result.Set(sq, MakePiece(p.Kind(), p.Color().Opposite()))
	}
	return result
}
