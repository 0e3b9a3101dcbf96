package common

import (
	"fmt"
	"strings"
)

const (
	NumColumns = 8
	NumRows    = 8
	NumSquares = NumColumns * NumRows
)

// Square addresses the board by column (X) and row (Y).
// Row 0 is Black's back rank, row 7 is White's back rank.
type Square struct {
	X, Y int
}

var SquareNone = Square{X: -1, Y: -1}

func MakeSquare(x, y int) Square {
	return Square{X: x, Y: y}
}

func SquareFromIndex(index int) Square {
	return Square{X: index % NumColumns, Y: index / NumColumns}
}

func (sq Square) IsValid() bool {
	return sq.X >= 0 && sq.X < NumColumns &&
		sq.Y >= 0 && sq.Y < NumRows
}

func (sq Square) Index() int {
	return sq.Y*NumColumns + sq.X
}

// Mirror flips the square vertically.
func (sq Square) Mirror() Square {
	return Square{X: sq.X, Y: NumRows - 1 - sq.Y}
}

func (sq Square) offset(d delta) Square {
	return Square{X: sq.X + d.dx, Y: sq.Y + d.dy}
}

const (
	fileNames = "abcdefgh"
	rankNames = "87654321"
)

func (sq Square) String() string {
	if !sq.IsValid() {
		return fmt.Sprintf("(%d,%d)", sq.X, sq.Y)
	}
	return string(fileNames[sq.X]) + string(rankNames[sq.Y])
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("%w: bad square %q", ErrInvalidMove, s)
	}
	var x = strings.IndexByte(fileNames, s[0])
	var y = strings.IndexByte(rankNames, s[1])
	if x < 0 || y < 0 {
		return SquareNone, fmt.Errorf("%w: bad square %q", ErrInvalidMove, s)
	}
	return MakeSquare(x, y), nil
}
