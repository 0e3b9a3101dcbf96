package eval

import (
	. "github.com/gridchess/gridchess/pkg/common"
)

const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 325
	RookValue   = 500
	QueenValue  = 975
	KingValue   = 32767
)

var pieceValues = [King + 1]int{0, PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// Tables are written from White's side: the first row is Black's back rank.
// Rooks and queens have no positional term.

var pawnTable = [NumSquares]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 27, 27, 10, 5, 5,
	0, 0, 0, 25, 25, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -25, -25, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [NumSquares]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -20, -30, -30, -20, -40, -50,
}

var bishopTable = [NumSquares]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -40, -10, -10, -40, -10, -20,
}

var kingTable = [NumSquares]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var pieceTables = [King + 1]*[NumSquares]int{
	Pawn:   &pawnTable,
	Knight: &knightTable,
	Bishop: &bishopTable,
	King:   &kingTable,
}
