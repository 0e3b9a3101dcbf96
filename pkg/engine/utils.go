package engine

import (
	. "github.com/gridchess/gridchess/pkg/common"
)

const (
	stackSize     = 32
	maxHeight     = stackSize - 1
	valueInfinity = 1 << 20
	valueKing     = 32767
	// a score this large means a king is lost somewhere in the line
	valueWin  = valueKing / 2
	valueLoss = -valueWin
)

// stalemateMove is returned when the side to move has no legal move.
var stalemateMove = Move{Flag: FlagStalemate}

func findMoveIndex(ml []Move, move Move) int {
	for i := range ml {
		if ml[i].SameSquares(move) {
			return i
		}
	}
	return -1
}

func moveToBegin(ml []Move, index int) {
	if index <= 0 {
		return
	}
	var item = ml[index]
	for i := index; i > 0; i-- {
		ml[i] = ml[i-1]
	}
	ml[0] = item
}

// labelMove tags m with the state it leaves the opponent in.
func labelMove(b *Board, side Color, m Move) Move {
	var child = b.Apply(m)
	var opponent = side.Opposite()
	var isCheck = child.IsCheck(opponent)
	m.Flag = FlagNone
	if !child.HasLegalMove(opponent) {
		if isCheck {
			m.Flag = FlagCheckmate
		} else {
			m.Flag = FlagStalemate
		}
	} else if isCheck {
		m.Flag = FlagCheck
	}
	return m
}
