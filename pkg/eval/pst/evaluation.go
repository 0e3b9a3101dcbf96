package eval

import (
	. "github.com/gridchess/gridchess/pkg/common"
)

// EvaluationService scores a board by material and piece-square tables.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns the score of b from side's point of view.
// Mirrored positions score the same for the mirrored side.
func (e *EvaluationService) Evaluate(b *Board, side Color) int {
	var eval = 0
	for y := 0; y < NumRows; y++ {
		for x := 0; x < NumColumns; x++ {
			var piece = b.Get(x, y)
			if piece == Empty {
				continue
			}
			var kind = piece.Kind()
			var s = pieceValues[kind]
			if table := pieceTables[kind]; table != nil {
				if piece.Color() == White {
					s += table[y*NumColumns+x]
				} else {
					s += table[(NumRows-1-y)*NumColumns+x]
				}
			}
			if piece.Color() == White {
				eval += s
			} else {
				eval -= s
			}
		}
	}
	if side == Black {
		eval = -eval
	}
	return eval
}

func PieceValue(kind Kind) int {
	return pieceValues[kind]
}
