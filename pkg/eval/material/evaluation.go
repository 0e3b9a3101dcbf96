package eval

import (
	. "github.com/gridchess/gridchess/pkg/common"
)

// EvaluationService counts material only.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

var pieceValues = [King + 1]int{0, 100, 320, 325, 500, 975, 32767}

func (e *EvaluationService) Evaluate(b *Board, side Color) int {
	var eval = 0
	for x := 0; x < NumColumns; x++ {
		for y := 0; y < NumRows; y++ {
			var piece = b.Get(x, y)
			if piece.IsColor(White) {
				eval += pieceValues[piece.Kind()]
			} else if piece.IsColor(Black) {
				eval -= pieceValues[piece.Kind()]
			}
		}
	}
	if side != White {
		eval = -eval
	}
	return eval
}
