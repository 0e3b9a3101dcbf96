package engine

import (
	. "github.com/gridchess/gridchess/pkg/common"
)

// genRootMoves returns the legal root moves, captures first.
func (e *Engine) genRootMoves() []Move {
	var board = &e.stack[0].board
	var moves, captures = board.GenerateLegalMoves(e.side, true)
	return append(captures, moves...)
}

// trimMoves keeps the keep best quiet moves by static evaluation of the resulting
// position from the mover's side. A non-positive keep disables trimming.
func (e *Engine) trimMoves(height int, side Color, moves []Move, keep int) []Move {
	if keep <= 0 || keep >= len(moves) {
		return moves
	}
	var board = &e.stack[height].board
	var child = &e.stack[height+1].board
	var evaluated = e.stack[height].evaluated[:0]
	for _, m := range moves {
		board.MakeMove(m, child)
		evaluated = append(evaluated, EvaluatedMove{
			Move:  m,
			Score: e.evaluate(child, side),
		})
	}
	SortEvaluatedMoves(evaluated)
	for i := 0; i < keep; i++ {
		moves[i] = evaluated[i].Move
	}
	e.stats.Trimmed += int64(len(moves) - keep)
	return moves[:keep]
}

// trimRootMoves trims the quiet root moves the way trimMoves does inside the tree.
// The order of ml is kept.
func (e *Engine) trimRootMoves(ml []Move) []Move {
	var board = &e.stack[0].board
	var captures = 0
	var quiets = make([]Move, 0, len(ml))
	for _, m := range ml {
		if board.At(m.To) == Empty {
			quiets = append(quiets, m)
		} else {
			captures++
		}
	}
	var kept = e.trimMoves(0, e.side, quiets, e.TrimMoves-captures)
	if len(kept) == len(quiets) {
		return ml
	}
	var result = make([]Move, 0, captures+len(kept))
	for _, m := range ml {
		if board.At(m.To) != Empty || findMoveIndex(kept, m) != -1 {
			result = append(result, m)
		}
	}
	return result
}
