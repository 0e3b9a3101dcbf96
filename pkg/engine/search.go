package engine

import (
	. "github.com/gridchess/gridchess/pkg/common"
)

// alphaBeta is a fail-soft negamax search. Captures are searched before quiet moves.
// When the turn is over it sets e.aborted and returns 0; callers must discard the score.
func (e *Engine) alphaBeta(alpha, beta, depth, height int) int {
	if e.timeManager.IsDone() {
		e.aborted = true
		return 0
	}

	var slot = &e.stack[height]
	var board = &slot.board
	var side = e.sideToMove(height)
	if depth <= 0 || height >= maxHeight || board.IsTerminal() {
		return e.evaluate(board, side)
	}

	var moves, captures = board.GenerateMoves(side, true, slot.moves[:0], slot.captures[:0])
	if len(moves) == 0 && len(captures) == 0 {
		return e.evaluate(board, side)
	}
	if e.trimEnabled() && depth <= e.TrimPlies {
		moves = e.trimMoves(height, side, moves, e.TrimMoves-len(captures))
	}

	var child = &e.stack[height+1].board
	var best = -valueInfinity
	for pass := 0; pass < 2; pass++ {
		var ml = captures
		if pass == 1 {
			ml = moves
		}
		for _, move := range ml {
			board.MakeMove(move, child)
			e.incNodes()
			e.enter(height, move)
			var score = -e.alphaBeta(-beta, -alpha, depth-1, height+1)
			e.exit(height, score)
			if e.aborted {
				return 0
			}
			if score > best {
				best = score
				if score > alpha {
					alpha = score
					if alpha >= beta {
						e.stats.Cutoffs++
						return best
					}
				}
			}
		}
	}
	return best
}

func (e *Engine) evaluate(b *Board, side Color) int {
	e.stats.Evaluations++
	return e.evaluator.Evaluate(b, side)
}

func (e *Engine) sideToMove(height int) Color {
	if height&1 == 0 {
		return e.side
	}
	return e.side.Opposite()
}

func (e *Engine) incNodes() {
	e.stats.Nodes++
	e.timeManager.OnNodesChanged(e.stats.Nodes)
}

func (e *Engine) enter(height int, move Move) {
	if e.tracer != nil {
		e.tracer.Enter(height, move)
	}
}

func (e *Engine) exit(height int, score int) {
	if e.tracer != nil {
		e.tracer.Exit(height, score)
	}
}
