package engine

import (
	. "github.com/gridchess/gridchess/pkg/common"
)

type rootResult struct {
	move  Move
	score int
	// root moves in the order they became best
	improvements []Move
}

func iterativeDeepening(e *Engine, limits LimitsType) {
	var ml = e.genRootMoves()
	if len(ml) == 0 {
		e.mainLine = mainLine{move: stalemateMove}
		return
	}
	e.mainLine = mainLine{move: ml[0]}

	var maxDepth = e.maxDepth(limits)
	for depth := Max(1, Min(e.MinDepth, maxDepth)); depth <= maxDepth; depth++ {
		if e.tracer != nil {
			e.tracer.BeginIteration(depth)
		}
		var result = e.searchRoot(ml, depth)
		if e.tracer != nil {
			e.tracer.EndIteration(result.score, !e.aborted)
		}
		if e.aborted {
			// only the first iteration may fall back to a partial result
			if e.mainLine.depth == 0 && !result.move.IsEmpty() {
				e.mainLine.move = result.move
				e.mainLine.score = result.score
			}
			return
		}

		var firstIteration = e.mainLine.depth == 0
		e.mainLine = mainLine{
			move:  result.move,
			score: result.score,
			depth: depth,
		}
		if firstIteration && e.BeamWidth > 0 {
			ml = beam(result, e.BeamWidth)
		} else {
			moveToBegin(ml, findMoveIndex(ml, result.move))
		}

		e.timeManager.OnIterationComplete(e.mainLine)
		if e.progress != nil {
			e.progress(e.currentSearchResult())
		}
		if e.Logger != nil {
			e.Logger.Println("depth", depth,
				"move", result.move,
				"score", result.score,
				"nodes", e.stats.Nodes)
		}
		if e.timeManager.IsDone() {
			return
		}
	}
}

func (e *Engine) searchRoot(ml []Move, depth int) rootResult {
	const height = 0
	var board = &e.stack[height].board
	var child = &e.stack[height+1].board
	// a window one below alpha makes every score tying the best exact
	var exactTies = e.history.Len() != 0 || e.RandomTieBreak

	if e.trimEnabled() && depth <= e.TrimPlies {
		ml = e.trimRootMoves(ml)
	}

	var result rootResult
	var ties []Move
	var alpha = -valueInfinity
	var best = -valueInfinity
	for _, move := range ml {
		board.MakeMove(move, child)
		e.incNodes()
		var window = alpha
		if exactTies {
			window = alpha - 1
		}
		e.enter(height, move)
		var score = -e.alphaBeta(-valueInfinity, -window, depth-1, height+1)
		e.exit(height, score)
		if e.aborted {
			break
		}
		if score > best {
			best = score
			ties = append(ties[:0], move)
			result.improvements = append(result.improvements, move)
		} else if exactTies && score == best {
			ties = append(ties, move)
		}
		alpha = Max(alpha, score)
	}
	if len(ties) != 0 {
		result.move = e.breakTie(ties)
		result.score = best
	}
	return result
}

// breakTie prefers moves that do not undo a recent move.
func (e *Engine) breakTie(ties []Move) Move {
	if len(ties) == 1 {
		return ties[0]
	}
	var candidates = make([]Move, 0, len(ties))
	for _, m := range ties {
		if !e.history.Undoes(m) {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		candidates = ties
	}
	if e.RandomTieBreak {
		return candidates[e.rnd.Intn(len(candidates))]
	}
	return candidates[0]
}

// beam keeps the chosen move followed by the latest improvements, at most width moves.
func beam(result rootResult, width int) []Move {
	var ml = []Move{result.move}
	for i := len(result.improvements) - 1; i >= 0 && len(ml) < width; i-- {
		var m = result.improvements[i]
		if findMoveIndex(ml, m) == -1 {
			ml = append(ml, m)
		}
	}
	return ml
}
