package engine

import (
	"log"
)

type Options struct {
	// MinDepth is the depth of the first iteration.
	MinDepth int
	// MaxDepth caps iterative deepening. Zero means no cap.
	MaxDepth int
	// Quiet moves are trimmed to TrimMoves (captures included) once the
	// remaining depth is at most TrimPlies. Zero disables trimming.
	TrimPlies int
	TrimMoves int
	// BeamWidth limits deeper iterations to the root moves that became
	// best during the first iteration. Zero disables beaming.
	BeamWidth      int
	RandomTieBreak bool
	Seed           int64
	EvalBuilder    func() Evaluator
	// TurnOver is polled by GetNextMove.
	TurnOver func() bool
	Logger   *log.Logger
}

func NewOptions(evalBuilder func() Evaluator) Options {
	return Options{
		MinDepth:       4,
		MaxDepth:       0,
		TrimPlies:      0,
		TrimMoves:      0,
		BeamWidth:      0,
		RandomTieBreak: false,
		Seed:           0,
		EvalBuilder:    evalBuilder,
	}
}

func (o *Options) maxDepth(limits LimitsType) int {
	var result = maxHeight
	if o.MaxDepth > 0 && o.MaxDepth < result {
		result = o.MaxDepth
	}
	if limits.Depth > 0 && limits.Depth < result {
		result = limits.Depth
	}
	return result
}

func (o *Options) trimEnabled() bool {
	return o.TrimPlies > 0 && o.TrimMoves > 0
}
