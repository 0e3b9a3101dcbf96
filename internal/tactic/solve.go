package tactic

import (
	"context"
	"log"

	"github.com/gridchess/gridchess/pkg/engine"
)

type Searcher interface {
	Search(ctx context.Context, searchParams engine.SearchParams) engine.SearchInfo
}

// SolveTactic searches every item and returns how many were solved.
func SolveTactic(ctx context.Context, tests []EpdItem, eng Searcher,
	limits engine.LimitsType) (solved int, err error) {
	for i := range tests {
		var test = &tests[i]
		var info = eng.Search(ctx, engine.SearchParams{
			Board:  test.Board,
			Side:   test.Side,
			Limits: limits,
		})
		if err := ctx.Err(); err != nil {
			return solved, err
		}
		if test.IsBestMove(info.Move) {
			solved++
		} else {
			log.Println("failed", test.Content, "got", info.Move)
		}
	}
	log.Printf("Solved %v/%v\n", solved, len(tests))
	return solved, nil
}
