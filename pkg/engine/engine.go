package engine

import (
	"context"
	"errors"
	"math/rand"
	"time"

	. "github.com/gridchess/gridchess/pkg/common"
)

const Name = "GridChess"

// Engine searches one position at a time. It is not safe for concurrent use;
// run one Engine per goroutine.
type Engine struct {
	Options
	evaluator   Evaluator
	rnd         *rand.Rand
	timeManager *timeManager
	tracer      Tracer
	progress    func(SearchInfo)
	history     History
	side        Color
	mainLine    mainLine
	stats       Stats
	aborted     bool
	start       time.Time
	stack       [stackSize]struct {
		board     Board
		moves     [MaxMoves]Move
		captures  [MaxMoves]Move
		evaluated [MaxMoves]EvaluatedMove
	}
}

type Evaluator interface {
	// Evaluate scores b from side's point of view.
	Evaluate(b *Board, side Color) int
}

type LimitsType struct {
	MoveTime time.Duration
	Depth    int
	Nodes    int64
}

type SearchParams struct {
	Board    Board
	Side     Color
	Limits   LimitsType
	History  History
	TurnOver func() bool
	Progress func(SearchInfo)
	Tracer   Tracer
}

type Stats struct {
	Nodes       int64
	Evaluations int64
	Cutoffs     int64
	Trimmed     int64
}

type SearchInfo struct {
	Move    Move
	Score   int
	Depth   int
	Nodes   int64
	Time    time.Duration
	Stats   Stats
	Aborted bool
}

type mainLine struct {
	move  Move
	score int
	depth int
}

func NewEngine(options Options) *Engine {
	return &Engine{
		Options: options,
	}
}

func (e *Engine) Prepare() {
	if e.evaluator == nil {
		if e.EvalBuilder == nil {
			panic(errors.New("engine: no evaluator"))
		}
		e.evaluator = e.EvalBuilder()
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(e.Seed))
	}
}

func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.start = time.Now()
	e.Prepare()
	e.timeManager = newTimeManager(ctx, e.start, searchParams.Limits, searchParams.TurnOver)
	defer e.timeManager.Close()
	e.side = searchParams.Side
	e.history = searchParams.History
	e.progress = searchParams.Progress
	e.tracer = searchParams.Tracer
	e.stats = Stats{}
	e.aborted = false
	e.mainLine = mainLine{}
	e.stack[0].board = searchParams.Board

	iterativeDeepening(e, searchParams.Limits)

	var result = e.currentSearchResult()
	if !result.Move.IsEmpty() {
		result.Move = labelMove(&e.stack[0].board, e.side, result.Move)
	}
	if e.Logger != nil {
		e.Logger.Println("depth reached", result.Depth,
			"move", result.Move,
			"score", result.Score,
			"nodes", result.Nodes,
			"time", result.Time)
	}
	return result
}

// GetNextMove returns the best move for side, polling Options.TurnOver for the end of the turn.
func (e *Engine) GetNextMove(ctx context.Context, board Board, side Color) Move {
	return e.Search(ctx, SearchParams{
		Board:    board,
		Side:     side,
		TurnOver: e.TurnOver,
	}).Move
}

// IsValidMove polices a move submitted by the opponent.
func (e *Engine) IsValidMove(board Board, move Move, side Color) bool {
	return board.IsValidMove(move, side)
}

func (e *Engine) Name() string {
	return Name
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Move:    e.mainLine.move,
		Score:   e.mainLine.score,
		Depth:   e.mainLine.depth,
		Nodes:   e.stats.Nodes,
		Time:    time.Since(e.start),
		Stats:   e.stats,
		Aborted: e.aborted,
	}
}
