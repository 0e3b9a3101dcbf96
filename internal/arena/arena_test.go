package arena

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gridchess/gridchess/pkg/common"
	"github.com/gridchess/gridchess/pkg/engine"
	pst "github.com/gridchess/gridchess/pkg/eval/pst"
)

type scriptedPlayer struct {
	moves []string
	index int
}

func (p *scriptedPlayer) Name() string { return "script" }

func (p *scriptedPlayer) Clear() { p.index = 0 }

func (p *scriptedPlayer) GetNextMove(ctx context.Context, board common.Board, side common.Color) common.Move {
	if p.index >= len(p.moves) {
		return common.MoveEmpty
	}
	var m, err = common.ParseMove(p.moves[p.index])
	if err != nil {
		panic(err)
	}
	p.index++
	return m
}

func (p *scriptedPlayer) IsValidMove(board common.Board, move common.Move, side common.Color) bool {
	return board.IsValidMove(move, side)
}

func newTestPlayer(depth int) *EnginePlayer {
	var options = engine.NewOptions(func() engine.Evaluator {
		return pst.NewEvaluationService()
	})
	options.MinDepth = depth
	options.MaxDepth = depth
	return NewEnginePlayer(engine.NewEngine(options))
}

func TestPlayGame(t *testing.T) {
	var tests = []struct {
		name    string
		fen     string
		white   []string
		black   []string
		plies   int
		comment string
		result  int
		moves   int
	}{
		{"fool's mate", common.InitialPositionFen, []string{"f2f3", "g2g4"}, []string{"e7e5", "d8h4"}, 0, "checkmate", ResultBlackWins, 4},
		{"illegal move", common.InitialPositionFen, []string{"e2e5"}, nil, 0, "illegal move e2e5", ResultBlackWins, 1},
		{"wrong color", common.InitialPositionFen, []string{"e2e4"}, []string{"d2d4"}, 0, "illegal move d2d4", ResultWhiteWins, 2},
		{"stalemate", "k7/8/1K6/8/8/8/8/2Q5 w", []string{"c1c7"}, nil, 0, "stalemate", ResultDraw, 1},
		{"max plies", common.InitialPositionFen, []string{"g1f3", "f3g1"}, []string{"g8f6", "f6g8"}, 4, "max plies", ResultDraw, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b, side, err = common.ParseFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			var white = &scriptedPlayer{moves: tt.white}
			var black = &scriptedPlayer{moves: tt.black}
			res, err := PlayGame(context.Background(), white, black, TimeControl{MaxPlies: tt.plies}, b, side)
			if err != nil {
				t.Fatal(err)
			}
			if res.Comment != tt.comment || res.Result != tt.result || len(res.Moves) != tt.moves {
				t.Errorf("got %v %v %v moves", res.Comment, res.Result, len(res.Moves))
			}
		})
	}
}

func TestPlayGameEngines(t *testing.T) {
	var b, side, err = common.ParseFEN(common.InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	res, err := PlayGame(context.Background(), newTestPlayer(2), newTestPlayer(1),
		TimeControl{MaxPlies: 12}, b, side)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Moves) == 0 || len(res.Moves) > 12 {
		t.Errorf("%v moves", len(res.Moves))
	}
	if strings.HasPrefix(res.Comment, "illegal") {
		t.Errorf("engine played %v", res.Comment)
	}
}

func TestEnginePlayerHistory(t *testing.T) {
	var p = newTestPlayer(1)
	var b, side, _ = common.ParseFEN(common.InitialPositionFen)
	var m = p.GetNextMove(context.Background(), b, side)
	if p.history.Last() != common.NewMove(m.From, m.To) {
		t.Errorf("history last %v, want %v", p.history.Last(), m)
	}
	p.Clear()
	if p.history.Len() != 0 {
		t.Error("history not cleared")
	}
}

func TestParseOpening(t *testing.T) {
	var opening, err = ParseOpening("e2e4 e7e5")
	if err != nil {
		t.Fatal(err)
	}
	var want, _, _ = common.ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR")
	if diff := cmp.Diff(want.String(), opening.Board.String()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
	if opening.Side != common.White {
		t.Errorf("side %v", opening.Side)
	}
	if _, err := ParseOpening("e2e5"); !errors.Is(err, common.ErrInvalidMove) {
		t.Errorf("err = %v", err)
	}
	if _, err := ParseOpening("e2"); !errors.Is(err, common.ErrInvalidMove) {
		t.Errorf("err = %v", err)
	}

	openings, err := LoadOpenings()
	if err != nil {
		t.Fatal(err)
	}
	if len(openings) != len(getOpenings()) || len(openings) == 0 {
		t.Errorf("%v openings", len(openings))
	}
}

func TestRun(t *testing.T) {
	var openings, err = LoadOpenings()
	if err != nil {
		t.Fatal(err)
	}
	score, err := Run(context.Background(), 2, 4, TimeControl{MaxPlies: 8}, openings,
		func() (Player, Player) {
			return newTestPlayer(1), newTestPlayer(1)
		})
	if err != nil {
		t.Fatal(err)
	}
	if score.Games() != 4 {
		t.Errorf("score %+v", score)
	}
	if score.Points() < 0 || score.Points() > 4 {
		t.Errorf("points %v", score.Points())
	}
}

func TestRunCancelled(t *testing.T) {
	var openings, _ = LoadOpenings()
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var _, err = Run(ctx, 2, 4, TimeControl{MaxPlies: 8}, openings,
		func() (Player, Player) {
			return newTestPlayer(1), newTestPlayer(1)
		})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}
