package arena

import (
	"context"

	"github.com/gridchess/gridchess/pkg/common"
	"github.com/gridchess/gridchess/pkg/engine"
)

// EnginePlayer remembers its own moves between turns and passes them to the search.
type EnginePlayer struct {
	Engine  *engine.Engine
	history engine.History
}

func NewEnginePlayer(eng *engine.Engine) *EnginePlayer {
	return &EnginePlayer{Engine: eng}
}

func (p *EnginePlayer) Name() string {
	return p.Engine.Name()
}

func (p *EnginePlayer) Clear() {
	p.history = engine.History{}
}

func (p *EnginePlayer) GetNextMove(ctx context.Context, board common.Board, side common.Color) common.Move {
	var info = p.Engine.Search(ctx, engine.SearchParams{
		Board:    board,
		Side:     side,
		History:  p.history,
		TurnOver: p.Engine.TurnOver,
	})
	if !info.Move.IsEmpty() {
		p.history.Push(info.Move)
	}
	return info.Move
}

func (p *EnginePlayer) IsValidMove(board common.Board, move common.Move, side common.Color) bool {
	return p.Engine.IsValidMove(board, move, side)
}
