package arena

import (
	"context"
	"time"

	"github.com/gridchess/gridchess/pkg/common"
)

const (
	ResultDraw = iota
	ResultWhiteWins
	ResultBlackWins
)

// Player is the contract between the host and an engine.
type Player interface {
	Name() string
	Clear()
	GetNextMove(ctx context.Context, board common.Board, side common.Color) common.Move
	IsValidMove(board common.Board, move common.Move, side common.Color) bool
}

type TimeControl struct {
	MoveTime time.Duration
	MaxPlies int
}

type Opening struct {
	Board common.Board
	Side  common.Color
}

type GameResult struct {
	White   string
	Black   string
	Moves   []common.Move
	Comment string
	Result  int
}

type Score struct {
	Wins   int
	Losses int
	Draws  int
}

func (s Score) Games() int {
	return s.Wins + s.Losses + s.Draws
}

// Points counts a draw as half a win.
func (s Score) Points() float64 {
	return float64(s.Wins) + 0.5*float64(s.Draws)
}

type gameInfo struct {
	opening        Opening
	engineAIsWhite bool
	gameNumber     int
}
