package arena

import (
	"context"
	"fmt"

	"github.com/gridchess/gridchess/pkg/common"
)

// PlayGame plays white against black from start. Each move is checked by the
// opponent; an illegal move loses the game.
func PlayGame(
	ctx context.Context,
	white, black Player,
	tc TimeControl,
	start common.Board,
	side common.Color,
) (GameResult, error) {

	white.Clear()
	black.Clear()

	var result = GameResult{
		White: white.Name(),
		Black: black.Name(),
	}
	var board = start
	for ply := 0; tc.MaxPlies == 0 || ply < tc.MaxPlies; ply++ {
		if board.IsTerminal() {
			return result, fmt.Errorf("king missing: %v", board.String())
		}
		var player, opponent = white, black
		if side == common.Black {
			player, opponent = black, white
		}

		if !board.HasLegalMove(side) {
			if board.IsCheck(side) {
				return finish(result, "checkmate", winner(side.Opposite())), nil
			}
			return finish(result, "stalemate", ResultDraw), nil
		}

		var move, err = getMove(ctx, player, tc, board, side)
		if err != nil {
			return result, err
		}
		if !opponent.IsValidMove(board, move, side) {
			result.Moves = append(result.Moves, move)
			return finish(result, fmt.Sprintf("illegal move %v", move), winner(side.Opposite())), nil
		}
		result.Moves = append(result.Moves, move)
		board = board.Apply(move)
		side = side.Opposite()
	}
	return finish(result, "max plies", ResultDraw), nil
}

func getMove(ctx context.Context, player Player, tc TimeControl,
	board common.Board, side common.Color) (common.Move, error) {
	var moveCtx, cancel = ctx, context.CancelFunc(func() {})
	if tc.MoveTime > 0 {
		moveCtx, cancel = context.WithTimeout(ctx, tc.MoveTime)
	}
	defer cancel()
	var move = player.GetNextMove(moveCtx, board, side)
	if err := ctx.Err(); err != nil {
		return common.MoveEmpty, err
	}
	return move, nil
}

func winner(side common.Color) int {
	if side == common.White {
		return ResultWhiteWins
	}
	return ResultBlackWins
}

func finish(result GameResult, comment string, points int) GameResult {
	result.Comment = comment
	result.Result = points
	return result
}
