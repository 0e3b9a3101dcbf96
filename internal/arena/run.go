package arena

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

type gameResult struct {
	GameResult
	gameInfo gameInfo
}

// Run plays games between players A and B, alternating colors on each opening.
// newPlayers is called once per worker; the returned score is from A's side.
func Run(
	ctx context.Context,
	concurrency int,
	games int,
	tc TimeControl,
	openings []Opening,
	newPlayers func() (a, b Player),
) (Score, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return loadGames(ctx, openings, games, gameInfos)
	})

	var score Score
	g.Go(func() error {
		var err error
		score, err = collectResults(ctx, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, tc, newPlayers, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return score, err
}

func playGames(
	ctx context.Context,
	tc TimeControl,
	newPlayers func() (a, b Player),
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA, engineB = newPlayers()
	for info := range gameInfos {
		var white, black = engineA, engineB
		if !info.engineAIsWhite {
			white, black = engineB, engineA
		}
		var res, err = PlayGame(ctx, white, black, tc, info.opening.Board, info.opening.Side)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- gameResult{GameResult: res, gameInfo: info}:
		}
	}
	return nil
}

func collectResults(
	ctx context.Context,
	gameResults <-chan gameResult,
) (Score, error) {
	var score Score
	for res := range gameResults {
		var aWins = res.Result == ResultWhiteWins && res.gameInfo.engineAIsWhite ||
			res.Result == ResultBlackWins && !res.gameInfo.engineAIsWhite
		switch {
		case res.Result == ResultDraw:
			score.Draws++
		case aWins:
			score.Wins++
		default:
			score.Losses++
		}
		log.Printf("game %v %v-%v %v plies %v; score %+v\n",
			res.gameInfo.gameNumber, res.White, res.Black,
			len(res.Moves), res.Comment, score)
	}
	return score, ctx.Err()
}
