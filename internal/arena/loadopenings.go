package arena

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/gridchess/gridchess/pkg/common"
)

//go:embed openings.txt
var openingsTxt string

// LoadOpenings returns the built-in openings.
func LoadOpenings() ([]Opening, error) {
	var result []Opening
	for _, line := range getOpenings() {
		var opening, err = ParseOpening(line)
		if err != nil {
			return nil, err
		}
		result = append(result, opening)
	}
	return result, nil
}

// ParseOpening plays space separated coordinate moves from the initial position.
func ParseOpening(line string) (Opening, error) {
	var board, side, err = common.ParseFEN(common.InitialPositionFen)
	if err != nil {
		return Opening{}, err
	}
	for _, token := range strings.Fields(line) {
		var move, err = common.ParseMove(token)
		if err != nil {
			return Opening{}, err
		}
		if !board.IsValidMove(move, side) {
			return Opening{}, fmt.Errorf("%w: %v in opening %q", common.ErrInvalidMove, move, line)
		}
		board = board.Apply(move)
		side = side.Opposite()
	}
	return Opening{Board: board, Side: side}, nil
}

func getOpenings() []string {
	var result []string
	var lines = strings.Split(openingsTxt, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !(line == "" || strings.HasPrefix(line, "//")) {
			result = append(result, line)
		}
	}
	return result
}

func loadGames(
	ctx context.Context,
	openings []Opening,
	games int,
	gameInfos chan<- gameInfo,
) error {
	if len(openings) == 0 {
		return fmt.Errorf("no openings")
	}
	for i := 0; i < games; i++ {
		var info = gameInfo{
			opening:        openings[(i/2)%len(openings)],
			engineAIsWhite: i%2 == 0,
			gameNumber:     i + 1,
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- info:
		}
	}
	return nil
}
