package tactic

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gridchess/gridchess/pkg/common"
)

// EpdItem is a position with its best moves in coordinate notation:
//
//	6k1/5ppp/8/8/8/8/8/R5K1 w - - bm a1a8; id "back rank";
type EpdItem struct {
	Content   string
	Board     common.Board
	Side      common.Color
	BestMoves []common.Move
}

func (item *EpdItem) IsBestMove(move common.Move) bool {
	for _, m := range item.BestMoves {
		if m.SameSquares(move) {
			return true
		}
	}
	return false
}

// LoadEpd skips lines that do not parse.
func LoadEpd(filePath string) ([]EpdItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []EpdItem
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var test, err = ParseEpd(line)
		if err != nil {
			log.Println(err)
			continue
		}
		result = append(result, test)
	}
	return result, scanner.Err()
}

func ParseEpd(s string) (EpdItem, error) {
	var bmBegin = strings.Index(s, " bm ")
	if bmBegin == -1 {
		return EpdItem{}, fmt.Errorf("no best moves %v", s)
	}
	var bmEnd = strings.Index(s[bmBegin:], ";")
	if bmEnd == -1 {
		bmEnd = len(s)
	} else {
		bmEnd += bmBegin
	}
	var fen = strings.TrimSpace(s[:bmBegin])
	var sBestMoves = strings.Fields(s[bmBegin+len(" bm ") : bmEnd])

	var board, side, err = common.ParseFEN(fen)
	if err != nil {
		return EpdItem{}, err
	}

	var bestMoves []common.Move
	for _, sBestMove := range sBestMoves {
		var move, err = common.ParseMove(sBestMove)
		if err != nil {
			return EpdItem{}, fmt.Errorf("parse move failed %v: %w", s, err)
		}
		if !board.IsValidMove(move, side) {
			return EpdItem{}, fmt.Errorf("%w: %v in %v", common.ErrInvalidMove, move, s)
		}
		bestMoves = append(bestMoves, move)
	}
	if len(bestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("empty best moves %v", s)
	}

	return EpdItem{
		Content:   s,
		Board:     board,
		Side:      side,
		BestMoves: bestMoves,
	}, nil
}
