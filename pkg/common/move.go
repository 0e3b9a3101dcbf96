package common

import "fmt"

// Flag tags the position a move leaves the opponent in.
type Flag int

const (
	FlagNone Flag = iota
	FlagCheck
	FlagCheckmate
	FlagStalemate
)

func (f Flag) String() string {
	switch f {
	case FlagCheck:
		return "check"
	case FlagCheckmate:
		return "checkmate"
	case FlagStalemate:
		return "stalemate"
	}
	return "none"
}

type Move struct {
	From, To Square
	Flag     Flag
}

var MoveEmpty = Move{}

func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

func (m Move) IsEmpty() bool {
	return m.From == m.To
}

// SameSquares compares moves ignoring flags.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}

func (m Move) String() string {
	var s = "0000"
	if !m.IsEmpty() {
		s = m.From.String() + m.To.String()
	}
	switch m.Flag {
	case FlagCheck:
		s += "+"
	case FlagCheckmate:
		s += "#"
	case FlagStalemate:
		s += "="
	}
	return s
}

// ParseMove parses coordinate notation such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	var from, err = ParseSquare(s[:2])
	if err != nil {
		return MoveEmpty, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return MoveEmpty, err
	}
	return NewMove(from, to), nil
}

type EvaluatedMove struct {
	Move  Move
	Score int
}

// SortEvaluatedMoves orders moves by descending score, keeping the order of equal scores.
func SortEvaluatedMoves(moves []EvaluatedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Score < t.Score; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
