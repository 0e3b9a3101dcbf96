package engine

import . "github.com/gridchess/gridchess/pkg/common"

const historySize = 2

// History remembers the last moves played by the searching side.
// The zero value is an empty history.
type History struct {
	moves [historySize]Move
	size  int
}

func (h *History) Push(m Move) {
	copy(h.moves[1:], h.moves[:historySize-1])
	h.moves[0] = NewMove(m.From, m.To)
	if h.size < historySize {
		h.size++
	}
}

// Last returns the most recent move or MoveEmpty.
func (h *History) Last() Move {
	if h.size == 0 {
		return MoveEmpty
	}
	return h.moves[0]
}

func (h *History) Len() int {
	return h.size
}

// Undoes reports whether m moves a piece straight back along a remembered move.
func (h *History) Undoes(m Move) bool {
	for i := 0; i < h.size; i++ {
		var prev = h.moves[i]
		if prev.From == m.To && prev.To == m.From {
			return true
		}
	}
	return false
}
