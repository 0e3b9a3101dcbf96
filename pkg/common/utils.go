package common

import (
	"errors"
	"strings"
)

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrInvalidMove = errors.New("invalid move")
)

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func parsePiece(ch byte) (Piece, bool) {
	var i = strings.IndexByte(pieceChars, ch)
	if i <= 0 {
		return Empty, false
	}
	return Piece(i), true
}
