package common

// IsCheck reports whether side's king is attacked. A missing king counts as check.
//
// Attackers are found from the king's square: every opponent piece reachable by a
// queen or knight pattern is asked whether its own moves land on the king.
// Adjacent pawns and kings sit on the queen rays, so their checks are found too.
func (b *Board) IsCheck(side Color) bool {
	var king, ok = b.KingSquare(side)
	if !ok {
		return true
	}
	var movesBuffer, capturesBuffer [32]Move
	var g = moveGen{
		board:    b,
		side:     side,
		from:     king,
		split:    true,
		moves:    movesBuffer[:0],
		captures: capturesBuffer[:0],
	}
	g.slide(queenDirections)
	g.leap(knightOffsets)

	var opponent = side.Opposite()
	for _, m := range g.captures {
		if b.attacks(opponent, m.To, king) {
			return true
		}
	}
	return false
}

func (b *Board) attacks(side Color, from, target Square) bool {
	var buffer [32]Move
	var ml, _ = b.GeneratePieceMoves(side, from, false, buffer[:0], nil)
	for _, m := range ml {
		if m.To == target {
			return true
		}
	}
	return false
}

// GenerateLegalMoves returns the pseudo-legal moves of side that do not leave its king in check.
func (b *Board) GenerateLegalMoves(side Color, split bool) (moves, captures []Move) {
	moves, captures = b.GenerateMoves(side, split, nil, nil)
	return b.filterLegal(side, moves), b.filterLegal(side, captures)
}

func (b *Board) filterLegal(side Color, ml []Move) []Move {
	var child Board
	var n = 0
	for _, m := range ml {
		b.MakeMove(m, &child)
		if !child.IsCheck(side) {
			ml[n] = m
			n++
		}
	}
	return ml[:n]
}

func (b *Board) HasLegalMove(side Color) bool {
	var buffer [MaxMoves]Move
	var ml, _ = b.GenerateMoves(side, false, buffer[:0], nil)
	var child Board
	for _, m := range ml {
		b.MakeMove(m, &child)
		if !child.IsCheck(side) {
			return true
		}
	}
	return false
}

// IsValidMove polices a move submitted for side. Cheap checks run before any cloning.
func (b *Board) IsValidMove(m Move, side Color) bool {
	if !m.From.IsValid() || !m.To.IsValid() {
		return false
	}
	var piece = b.At(m.From)
	if !piece.IsColor(side) {
		return false
	}
	var buffer [32]Move
	var ml, _ = b.GeneratePieceMoves(side, m.From, false, buffer[:0], nil)
	for _, candidate := range ml {
		if candidate.SameSquares(m) {
			var child Board
			b.MakeMove(candidate, &child)
			return !child.IsCheck(side)
		}
	}
	return false
}

const MaxMoves = 256
