package common

type delta struct {
	dx, dy int
}

var (
	rookDirections   = []delta{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	bishopDirections = []delta{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	queenDirections  = append(append([]delta{}, bishopDirections...), rookDirections...)
	knightOffsets    = []delta{{1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}}
	kingOffsets      = queenDirections
)

type moveGen struct {
	board    *Board
	side     Color
	from     Square
	split    bool
	moves    []Move
	captures []Move
}

func (g *moveGen) add(to Square, capture bool) {
	var m = Move{From: g.from, To: to}
	if capture && g.split {
		g.captures = append(g.captures, m)
	} else {
		g.moves = append(g.moves, m)
	}
}

// slide walks each ray until the first occupied square.
// The blocker is recorded only when it is an opponent piece.
func (g *moveGen) slide(directions []delta) {
	var opponent = g.side.Opposite()
	for _, d := range directions {
		for to := g.from.offset(d); to.IsValid(); to = to.offset(d) {
			var piece = g.board.At(to)
			if piece == Empty {
				g.add(to, false)
				continue
			}
			if piece.IsColor(opponent) {
				g.add(to, true)
			}
			break
		}
	}
}

func (g *moveGen) leap(offsets []delta) {
	var opponent = g.side.Opposite()
	for _, d := range offsets {
		var to = g.from.offset(d)
		if !to.IsValid() {
			continue
		}
		var piece = g.board.At(to)
		if piece == Empty {
			g.add(to, false)
		} else if piece.IsColor(opponent) {
			g.add(to, true)
		}
	}
}

func (g *moveGen) pawn() {
	var opponent = g.side.Opposite()
	var dir = g.side.PawnDirection()
	var forward = g.from.offset(delta{0, dir})
	if !forward.IsValid() {
		return
	}
	for _, dx := range [...]int{-1, 1} {
		var to = forward.offset(delta{dx, 0})
		if to.IsValid() && g.board.At(to).IsColor(opponent) {
			g.add(to, true)
		}
	}
	if g.board.At(forward) != Empty {
		return
	}
	g.add(forward, false)
	if g.from.Y == g.side.pawnStartRow() {
		var to = forward.offset(delta{0, dir})
		if to.IsValid() && g.board.At(to) == Empty {
			g.add(to, false)
		}
	}
}

func (g *moveGen) piece(kind Kind) {
	switch kind {
	case Pawn:
		g.pawn()
	case Knight:
		g.leap(knightOffsets)
	case Bishop:
		g.slide(bishopDirections)
	case Rook:
		g.slide(rookDirections)
	case Queen:
		g.slide(queenDirections)
	case King:
		g.leap(kingOffsets)
	}
}

// GeneratePieceMoves appends the pseudo-legal moves of the piece on from, moving as side.
// When split is set, captures are appended to captures instead of moves.
func (b *Board) GeneratePieceMoves(side Color, from Square, split bool,
	moves, captures []Move) ([]Move, []Move) {
	if !from.IsValid() {
		return moves, captures
	}
	var g = moveGen{
		board:    b,
		side:     side,
		from:     from,
		split:    split,
		moves:    moves,
		captures: captures,
	}
	g.piece(b.At(from).Kind())
	return g.moves, g.captures
}

// GenerateMoves appends the pseudo-legal moves of every piece owned by side.
func (b *Board) GenerateMoves(side Color, split bool,
	moves, captures []Move) ([]Move, []Move) {
	var g = moveGen{
		board:    b,
		side:     side,
		split:    split,
		moves:    moves,
		captures: captures,
	}
	for x := 0; x < NumColumns; x++ {
		for y := 0; y < NumRows; y++ {
			var piece = b.Get(x, y)
			if !piece.IsColor(side) {
				continue
			}
			g.from = MakeSquare(x, y)
			g.piece(piece.Kind())
		}
	}
	return g.moves, g.captures
}
