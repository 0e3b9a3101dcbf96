package common

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PawnDirection is the row delta of a forward pawn step.
func (c Color) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnStartRow() int {
	if c == White {
		return 6
	}
	return 1
}

type Kind int

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

type Piece int8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

const pieceChars = ".PNBRQKpnbrqk"

func MakePiece(kind Kind, c Color) Piece {
	if kind == None {
		return Empty
	}
	return Piece(int(kind) + int(c)*int(King))
}

func (p Piece) Kind() Kind {
	if p == Empty {
		return None
	}
	return Kind((int(p)-1)%int(King) + 1)
}

// Color is meaningful only for non-empty pieces.
func (p Piece) Color() Color {
	if p > WhiteKing {
		return Black
	}
	return White
}

func (p Piece) IsColor(c Color) bool {
	return p != Empty && p.Color() == c
}

func (p Piece) String() string {
	return string(pieceChars[p])
}
