package common

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var testFENs = []string{
	InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"1K1k4/8/5n2/3p4/8/1BN2B2/6b1/7b w - - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
}

var sortMoves = cmpopts.SortSlices(func(a, b Move) bool {
	if a.From != b.From {
		return a.From.Index() < b.From.Index()
	}
	return a.To.Index() < b.To.Index()
})

func mustParseFEN(t *testing.T, fen string) (Board, Color) {
	t.Helper()
	var b, side, err = ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return b, side
}

func mustParseMoves(t *testing.T, ss ...string) []Move {
	t.Helper()
	var result []Move
	for _, s := range ss {
		var m, err = ParseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		result = append(result, m)
	}
	return result
}

func TestParseFEN(t *testing.T) {
	for _, fen := range testFENs {
		var b, _ = mustParseFEN(t, fen)
		var want = fen[:len(b.String())]
		if got := b.String(); got != want {
			t.Errorf("String() = %v, want %v", got, want)
		}
	}

	var _, side, err = ParseFEN("8/8/8/8/8/8/8/K6k b")
	if err != nil || side != Black {
		t.Errorf("side = %v, err = %v", side, err)
	}

	for _, fen := range []string{"", "8/8/8", "9/8/8/8/8/8/8/8 w", "8/8/8/8/8/8/8/7X w", "8/8/8/8/8/8/8/8 x", "8/8/8/8/8/8/8/K6K w", "k6k/8/8/8/8/8/8/4K3 b"} {
		if _, _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) err = %v", fen, err)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	var tests = []struct {
		name string
		fen  string
		want bool
	}{
		{"initial", InitialPositionFen, false},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w", false},
		{"white king captured", "4k3/8/8/8/8/8/8/4R3 w", true},
		{"black king captured", "4Q3/8/8/8/8/8/8/4K3 b", true},
		{"empty", "8/8/8/8/8/8/8/8 w", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b, _ = mustParseFEN(t, tt.fen)
			if got := b.IsTerminal(); got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}

	// two white kings and no black king
	var b Board
	b.Set(MakeSquare(0, 7), WhiteKing)
	b.Set(MakeSquare(7, 7), WhiteKing)
	if !b.IsTerminal() {
		t.Error("board without a black king is not terminal")
	}
}

func TestInitialPositionMoves(t *testing.T) {
	var b, _ = mustParseFEN(t, InitialPositionFen)
	for _, side := range []Color{White, Black} {
		var moves, captures = b.GenerateMoves(side, true, nil, nil)
		if len(moves) != 20 || len(captures) != 0 {
			t.Errorf("%v: moves %v captures %v", side, len(moves), len(captures))
		}
	}
}

func TestSliderStopsAtFirstOccupiedSquare(t *testing.T) {
	var tests = []struct {
		name     string
		fen      string
		from     string
		moves    []string
		captures []string
	}{
		{
			name:     "rook",
			fen:      "4k3/8/3P4/8/1p1R2p1/8/8/4K3 w",
			from:     "d4",
			moves:    []string{"d4d5", "d4d3", "d4d2", "d4d1", "d4c4", "d4e4", "d4f4"},
			captures: []string{"d4b4", "d4g4"},
		},
		{
			name:     "bishop",
			fen:      "4k3/6p1/8/2P5/3b4/8/8/B3K3 b",
			from:     "d4",
			moves:    []string{"d4e5", "d4f6", "d4e3", "d4f2", "d4g1", "d4c3", "d4b2"},
			captures: []string{"d4c5", "d4a1"},
		},
		{
			name:     "queen in corner",
			fen:      "QN6/pP6/8/8/8/8/8/k6K w",
			from:     "a8",
			moves:    nil,
			captures: []string{"a8a7"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b, side = mustParseFEN(t, tt.fen)
			var from, err = ParseSquare(tt.from)
			if err != nil {
				t.Fatal(err)
			}
			var moves, captures = b.GeneratePieceMoves(side, from, true, nil, nil)
			if diff := cmp.Diff(mustParseMoves(t, tt.moves...), moves, sortMoves, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("moves mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(mustParseMoves(t, tt.captures...), captures, sortMoves, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("captures mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPawnMoves(t *testing.T) {
	var tests = []struct {
		name  string
		fen   string
		from  string
		moves []string
	}{
		{"white start", "4k3/8/8/8/8/8/4P3/4K3 w", "e2", []string{"e2e3", "e2e4"}},
		{"black start", "4k3/3p4/8/8/8/8/8/4K3 b", "d7", []string{"d7d6", "d7d5"}},
		{"double blocked", "4k3/8/8/8/4n3/8/4P3/4K3 w", "e2", []string{"e2e3"}},
		{"single blocked", "4k3/8/8/8/8/4n3/4P3/4K3 w", "e2", nil},
		{"not on start row", "4k3/8/8/8/8/4P3/8/4K3 w", "e3", []string{"e3e4"}},
		{"captures", "4k3/8/8/8/8/3p1N2/4P3/4K3 w", "e2", []string{"e2e3", "e2e4", "e2d3"}},
		{"black captures", "4k3/8/8/4p3/3P1P2/8/8/4K3 b", "e5", []string{"e5e4", "e5d4", "e5f4"}},
		{"last row", "P3k3/8/8/8/8/8/8/4K3 w", "a8", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b, side = mustParseFEN(t, tt.fen)
			var from, _ = ParseSquare(tt.from)
			var moves, _ = b.GeneratePieceMoves(side, from, false, nil, nil)
			if diff := cmp.Diff(mustParseMoves(t, tt.moves...), moves, sortMoves, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLeaperMoves(t *testing.T) {
	var b, _ = mustParseFEN(t, "4k3/8/8/8/8/8/2p5/N3K3 w")
	var moves, captures = b.GeneratePieceMoves(White, MakeSquare(0, 7), true, nil, nil)
	if diff := cmp.Diff(mustParseMoves(t, "a1b3"), moves, sortMoves); diff != "" {
		t.Errorf("knight moves mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(mustParseMoves(t, "a1c2"), captures, sortMoves); diff != "" {
		t.Errorf("knight captures mismatch (-want +got):\n%s", diff)
	}

	var king, _ = ParseSquare("e1")
	moves, _ = b.GeneratePieceMoves(White, king, false, nil, nil)
	if diff := cmp.Diff(mustParseMoves(t, "e1d1", "e1f1", "e1d2", "e1e2", "e1f2"), moves, sortMoves); diff != "" {
		t.Errorf("king moves mismatch (-want +got):\n%s", diff)
	}
}

func TestCapturePartition(t *testing.T) {
	for _, fen := range testFENs {
		var b, _ = mustParseFEN(t, fen)
		for _, side := range []Color{White, Black} {
			var moves, captures = b.GenerateMoves(side, true, nil, nil)
			var merged, rest = b.GenerateMoves(side, false, nil, nil)
			if len(rest) != 0 {
				t.Errorf("%v %v: captures not merged", fen, side)
			}
			var union = append(append([]Move{}, moves...), captures...)
			if diff := cmp.Diff(merged, union, sortMoves, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("%v %v: union mismatch (-want +got):\n%s", fen, side, diff)
			}
			var seen = make(map[Move]bool)
			for _, m := range moves {
				seen[m] = true
			}
			for _, m := range captures {
				if seen[m] {
					t.Errorf("%v %v: %v in both lists", fen, side, m)
				}
				if !b.At(m.To).IsColor(side.Opposite()) {
					t.Errorf("%v %v: %v captures nothing", fen, side, m)
				}
			}
		}
	}
}

func TestPerft(t *testing.T) {
	var tests = []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	var b, side = mustParseFEN(t, InitialPositionFen)
	for _, test := range tests {
		if testing.Short() && test.depth > 3 {
			continue
		}
		if nodes := perft(&b, side, test.depth); nodes != test.nodes {
			t.Error(test, nodes)
		}
	}
}

func perft(b *Board, side Color, depth int) int {
	var result = 0
	var buffer [MaxMoves]Move
	var ml, _ = b.GenerateMoves(side, false, buffer[:0], nil)
	var child Board
	for _, move := range ml {
		b.MakeMove(move, &child)
		if child.IsCheck(side) {
			continue
		}
		if depth > 1 {
			result += perft(&child, side.Opposite(), depth-1)
		} else {
			result++
		}
	}
	return result
}
