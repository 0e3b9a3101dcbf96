package evalbuilder

import (
	"testing"

	"github.com/gridchess/gridchess/pkg/common"
)

func TestGet(t *testing.T) {
	var b, side, err = common.ParseFEN("4k3/8/8/8/3N4/8/8/4K3 w")
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		key  string
		want int
	}{
		{"", 340},
		{"pst", 340},
		{"material", 320},
	}
	for _, test := range tests {
		var builder, err = Get(test.key)
		if err != nil {
			t.Fatal(err)
		}
		if got := builder().Evaluate(&b, side); got != test.want {
			t.Errorf("%q: Evaluate() = %v, want %v", test.key, got, test.want)
		}
	}
	if _, err := Get("nnue"); err == nil {
		t.Error("expected error for unknown eval")
	}
}
