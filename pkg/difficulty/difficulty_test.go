package difficulty

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ChizhovVadim/chessai/pkg/engine"
)

func TestGet(t *testing.T) {
	var tests = []struct {
		name string
		want engine.SearchConfig
	}{
		{"easy", engine.SearchConfig{Strategy: engine.Minimax, Depth: 2, DrawAvoidance: 90}},
		{"Medium", engine.SearchConfig{Strategy: engine.AlphaBeta, Depth: 4, DrawAvoidance: 90}},
		{"hard", engine.SearchConfig{
			Strategy:              engine.IterativeDeepening,
			Depth:                 6,
			TimeBudgetMs:          10000,
			UseQuiescence:         true,
			UseTranspositionTable: true,
			DrawAvoidance:         90,
		}},
	}
	for _, test := range tests {
		var got, err = Get(test.name)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%v (-want +got):\n%s", test.name, diff)
		}
		if err := got.Validate(); err != nil {
			t.Error(test.name, err)
		}
	}
}

func TestUnknown(t *testing.T) {
	for _, name := range []string{"", "expert", "ease"} {
		if _, err := Get(name); !errors.Is(err, ErrUnknownDifficulty) {
			t.Error(name, err)
		}
	}
}

func TestNames(t *testing.T) {
	for _, name := range Names() {
		if _, err := Get(name); err != nil {
			t.Error(err)
		}
	}
	if len(Names()) != len(levels) {
		t.Error(Names())
	}
}
