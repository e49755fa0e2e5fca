package tactic

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/ChizhovVadim/chessai/pkg/engine"
	"github.com/ChizhovVadim/chessai/pkg/eval"
)

func TestLoadEpd(t *testing.T) {
	var logOutput bytes.Buffer
	var input = DefaultTests + `
8/8/8/8/8/8/8/8 w - - bm Ra8#;
4k3/8/8/8/8/8/8/R3K3 w Q - bm Rb5;
4k3/8/8/8/8/8/8/R3K3 w Q - no best move
`
	var tests, err = LoadEpd(strings.NewReader(input), log.New(&logOutput, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(tests) != 4 {
		t.Fatal(len(tests))
	}
	if n := strings.Count(logOutput.String(), "\n"); n != 3 {
		t.Error("rejected lines", n, logOutput.String())
	}
	if tests[2].bestMoves[0].String() != "e4d5" {
		t.Error(tests[2].bestMoves)
	}
}

func TestRun(t *testing.T) {
	var tests, err = LoadEpd(strings.NewReader(DefaultTests), log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	var e = engine.NewEngine(eval.NewEvaluationService(), nil)
	var config = engine.SearchConfig{Strategy: engine.AlphaBeta, Depth: 4}
	solved, err := Run(context.Background(), tests, e, config, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if solved != len(tests) {
		t.Error("solved", solved, "of", len(tests))
	}
}
