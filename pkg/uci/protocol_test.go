package uci

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ChizhovVadim/chessai/pkg/common"
	"github.com/ChizhovVadim/chessai/pkg/difficulty"
	"github.com/ChizhovVadim/chessai/pkg/engine"
	"github.com/ChizhovVadim/chessai/pkg/eval"
)

func newTestProtocol() (*Protocol, *string) {
	var level = difficulty.Easy
	var eng = engine.NewEngine(eval.NewEvaluationService(), nil)
	var protocol = New("chessai", "test", "dev", eng,
		func() (engine.SearchConfig, error) {
			return difficulty.Get(level)
		},
		[]Option{
			&ComboOption{Name: "Difficulty", Values: difficulty.Names(), Value: &level},
		})
	eng.Progress = protocol.OnProgress
	return protocol, &level
}

func serve(t *testing.T, protocol *Protocol, input string) (output, logs string) {
	t.Helper()
	var out, logBuf bytes.Buffer
	protocol.Serve(strings.NewReader(input), &out, log.New(&logBuf, "", 0))
	return out.String(), logBuf.String()
}

func bestMove(t *testing.T, output string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if rest, ok := strings.CutPrefix(line, "bestmove "); ok {
			return rest
		}
	}
	t.Fatal("no bestmove in", output)
	return ""
}

func TestHandshake(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var output, logs = serve(t, protocol, "uci\nisready\nquit\n")
	var want = []string{
		"id name chessai dev",
		"id author test",
		"option name Difficulty type combo default easy var easy var medium var hard",
		"uciok",
		"readyok",
	}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSpace(output), "\n")); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if logs != "" {
		t.Error(logs)
	}
}

func TestGo(t *testing.T) {
	var protocol, level = newTestProtocol()
	var output, logs = serve(t, protocol,
		"setoption name Difficulty value Medium\n"+
			"position startpos moves e2e4 e7e5\n"+
			"go depth 2\n")
	if *level != difficulty.Medium {
		t.Error(*level)
	}
	var b = common.NewInitialBoard()
	for _, lan := range []string{"e2e4", "e7e5"} {
		var m, _ = b.ParseMoveLAN(lan)
		b.ApplyMove(m)
	}
	var m, err = b.ParseMoveLAN(bestMove(t, output))
	if err != nil {
		t.Error(err)
	}
	if !b.IsLegal(m) {
		t.Error(m)
	}
	if !strings.Contains(output, "info depth 2 score cp") {
		t.Error(output)
	}
	if logs != "" {
		t.Error(logs)
	}
}

func TestGoFinishedGame(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var output, logs = serve(t, protocol,
		"position startpos moves f2f3 e7e5 g2g4 d8h4\ngo\n")
	if bestMove(t, output) != "0000" {
		t.Error(output)
	}
	if !strings.Contains(logs, engine.ErrGameOver.Error()) {
		t.Error(logs)
	}
}

func TestBadCommands(t *testing.T) {
	var protocol, _ = newTestProtocol()
	var _, logs = serve(t, protocol,
		"position startpos moves e2e5\n"+
			"setoption name Difficulty value expert\n"+
			"setoption name Hash value 16\n"+
			"xyzzy\n")
	var lines = strings.Split(strings.TrimSpace(logs), "\n")
	if len(lines) != 4 {
		t.Error(logs)
	}
	if protocol.board.String() != common.InitialPositionFen {
		t.Error("failed position command keeps the old board", protocol.board)
	}
}

func TestApplyLimits(t *testing.T) {
	var easy, _ = difficulty.Get(difficulty.Easy)
	var tests = []struct {
		name   string
		fields string
		want   engine.SearchConfig
	}{
		{"depth", "depth 3",
			engine.SearchConfig{Strategy: engine.Minimax, Depth: 3, DrawAvoidance: 90}},
		{"movetime", "movetime 500",
			engine.SearchConfig{Strategy: engine.IterativeDeepening, Depth: engine.MaxDepth, TimeBudgetMs: 500, DrawAvoidance: 90}},
		{"clock", "wtime 35300 btime 1000",
			engine.SearchConfig{Strategy: engine.IterativeDeepening, Depth: engine.MaxDepth, TimeBudgetMs: 1000, DrawAvoidance: 90}},
		{"infinite", "infinite",
			engine.SearchConfig{Strategy: engine.IterativeDeepening, Depth: engine.MaxDepth, DrawAvoidance: 90}},
		{"none", "",
			easy},
	}
	for _, test := range tests {
		var got = applyLimits(easy, parseLimits(strings.Fields(test.fields)), true)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%v (-want +got):\n%s", test.name, diff)
		}
	}
}
