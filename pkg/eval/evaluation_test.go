package eval

import (
	"testing"

	. "github.com/ChizhovVadim/chessai/pkg/common"
)

var testFENs = []string{
	// Initial position
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	// Kiwipete
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"1rr3k1/4ppb1/2q1bnp1/1p2B1Q1/6P1/2p2P2/2P1B2R/2K4R w - - 0 1",
	"8/8/3p4/4r3/2RKP3/5k2/8/8 b - - 0 1",
	"r2qk2r/pppb1ppp/2np4/1Bb5/4n3/5N2/PPP2PPP/RNBQR1K1 b kq - 1 1",
	"8/K5p1/1P1k1p1p/5P1P/2R3P1/8/8/8 b - - 0 78",
	"r1bqkb1r/ppp1pp2/2n3P1/3p4/3Pn3/5N1P/PPP1PPB1/RNBQK2R b KQkq - 0 1",
}

type evaluator interface {
	Evaluate(b *Board) int
}

func TestEval(t *testing.T) {
	for _, e := range []evaluator{NewEvaluationService(), NewMaterialEvaluationService()} {
		testMirror(t, e)
	}
}

func testMirror(t *testing.T, e evaluator) {
	t.Helper()
	for _, test := range testFENs {
		var b1, err = NewBoardFromFEN(test)
		if err != nil {
			t.Fatal(err)
		}
		var score1 = e.Evaluate(b1)
		var b2 = b1.Mirror()
		var score2 = e.Evaluate(b2)
		if score1 != score2 {
			t.Error(test, b2.String(), score1, score2)
		}
	}
}

func TestEvalInitial(t *testing.T) {
	var e = NewEvaluationService()
	if score := e.Evaluate(NewInitialBoard()); score != 0 {
		t.Error(score)
	}
	var b, _ = NewBoardFromFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if score := NewMaterialEvaluationService().Evaluate(b); score != -PieceValue(Rook) {
		t.Error(score)
	}
}

func TestEvalSideToMove(t *testing.T) {
	var e = NewEvaluationService()
	var white, _ = NewBoardFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	var black, _ = NewBoardFromFEN("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	var score = e.Evaluate(white)
	if score <= PieceValue(Rook) {
		t.Error("extra queen", score)
	}
	if e.Evaluate(black) != -score {
		t.Error(e.Evaluate(black), score)
	}
}

func TestEvalTerms(t *testing.T) {
	var e = NewEvaluationService()
	var tests = []struct {
		name   string
		better string
		worse  string
	}{
		{"bishop pair",
			"4k3/8/8/8/8/8/8/2BBK3 w - - 0 1",
			"4k3/8/8/8/8/8/8/2BNK3 w - - 0 1"},
		{"isolated pawn",
			"4k3/8/8/8/8/3PP3/8/4K3 w - - 0 1",
			"4k3/8/8/8/8/2P1P3/8/4K3 w - - 0 1"},
		{"central king in endgame",
			"7k/8/8/8/4K3/8/8/8 w - - 0 1",
			"7k/8/8/8/8/8/8/K7 w - - 0 1"},
		{"castled king",
			"r1bq1rk1/8/8/8/8/8/8/R1BQ1RK1 w - - 0 1",
			"r1bq1rk1/8/8/8/8/8/8/R1BQRK2 w - - 0 1"},
	}
	for _, test := range tests {
		var better, _ = NewBoardFromFEN(test.better)
		var worse, _ = NewBoardFromFEN(test.worse)
		if e.Evaluate(better) <= e.Evaluate(worse) {
			t.Error(test.name, e.Evaluate(better), e.Evaluate(worse))
		}
	}
}
