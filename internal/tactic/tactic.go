package tactic

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ChizhovVadim/chessai/pkg/common"
	"github.com/ChizhovVadim/chessai/pkg/engine"
)

// DefaultTests is a small EPD suite of forced wins.
const DefaultTests = `6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1 bm Ra8#; id "back rank";
r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1 bm Ra1#; id "back rank black";
4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1 bm exd5; id "hanging queen";
r3k3/8/8/1N6/8/8/8/4K3 w - - 0 1 bm Nc7+; id "knight fork";
`

type EpdItem struct {
	content   string
	board     *common.Board
	bestMoves []common.Move
}

type IEngine interface {
	FindBestMove(ctx context.Context, b *common.Board, config engine.SearchConfig) (common.Move, error)
}

// LoadEpd reads one test per line. Lines that do not parse are logged and skipped.
func LoadEpd(r io.Reader, logger *log.Logger) ([]EpdItem, error) {
	var result []EpdItem
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var test, err = parseEpdTest(line)
		if err != nil {
			logger.Println(err)
			continue
		}
		result = append(result, test)
	}
	return result, scanner.Err()
}

func parseEpdTest(s string) (EpdItem, error) {
	var bmBegin = strings.Index(s, "bm ")
	var bmEnd = strings.Index(s, ";")
	if bmBegin < 0 || bmEnd < bmBegin {
		return EpdItem{}, fmt.Errorf("best move not found %v", s)
	}
	var fen = strings.TrimSpace(s[:bmBegin])
	var sBestMoves = strings.Fields(s[bmBegin:bmEnd])[1:]

	// EPD carries four FEN fields, the move counters are optional
	if len(strings.Fields(fen)) == 4 {
		fen += " 0 1"
	}
	var b, err = common.NewBoardFromFEN(fen)
	if err != nil {
		return EpdItem{}, err
	}

	var bestMoves []common.Move
	for _, sBestMove := range sBestMoves {
		var move, err = b.ParseMoveSAN(sBestMove)
		if err != nil {
			return EpdItem{}, fmt.Errorf("parse move failed %v: %w", s, err)
		}
		bestMoves = append(bestMoves, move)
	}
	if len(bestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("empty best moves %v", s)
	}

	return EpdItem{
		content:   s,
		board:     b,
		bestMoves: bestMoves,
	}, nil
}

// Run searches every test position and returns how many were solved.
func Run(ctx context.Context, tests []EpdItem, eng IEngine,
	config engine.SearchConfig, logger *log.Logger) (int, error) {

	var solved = 0
	for i, test := range tests {
		var move, err = eng.FindBestMove(ctx, test.board, config)
		if err != nil {
			return solved, err
		}
		if containsMove(test.bestMoves, move) {
			solved++
		} else {
			logger.Printf("failed %v: played %v, %v", i+1, move, test.content)
		}
	}
	logger.Printf("solved %v of %v", solved, len(tests))
	return solved, nil
}

func containsMove(ml []common.Move, move common.Move) bool {
	for _, m := range ml {
		if m == move {
			return true
		}
	}
	return false
}
