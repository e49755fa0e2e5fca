package engine

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	. "github.com/ChizhovVadim/chessai/pkg/common"
)

var (
	ErrUnknownStrategy = errors.New("unknown search strategy")
	ErrInvalidConfig   = errors.New("invalid search config")
	ErrGameOver        = errors.New("game is over")
)

type IEvaluator interface {
	Evaluate(b *Board) int
}

type SearchInfo struct {
	Move  Move
	Score int
	Depth int
	Nodes int64
	Time  time.Duration
	// Completed is false when the search was cut short and the move is best effort.
	Completed bool
}

// Engine is not safe for concurrent use. Each game owns its engine.
type Engine struct {
	Progress    func(SearchInfo)
	evaluator   IEvaluator
	logger      *log.Logger
	config      SearchConfig
	board       *Board
	timeManager *timeManager
	transTable  *transTable
	start       time.Time
	nodes       int64
	aborted     bool
	history     history
	stack       [stackSize]struct {
		moveList       [MaxMoves]orderedMove
		quietsSearched [MaxMoves]Move
	}
}

func NewEngine(evaluator IEvaluator, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		evaluator: evaluator,
		logger:    logger,
	}
}

// Search explores the game tree from b according to config.
// b is cloned once and never modified.
func (e *Engine) Search(ctx context.Context, b *Board, config SearchConfig) (SearchInfo, error) {
	if err := config.Validate(); err != nil {
		return SearchInfo{}, err
	}
	if b.IsGameOver() {
		return SearchInfo{}, ErrGameOver
	}

	e.start = time.Now()
	e.config = config
	e.board = b.Clone()
	e.nodes = 0
	e.aborted = false
	e.history.Clear()
	e.transTable = nil
	if config.UseTranspositionTable && config.Strategy != Minimax {
		e.transTable = newTransTable()
	}
	e.timeManager = newTimeManager(ctx, e.start, config)
	defer e.timeManager.Close()

	var info SearchInfo
	if config.Strategy == IterativeDeepening {
		info = e.iterativeDeepening()
	} else {
		info = e.searchFixedDepth()
	}
	info = e.avoidDraw(info)
	info.Nodes = e.nodes
	info.Time = time.Since(e.start)
	if !info.Completed {
		e.logger.Printf("search degraded: %v reached depth %v, move %v, nodes %v, time %v",
			config.Strategy, info.Depth, info.Move, info.Nodes, info.Time)
	}
	return info, nil
}

// FindBestMove returns the move chosen by Search.
func (e *Engine) FindBestMove(ctx context.Context, b *Board, config SearchConfig) (Move, error) {
	var info, err = e.Search(ctx, b, config)
	if err != nil {
		return MoveEmpty, err
	}
	return info.Move, nil
}

func (e *Engine) searchFixedDepth() SearchInfo {
	var depth = e.config.Depth
	var score, move, ok = e.searchRoot(depth, MoveEmpty)
	if !ok {
		if move == MoveEmpty {
			move = e.board.GenerateMoves()[0]
		}
		return SearchInfo{Move: move, Score: score}
	}
	return SearchInfo{Move: move, Score: score, Depth: depth, Completed: true}
}

// avoidDraw replaces the result with the most valuable capture when the
// fifty move counter passes the configured threshold.
func (e *Engine) avoidDraw(info SearchInfo) SearchInfo {
	var b = e.board
	if e.config.DrawAvoidance <= 0 || b.Rule50 <= e.config.DrawAvoidance {
		return info
	}
	var best = MoveEmpty
	var bestValue = -1
	for _, m := range b.GenerateCaptures() {
		if v := sortPieceValues[b.CapturedPiece(m)]; v > bestValue {
			best, bestValue = m, v
		}
	}
	if best != MoveEmpty && best != info.Move {
		e.logger.Printf("draw avoidance: rule50 %v, playing %v instead of %v", b.Rule50, best, info.Move)
		info.Move = best
	}
	return info
}
