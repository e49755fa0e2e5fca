package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChizhovVadim/chessai/pkg/common"
	"github.com/ChizhovVadim/chessai/pkg/difficulty"
	"github.com/ChizhovVadim/chessai/pkg/engine"
)

var errNoGame = errors.New("no game in progress")

// GameState is the snapshot sent to the client after every message.
type GameState struct {
	FEN        string   `json:"fen"`
	WhiteMove  bool     `json:"whiteMove"`
	LegalMoves []string `json:"legalMoves"`
	InCheck    bool     `json:"inCheck"`
	Result     string   `json:"result"`
	Reason     string   `json:"reason,omitempty"`
	Difficulty string   `json:"difficulty"`
	LastMove   string   `json:"lastMove,omitempty"`
}

// session is one game: the authoritative board and the engine playing it.
type session struct {
	engine     *engine.Engine
	board      *common.Board
	difficulty string
	config     engine.SearchConfig
	lastMove   common.Move
}

func newSession(eng *engine.Engine) *session {
	return &session{engine: eng}
}

func (s *session) newGame(fen, level string) error {
	if level == "" {
		level = difficulty.Medium
	}
	var config, err = difficulty.Get(level)
	if err != nil {
		return err
	}
	var b *common.Board
	if fen == "" {
		b = common.NewInitialBoard()
	} else {
		b, err = common.NewBoardFromFEN(fen)
		if err != nil {
			return err
		}
	}
	s.board = b
	s.difficulty = level
	s.config = config
	s.lastMove = common.MoveEmpty
	return nil
}

// play applies a move given in long algebraic notation.
func (s *session) play(lan string) error {
	if s.board == nil {
		return errNoGame
	}
	if s.board.IsGameOver() {
		return engine.ErrGameOver
	}
	var move, err = s.board.ParseMoveLAN(lan)
	if err != nil {
		return err
	}
	s.board.ApplyMove(move)
	s.lastMove = move
	return nil
}

// think lets the engine choose and play a move for the side to move.
func (s *session) think(ctx context.Context) (common.Move, error) {
	if s.board == nil {
		return common.MoveEmpty, errNoGame
	}
	var move, err = s.engine.FindBestMove(ctx, s.board, s.config)
	if err != nil {
		return common.MoveEmpty, fmt.Errorf("think: %w", err)
	}
	s.board.ApplyMove(move)
	s.lastMove = move
	return move, nil
}

func (s *session) state() (GameState, error) {
	if s.board == nil {
		return GameState{}, errNoGame
	}
	var b = s.board
	var result, reason = b.Result()
	var moves = b.GenerateMoves()
	var legal = make([]string, len(moves))
	for i, m := range moves {
		legal[i] = m.String()
	}
	var state = GameState{
		FEN:        b.String(),
		WhiteMove:  b.WhiteMove,
		LegalMoves: legal,
		InCheck:    b.IsCheck(),
		Result:     result.String(),
		Reason:     reason,
		Difficulty: s.difficulty,
	}
	if s.lastMove != common.MoveEmpty {
		state.LastMove = s.lastMove.String()
	}
	return state, nil
}
