package utils

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ChizhovVadim/chessai/pkg/common"
	"github.com/ChizhovVadim/chessai/pkg/engine"
)

type IEngine interface {
	FindBestMove(ctx context.Context, b *common.Board, config engine.SearchConfig) (common.Move, error)
}

// PlayCli plays one console game. The human enters moves in long algebraic
// notation and the engine answers with config.
func PlayCli(ctx context.Context, in io.Reader, out io.Writer,
	eng IEngine, config engine.SearchConfig, humanWhite bool) error {

	var game = newGame(out)
	game.Print()
	if !humanWhite {
		if err := game.engineMove(ctx, eng, config); err != nil {
			return err
		}
	}
	var scanner = bufio.NewScanner(in)
	for !game.isOver() && scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "quit" {
			break
		}
		if !game.MakeMoveLAN(commandLine) {
			fmt.Fprintln(out, "bad move")
			continue
		}
		game.Print()
		if game.isOver() {
			break
		}
		if err := game.engineMove(ctx, eng, config); err != nil {
			return err
		}
	}
	return scanner.Err()
}

type game struct {
	board *common.Board
	out   io.Writer
}

func newGame(out io.Writer) *game {
	return &game{
		board: common.NewInitialBoard(),
		out:   out,
	}
}

func (g *game) engineMove(ctx context.Context, eng IEngine, config engine.SearchConfig) error {
	var bestMove, err = eng.FindBestMove(ctx, g.board, config)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, bestMove.String())
	if !g.MakeMove(bestMove) {
		return fmt.Errorf("bad move %v", bestMove)
	}
	g.Print()
	return nil
}

// isOver prints the result once the game has ended.
func (g *game) isOver() bool {
	var result, reason = g.board.Result()
	if result == common.GameOngoing {
		return false
	}
	fmt.Fprintf(g.out, "%v {%v}\n", result, reason)
	return true
}

func (g *game) Print() {
	for i := 0; i < 64; i++ {
		sq := common.FlipSquare(i)
		piece := g.board.Squares[sq]
		fmt.Fprint(g.out, pieceString(common.PieceType(piece), common.IsWhitePiece(piece), common.IsDarkSquare(sq)))
		if common.File(sq) == common.FileH {
			fmt.Fprintln(g.out)
		}
	}
}

func (g *game) MakeMoveLAN(smove string) bool {
	var move, err = g.board.ParseMoveLAN(smove)
	if err != nil {
		return false
	}
	g.board.ApplyMove(move)
	return true
}

func (g *game) MakeMove(move common.Move) bool {
	if !g.board.IsLegal(move) {
		return false
	}
	g.board.ApplyMove(move)
	return true
}

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

const (
	fgBlack   = 30
	bgWhite   = 47
	bgHiWhite = 107
)

var chessSymbols = [2][7]string{
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

func pieceString(piece int, white, darkSquare bool) string {
	var s string
	if white {
		s = chessSymbols[0][piece]
	} else {
		s = chessSymbols[1][piece]
	}
	s += " "
	const fgColor = fgBlack
	var bgColor int
	if darkSquare {
		bgColor = bgWhite
	} else {
		bgColor = bgHiWhite
	}
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s%s[%dm",
		escape, strconv.Itoa(fgColor), strconv.Itoa(bgColor), s, escape, reset)
}
