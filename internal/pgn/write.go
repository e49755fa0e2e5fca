package pgn

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ChizhovVadim/chessai/pkg/common"
)

const maxLineLength = 80

// Write prints the game in export format. The Result tag is taken from
// g.Result and the FEN and SetUp tags from g.Fen.
func Write(w io.Writer, g *Game) error {
	var startFen = g.Fen
	if startFen == "" {
		startFen = common.InitialPositionFen
	}
	var b, err = common.NewBoardFromFEN(startFen)
	if err != nil {
		return err
	}

	var bw = bufio.NewWriter(w)
	for _, tag := range g.Tags {
		if tag.Key == "Result" || tag.Key == "FEN" || tag.Key == "SetUp" {
			continue
		}
		fmt.Fprintf(bw, "[%v \"%v\"]\n", tag.Key, tag.Value)
	}
	fmt.Fprintf(bw, "[Result \"%v\"]\n", g.Result)
	if g.Fen != "" {
		fmt.Fprintf(bw, "[FEN \"%v\"]\n", g.Fen)
		fmt.Fprintln(bw, "[SetUp \"1\"]")
	}
	fmt.Fprintln(bw)

	var tokens []string
	var moveNumber = 1
	for i, item := range g.Items {
		if !b.IsLegal(item.Move) {
			return fmt.Errorf("%w: %v at ply %v", common.ErrInvalidMove, item.Move, i+1)
		}
		if b.WhiteMove {
			tokens = append(tokens, fmt.Sprintf("%v.", moveNumber))
		} else if i == 0 {
			tokens = append(tokens, fmt.Sprintf("%v...", moveNumber))
		}
		tokens = append(tokens, b.MoveToSAN(item.Move))
		if comment := item.Comment.String(); comment != "" {
			tokens = append(tokens, "{"+comment+"}")
		}
		if !b.WhiteMove {
			moveNumber++
		}
		b.ApplyMove(item.Move)
	}
	tokens = append(tokens, g.Result.String())

	var line strings.Builder
	for _, t := range tokens {
		if line.Len() != 0 && line.Len()+1+len(t) > maxLineLength {
			fmt.Fprintln(bw, line.String())
			line.Reset()
		}
		if line.Len() != 0 {
			line.WriteString(" ")
		}
		line.WriteString(t)
	}
	fmt.Fprintln(bw, line.String())
	fmt.Fprintln(bw)
	return bw.Flush()
}
