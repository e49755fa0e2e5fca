package arena

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ChizhovVadim/chessai/internal/pgn"
	"github.com/ChizhovVadim/chessai/pkg/common"
	"github.com/ChizhovVadim/chessai/pkg/engine"
)

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	items    []pgn.Item
	comment  string
	result   common.GameResult
}

// player is one side of a game: its engine and search settings.
type player struct {
	engine *engine.Engine
	config engine.SearchConfig
}

func playGame(
	ctx context.Context,
	playerA, playerB player,
	maxPlies int,
	info gameInfo,
) (gameResult, error) {

	var b, err = common.NewBoardFromFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var items []pgn.Item
	for {
		if result, comment := b.Result(); result != common.GameOngoing {
			return gameResult{gameInfo: info, items: items, comment: comment, result: result}, nil
		}
		if maxPlies > 0 && len(items) >= maxPlies {
			return gameResult{gameInfo: info, items: items, comment: "max plies", result: common.GameDraw}, nil
		}
		var p player
		if b.WhiteMove == info.engineAIsWhite {
			p = playerA
		} else {
			p = playerB
		}
		var searchInfo, err = p.engine.Search(ctx, b, p.config)
		if err != nil {
			return gameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, err)
		}
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		var bestMove = searchInfo.Move
		if !b.IsLegal(bestMove) {
			return gameResult{}, fmt.Errorf("game %v: bad move %v in %v", info.gameNumber, bestMove, b)
		}
		b.ApplyMove(bestMove)
		items = append(items, pgn.Item{
			Move: bestMove,
			Comment: pgn.Comment{
				Depth: searchInfo.Depth,
				Score: engine.NewUciScore(searchInfo.Score),
			},
		})
	}
}

func (r gameResult) pgnGame(engineA, engineB string) *pgn.Game {
	var white, black = engineA, engineB
	if !r.gameInfo.engineAIsWhite {
		white, black = black, white
	}
	return &pgn.Game{
		Tags: []pgn.Tag{
			{Key: "Event", Value: "arena"},
			{Key: "Round", Value: strconv.Itoa(r.gameInfo.gameNumber)},
			{Key: "White", Value: white},
			{Key: "Black", Value: black},
			{Key: "Termination", Value: r.comment},
		},
		Fen:    r.gameInfo.opening,
		Items:  r.items,
		Result: r.result,
	}
}

// points of engine A in a finished game
func (r gameResult) points() float64 {
	switch {
	case r.result == common.GameDraw:
		return 0.5
	case r.result == common.GameWhiteWins && r.gameInfo.engineAIsWhite,
		r.result == common.GameBlackWins && !r.gameInfo.engineAIsWhite:
		return 1
	}
	return 0
}
