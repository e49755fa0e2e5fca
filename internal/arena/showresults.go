package arena

import (
	"log"
	"math"

	"github.com/ChizhovVadim/chessai/internal/evalbuilder"
	"github.com/ChizhovVadim/chessai/internal/pgn"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func showResults(
	gameResults <-chan gameResult,
	config Config,
	logger *log.Logger,
) GameStatistics {
	var points []float64
	var result GameStatistics
	for gameResult := range gameResults {
		logger.Printf("Finished game %v: %v {%v} %v plies\n",
			gameResult.gameInfo.gameNumber,
			gameResult.result,
			gameResult.comment,
			len(gameResult.items))
		if config.Pgn != nil {
			var engineA = config.EngineA + "/" + evalName(config.EvalA)
			var engineB = config.EngineB + "/" + evalName(config.EvalB)
			if err := pgn.Write(config.Pgn, gameResult.pgnGame(engineA, engineB)); err != nil {
				logger.Println(err)
			}
		}
		points = append(points, gameResult.points())
		result = computeStat(points)
		logger.Printf("Score: %v - %v - %v  [%.3f] %v\n",
			result.Wins, result.Losses, result.Draws, result.WinningFraction, result.Games)
		logger.Printf("Elo difference: %.1f +/- %.1f, LOS: %.1f %%\n",
			result.EloDifference, result.EloMargin, result.LOS*100)
	}
	return result
}

func evalName(name string) string {
	if name == "" {
		return evalbuilder.Names()[0]
	}
	return name
}

type GameStatistics struct {
	Games           int
	Wins            int
	Losses          int
	Draws           int
	WinningFraction float64
	EloDifference   float64
	EloMargin       float64 // 95% confidence
	LOS             float64 // likelihood of superiority
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(points []float64) GameStatistics {
	var result = GameStatistics{Games: len(points)}
	if result.Games == 0 {
		return result
	}
	for _, p := range points {
		switch p {
		case 1:
			result.Wins++
		case 0:
			result.Losses++
		default:
			result.Draws++
		}
	}

	var mean, std = stat.MeanStdDev(points, nil)
	result.WinningFraction = mean
	result.EloDifference = eloDifference(mean)
	if result.Games > 1 {
		var margin = 1.96 * stat.StdErr(std, float64(result.Games))
		result.EloMargin = (eloDifference(mean+margin) - eloDifference(mean-margin)) / 2
	}

	var decisive = result.Wins + result.Losses
	if decisive == 0 {
		result.LOS = 0.5
	} else {
		result.LOS = distuv.UnitNormal.CDF(float64(result.Wins-result.Losses) / math.Sqrt(float64(decisive)))
	}
	return result
}

func eloDifference(score float64) float64 {
	return -math.Log10(1/score-1) * 400
}
