package arena

import (
	"context"
	"io"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/chessai/internal/evalbuilder"
	"github.com/ChizhovVadim/chessai/pkg/difficulty"
	"github.com/ChizhovVadim/chessai/pkg/engine"
)

type Config struct {
	Concurrency int
	EngineA     string // difficulty level
	EngineB     string
	EvalA       string // evaluation function, see evalbuilder
	EvalB       string
	Openings    []string
	MaxPlies    int
	Pgn         io.Writer // finished games are written here when set
}

// Run plays every opening twice, once per color, between two difficulty
// levels and returns the statistics from engine A's point of view.
func Run(
	ctx context.Context,
	config Config,
	logger *log.Logger,
) (GameStatistics, error) {
	logger.Println("arena started")
	defer logger.Println("arena finished")

	logger.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", config.Concurrency)

	logger.Printf("%+v\n", config)

	configA, err := difficulty.Get(config.EngineA)
	if err != nil {
		return GameStatistics{}, err
	}
	configB, err := difficulty.Get(config.EngineB)
	if err != nil {
		return GameStatistics{}, err
	}
	evalA, err := evalbuilder.Get(config.EvalA)
	if err != nil {
		return GameStatistics{}, err
	}
	evalB, err := evalbuilder.Get(config.EvalB)
	if err != nil {
		return GameStatistics{}, err
	}
	var openings = config.Openings
	if len(openings) == 0 {
		openings = DefaultOpenings
	}

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stat GameStatistics

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, openings, gameInfos)
	})

	g.Go(func() error {
		stat = showResults(gameResults, config, logger)
		return nil
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < max(1, config.Concurrency); i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			var playerA = player{engine: engine.NewEngine(evalA(), logger), config: configA}
			var playerB = player{engine: engine.NewEngine(evalB(), logger), config: configB}
			return playGames(ctx, playerA, playerB, config.MaxPlies, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return GameStatistics{}, err
	}
	return stat, nil
}

func playGames(
	ctx context.Context,
	playerA, playerB player,
	maxPlies int,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, playerA, playerB, maxPlies, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
