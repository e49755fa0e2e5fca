package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/ChizhovVadim/chessai/internal/arena"
)

var config arena.Config

func main() {
	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	var err = run(logger)
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of games played at once")
	flag.StringVar(&config.EngineA, "a", "medium", "Difficulty of engine A")
	flag.StringVar(&config.EngineB, "b", "easy", "Difficulty of engine B")
	flag.StringVar(&config.EvalA, "evala", "", "Evaluation function of engine A: full or material")
	flag.StringVar(&config.EvalB, "evalb", "", "Evaluation function of engine B: full or material")
	flag.IntVar(&config.MaxPlies, "maxplies", 300, "Adjudicate a draw after this many plies, 0 for no limit")
	var pgnPath string
	flag.StringVar(&pgnPath, "pgn", "", "Write finished games to this PGN file")
	flag.Parse()

	if pgnPath != "" {
		var file, err = os.Create(pgnPath)
		if err != nil {
			return err
		}
		defer file.Close()
		config.Pgn = file
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var stat, err = arena.Run(ctx, config, logger)
	if err != nil {
		return err
	}
	logger.Printf("%+v", stat)
	return nil
}
