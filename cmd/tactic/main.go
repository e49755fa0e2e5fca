package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/ChizhovVadim/chessai/internal/evalbuilder"
	"github.com/ChizhovVadim/chessai/internal/tactic"
	"github.com/ChizhovVadim/chessai/pkg/difficulty"
	"github.com/ChizhovVadim/chessai/pkg/engine"
)

func main() {
	var logger = log.New(os.Stderr, "", log.LstdFlags)
	var err = run(logger)
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	var epdPath, level, evalName string
	flag.StringVar(&epdPath, "epd", "", "EPD test file, the built-in suite when empty")
	flag.StringVar(&level, "difficulty", difficulty.Hard, "Difficulty level to test")
	flag.StringVar(&evalName, "eval", "", "Evaluation function: full or material")
	flag.Parse()

	config, err := difficulty.Get(level)
	if err != nil {
		return err
	}
	newEvaluator, err := evalbuilder.Get(evalName)
	if err != nil {
		return err
	}

	var input io.Reader = strings.NewReader(tactic.DefaultTests)
	if epdPath != "" {
		var file, err = os.Open(epdPath)
		if err != nil {
			return err
		}
		defer file.Close()
		input = file
	}
	tests, err := tactic.LoadEpd(input, logger)
	if err != nil {
		return err
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	_, err = tactic.Run(ctx, tests, engine.NewEngine(newEvaluator(), logger), config, logger)
	return err
}
