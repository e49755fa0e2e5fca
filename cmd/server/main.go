package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChizhovVadim/chessai/internal/evalbuilder"
	"github.com/ChizhovVadim/chessai/pkg/server"
)

func main() {
	var config = server.DefaultConfig()
	var evalName string
	flag.StringVar(&config.Addr, "addr", config.Addr, "listen address")
	flag.StringVar(&evalName, "eval", "", "evaluation function: full or material")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	newEvaluator, err := evalbuilder.Get(evalName)
	if err != nil {
		logger.Fatal(err)
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var s = server.New(config, logger, newEvaluator)
	if err := s.ListenAndServe(ctx); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}
