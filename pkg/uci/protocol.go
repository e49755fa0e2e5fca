package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ChizhovVadim/chessai/pkg/common"
	"github.com/ChizhovVadim/chessai/pkg/engine"
)

type Engine interface {
	Search(ctx context.Context, b *common.Board, config engine.SearchConfig) (engine.SearchInfo, error)
}

// ConfigBuilder returns the search settings selected by the current options.
type ConfigBuilder func() (engine.SearchConfig, error)

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	config       ConfigBuilder
	board        *common.Board
	thinking     bool
	engineOutput chan searchResult
	cancel       context.CancelFunc
	out          io.Writer
}

type searchResult struct {
	info  engine.SearchInfo
	err   error
	final bool
}

func New(name, author, version string, eng Engine, config ConfigBuilder, options []Option) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  eng,
		config:  config,
		options: options,
		board:   common.NewInitialBoard(),
		out:     os.Stdout,
	}
}

func (uci *Protocol) Run(logger *log.Logger) {
	uci.Serve(os.Stdin, os.Stdout, logger)
}

// Serve reads commands from r until quit or end of input.
// At end of input a running search is allowed to finish.
func (uci *Protocol) Serve(r io.Reader, w io.Writer, logger *log.Logger) {
	uci.out = w
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(r, commands)
	}()

	for {
		select {
		case sr := <-uci.engineOutput:
			uci.onSearchResult(sr, logger)
		case commandLine, ok := <-commands:
			if !ok {
				uci.waitSearch(logger)
				return
			}
			if commandLine == "quit" {
				if uci.thinking {
					uci.cancel()
				}
				uci.waitSearch(logger)
				return
			}
			var err = uci.handle(commandLine)
			if err != nil {
				logger.Println(err)
			}
		}
	}
}

func readCommands(r io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine != "" {
			commands <- commandLine
		}
		if commandLine == "quit" {
			return
		}
	}
}

func (uci *Protocol) waitSearch(logger *log.Logger) {
	for uci.thinking {
		uci.onSearchResult(<-uci.engineOutput, logger)
	}
}

func (uci *Protocol) onSearchResult(sr searchResult, logger *log.Logger) {
	if !sr.final {
		fmt.Fprintln(uci.out, searchInfoToUci(sr.info))
		return
	}
	if sr.err != nil {
		logger.Println(sr.err)
		fmt.Fprintln(uci.out, "bestmove 0000")
	} else {
		fmt.Fprintln(uci.out, searchInfoToUci(sr.info))
		fmt.Fprintf(uci.out, "bestmove %v\n", sr.info.Move)
	}
	uci.cancel()
	uci.thinking = false
	uci.cancel = nil
	uci.engineOutput = nil
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		if commandName == "stop" {
			uci.cancel()
			return nil
		}
		if commandName == "isready" {
			return uci.isReadyCommand(fields)
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "stop":
		return nil
	}

	if h == nil {
		return fmt.Errorf("command not found: %v", commandName)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 || fields[0] != "name" {
		return errors.New("invalid setoption arguments")
	}
	var valueIndex = findIndexString(fields, "value")
	if valueIndex < 2 || valueIndex+1 >= len(fields) {
		return errors.New("invalid setoption arguments")
	}
	var name = strings.Join(fields[1:valueIndex], " ")
	var value = strings.Join(fields[valueIndex+1:], " ")
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return fmt.Errorf("unhandled option %v", name)
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	var args = fields
	if len(args) == 0 {
		return errors.New("empty position command")
	}
	var token = args[0]
	var fen string
	var movesIndex = findIndexString(args, "moves")
	if token == "startpos" {
		fen = common.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var b, err = common.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	if movesIndex >= 0 && movesIndex+1 < len(args) {
		for _, smove := range args[movesIndex+1:] {
			var move, err = b.ParseMoveLAN(smove)
			if err != nil {
				return err
			}
			b.ApplyMove(move)
		}
	}
	uci.board = b
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var config, err = uci.config()
	if err != nil {
		return err
	}
	config = applyLimits(config, parseLimits(fields), uci.board.WhiteMove)

	var ctx, cancel = context.WithCancel(context.Background())
	var output = make(chan searchResult, 3)
	var b = uci.board.Clone()
	uci.cancel = cancel
	uci.thinking = true
	uci.engineOutput = output
	go func() {
		var info, err = uci.engine.Search(ctx, b, config)
		output <- searchResult{info: info, err: err, final: true}
	}()
	return nil
}

// OnProgress forwards the result of a finished iteration as an info line.
// Intermediate results are dropped when the protocol loop is busy.
func (uci *Protocol) OnProgress(si engine.SearchInfo) {
	var output = uci.engineOutput
	if output == nil {
		return
	}
	select {
	case output <- searchResult{info: si}:
	default:
	}
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.board = common.NewInitialBoard()
	return nil
}

func searchInfoToUci(si engine.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v score %v", si.Depth, engine.NewUciScore(si.Score))
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if si.Move != common.MoveEmpty {
		fmt.Fprintf(sb, " pv %v", si.Move)
	}
	return sb.String()
}

type limitsType struct {
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MovesToGo      int
	Depth          int
	MoveTime       int
	Infinite       bool
}

func parseLimits(args []string) (result limitsType) {
	for i := 0; i < len(args); i++ {
		var value int
		if i+1 < len(args) {
			value, _ = strconv.Atoi(args[i+1])
		}
		switch args[i] {
		case "wtime":
			result.WhiteTime = value
			i++
		case "btime":
			result.BlackTime = value
			i++
		case "winc":
			result.WhiteIncrement = value
			i++
		case "binc":
			result.BlackIncrement = value
			i++
		case "movestogo":
			result.MovesToGo = value
			i++
		case "depth":
			result.Depth = value
			i++
		case "movetime":
			result.MoveTime = value
			i++
		case "infinite":
			result.Infinite = true
		}
	}
	return
}

// applyLimits overrides the difficulty settings with the go command limits.
// Only iterative deepening honors a time budget, so a clock limit selects it.
func applyLimits(config engine.SearchConfig, limits limitsType, whiteMove bool) engine.SearchConfig {
	if limits.Depth > 0 {
		config.Depth = common.Min(limits.Depth, engine.MaxDepth)
	}
	if limits.Infinite {
		config.Strategy = engine.IterativeDeepening
		config.Depth = engine.MaxDepth
		config.TimeBudgetMs = 0
		return config
	}
	var budget time.Duration
	if limits.MoveTime > 0 {
		budget = time.Duration(limits.MoveTime) * time.Millisecond
	} else if limits.WhiteTime > 0 || limits.BlackTime > 0 {
		var main, inc time.Duration
		if whiteMove {
			main = time.Duration(limits.WhiteTime) * time.Millisecond
			inc = time.Duration(limits.WhiteIncrement) * time.Millisecond
		} else {
			main = time.Duration(limits.BlackTime) * time.Millisecond
			inc = time.Duration(limits.BlackIncrement) * time.Millisecond
		}
		budget = calcLimit(main, inc, limits.MovesToGo)
	}
	if budget > 0 {
		config.Strategy = engine.IterativeDeepening
		config.TimeBudgetMs = int(budget.Milliseconds())
		if limits.Depth == 0 {
			config.Depth = engine.MaxDepth
		}
	}
	return config
}

func calcLimit(main, inc time.Duration, moves int) time.Duration {
	const (
		DefaultMovesToGo = 40
		MoveOverhead     = 300 * time.Millisecond
		MinTimeLimit     = 1 * time.Millisecond
	)

	main -= MoveOverhead
	if main < MinTimeLimit {
		main = MinTimeLimit
	}

	var limit time.Duration
	if moves == 0 {
		limit = main/35 + inc/2
	} else {
		moves = common.Min(moves, DefaultMovesToGo)
		limit = main/time.Duration(moves+1) + inc
	}

	return common.Max(MinTimeLimit, common.Min(limit, main))
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
