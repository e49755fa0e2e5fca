package difficulty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChizhovVadim/chessai/pkg/engine"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

const (
	Easy   = "easy"
	Medium = "medium"
	Hard   = "hard"
)

const drawAvoidance = 90

var levels = map[string]engine.SearchConfig{
	Easy: {
		Strategy:      engine.Minimax,
		Depth:         2,
		DrawAvoidance: drawAvoidance,
	},
	Medium: {
		Strategy:      engine.AlphaBeta,
		Depth:         4,
		DrawAvoidance: drawAvoidance,
	},
	Hard: {
		Strategy:              engine.IterativeDeepening,
		Depth:                 6,
		TimeBudgetMs:          10000,
		UseQuiescence:         true,
		UseTranspositionTable: true,
		DrawAvoidance:         drawAvoidance,
	},
}

// Get returns the search settings of a difficulty level. Names are case-insensitive.
func Get(name string) (engine.SearchConfig, error) {
	var config, ok = levels[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return engine.SearchConfig{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	return config, nil
}

// Names lists the levels from weakest to strongest.
func Names() []string {
	return []string{Easy, Medium, Hard}
}
