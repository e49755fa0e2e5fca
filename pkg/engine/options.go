package engine

import (
	"fmt"
	"strings"
)

type Strategy int

const (
	Minimax Strategy = iota
	AlphaBeta
	IterativeDeepening
)

var strategyNames = [...]string{
	Minimax:            "minimax",
	AlphaBeta:          "alphabeta",
	IterativeDeepening: "iterativedeepening",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy accepts the strategy names case-insensitively, ignoring dashes.
func ParseStrategy(name string) (Strategy, error) {
	var key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	for i, s := range strategyNames {
		if s == key {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

type SearchConfig struct {
	Strategy              Strategy
	Depth                 int
	TimeBudgetMs          int
	UseQuiescence         bool
	UseTranspositionTable bool
	// DrawAvoidance is the Rule50 threshold above which a capture is forced.
	// Zero disables it.
	DrawAvoidance int
}

func (c SearchConfig) Validate() error {
	if c.Strategy < Minimax || c.Strategy > IterativeDeepening {
		return fmt.Errorf("%w: %v", ErrUnknownStrategy, c.Strategy)
	}
	if c.Depth < 1 || c.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %v", ErrInvalidConfig, c.Depth)
	}
	if c.TimeBudgetMs < 0 {
		return fmt.Errorf("%w: time budget %v", ErrInvalidConfig, c.TimeBudgetMs)
	}
	if c.DrawAvoidance < 0 {
		return fmt.Errorf("%w: draw avoidance %v", ErrInvalidConfig, c.DrawAvoidance)
	}
	return nil
}

func (c SearchConfig) String() string {
	return fmt.Sprintf("%v depth=%v time=%vms qs=%v tt=%v drawavoidance=%v",
		c.Strategy, c.Depth, c.TimeBudgetMs, c.UseQuiescence, c.UseTranspositionTable, c.DrawAvoidance)
}
