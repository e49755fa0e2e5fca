package engine

import (
	"context"
	"time"
)

type timeManager struct {
	ctx       context.Context
	start     time.Time
	softLimit time.Duration
	hardLimit time.Duration
	cancel    context.CancelFunc
}

// newTimeManager derives the search context. Only iterative deepening
// carries a deadline; fixed depth searches stop on caller cancellation alone.
func newTimeManager(ctx context.Context, start time.Time, config SearchConfig) *timeManager {
	var tm = &timeManager{
		start: start,
	}

	if config.Strategy == IterativeDeepening && config.TimeBudgetMs > 0 {
		tm.hardLimit = time.Duration(config.TimeBudgetMs) * time.Millisecond
		tm.softLimit = tm.hardLimit / 2
	}

	var cancel context.CancelFunc
	if tm.hardLimit != 0 {
		ctx, cancel = context.WithDeadline(ctx, start.Add(tm.hardLimit))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	tm.ctx = ctx
	tm.cancel = cancel
	return tm
}

func (tm *timeManager) IsDone() bool {
	select {
	case <-tm.ctx.Done():
		return true
	default:
		return false
	}
}

// OnIterationComplete stops the search when the next iteration is unlikely to finish in time.
func (tm *timeManager) OnIterationComplete() {
	if tm.softLimit != 0 &&
		time.Since(tm.start) >= tm.softLimit {
		tm.cancel()
	}
}

func (tm *timeManager) Close() {
	tm.cancel()
}
