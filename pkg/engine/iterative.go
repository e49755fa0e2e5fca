package engine

import (
	"time"
)

// iterativeDeepening searches depth 1, 2, ... and keeps the result of the
// last completed iteration. An interrupted iteration is thrown away.
func (e *Engine) iterativeDeepening() SearchInfo {
	var ml = e.board.GenerateMoves()
	var result = SearchInfo{Move: ml[0]}
	for depth := 1; depth <= e.config.Depth; depth++ {
		var score, move, ok = e.searchRoot(depth, result.Move)
		if !ok {
			break
		}
		result = SearchInfo{
			Move:      move,
			Score:     score,
			Depth:     depth,
			Nodes:     e.nodes,
			Time:      time.Since(e.start),
			Completed: true,
		}
		if e.Progress != nil {
			e.Progress(result)
		}
		// a proven mate will not change with more depth
		if depth == e.config.Depth || score >= winIn(depth) || score <= lossIn(depth) {
			return result
		}
		e.timeManager.OnIterationComplete()
		if e.timeManager.IsDone() {
			break
		}
	}
	result.Completed = false
	return result
}
