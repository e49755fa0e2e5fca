package engine

import (
	. "github.com/ChizhovVadim/chessai/pkg/common"
)

// Scores inside the tree are kept from the root side's point of view:
// the root side maximizes, the opponent minimizes.

// searchRoot searches every root move to depth. ok is false when the search
// was aborted; move is then the best among the fully searched moves.
func (e *Engine) searchRoot(depth int, prevBest Move) (score int, move Move, ok bool) {
	const height = 0
	var b = e.board
	var ml = b.GenerateMoves()
	e.orderMoves(ml, prevBest, height)

	var alpha, beta = -valueInfinity, valueInfinity
	score, move = -valueInfinity, MoveEmpty
	for _, m := range ml {
		var u = b.MakeMove(m)
		var v int
		if e.config.Strategy == Minimax {
			v = e.minimax(depth-1, height+1, false)
		} else {
			v = e.alphaBeta(alpha, beta, depth-1, height+1, false)
		}
		b.UnmakeMove(u)
		if e.aborted {
			return score, move, false
		}
		if v > score {
			score, move = v, m
			alpha = Max(alpha, v)
		}
	}
	return score, move, true
}

// leafScore converts the static evaluation of the side to move to the root's view.
func (e *Engine) leafScore(maximizing bool) int {
	var v = e.evaluator.Evaluate(e.board)
	if maximizing {
		return v
	}
	return -v
}

// noMovesScore scores checkmate and stalemate.
func (e *Engine) noMovesScore(height int, maximizing bool) int {
	if !e.board.IsCheck() {
		return valueDraw
	}
	if maximizing {
		return lossIn(height)
	}
	return winIn(height)
}

func (e *Engine) isDraw() bool {
	var b = e.board
	return b.IsFiftyMoveDraw() ||
		b.IsInsufficientMaterial() ||
		b.IsRepetition()
}

func (e *Engine) minimax(depth, height int, maximizing bool) int {
	e.nodes++
	if e.isDraw() {
		return valueDraw
	}
	var b = e.board
	var ml = b.GenerateMoves()
	if len(ml) == 0 {
		return e.noMovesScore(height, maximizing)
	}
	if depth <= 0 || height >= maxHeight {
		return e.leafScore(maximizing)
	}
	if e.timeManager.IsDone() {
		e.aborted = true
		return valueDraw
	}
	e.orderMoves(ml, MoveEmpty, height)

	var best int
	if maximizing {
		best = -valueInfinity
	} else {
		best = valueInfinity
	}
	for _, m := range ml {
		var u = b.MakeMove(m)
		var v = e.minimax(depth-1, height+1, !maximizing)
		b.UnmakeMove(u)
		if e.aborted {
			return best
		}
		if maximizing {
			best = Max(best, v)
		} else {
			best = Min(best, v)
		}
	}
	return best
}

func (e *Engine) alphaBeta(alpha, beta, depth, height int, maximizing bool) int {
	e.nodes++
	if e.isDraw() {
		return valueDraw
	}
	var b = e.board
	var ml = b.GenerateMoves()
	if len(ml) == 0 {
		return e.noMovesScore(height, maximizing)
	}
	if depth <= 0 || height >= maxHeight {
		if e.config.UseQuiescence {
			if maximizing {
				return e.quiescence(alpha, beta, height, 0)
			}
			return -e.quiescence(-beta, -alpha, height, 0)
		}
		return e.leafScore(maximizing)
	}
	if e.timeManager.IsDone() {
		e.aborted = true
		return valueDraw
	}

	var key string
	var transMove = MoveEmpty
	if e.transTable != nil {
		key = b.Serialize()
		var ttDepth, ttValue, ttBound, ttMove, ttHit = e.transTable.Read(key)
		if ttHit {
			transMove = ttMove
			if ttDepth >= depth {
				ttValue = valueFromTT(ttValue, height)
				if ttBound == boundExact ||
					ttBound == boundLower && ttValue >= beta ||
					ttBound == boundUpper && ttValue <= alpha {
					return ttValue
				}
			}
		}
	}
	e.orderMoves(ml, transMove, height)

	var alphaOrig, betaOrig = alpha, beta
	var quietsSearched = e.stack[height].quietsSearched[:0]
	var best, bestMove = 0, MoveEmpty
	if maximizing {
		best = -valueInfinity
	} else {
		best = valueInfinity
	}
	for _, m := range ml {
		var quiet = !isCaptureOrPromotion(b, m)
		if quiet {
			quietsSearched = append(quietsSearched, m)
		}
		var u = b.MakeMove(m)
		var v = e.alphaBeta(alpha, beta, depth-1, height+1, !maximizing)
		b.UnmakeMove(u)
		if e.aborted {
			return best
		}
		if maximizing {
			if v > best {
				best, bestMove = v, m
			}
			alpha = Max(alpha, best)
		} else {
			if v < best {
				best, bestMove = v, m
			}
			beta = Min(beta, best)
		}
		if alpha >= beta {
			if quiet {
				e.history.Update(b.WhiteMove, quietsSearched, m, depth)
			}
			break
		}
	}

	if e.transTable != nil {
		var bound = boundExact
		if best <= alphaOrig {
			bound = boundUpper
		} else if best >= betaOrig {
			bound = boundLower
		}
		e.transTable.Update(key, depth, valueToTT(best, height), bound, bestMove)
	}
	return best
}

// quiescence follows captures only, from the side to move's point of view.
func (e *Engine) quiescence(alpha, beta, height, qsDepth int) int {
	e.nodes++
	var b = e.board
	var eval = e.evaluator.Evaluate(b)
	if qsDepth >= maxQSDepth || height >= maxHeight {
		return eval
	}
	if eval > alpha {
		alpha = eval
		if alpha >= beta {
			return alpha
		}
	}
	if e.timeManager.IsDone() {
		e.aborted = true
		return alpha
	}

	var ml = b.GenerateCaptures()
	e.orderMoves(ml, MoveEmpty, height)
	for _, m := range ml {
		var u = b.MakeMove(m)
		var score = -e.quiescence(-beta, -alpha, height+1, qsDepth+1)
		b.UnmakeMove(u)
		if e.aborted {
			return alpha
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				break
			}
		}
	}
	return alpha
}
