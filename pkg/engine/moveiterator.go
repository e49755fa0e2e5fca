package engine

import . "github.com/ChizhovVadim/chessai/pkg/common"

const sortTableKeyImportant = 100000

type orderedMove struct {
	Move
	Key int32
}

// orderMoves sorts ml in place: the trans move first, then captures and
// promotions by MVV-LVA, then quiet moves. Below the root quiet moves
// follow the history table, at the root they keep generation order.
func (e *Engine) orderMoves(ml []Move, transMove Move, height int) {
	var b = e.board
	var buffer = e.stack[height].moveList[:len(ml)]
	for i, m := range ml {
		var score int
		if m == transMove {
			score = sortTableKeyImportant + 2000
		} else if isCaptureOrPromotion(b, m) {
			score = sortTableKeyImportant + 1000 + mvvlva(b, m)
		} else if height > 0 {
			score = e.history.Read(b.WhiteMove, m)
		}
		buffer[i] = orderedMove{Move: m, Key: int32(score)}
	}
	sortMoves(buffer)
	for i := range buffer {
		ml[i] = buffer[i].Move
	}
}

var sortPieceValues = [...]int{Empty: 0, Pawn: 1, Knight: 2, Bishop: 3, Rook: 4, Queen: 5, King: 6}

func mvvlva(b *Board, move Move) int {
	return 8*(sortPieceValues[b.CapturedPiece(move)]+
		sortPieceValues[move.Promotion]) -
		sortPieceValues[b.MovingPiece(move)]
}

func isCaptureOrPromotion(b *Board, move Move) bool {
	return b.IsCapture(move) || move.Promotion != Empty
}

// sortMoves is a stable insertion sort, highest key first.
func sortMoves(moves []orderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
