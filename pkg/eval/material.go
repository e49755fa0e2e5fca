package eval

import (
	. "github.com/ChizhovVadim/chessai/pkg/common"
)

// MaterialEvaluationService counts material only. Used as a weak sparring
// partner in the arena.
type MaterialEvaluationService struct{}

func NewMaterialEvaluationService() *MaterialEvaluationService {
	return &MaterialEvaluationService{}
}

func (e *MaterialEvaluationService) Evaluate(b *Board) int {
	var eval = 0
	for _, piece := range b.Squares {
		if piece == Empty {
			continue
		}
		var v = pieceValues[PieceType(piece)]
		if IsWhitePiece(piece) {
			eval += v
		} else {
			eval -= v
		}
	}
	if !b.WhiteMove {
		eval = -eval
	}
	return eval
}
