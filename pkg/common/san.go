package common

import (
	"fmt"
	"strings"
)

const sanPieceNames = "NBRQK"

// MoveToSAN formats a legal move in standard algebraic notation, check and mate marks included.
func (b *Board) MoveToSAN(move Move) string {
	var san = b.moveToSAN(b.GenerateMoves(), move)
	var u = b.makeMove(move, false)
	if b.IsCheck() {
		if b.hasLegalMove() {
			san += "+"
		} else {
			san += "#"
		}
	}
	b.UnmakeMove(u)
	return san
}

func (b *Board) moveToSAN(ml []Move, mv Move) string {
	var movingPiece = b.MovingPiece(mv)
	if movingPiece == King && FileDistance(mv.From, mv.To) == 2 {
		if File(mv.To) == FileG {
			return "O-O"
		}
		return "O-O-O"
	}
	var strPiece, strCapture, strFrom, strTo, strPromotion string
	if movingPiece != Pawn {
		strPiece = string(sanPieceNames[movingPiece-Knight])
	}
	strTo = SquareName(mv.To)
	if b.IsCapture(mv) {
		strCapture = "x"
		if movingPiece == Pawn {
			strFrom = SquareName(mv.From)[:1]
		}
	}
	if mv.Promotion != Empty {
		strPromotion = "=" + string(sanPieceNames[mv.Promotion-Knight])
	}
	var ambiguity = false
	var uniqCol = true
	var uniqRow = true
	for _, mv1 := range ml {
		if mv1.From == mv.From ||
			mv1.To != mv.To ||
			b.MovingPiece(mv1) != movingPiece ||
			movingPiece == Pawn {
			continue
		}
		ambiguity = true
		if File(mv1.From) == File(mv.From) {
			uniqCol = false
		}
		if Rank(mv1.From) == Rank(mv.From) {
			uniqRow = false
		}
	}
	if ambiguity {
		if uniqCol {
			strFrom = SquareName(mv.From)[:1]
		} else if uniqRow {
			strFrom = SquareName(mv.From)[1:2]
		} else {
			strFrom = SquareName(mv.From)
		}
	}
	return strPiece + strFrom + strCapture + strTo + strPromotion
}

// ParseMoveSAN resolves a move in standard algebraic notation against the legal moves.
// Check marks and annotations are ignored.
func (b *Board) ParseMoveSAN(san string) (Move, error) {
	var trimmed = san
	if index := strings.IndexAny(trimmed, "+#?!"); index >= 0 {
		trimmed = trimmed[:index]
	}
	var ml = b.GenerateMoves()
	for _, mv := range ml {
		if trimmed == b.moveToSAN(ml, mv) {
			return mv, nil
		}
	}
	return MoveEmpty, fmt.Errorf("%w: %v is not legal in %v", ErrInvalidMove, san, b)
}
