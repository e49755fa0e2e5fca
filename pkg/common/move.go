package common

import (
	"fmt"
	"strings"
)

type Move struct {
	From      int
	To        int
	Promotion int
}

var MoveEmpty = Move{}

func NewMove(from, to, promotion int) (Move, error) {
	if !IsValidSquare(from) || !IsValidSquare(to) {
		return MoveEmpty, fmt.Errorf("%w: square out of grid %v %v", ErrInvalidMove, from, to)
	}
	if from == to {
		return MoveEmpty, fmt.Errorf("%w: null move %v", ErrInvalidMove, SquareName(from))
	}
	if promotion != Empty && (promotion < Knight || promotion > Queen) {
		return MoveEmpty, fmt.Errorf("%w: bad promotion piece %v", ErrInvalidMove, promotion)
	}
	return Move{From: from, To: to, Promotion: promotion}, nil
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion != Empty {
		sPromotion = string("nbrq"[m.Promotion-Knight])
	}
	return SquareName(m.From) + SquareName(m.To) + sPromotion
}

// ParseMoveLAN resolves a long algebraic move ("e2e4", "e7e8q") against the legal moves.
func (b *Board) ParseMoveLAN(lan string) (Move, error) {
	for _, m := range b.GenerateMoves() {
		if strings.EqualFold(m.String(), lan) {
			return m, nil
		}
	}
	return MoveEmpty, fmt.Errorf("%w: %v is not legal in %v", ErrInvalidMove, lan, b)
}

func containsMove(ml []Move, move Move) bool {
	for _, m := range ml {
		if m == move {
			return true
		}
	}
	return false
}

// IsLegal reports whether the move is in the legal move list.
func (b *Board) IsLegal(move Move) bool {
	return containsMove(b.GenerateMoves(), move)
}
