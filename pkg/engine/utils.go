package engine

import (
	"fmt"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	MaxDepth      = 64
	maxQSDepth    = 8
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}

	if v <= valueLoss {
		return v - height
	}

	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}

	if v <= valueLoss {
		return v + height
	}

	return v
}

// IsMateScore reports whether a search score announces a forced mate.
func IsMateScore(v int) bool {
	return v >= valueWin || v <= valueLoss
}

type UciScore struct {
	Centipawns int
	Mate       int
}

func NewUciScore(v int) UciScore {
	if v >= valueWin {
		return UciScore{Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return UciScore{Mate: (-valueMate - v) / 2}
	} else {
		return UciScore{Centipawns: v}
	}
}

func (s UciScore) String() string {
	if s.Mate != 0 {
		return fmt.Sprintf("mate %v", s.Mate)
	}
	return fmt.Sprintf("cp %v", s.Centipawns)
}
