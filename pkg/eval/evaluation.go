package eval

import (
	. "github.com/ChizhovVadim/chessai/pkg/common"
)

var pieceValues = [King + 1]int{Empty: 0, Pawn: 100, Knight: 300, Bishop: 325, Rook: 500, Queen: 900, King: 10000}

// PieceValue returns the material value of a piece type.
func PieceValue(pieceType int) int {
	return pieceValues[pieceType]
}

const (
	bishopPairBonus  = 30
	castledBonus     = 30
	uncastledPenalty = -15
	isolatedPawn     = -15
	kingCentreWeight = -10
	endgameMaterial  = 1300
)

var mobilityWeights = [King + 1]int{Knight: 1, Bishop: 1, Rook: 2, Queen: 3}

// Tables are written as seen from white, rank 8 first.
var pst = [King + 1][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
}

var centre = [...]int{SquareD4, SquareE4, SquareD5, SquareE5}

type EvaluationService struct {
	pieceCount [2][King + 1]int
	pawnFiles  [2][8]int
}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns a static score in centipawns from the side to move's point of view.
func (e *EvaluationService) Evaluate(b *Board) int {
	e.pieceCount = [2][King + 1]int{}
	e.pawnFiles = [2][8]int{}

	var score = 0
	for sq, piece := range b.Squares {
		if piece == Empty {
			continue
		}
		var pieceType = PieceType(piece)
		var white = IsWhitePiece(piece)
		var side = sideIndex(white)
		e.pieceCount[side][pieceType]++
		if pieceType == Pawn {
			e.pawnFiles[side][File(sq)]++
		}

		var s = pieceValues[pieceType] + mobilityWeights[pieceType]*b.Mobility(sq)
		if white {
			s += pst[pieceType][FlipSquare(sq)]
			score += s
		} else {
			s += pst[pieceType][sq]
			score -= s
		}
	}

	for side := 0; side < 2; side++ {
		var sign = sideSign(side)
		if e.pieceCount[side][Bishop] >= 2 {
			score += sign * bishopPairBonus
		}
		for file := FileA; file <= FileH; file++ {
			if e.pawnFiles[side][file] != 0 && isIsolated(&e.pawnFiles[side], file) {
				score += sign * isolatedPawn * e.pawnFiles[side][file]
			}
		}
	}

	if e.isEndgame() {
		score += kingCentralisation(b.KingSquare(true)) - kingCentralisation(b.KingSquare(false))
	} else {
		score += kingSafety(b.KingSquare(true), Rank1) - kingSafety(b.KingSquare(false), Rank8)
	}

	if !b.WhiteMove {
		score = -score
	}
	return score
}

func (e *EvaluationService) isEndgame() bool {
	if e.pieceCount[0][Queen]+e.pieceCount[1][Queen] != 0 {
		return false
	}
	var material = 0
	for side := 0; side < 2; side++ {
		for pieceType := Pawn; pieceType < King; pieceType++ {
			material += e.pieceCount[side][pieceType] * pieceValues[pieceType]
		}
	}
	return material < endgameMaterial
}

func isIsolated(files *[8]int, file int) bool {
	return (file == FileA || files[file-1] == 0) &&
		(file == FileH || files[file+1] == 0)
}

func kingCentralisation(sq int) int {
	var dist = 8
	for _, c := range centre {
		dist = Min(dist, SquareDistance(sq, c))
	}
	return kingCentreWeight * dist
}

func kingSafety(sq, homeRank int) int {
	if Rank(sq) != homeRank {
		return 0
	}
	switch File(sq) {
	case FileG, FileC:
		return castledBonus
	case FileE:
		return uncastledPenalty
	}
	return 0
}

// index 1 is white, as in the board's king cache
func sideIndex(white bool) int {
	if white {
		return 1
	}
	return 0
}

func sideSign(side int) int {
	if side == 1 {
		return 1
	}
	return -1
}
