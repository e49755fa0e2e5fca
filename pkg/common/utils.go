package common

import (
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Min[T constraints.Ordered](l, r T) T {
	if l < r {
		return l
	}
	return r
}

func Max[T constraints.Ordered](l, r T) T {
	if l > r {
		return l
	}
	return r
}

func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func let(ok bool, yes, no int) int {
	if ok {
		return yes
	}
	return no
}

// sign of a piece code for the given side
func sideSign(white bool) int {
	return let(white, 1, -1)
}

func parsePiece(ch rune) int {
	var i = strings.IndexRune("pnbrqk", unicode.ToLower(ch))
	if i < 0 {
		return Empty
	}
	var piece = i + Pawn
	if unicode.IsUpper(ch) {
		return piece
	}
	return -piece
}

func pieceToChar(piece int) string {
	if piece == Empty {
		return "."
	}
	var result = string("pnbrqk"[Abs(piece)-Pawn])
	if piece > 0 {
		result = strings.ToUpper(result)
	}
	return result
}
