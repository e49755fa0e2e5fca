package common

import "errors"

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Castling rights are tracked as "has moved" flags, one bit per piece.
const (
	WhiteKingMoved = 1 << iota
	WhiteKingRookMoved
	WhiteQueenRookMoved
	BlackKingMoved
	BlackKingRookMoved
	BlackQueenRookMoved
)

const allMoved = WhiteKingMoved | WhiteKingRookMoved | WhiteQueenRookMoved |
	BlackKingMoved | BlackKingRookMoved | BlackQueenRookMoved

const MaxMoves = 256

var (
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidMove  = errors.New("invalid move")
)

type GameResult int

const (
	GameOngoing GameResult = iota
	GameWhiteWins
	GameBlackWins
	GameDraw
)

func (r GameResult) String() string {
	switch r {
	case GameWhiteWins:
		return "1-0"
	case GameBlackWins:
		return "0-1"
	case GameDraw:
		return "1/2-1/2"
	}
	return "*"
}

// PieceType strips the color from a piece code.
func PieceType(piece int) int {
	return Abs(piece)
}

func IsWhitePiece(piece int) bool {
	return piece > 0
}

func MakePiece(pieceType int, white bool) int {
	return pieceType * sideSign(white)
}
