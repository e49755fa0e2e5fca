package common

import (
	"fmt"
	"strings"
)

// Board is the full game state: placement, side to move, castling rights,
// en passant target and the bookkeeping needed for draw detection.
// A Board is owned by one goroutine; search and probes work on clones or undo their changes.
type Board struct {
	Squares   [64]int
	WhiteMove bool
	Moved     int
	EpSquare  int
	Rule50    int
	History   []string
	kings     [2]int
}

var movedMask [64]int

func init() {
	movedMask[SquareE1] = WhiteKingMoved
	movedMask[SquareH1] = WhiteKingRookMoved
	movedMask[SquareA1] = WhiteQueenRookMoved
	movedMask[SquareE8] = BlackKingMoved
	movedMask[SquareH8] = BlackKingRookMoved
	movedMask[SquareA8] = BlackQueenRookMoved
}

func sideIndex(white bool) int {
	return let(white, 1, 0)
}

func NewInitialBoard() *Board {
	var b, err = NewBoardFromFEN(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoard builds a board from a raw grid. Castling rights are kept only for
// kings and rooks standing on their original squares.
func NewBoard(squares [64]int, whiteMove bool) (*Board, error) {
	var b = &Board{
		Squares:   squares,
		WhiteMove: whiteMove,
		Moved:     allMoved,
		EpSquare:  SquareNone,
	}
	var homes = []struct {
		sq, piece, flag int
	}{
		{SquareE1, King, WhiteKingMoved},
		{SquareH1, Rook, WhiteKingRookMoved},
		{SquareA1, Rook, WhiteQueenRookMoved},
		{SquareE8, -King, BlackKingMoved},
		{SquareH8, -Rook, BlackKingRookMoved},
		{SquareA8, -Rook, BlackQueenRookMoved},
	}
	for _, h := range homes {
		if squares[h.sq] == h.piece {
			b.Moved &^= h.flag
		}
	}
	if err := b.init(); err != nil {
		return nil, err
	}
	return b, nil
}

// init validates the grid and fills the king cache.
func (b *Board) init() error {
	var kingCount [2]int
	for sq, piece := range b.Squares {
		if piece < -King || piece > King {
			return fmt.Errorf("%w: bad piece code %v on %v", ErrInvalidBoard, piece, SquareName(sq))
		}
		if PieceType(piece) == King {
			var side = sideIndex(IsWhitePiece(piece))
			kingCount[side]++
			b.kings[side] = sq
		}
	}
	if kingCount[0] != 1 || kingCount[1] != 1 {
		return fmt.Errorf("%w: want one king per side, got white %v black %v",
			ErrInvalidBoard, kingCount[1], kingCount[0])
	}
	if b.EpSquare != SquareNone && !IsValidSquare(b.EpSquare) {
		return fmt.Errorf("%w: bad en passant square %v", ErrInvalidBoard, b.EpSquare)
	}
	return nil
}

func (b *Board) checkKings() error {
	if b.Squares[b.kings[1]] != King || b.Squares[b.kings[0]] != -King {
		return fmt.Errorf("%w: king missing", ErrInvalidBoard)
	}
	return nil
}

// Clone returns an independent deep copy. It panics if a king has been removed,
// which only happens when the grid was edited by hand.
func (b *Board) Clone() *Board {
	if err := b.checkKings(); err != nil {
		panic(err)
	}
	var result = *b
	result.History = make([]string, len(b.History), len(b.History)+16)
	copy(result.History, b.History)
	return &result
}

// Serialize is the repetition and transposition key: placement plus side to move.
// Castling rights and en passant target are not part of it.
func (b *Board) Serialize() string {
	var sb strings.Builder
	sb.Grow(len(b.Squares) + 1)
	for _, piece := range b.Squares {
		sb.WriteString(pieceToChar(piece))
	}
	if b.WhiteMove {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

func (b *Board) PieceAt(sq int) int {
	return b.Squares[sq]
}

func (b *Board) KingSquare(white bool) int {
	return b.kings[sideIndex(white)]
}

// Mirror swaps colors and flips ranks. The history is not carried over.
func (b *Board) Mirror() *Board {
	var result = &Board{
		WhiteMove: !b.WhiteMove,
		Rule50:    b.Rule50,
		EpSquare:  SquareNone,
		Moved:     (b.Moved >> 3) | ((b.Moved & 7) << 3),
	}
	for sq, piece := range b.Squares {
		result.Squares[FlipSquare(sq)] = -piece
	}
	if b.EpSquare != SquareNone {
		result.EpSquare = FlipSquare(b.EpSquare)
	}
	result.kings[0] = FlipSquare(b.kings[1])
	result.kings[1] = FlipSquare(b.kings[0])
	return result
}

func (b *Board) CanCastle(flags int) bool {
	return b.Moved&flags == 0
}
