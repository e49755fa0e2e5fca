package common

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

func NewBoardFromFEN(fen string) (*Board, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 {
		return nil, fmt.Errorf("%w: parse fen failed %v", ErrInvalidBoard, fen)
	}

	var b = &Board{
		Moved:    allMoved,
		EpSquare: SquareNone,
	}

	var ranks = strings.Split(tokens[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: parse fen failed %v", ErrInvalidBoard, fen)
	}
	for i, row := range ranks {
		var rank = Rank8 - i
		var file = FileA
		for _, ch := range row {
			if unicode.IsDigit(ch) {
				file += int(ch - '0')
				continue
			}
			var piece = parsePiece(ch)
			if piece == Empty || file > FileH {
				return nil, fmt.Errorf("%w: parse fen failed %v", ErrInvalidBoard, fen)
			}
			b.Squares[MakeSquare(file, rank)] = piece
			file++
		}
		if file != FileH+1 {
			return nil, fmt.Errorf("%w: parse fen failed %v", ErrInvalidBoard, fen)
		}
	}

	switch tokens[1] {
	case "w":
		b.WhiteMove = true
	case "b":
		b.WhiteMove = false
	default:
		return nil, fmt.Errorf("%w: parse fen failed %v", ErrInvalidBoard, fen)
	}

	var sCastleRights = tokens[2]
	if strings.ContainsAny(sCastleRights, "KQ") {
		b.Moved &^= WhiteKingMoved
	}
	if strings.Contains(sCastleRights, "K") {
		b.Moved &^= WhiteKingRookMoved
	}
	if strings.Contains(sCastleRights, "Q") {
		b.Moved &^= WhiteQueenRookMoved
	}
	if strings.ContainsAny(sCastleRights, "kq") {
		b.Moved &^= BlackKingMoved
	}
	if strings.Contains(sCastleRights, "k") {
		b.Moved &^= BlackKingRookMoved
	}
	if strings.Contains(sCastleRights, "q") {
		b.Moved &^= BlackQueenRookMoved
	}

	if tokens[3] != "-" {
		b.EpSquare = ParseSquare(tokens[3])
		if b.EpSquare == SquareNone {
			return nil, fmt.Errorf("%w: parse fen failed %v", ErrInvalidBoard, fen)
		}
	}

	if len(tokens) > 4 {
		var rule50, err = strconv.Atoi(tokens[4])
		if err != nil || rule50 < 0 {
			return nil, fmt.Errorf("%w: parse fen failed %v", ErrInvalidBoard, fen)
		}
		b.Rule50 = rule50
	}

	if err := b.init(); err != nil {
		return nil, err
	}
	return b, nil
}

// String renders the board as FEN.
func (b *Board) String() string {
	var sb strings.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		var emptyCount = 0
		for file := FileA; file <= FileH; file++ {
			var piece = b.Squares[MakeSquare(file, rank)]
			if piece == Empty {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteString(pieceToChar(piece))
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank != Rank1 {
			sb.WriteString("/")
		}
	}

	if b.WhiteMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	var castling = ""
	if b.CanCastle(WhiteKingMoved | WhiteKingRookMoved) {
		castling += "K"
	}
	if b.CanCastle(WhiteKingMoved | WhiteQueenRookMoved) {
		castling += "Q"
	}
	if b.CanCastle(BlackKingMoved | BlackKingRookMoved) {
		castling += "k"
	}
	if b.CanCastle(BlackKingMoved | BlackQueenRookMoved) {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteString(" ")

	sb.WriteString(SquareName(b.EpSquare))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.Rule50))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(len(b.History)/2 + 1))

	return sb.String()
}
