package common

var promotionPieces = [...]int{Queen, Rook, Bishop, Knight}

// GenerateMoves returns every legal move for the side to move.
// The board is probed with make/unmake and is unchanged on return.
func (b *Board) GenerateMoves() []Move {
	var ml = b.generatePseudoMoves(make([]Move, 0, 64))
	var count = 0
	for _, m := range ml {
		if b.isLegalPseudo(m) {
			ml[count] = m
			count++
		}
	}
	return ml[:count]
}

// GenerateCaptures returns the legal moves that capture, en passant included.
func (b *Board) GenerateCaptures() []Move {
	var ml = b.generatePseudoMoves(make([]Move, 0, 64))
	var count = 0
	for _, m := range ml {
		if b.IsCapture(m) && b.isLegalPseudo(m) {
			ml[count] = m
			count++
		}
	}
	return ml[:count]
}

func (b *Board) hasLegalMove() bool {
	var buffer [MaxMoves]Move
	for _, m := range b.generatePseudoMoves(buffer[:0]) {
		if b.isLegalPseudo(m) {
			return true
		}
	}
	return false
}

func (b *Board) isLegalPseudo(m Move) bool {
	var white = b.WhiteMove
	var u = b.makeMove(m, false)
	var legal = !b.IsInCheck(white)
	b.UnmakeMove(u)
	return legal
}

func (b *Board) IsCapture(m Move) bool {
	return b.CapturedPiece(m) != Empty
}

// CapturedPiece returns the type of the piece the move takes, Empty if none.
func (b *Board) CapturedPiece(m Move) int {
	var target = b.Squares[m.To]
	if target != Empty {
		return PieceType(target)
	}
	if m.To == b.EpSquare && PieceType(b.Squares[m.From]) == Pawn {
		return Pawn
	}
	return Empty
}

func (b *Board) MovingPiece(m Move) int {
	return PieceType(b.Squares[m.From])
}

func (b *Board) generatePseudoMoves(ml []Move) []Move {
	var white = b.WhiteMove
	for from, piece := range b.Squares {
		if piece == Empty || IsWhitePiece(piece) != white {
			continue
		}
		switch PieceType(piece) {
		case Pawn:
			ml = b.addPawnMoves(ml, from, white)
		case Knight:
			ml = b.addStepMoves(ml, from, knightOffsets[:], white)
		case Bishop:
			ml = b.addSlidingMoves(ml, from, bishopRays[:], white)
		case Rook:
			ml = b.addSlidingMoves(ml, from, rookRays[:], white)
		case Queen:
			ml = b.addSlidingMoves(ml, from, bishopRays[:], white)
			ml = b.addSlidingMoves(ml, from, rookRays[:], white)
		case King:
			ml = b.addStepMoves(ml, from, kingOffsets[:], white)
			ml = b.addCastling(ml, white)
		}
	}
	return ml
}

// canLand reports whether a piece may move to sq: empty or an enemy other than the king.
func (b *Board) canLand(sq int, white bool) bool {
	var target = b.Squares[sq]
	return target == Empty ||
		IsWhitePiece(target) != white && PieceType(target) != King
}

func (b *Board) addStepMoves(ml []Move, from int, offsets []offset, white bool) []Move {
	for _, d := range offsets {
		if to, ok := shift(from, d); ok && b.canLand(to, white) {
			ml = append(ml, Move{From: from, To: to})
		}
	}
	return ml
}

func (b *Board) addSlidingMoves(ml []Move, from int, rays []offset, white bool) []Move {
	for _, d := range rays {
		for to, ok := shift(from, d); ok; to, ok = shift(to, d) {
			if b.Squares[to] == Empty {
				ml = append(ml, Move{From: from, To: to})
				continue
			}
			if b.canLand(to, white) {
				ml = append(ml, Move{From: from, To: to})
			}
			break
		}
	}
	return ml
}

func (b *Board) addPawnMoves(ml []Move, from int, white bool) []Move {
	var forward = let(white, 1, -1)
	var startRank = let(white, Rank2, Rank7)

	if to, ok := shift(from, offset{0, forward}); ok && b.Squares[to] == Empty {
		ml = addPawnMove(ml, from, to, white)
		if Rank(from) == startRank {
			var to2 = to + 8*forward
			if b.Squares[to2] == Empty {
				ml = append(ml, Move{From: from, To: to2})
			}
		}
	}

	for _, df := range [...]int{-1, 1} {
		var to, ok = shift(from, offset{df, forward})
		if !ok {
			continue
		}
		if b.isEnemy(to, white) && b.canLand(to, white) {
			ml = addPawnMove(ml, from, to, white)
		} else if to == b.EpSquare && b.Squares[to] == Empty &&
			b.Squares[to-8*forward] == MakePiece(Pawn, !white) {
			ml = append(ml, Move{From: from, To: to})
		}
	}
	return ml
}

func addPawnMove(ml []Move, from, to int, white bool) []Move {
	if Rank(to) == let(white, Rank8, Rank1) {
		for _, promotion := range promotionPieces {
			ml = append(ml, Move{From: from, To: to, Promotion: promotion})
		}
		return ml
	}
	return append(ml, Move{From: from, To: to})
}

func (b *Board) addCastling(ml []Move, white bool) []Move {
	var rank = let(white, Rank1, Rank8)
	var kingFrom = MakeSquare(FileE, rank)
	var kingFlag = let(white, WhiteKingMoved, BlackKingMoved)
	if !b.CanCastle(kingFlag) || b.Squares[kingFrom] != MakePiece(King, white) {
		return ml
	}
	var enemy = !white

	var rookFlag = let(white, WhiteKingRookMoved, BlackKingRookMoved)
	if b.CanCastle(rookFlag) &&
		b.Squares[MakeSquare(FileH, rank)] == MakePiece(Rook, white) &&
		b.isEmpty(rank, FileF, FileG) &&
		!b.isAttacked(rank, FileE, FileG, enemy) {
		ml = append(ml, Move{From: kingFrom, To: MakeSquare(FileG, rank)})
	}

	rookFlag = let(white, WhiteQueenRookMoved, BlackQueenRookMoved)
	if b.CanCastle(rookFlag) &&
		b.Squares[MakeSquare(FileA, rank)] == MakePiece(Rook, white) &&
		b.isEmpty(rank, FileB, FileD) &&
		!b.isAttacked(rank, FileC, FileE, enemy) {
		ml = append(ml, Move{From: kingFrom, To: MakeSquare(FileC, rank)})
	}
	return ml
}

func (b *Board) isEmpty(rank, fileFrom, fileTo int) bool {
	for file := fileFrom; file <= fileTo; file++ {
		if b.Squares[MakeSquare(file, rank)] != Empty {
			return false
		}
	}
	return true
}

func (b *Board) isAttacked(rank, fileFrom, fileTo int, byWhite bool) bool {
	for file := fileFrom; file <= fileTo; file++ {
		if b.IsSquareAttacked(MakeSquare(file, rank), byWhite) {
			return true
		}
	}
	return false
}
