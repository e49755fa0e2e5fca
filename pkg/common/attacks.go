package common

type offset struct {
	file, rank int
}

var (
	knightOffsets = [...]offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [...]offset{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopRays    = [...]offset{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	rookRays      = [...]offset{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
)

func shift(sq int, d offset) (int, bool) {
	var file, rank = File(sq) + d.file, Rank(sq) + d.rank
	if !IsOnBoard(file, rank) {
		return SquareNone, false
	}
	return MakeSquare(file, rank), true
}

// IsSquareAttacked tests the attack patterns directly, without generating moves.
func (b *Board) IsSquareAttacked(sq int, byWhite bool) bool {
	var sign = sideSign(byWhite)

	// a pawn attacks diagonally forward, so look one rank behind sq from the attacker's view
	var pawnRank = let(byWhite, -1, 1)
	for _, df := range [...]int{-1, 1} {
		if to, ok := shift(sq, offset{df, pawnRank}); ok && b.Squares[to] == sign*Pawn {
			return true
		}
	}

	for _, d := range knightOffsets {
		if to, ok := shift(sq, d); ok && b.Squares[to] == sign*Knight {
			return true
		}
	}

	for _, d := range kingOffsets {
		if to, ok := shift(sq, d); ok && b.Squares[to] == sign*King {
			return true
		}
	}

	if b.rayAttack(sq, bishopRays[:], sign*Bishop, sign*Queen) {
		return true
	}
	return b.rayAttack(sq, rookRays[:], sign*Rook, sign*Queen)
}

func (b *Board) rayAttack(sq int, rays []offset, slider, queen int) bool {
	for _, d := range rays {
		for to, ok := shift(sq, d); ok; to, ok = shift(to, d) {
			var piece = b.Squares[to]
			if piece == Empty {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}

func (b *Board) IsInCheck(white bool) bool {
	return b.IsSquareAttacked(b.kings[sideIndex(white)], !white)
}

// IsCheck reports whether the side to move is in check.
func (b *Board) IsCheck() bool {
	return b.IsInCheck(b.WhiteMove)
}

// Mobility counts the squares a knight, bishop, rook or queen on sq can reach,
// ignoring pins. Other pieces have zero mobility.
func (b *Board) Mobility(sq int) int {
	var piece = b.Squares[sq]
	var white = IsWhitePiece(piece)
	var count = 0
	switch PieceType(piece) {
	case Knight:
		for _, d := range knightOffsets {
			if to, ok := shift(sq, d); ok && !b.isOwn(to, white) {
				count++
			}
		}
	case Bishop:
		count = b.rayMobility(sq, bishopRays[:], white)
	case Rook:
		count = b.rayMobility(sq, rookRays[:], white)
	case Queen:
		count = b.rayMobility(sq, bishopRays[:], white) + b.rayMobility(sq, rookRays[:], white)
	}
	return count
}

func (b *Board) rayMobility(sq int, rays []offset, white bool) int {
	var count = 0
	for _, d := range rays {
		for to, ok := shift(sq, d); ok; to, ok = shift(to, d) {
			var piece = b.Squares[to]
			if piece == Empty {
				count++
				continue
			}
			if IsWhitePiece(piece) != white {
				count++
			}
			break
		}
	}
	return count
}

func (b *Board) isOwn(sq int, white bool) bool {
	var piece = b.Squares[sq]
	return piece != Empty && IsWhitePiece(piece) == white
}

func (b *Board) isEnemy(sq int, white bool) bool {
	var piece = b.Squares[sq]
	return piece != Empty && IsWhitePiece(piece) != white
}
