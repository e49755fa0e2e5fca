package common

func (b *Board) IsCheckmate() bool {
	return b.IsCheck() && !b.hasLegalMove()
}

func (b *Board) IsStalemate() bool {
	return !b.IsCheck() && !b.hasLegalMove()
}

// RepetitionCount returns how many times the current position has occurred, itself included.
func (b *Board) RepetitionCount() int {
	var key = b.Serialize()
	var count = 1
	for _, k := range b.History {
		if k == key {
			count++
		}
	}
	return count
}

func (b *Board) IsRepetition() bool {
	return b.RepetitionCount() >= 3
}

// 100 plies = 50 full moves per side
func (b *Board) IsFiftyMoveDraw() bool {
	return b.Rule50 >= 100
}

// IsInsufficientMaterial: at most four pieces, kings included, and no pawn, rook or queen.
func (b *Board) IsInsufficientMaterial() bool {
	var count = 0
	for _, piece := range b.Squares {
		if piece == Empty {
			continue
		}
		switch PieceType(piece) {
		case Pawn, Rook, Queen:
			return false
		}
		count++
	}
	return count <= 4
}

func (b *Board) IsDraw() bool {
	return b.IsFiftyMoveDraw() ||
		b.IsInsufficientMaterial() ||
		b.IsRepetition() ||
		b.IsStalemate()
}

func (b *Board) IsGameOver() bool {
	return b.IsCheckmate() || b.IsDraw()
}

// Result classifies a finished game and names the reason.
func (b *Board) Result() (GameResult, string) {
	if !b.hasLegalMove() {
		if !b.IsCheck() {
			return GameDraw, "stalemate"
		}
		if b.WhiteMove {
			return GameBlackWins, "checkmate"
		}
		return GameWhiteWins, "checkmate"
	}
	if b.IsFiftyMoveDraw() {
		return GameDraw, "50 moves"
	}
	if b.IsInsufficientMaterial() {
		return GameDraw, "low material"
	}
	if b.IsRepetition() {
		return GameDraw, "3 fold repetition"
	}
	return GameOngoing, ""
}
