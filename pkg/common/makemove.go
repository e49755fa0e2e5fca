package common

// Undo holds everything UnmakeMove needs to restore the board.
type Undo struct {
	move           Move
	piece          int
	captured       int
	capturedSquare int
	rookFrom       int
	rookTo         int
	epSquare       int
	moved          int
	rule50         int
	historySize    int
	recorded       bool
}

// ApplyMove plays a legal move on the board. The result of applying an illegal move is undefined.
func (b *Board) ApplyMove(move Move) {
	b.makeMove(move, true)
}

// MakeMove plays the move and returns the record to take it back.
func (b *Board) MakeMove(move Move) Undo {
	return b.makeMove(move, true)
}

func (b *Board) makeMove(move Move, record bool) Undo {
	var from, to = move.From, move.To
	var piece = b.Squares[from]
	var pieceType = PieceType(piece)
	var white = b.WhiteMove

	var u = Undo{
		move:           move,
		piece:          piece,
		capturedSquare: SquareNone,
		rookFrom:       SquareNone,
		rookTo:         SquareNone,
		epSquare:       b.EpSquare,
		moved:          b.Moved,
		rule50:         b.Rule50,
		historySize:    len(b.History),
		recorded:       record,
	}

	if record {
		b.History = append(b.History, b.Serialize())
	}

	var capturedSquare = to
	if pieceType == Pawn && to == b.EpSquare && b.Squares[to] == Empty {
		capturedSquare = to + let(white, -8, 8)
	}
	if captured := b.Squares[capturedSquare]; captured != Empty {
		u.captured = captured
		u.capturedSquare = capturedSquare
		b.Squares[capturedSquare] = Empty
	}

	if pieceType == Pawn || u.captured != Empty {
		b.Rule50 = 0
	} else {
		b.Rule50++
	}

	b.Moved |= movedMask[from] | movedMask[to]

	if pieceType == Pawn && Abs(to-from) == 16 {
		b.EpSquare = (from + to) / 2
	} else {
		b.EpSquare = SquareNone
	}

	if pieceType == King && FileDistance(from, to) == 2 {
		var rank = Rank(from)
		if File(to) == FileG {
			u.rookFrom, u.rookTo = MakeSquare(FileH, rank), MakeSquare(FileF, rank)
		} else {
			u.rookFrom, u.rookTo = MakeSquare(FileA, rank), MakeSquare(FileD, rank)
		}
		b.Squares[u.rookTo] = b.Squares[u.rookFrom]
		b.Squares[u.rookFrom] = Empty
		b.Moved |= movedMask[u.rookFrom]
	}

	if move.Promotion != Empty {
		b.Squares[to] = MakePiece(move.Promotion, white)
	} else {
		b.Squares[to] = piece
	}
	b.Squares[from] = Empty

	if pieceType == King {
		b.kings[sideIndex(white)] = to
	}

	b.WhiteMove = !white
	return u
}

// UnmakeMove takes back the move recorded in u. Undo records must be unwound in reverse order.
func (b *Board) UnmakeMove(u Undo) {
	b.WhiteMove = !b.WhiteMove
	var from, to = u.move.From, u.move.To

	b.Squares[from] = u.piece
	b.Squares[to] = Empty
	if u.captured != Empty {
		b.Squares[u.capturedSquare] = u.captured
	}
	if u.rookFrom != SquareNone {
		b.Squares[u.rookFrom] = b.Squares[u.rookTo]
		b.Squares[u.rookTo] = Empty
	}
	if PieceType(u.piece) == King {
		b.kings[sideIndex(b.WhiteMove)] = from
	}

	b.EpSquare = u.epSquare
	b.Moved = u.moved
	b.Rule50 = u.rule50
	if u.recorded {
		b.History = b.History[:u.historySize]
	}
}

// Captured reports the piece code removed by the move, Empty for quiet moves.
func (u Undo) Captured() int {
	return u.captured
}
