package common

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	var b, err = NewBoardFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func mustMove(t *testing.T, b *Board, lan string) Move {
	t.Helper()
	var m, err = b.ParseMoveLAN(lan)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func playMoves(t *testing.T, b *Board, moves ...string) {
	t.Helper()
	for _, lan := range moves {
		b.ApplyMove(mustMove(t, b, lan))
	}
}

var boardCmpOptions = []cmp.Option{
	cmp.AllowUnexported(Board{}),
	cmpopts.EquateEmpty(),
}

func TestInitialBoard(t *testing.T) {
	var b = NewInitialBoard()
	if !b.WhiteMove || b.Rule50 != 0 || b.EpSquare != SquareNone || b.Moved != 0 {
		t.Error(b)
	}
	if b.String() != InitialPositionFen {
		t.Error(b.String())
	}
	if len(b.GenerateMoves()) != 20 {
		t.Error(len(b.GenerateMoves()))
	}
	if b.IsGameOver() || b.IsCheck() {
		t.Error("start position is not terminal")
	}
}

func TestFoolsMate(t *testing.T) {
	var b = NewInitialBoard()
	playMoves(t, b, "f2f3", "e7e5", "g2g4", "d8h4")
	if !b.IsCheckmate() {
		t.Error("want checkmate")
	}
	if !b.IsGameOver() {
		t.Error("want game over")
	}
	if b.IsDraw() || b.IsStalemate() {
		t.Error("checkmate is not a draw")
	}
	if ml := b.GenerateMoves(); len(ml) != 0 {
		t.Error(ml)
	}
	if result, reason := b.Result(); result != GameBlackWins || reason != "checkmate" {
		t.Error(result, reason)
	}
}

func TestStalemate(t *testing.T) {
	var b = mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if !b.IsStalemate() || !b.IsDraw() || b.IsCheckmate() {
		t.Error(b)
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	var b = mustBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	if b.IsDraw() {
		t.Fatal("99 plies is not a draw yet")
	}
	playMoves(t, b, "a1a2")
	if b.Rule50 != 100 {
		t.Fatal(b.Rule50)
	}
	if !b.IsDraw() || !b.IsGameOver() {
		t.Error("want fifty move draw")
	}
}

func TestRule50Reset(t *testing.T) {
	var b = mustBoard(t, "4k3/8/8/3p4/8/8/4P3/R3K3 w - - 30 40")
	playMoves(t, b, "a1a2")
	if b.Rule50 != 31 {
		t.Error(b.Rule50)
	}
	playMoves(t, b, "d5d4", "e2e4", "d4e3")
	if b.Rule50 != 0 {
		t.Error(b.Rule50)
	}
}

func TestRepetitionDraw(t *testing.T) {
	var b = NewInitialBoard()
	playMoves(t, b, "g1f3", "g8f6", "f3g1", "f6g8")
	if b.IsDraw() || b.RepetitionCount() != 2 {
		t.Fatal(b.RepetitionCount())
	}
	playMoves(t, b, "g1f3", "g8f6", "f3g1", "f6g8")
	if b.RepetitionCount() != 3 {
		t.Fatal(b.RepetitionCount())
	}
	if !b.IsDraw() || !b.IsGameOver() {
		t.Error("want threefold repetition")
	}
	if result, reason := b.Result(); result != GameDraw || reason != "3 fold repetition" {
		t.Error(result, reason)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	var tests = []struct {
		fen  string
		want bool
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"4k1n1/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"4k1n1/8/8/8/8/8/8/1NB1K3 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
	}
	for _, test := range tests {
		var b = mustBoard(t, test.fen)
		if got := b.IsInsufficientMaterial(); got != test.want {
			t.Error(test.fen, got)
		}
	}
}

func TestEnPassant(t *testing.T) {
	var b = mustBoard(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3")
	playMoves(t, b, "f7f5")
	if b.EpSquare != SquareF6 {
		t.Fatal(SquareName(b.EpSquare))
	}
	var m = mustMove(t, b, "e5f6")
	if b.CapturedPiece(m) != Pawn {
		t.Error("en passant is a pawn capture")
	}
	b.ApplyMove(m)
	if b.Squares[SquareF5] != Empty || b.Squares[SquareF6] != Pawn || b.Squares[SquareE5] != Empty {
		t.Error(b)
	}
	if b.Rule50 != 0 || b.EpSquare != SquareNone {
		t.Error(b)
	}
}

func TestCastling(t *testing.T) {
	var b = mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var kingSide = mustMove(t, b, "e1g1")
	mustMove(t, b, "e1c1")
	b.ApplyMove(kingSide)
	if b.Squares[SquareG1] != King || b.Squares[SquareF1] != Rook || b.Squares[SquareH1] != Empty {
		t.Error(b)
	}
	if b.CanCastle(WhiteKingMoved) || b.CanCastle(WhiteKingRookMoved) {
		t.Error(b.Moved)
	}
	if b.KingSquare(true) != SquareG1 {
		t.Error(SquareName(b.KingSquare(true)))
	}
	playMoves(t, b, "e8c8")
	if b.Squares[SquareC8] != -King || b.Squares[SquareD8] != -Rook || b.Squares[SquareA8] != Empty {
		t.Error(b)
	}
}

func TestCastlingThroughAttack(t *testing.T) {
	var b = mustBoard(t, "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	var ml = b.GenerateMoves()
	if containsMove(ml, Move{From: SquareE1, To: SquareG1}) {
		t.Error("king may not pass an attacked square")
	}
	if !containsMove(ml, Move{From: SquareE1, To: SquareC1}) {
		t.Error("queen side castling is legal")
	}

	b = mustBoard(t, "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	for _, m := range b.GenerateMoves() {
		if m.From == SquareE1 && FileDistance(m.From, m.To) == 2 {
			t.Error("no castling out of check", m)
		}
	}
}

func TestCastlingRightsLost(t *testing.T) {
	var b = mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	playMoves(t, b, "h1h8")
	if b.CanCastle(BlackKingRookMoved) {
		t.Error("captured rook gives no castling right")
	}
	if b.CanCastle(WhiteKingRookMoved) {
		t.Error("moved rook gives no castling right")
	}
	if !b.CanCastle(BlackKingMoved | BlackQueenRookMoved) {
		t.Error("queen side is intact")
	}
}

func TestPromotion(t *testing.T) {
	var b = mustBoard(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	var promotions = 0
	for _, m := range b.GenerateMoves() {
		if m.From == SquareA7 {
			promotions++
		}
	}
	if promotions != 4 {
		t.Error(promotions)
	}
	playMoves(t, b, "a7a8n")
	if b.Squares[SquareA8] != Knight {
		t.Error(b)
	}
}

func TestKingIsNeverCaptured(t *testing.T) {
	// malformed: black is in check with white to move
	var b = mustBoard(t, "4k3/8/8/8/8/8/8/4RK2 w - - 0 1")
	for _, m := range b.GenerateMoves() {
		if PieceType(b.Squares[m.To]) == King {
			t.Error(m)
		}
		var child = b.Clone()
		child.ApplyMove(m)
		if err := child.checkKings(); err != nil {
			t.Error(m, err)
		}
	}
}

func TestMissingKing(t *testing.T) {
	var _, err = NewBoardFromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	if !errors.Is(err, ErrInvalidBoard) {
		t.Error(err)
	}
	var squares [64]int
	squares[SquareE1] = King
	squares[SquareE8] = -King
	squares[SquareD1] = King
	if _, err = NewBoard(squares, true); !errors.Is(err, ErrInvalidBoard) {
		t.Error(err)
	}
}

func TestClonePanicsWithoutKing(t *testing.T) {
	var b = NewInitialBoard()
	b.Squares[SquareE8] = Empty
	defer func() {
		var r = recover()
		if err, ok := r.(error); !ok || !errors.Is(err, ErrInvalidBoard) {
			t.Error(r)
		}
	}()
	b.Clone()
}

func TestNewBoardRights(t *testing.T) {
	var squares [64]int
	squares[SquareE1] = King
	squares[SquareH1] = Rook
	squares[SquareE8] = -King
	var b, err = NewBoard(squares, true)
	if err != nil {
		t.Fatal(err)
	}
	if !b.CanCastle(WhiteKingMoved|WhiteKingRookMoved) || b.CanCastle(WhiteQueenRookMoved) ||
		b.CanCastle(BlackKingRookMoved) {
		t.Error(b.Moved)
	}
	if b.String() != "4k3/8/8/8/8/8/8/4K2R w K - 0 1" {
		t.Error(b.String())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var b = NewInitialBoard()
	playMoves(t, b, "e2e4")
	var before = b.Clone()
	var child = b.Clone()
	playMoves(t, child, "e7e5", "g1f3")
	if diff := cmp.Diff(before, b, boardCmpOptions...); diff != "" {
		t.Errorf("parent changed (-want +got):\n%s", diff)
	}
	if len(child.History) != 3 || len(b.History) != 1 {
		t.Error(len(child.History), len(b.History))
	}
}

func TestUnmakeRestores(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 b kq - 0 1",
	}
	for _, fen := range fens {
		var b = mustBoard(t, fen)
		var before = b.Clone()
		for _, m := range b.GenerateMoves() {
			var u = b.MakeMove(m)
			b.UnmakeMove(u)
			if diff := cmp.Diff(before, b, boardCmpOptions...); diff != "" {
				t.Errorf("%v %v (-want +got):\n%s", fen, m, diff)
			}
		}
	}
}

func TestSerialize(t *testing.T) {
	var a = NewInitialBoard()
	var b = NewInitialBoard()
	if a.Serialize() != b.Serialize() {
		t.Error("same placement and side must give same key")
	}

	var keys = make(map[string]string)
	var fens = []string{
		InitialPositionFen,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/4P3/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/3K4 w - - 0 1",
		"3k4/8/8/8/8/8/8/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		var key = mustBoard(t, fen).Serialize()
		if other, found := keys[key]; found {
			t.Error("collision", fen, other)
		}
		keys[key] = fen
	}
}

func TestMirror(t *testing.T) {
	var b = mustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	var m = b.Mirror()
	if m.WhiteMove || m.KingSquare(false) != SquareE8 ||
		m.Squares[SquareF6] != -Queen || m.Squares[SquareE2] != Queen {
		t.Error(m)
	}
	if len(m.GenerateMoves()) != len(b.GenerateMoves()) {
		t.Error("mirrored position has the same number of moves")
	}
	if diff := cmp.Diff(b.String(), m.Mirror().String()); diff != "" {
		t.Error(diff)
	}
}

func TestNewMove(t *testing.T) {
	var tests = []struct {
		from, to, promotion int
		valid               bool
	}{
		{SquareE2, SquareE4, Empty, true},
		{SquareE7, SquareE8, Queen, true},
		{SquareE7, SquareE8, King, false},
		{SquareE7, SquareE8, Pawn, false},
		{-1, SquareE4, Empty, false},
		{SquareE2, 64, Empty, false},
		{SquareE2, SquareE2, Empty, false},
	}
	for _, test := range tests {
		var m, err = NewMove(test.from, test.to, test.promotion)
		if test.valid != (err == nil) {
			t.Error(test, err)
		}
		if !test.valid && !errors.Is(err, ErrInvalidMove) {
			t.Error(test, err)
		}
		if test.valid && (m.From != test.from || m.To != test.to) {
			t.Error(m)
		}
	}
	if _, err := NewInitialBoard().ParseMoveLAN("e2e5"); !errors.Is(err, ErrInvalidMove) {
		t.Error(err)
	}
}

func TestMoveToSAN(t *testing.T) {
	var tests = []struct {
		fen, lan, san string
	}{
		{InitialPositionFen, "e2e4", "e4"},
		{InitialPositionFen, "g1f3", "Nf3"},
		{"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", "a1a8", "Ra8#"},
		{"4k3/8/8/8/8/8/K7/R6R w - - 0 1", "a1d1", "Rad1"},
		{"4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", "R1a3"},
		{"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1g1", "O-O"},
		{"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1c1", "O-O-O"},
		{"3r3k/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7d8q", "exd8=Q+"},
	}
	for _, test := range tests {
		var b = mustBoard(t, test.fen)
		var m = mustMove(t, b, test.lan)
		if got := b.MoveToSAN(m); got != test.san {
			t.Error(test, got)
		}
		var parsed, err = b.ParseMoveSAN(test.san)
		if err != nil || parsed != m {
			t.Error(test, parsed, err)
		}
	}

	var b = NewInitialBoard()
	if _, err := b.ParseMoveSAN("Nf4"); !errors.Is(err, ErrInvalidMove) {
		t.Error(err)
	}
	if m, err := b.ParseMoveSAN("Nf3!"); err != nil || m.String() != "g1f3" {
		t.Error(m, err)
	}
}
