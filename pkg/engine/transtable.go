package engine

import (
	. "github.com/ChizhovVadim/chessai/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

type transEntry struct {
	depth int
	score int
	bound int
	move  Move
}

// transTable lives for one search. Keys are Board.Serialize, which ignores
// castling rights and the en passant square, so two such positions share an entry.
type transTable struct {
	entries map[string]transEntry
}

func newTransTable() *transTable {
	return &transTable{
		entries: make(map[string]transEntry),
	}
}

func (tt *transTable) Size() int {
	return len(tt.entries)
}

func (tt *transTable) Read(key string) (depth, score, bound int, move Move, ok bool) {
	var entry transEntry
	entry, ok = tt.entries[key]
	if !ok {
		return
	}
	return entry.depth, entry.score, entry.bound, entry.move, true
}

func (tt *transTable) Update(key string, depth, score, bound int, move Move) {
	if entry, found := tt.entries[key]; found &&
		depth < entry.depth && bound != boundExact {
		return
	}
	tt.entries[key] = transEntry{
		depth: depth,
		score: score,
		bound: bound,
		move:  move,
	}
}
