package engine

import . "github.com/ChizhovVadim/chessai/pkg/common"

const historyMax = 1 << 14

// history scores quiet moves by how often they caused a beta cutoff.
// It is cleared at the start of every search.
type history [2 * 64 * 64]int16

func (h *history) Clear() {
	for i := range h {
		h[i] = 0
	}
}

func (h *history) Read(side bool, m Move) int {
	return int(h[sideFromToIndex(side, m)])
}

// Update rewards bestMove and penalizes the quiet moves tried before it.
func (h *history) Update(side bool, quietsSearched []Move, bestMove Move, depth int) {
	var bonus = Min(depth*depth, 400)
	for _, m := range quietsSearched {
		var good = m == bestMove
		updateHistory(&h[sideFromToIndex(side, m)], bonus, good)
		if good {
			break
		}
	}
}

// Exponential moving average
func updateHistory(v *int16, bonus int, good bool) {
	var newVal int
	if good {
		newVal = historyMax
	} else {
		newVal = -historyMax
	}
	*v += int16((newVal - int(*v)) * bonus / 512)
}

func sideFromToIndex(side bool, move Move) int {
	var result = (move.From << 6) | move.To
	if side {
		result |= 1 << 12
	}
	return result
}
