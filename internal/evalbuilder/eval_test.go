package evalbuilder

import (
	"testing"

	"github.com/ChizhovVadim/chessai/pkg/common"
)

func TestGet(t *testing.T) {
	var b = common.NewInitialBoard()
	for _, name := range append(Names(), "") {
		var builder, err = Get(name)
		if err != nil {
			t.Fatal(name, err)
		}
		if score := builder().Evaluate(b); score != 0 {
			t.Error(name, score)
		}
	}
	if _, err := Get("nnue"); err == nil {
		t.Error("unknown eval accepted")
	}
}
