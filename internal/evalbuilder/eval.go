package evalbuilder

import (
	"fmt"

	"github.com/ChizhovVadim/chessai/pkg/engine"
	"github.com/ChizhovVadim/chessai/pkg/eval"
)

// Names lists the known evaluation functions; the first is the default.
func Names() []string {
	return []string{"full", "material"}
}

func Get(key string) (func() engine.IEvaluator, error) {
	switch key {
	case "", "full":
		return func() engine.IEvaluator {
			return eval.NewEvaluationService()
		}, nil
	case "material":
		return func() engine.IEvaluator {
			return eval.NewMaterialEvaluationService()
		}, nil
	}
	return nil, fmt.Errorf("bad eval %v", key)
}
