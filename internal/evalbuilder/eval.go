package evalbuilder

import (
	"fmt"

	"github.com/gridchess/gridchess/pkg/engine"
	material "github.com/gridchess/gridchess/pkg/eval/material"
	pst "github.com/gridchess/gridchess/pkg/eval/pst"
)

const DefaultKey = "pst"

func Get(key string) (func() engine.Evaluator, error) {
	switch key {
	case "", "pst":
		return func() engine.Evaluator {
			return pst.NewEvaluationService()
		}, nil
	case "material":
		return func() engine.Evaluator {
			return material.NewEvaluationService()
		}, nil
	}
	return nil, fmt.Errorf("bad eval %v", key)
}
