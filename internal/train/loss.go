package train

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// HingeLoss returns the SVM max-margin loss relu(1 - y*score) for a label y
// of -1 or +1.
func HingeLoss(g *autodiff.Graph, score autodiff.Value, y float64) autodiff.Value {
	return g.ReLU(g.Add(g.Leaf(1), g.Mul(g.Leaf(-y), score)))
}

// L2Penalty returns alpha * Σ p² over params.
func L2Penalty(g *autodiff.Graph, params []autodiff.Value, alpha float64) autodiff.Value {
	squares := make([]autodiff.Value, len(params))
	for i, p := range params {
		squares[i] = g.Mul(p, p)
	}
	return g.Mul(g.Leaf(alpha), g.Sum(squares...))
}

// Mean returns Σ vs / len(vs). An empty mean is zero.
func Mean(g *autodiff.Graph, vs []autodiff.Value) autodiff.Value {
	if len(vs) == 0 {
		return g.Leaf(0)
	}
	return g.Mul(g.Sum(vs...), g.Leaf(1/float64(len(vs))))
}
