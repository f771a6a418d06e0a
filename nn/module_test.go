// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
)

// TestPublicAPI drives a training step through the public packages only.
func TestPublicAPI(t *testing.T) {
	g := autodiff.NewGraph(autodiff.Config{})
	model := nn.NewMLP(g, 2, []int{4, 1}, nn.MLPConfig{Init: nn.Xavier}, rand.New(rand.NewSource(1)))
	mark := g.Mark()

	out := model.Forward(g, nn.Inputs(g, []float64{1, -1}))[0]
	loss := g.Pow(out, 2)
	require.NoError(t, g.Backward(loss))
	assert.Equal(t, autodiff.OpPow, g.Op(loss))

	g.Release(mark)
	nn.ZeroGrad(g, model)
	for _, p := range model.Parameters() {
		assert.Zero(t, g.Grad(p))
	}
	assert.Equal(t, 17, g.Len())
}
