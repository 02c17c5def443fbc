package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_Creation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	layer := NewDense(ReLU{}, 10, 5, rng)

	assert.Equal(t, 10, layer.InputSize())
	assert.Equal(t, 5, layer.OutputSize())
	assert.Len(t, layer.Weights(), 50)
	assert.Len(t, layer.Biases(), 5)
	assert.Len(t, layer.Params(), 55)
	assert.Len(t, layer.Grads(), 55)

	// Biases start at zero.
	for _, b := range layer.Biases() {
		assert.Zero(t, b)
	}

	// Xavier bound: sqrt(6/(10+5))
	limit := float32(math.Sqrt(6.0 / 15.0))
	for _, w := range layer.Weights() {
		assert.LessOrEqual(t, w, limit)
		assert.GreaterOrEqual(t, w, -limit)
	}
}

func TestDense_CreationDeterministicWithSeed(t *testing.T) {
	a := NewDense(Tanh{}, 4, 3, rand.New(rand.NewSource(7)))
	b := NewDense(Tanh{}, 4, 3, rand.New(rand.NewSource(7)))
	assert.Equal(t, a.Params(), b.Params())
}

func TestDense_CreationPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { NewDense(nil, 2, 2, rng) })
	assert.Panics(t, func() { NewDense(ReLU{}, 0, 2, rng) })
	assert.Panics(t, func() { NewDense(ReLU{}, 2, -1, rng) })
}

func TestDense_Forward(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := NewDense(Identity{}, 2, 2, rng)

	// Weight rows: [1 2], [3 4]; biases [0.5, 1].
	copy(layer.Weights(), []float32{1, 2, 3, 4})
	copy(layer.Biases(), []float32{0.5, 1})

	out := make([]float32, 2)
	layer.Forward([]float32{1, 1}, out)

	assert.InDelta(t, 3.5, out[0], 1e-6) // 0.5 + 1·1 + 2·1
	assert.InDelta(t, 8.0, out[1], 1e-6) // 1.0 + 3·1 + 4·1
}

func TestDense_ForwardAppliesActivation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := NewDense(ReLU{}, 1, 2, rng)
	copy(layer.Weights(), []float32{2, -2})

	out := make([]float32, 2)
	layer.Forward([]float32{3}, out)

	assert.Equal(t, float32(6), out[0])
	assert.Equal(t, float32(0), out[1]) // -6 clipped by ReLU
}

func TestDense_ForwardShapePanics(t *testing.T) {
	layer := NewDense(ReLU{}, 3, 2, rand.New(rand.NewSource(1)))
	out := make([]float32, 2)

	assert.Panics(t, func() { layer.Forward([]float32{1, 2}, out) })
	assert.Panics(t, func() { layer.Forward([]float32{1, 2, 3}, make([]float32, 3)) })
}

func TestDense_ForwardCopiesInput(t *testing.T) {
	layer := NewDense(Identity{}, 2, 1, rand.New(rand.NewSource(1)))
	copy(layer.Weights(), []float32{1, 1})

	in := []float32{1, 2}
	out := make([]float32, 1)
	layer.Forward(in, out)

	// Mutating the caller's slice must not disturb the cached input the
	// next Backward reads.
	in[0] = 100
	gradIn := make([]float32, 2)
	layer.Backward([]float32{1}, gradIn)

	// gradWeights = delta·cachedInput = 1·[1,2]
	assert.InDelta(t, 1.0, layer.GradWeights()[0], 1e-6)
	assert.InDelta(t, 2.0, layer.GradWeights()[1], 1e-6)
}

func TestDense_Backward(t *testing.T) {
	layer := NewDense(Identity{}, 2, 2, rand.New(rand.NewSource(1)))
	copy(layer.Weights(), []float32{1, 2, 3, 4})
	copy(layer.Biases(), []float32{0, 0})

	out := make([]float32, 2)
	layer.Forward([]float32{1, -1}, out)
	require.InDelta(t, -1.0, out[0], 1e-6) // 1·1 + 2·(-1)
	require.InDelta(t, -1.0, out[1], 1e-6) // 3·1 + 4·(-1)

	gradIn := make([]float32, 2)
	layer.Backward([]float32{0.5, -0.5}, gradIn)

	// Identity derivative is 1, so delta = gradOutput.
	assert.InDelta(t, 0.5, layer.GradBiases()[0], 1e-6)
	assert.InDelta(t, -0.5, layer.GradBiases()[1], 1e-6)

	// gradWeight[o][i] = delta[o]·input[i]
	assert.InDelta(t, 0.5, layer.GradWeights()[0], 1e-6)
	assert.InDelta(t, -0.5, layer.GradWeights()[1], 1e-6)
	assert.InDelta(t, -0.5, layer.GradWeights()[2], 1e-6)
	assert.InDelta(t, 0.5, layer.GradWeights()[3], 1e-6)

	// gradInput[i] = Σ_o delta[o]·weight[o][i]
	assert.InDelta(t, 0.5*1+(-0.5)*3, gradIn[0], 1e-6)
	assert.InDelta(t, 0.5*2+(-0.5)*4, gradIn[1], 1e-6)
}

func TestDense_BackwardUsesActivationDerivativeOfOutput(t *testing.T) {
	layer := NewDense(Sigmoid{}, 1, 1, rand.New(rand.NewSource(1)))
	copy(layer.Weights(), []float32{0})
	copy(layer.Biases(), []float32{0})

	out := make([]float32, 1)
	layer.Forward([]float32{1}, out)
	require.InDelta(t, 0.5, out[0], 1e-6)

	gradIn := make([]float32, 1)
	layer.Backward([]float32{1}, gradIn)

	// delta = 1·σ'(y=0.5) = 0.25
	assert.InDelta(t, 0.25, layer.GradBiases()[0], 1e-6)
	assert.InDelta(t, 0.25, layer.GradWeights()[0], 1e-6)
}

func TestDense_GradientAccumulation(t *testing.T) {
	layer := NewDense(Identity{}, 1, 1, rand.New(rand.NewSource(1)))
	copy(layer.Weights(), []float32{1})

	out := make([]float32, 1)
	gradIn := make([]float32, 1)

	// Two samples, gradients must sum.
	layer.Forward([]float32{2}, out)
	layer.Backward([]float32{1}, gradIn)
	layer.Forward([]float32{3}, out)
	layer.Backward([]float32{1}, gradIn)

	assert.InDelta(t, 5.0, layer.GradWeights()[0], 1e-6) // 2 + 3
	assert.InDelta(t, 2.0, layer.GradBiases()[0], 1e-6)  // 1 + 1

	layer.ScaleGradients(0.5)
	assert.InDelta(t, 2.5, layer.GradWeights()[0], 1e-6)
	assert.InDelta(t, 1.0, layer.GradBiases()[0], 1e-6)

	layer.ClearGradients()
	assert.Zero(t, layer.GradWeights()[0])
	assert.Zero(t, layer.GradBiases()[0])
}

func TestDense_BackwardShapePanics(t *testing.T) {
	layer := NewDense(ReLU{}, 3, 2, rand.New(rand.NewSource(1)))
	layer.Forward(make([]float32, 3), make([]float32, 2))

	assert.Panics(t, func() { layer.Backward(make([]float32, 3), make([]float32, 3)) })
	assert.Panics(t, func() { layer.Backward(make([]float32, 2), make([]float32, 2)) })
}

func TestXavierFill_Bounds(t *testing.T) {
	dst := make([]float32, 1000)
	XavierFill(dst, 6, 6, rand.New(rand.NewSource(3)))

	limit := float32(math.Sqrt(0.5)) // sqrt(6/12)
	var nonZero int
	for _, v := range dst {
		assert.LessOrEqual(t, v, limit)
		assert.GreaterOrEqual(t, v, -limit)
		if v != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 900)
}
