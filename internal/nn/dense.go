package nn

import (
	"fmt"
	"math/rand"
)

// Dense implements a fully connected layer.
//
// Performs the transformation: output[o] = act(bias[o] + Σ_i input[i]·weight[o][i])
// where the weight matrix has shape [outputSize, inputSize], stored row-major
// (one row per output neuron).
//
// Parameters and their gradient accumulators each live in a single
// contiguous slice, weights first and biases after, so optimizers and
// gradient scaling can walk one flat buffer. Weights are initialized with
// Xavier/Glorot uniform values, biases with zeros; neither is ever resized
// after construction.
//
// Forward caches the sample's input and post-activation output. Backward
// reads that cache, so exactly one forward pass may be in flight per layer
// instance.
type Dense struct {
	inputSize  int
	outputSize int
	activation Activation

	// weights [outputSize*inputSize] followed by biases [outputSize];
	// grads has the identical layout.
	params []float32
	grads  []float32

	// forward cache, overwritten by every Forward call
	lastInput  []float32
	lastOutput []float32
}

// NewDense creates a fully connected layer mapping inputSize features to
// outputSize features through the given activation.
//
// Weights are drawn from the injected random source; pass a seeded
// *rand.Rand for reproducible initialization. Panics if either size is not
// positive or activation is nil.
func NewDense(activation Activation, inputSize, outputSize int, rng *rand.Rand) *Dense {
	if activation == nil {
		panic("nn.NewDense: activation must not be nil")
	}
	if inputSize <= 0 || outputSize <= 0 {
		panic(fmt.Sprintf("nn.NewDense: sizes must be positive, got %dx%d", inputSize, outputSize))
	}

	weightCount := inputSize * outputSize
	d := &Dense{
		inputSize:  inputSize,
		outputSize: outputSize,
		activation: activation,
		params:     make([]float32, weightCount+outputSize),
		grads:      make([]float32, weightCount+outputSize),
		lastInput:  make([]float32, inputSize),
		lastOutput: make([]float32, outputSize),
	}
	XavierFill(d.params[:weightCount], inputSize, outputSize, rng)
	return d
}

// InputSize returns the expected forward input length.
func (d *Dense) InputSize() int { return d.inputSize }

// OutputSize returns the forward output length.
func (d *Dense) OutputSize() int { return d.outputSize }

// Activation returns the layer's activation function.
func (d *Dense) Activation() Activation { return d.activation }

// Weights returns the weight matrix as a row-major [outputSize*inputSize]
// view into the layer's parameter buffer.
func (d *Dense) Weights() []float32 { return d.params[:d.inputSize*d.outputSize] }

// Biases returns the bias vector view into the layer's parameter buffer.
func (d *Dense) Biases() []float32 { return d.params[d.inputSize*d.outputSize:] }

// GradWeights returns the accumulated weight gradients, same layout as
// Weights.
func (d *Dense) GradWeights() []float32 { return d.grads[:d.inputSize*d.outputSize] }

// GradBiases returns the accumulated bias gradients.
func (d *Dense) GradBiases() []float32 { return d.grads[d.inputSize*d.outputSize:] }

// Params returns all trainable parameters as one flat slice.
func (d *Dense) Params() []float32 { return d.params }

// Grads returns the gradient accumulator matching Params.
func (d *Dense) Grads() []float32 { return d.grads }

// Forward computes the affine transform plus activation for one sample and
// writes it into output.
//
// Side effect: caches input and output for the next Backward call,
// invalidating any previous cache.
func (d *Dense) Forward(input, output []float32) {
	if len(input) != d.inputSize {
		panic(fmt.Sprintf("Dense.Forward: expected input of length %d, got %d", d.inputSize, len(input)))
	}
	if len(output) != d.outputSize {
		panic(fmt.Sprintf("Dense.Forward: expected output buffer of length %d, got %d", d.outputSize, len(output)))
	}

	copy(d.lastInput, input)
	weights := d.Weights()
	biases := d.Biases()
	for o := 0; o < d.outputSize; o++ {
		row := weights[o*d.inputSize : (o+1)*d.inputSize]
		sum := biases[o]
		for i, x := range input {
			sum += x * row[i]
		}
		y := d.activation.Compute(sum)
		d.lastOutput[o] = y
		output[o] = y
	}
}

// Backward propagates gradOutput through the layer using the state cached
// by the most recent Forward.
//
// For each output neuron o, delta = gradOutput[o]·act'(cachedOutput[o]);
// bias and weight gradients are accumulated (summed) into the layer's
// gradient buffers, and the gradient with respect to the input is written
// into gradInput (overwritten, not accumulated).
//
// Calling Backward without a prior matching Forward reuses stale cache and
// produces meaningless gradients.
func (d *Dense) Backward(gradOutput, gradInput []float32) {
	if len(gradOutput) != d.outputSize {
		panic(fmt.Sprintf("Dense.Backward: expected gradient of length %d, got %d", d.outputSize, len(gradOutput)))
	}
	if len(gradInput) != d.inputSize {
		panic(fmt.Sprintf("Dense.Backward: expected input-gradient buffer of length %d, got %d", d.inputSize, len(gradInput)))
	}

	for i := range gradInput {
		gradInput[i] = 0
	}

	weights := d.Weights()
	gradWeights := d.GradWeights()
	gradBiases := d.GradBiases()
	for o := 0; o < d.outputSize; o++ {
		delta := gradOutput[o] * d.activation.Derivative(d.lastOutput[o])
		gradBiases[o] += delta

		wRow := weights[o*d.inputSize : (o+1)*d.inputSize]
		gwRow := gradWeights[o*d.inputSize : (o+1)*d.inputSize]
		for i := 0; i < d.inputSize; i++ {
			gwRow[i] += delta * d.lastInput[i]
			gradInput[i] += delta * wRow[i]
		}
	}
}

// ClearGradients zeroes all accumulated gradients. Call once per batch
// before the batch's first Backward.
func (d *Dense) ClearGradients() {
	for i := range d.grads {
		d.grads[i] = 0
	}
}

// ScaleGradients multiplies every accumulated gradient by factor, typically
// 1/batchSize to turn a summed batch gradient into a mean gradient.
func (d *Dense) ScaleGradients(factor float32) {
	for i := range d.grads {
		d.grads[i] *= factor
	}
}
