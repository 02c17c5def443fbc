// Package nn implements the feed-forward neural network core of FFNet.
//
// This package provides:
//   - Layer interface: uniform forward/backward capability with runtime-checked sizes
//   - Dense: fully connected layer with gradient accumulation
//   - Activations: Identity, ReLU, Sigmoid, Tanh
//   - Loss functions: MSE
//   - Network: validated layer stack with Predict/Backward/Fit
//   - Builder: seeded, fluent network construction
//
// Design inspired by PyTorch's nn.Module but adapted to flat float32 slices
// and explicit per-layer backpropagation.
package nn

// Layer is the uniform capability every network layer implements.
//
// Dimensions are ordinary integers checked at call time: Forward must be
// given an input of length InputSize and an output buffer of length
// OutputSize, and Backward the mirror image. Slices handed to a layer are
// borrowed for the duration of the call only; a layer may cache a copy of
// its forward input/output for the next Backward, never the caller's slice
// itself.
//
// Gradient contract: Backward accumulates (sums) into the layer's gradient
// buffers. ClearGradients must be called once per batch before the batch's
// first Backward; ScaleGradients converts the summed batch gradient into a
// mean gradient before an optimizer step.
type Layer interface {
	// InputSize returns the expected forward input length.
	InputSize() int

	// OutputSize returns the forward output length.
	OutputSize() int

	// Forward computes the layer output for input and writes it into output.
	//
	// Side effect: caches input and output for the next Backward call.
	// Panics if len(input) != InputSize or len(output) != OutputSize.
	Forward(input, output []float32)

	// Backward consumes the gradient of the loss with respect to this
	// layer's output, accumulates parameter gradients, and writes the
	// gradient with respect to the layer's input into gradInput.
	//
	// Backward must follow a matching Forward on this layer; calling it
	// twice without an intervening Forward reuses stale cached state and
	// is a contract violation, not a guarded condition.
	Backward(gradOutput, gradInput []float32)

	// ClearGradients zeroes all accumulated gradients.
	ClearGradients()

	// ScaleGradients multiplies every accumulated gradient by factor.
	ScaleGradients(factor float32)

	// Params returns the layer's trainable parameters as one flat slice.
	// Optimizers mutate it in place.
	Params() []float32

	// Grads returns the gradient accumulator matching Params element for
	// element.
	Grads() []float32
}
