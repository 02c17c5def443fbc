package nn

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ffnet-ml/ffnet/internal/data"
)

// Optimizer is the capability Fit needs from an optimization algorithm:
// mutate a layer's parameters in place from its accumulated gradients.
// The optim package provides implementations.
type Optimizer interface {
	Step(layer Layer)
}

// Network is an ordered, fixed sequence of layers where each layer's
// output width equals the next layer's input width.
//
// The network owns two scratch buffers sized to its widest layer and
// alternates their roles at every layer boundary, so a full forward or
// backward pass performs no per-layer allocation. The scratch buffers and
// each layer's forward cache make a Network unsafe for concurrent use.
type Network struct {
	layers     []Layer
	inputSize  int
	outputSize int

	// ping-pong scratch shared by forward and backward passes
	bufA []float32
	bufB []float32
}

// NewNetwork creates a network from an ordered list of layers.
//
// The layer chain is validated at construction: a network must contain at
// least one layer and every consecutive pair must compose, layer k's
// output width matching layer k+1's input width. A violation is a fatal
// configuration error and panics.
func NewNetwork(layers ...Layer) *Network {
	if len(layers) == 0 {
		panic("nn.NewNetwork: network must contain at least one layer")
	}

	width := layers[0].InputSize()
	for k, l := range layers {
		if l.InputSize() != width {
			panic(fmt.Sprintf("nn.NewNetwork: layer %d expects input of %d, previous layer produces %d",
				k, l.InputSize(), width))
		}
		width = l.OutputSize()
	}

	maxWidth := layers[0].InputSize()
	for _, l := range layers {
		if l.OutputSize() > maxWidth {
			maxWidth = l.OutputSize()
		}
	}

	return &Network{
		layers:     layers,
		inputSize:  layers[0].InputSize(),
		outputSize: layers[len(layers)-1].OutputSize(),
		bufA:       make([]float32, maxWidth),
		bufB:       make([]float32, maxWidth),
	}
}

// InputSize returns the network's input width (first layer's input size).
func (n *Network) InputSize() int { return n.inputSize }

// OutputSize returns the network's output width (last layer's output size).
func (n *Network) OutputSize() int { return n.outputSize }

// NumLayers returns the number of layers in the stack.
func (n *Network) NumLayers() int { return len(n.layers) }

// Layer returns the layer at the given index. Panics if index is out of
// bounds.
func (n *Network) Layer(index int) Layer {
	if index < 0 || index >= len(n.layers) {
		panic(fmt.Sprintf("Network.Layer: index %d out of bounds for %d layers", index, len(n.layers)))
	}
	return n.layers[index]
}

// Predict runs a forward pass and returns a freshly allocated output
// vector of length OutputSize.
//
// Predict has no gradient side effects beyond refreshing each layer's
// forward cache; repeated calls are idempotent. Panics if len(input) does
// not equal InputSize.
func (n *Network) Predict(input []float32) []float32 {
	out := make([]float32, n.outputSize)
	copy(out, n.forward(input))
	return out
}

// forward runs the layer stack over the ping-pong scratch buffers and
// returns a view of the buffer holding the final output. The view is valid
// until the next forward or Backward call.
func (n *Network) forward(input []float32) []float32 {
	if len(input) != n.inputSize {
		panic(fmt.Sprintf("Network.Predict: expected input of length %d, got %d", n.inputSize, len(input)))
	}

	src, dst := n.bufA, n.bufB
	copy(src, input)
	width := n.inputSize
	for _, l := range n.layers {
		l.Forward(src[:width], dst[:l.OutputSize()])
		width = l.OutputSize()
		src, dst = dst, src
	}
	return src[:width]
}

// Backward propagates the loss gradient through the stack in reverse
// layer order, accumulating each layer's parameter gradients as a side
// effect.
//
// Every layer must hold the forward cache of the sample this gradient
// belongs to, i.e. Backward must directly follow the matching forward
// pass. Panics if len(lossGradient) does not equal OutputSize.
func (n *Network) Backward(lossGradient []float32) {
	if len(lossGradient) != n.outputSize {
		panic(fmt.Sprintf("Network.Backward: expected gradient of length %d, got %d", n.outputSize, len(lossGradient)))
	}

	src, dst := n.bufA, n.bufB
	copy(src, lossGradient)
	width := n.outputSize
	for k := len(n.layers) - 1; k >= 0; k-- {
		l := n.layers[k]
		l.Backward(src[:width], dst[:l.InputSize()])
		width = l.InputSize()
		src, dst = dst, src
	}
}

// ClearGradients zeroes the gradient accumulators of every layer.
func (n *Network) ClearGradients() {
	for _, l := range n.layers {
		l.ClearGradients()
	}
}

// ScaleGradients multiplies every layer's accumulated gradients by factor.
func (n *Network) ScaleGradients(factor float32) {
	for _, l := range n.layers {
		l.ScaleGradients(factor)
	}
}

// FitConfig holds the knobs for a training run.
type FitConfig struct {
	Epochs    int   // number of full passes over the dataset
	BatchSize int   // samples per parameter update
	Shuffle   bool  // reshuffle the sample order each epoch
	Seed      int64 // shuffle seed; 0 means time-based

	// Loss scores predictions; defaults to MSELoss.
	Loss Loss

	// Progress, if set, is called after each epoch with the mean loss
	// over all samples. A reporting side channel only.
	Progress func(epoch int, meanLoss float32)
}

// DefaultFitConfig returns standard training hyperparameters.
func DefaultFitConfig() FitConfig {
	return FitConfig{
		Epochs:    10,
		BatchSize: 32,
		Shuffle:   true,
		Seed:      42,
	}
}

// Fit trains the network on the dataset with mini-batch gradient descent.
//
// Per epoch: optionally shuffle the sample order, then for each of
// ceil(numSamples/batchSize) batches clear all gradients, run
// forward/loss/backward per sample, scale the summed gradients by
// 1/batchSize, and apply one optimizer step. Layer parameters are mutated
// in place.
//
// Returns the mean loss per epoch (sum of per-sample losses divided by
// samples processed). Configuration and dataset/network width mismatches
// are reported as errors before any training happens.
func (n *Network) Fit(dataset *data.Dataset, optimizer Optimizer, cfg FitConfig) ([]float32, error) {
	if dataset == nil {
		return nil, errors.New("fit: dataset must not be nil")
	}
	if optimizer == nil {
		return nil, errors.New("fit: optimizer must not be nil")
	}
	if cfg.Epochs <= 0 {
		return nil, fmt.Errorf("fit: epochs must be > 0 (got %d)", cfg.Epochs)
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("fit: batch size must be > 0 (got %d)", cfg.BatchSize)
	}
	if dataset.NumSamples() == 0 {
		return nil, errors.New("fit: dataset is empty")
	}
	if dataset.InputSize() != n.inputSize {
		return nil, fmt.Errorf("fit: dataset input width %d does not match network input %d",
			dataset.InputSize(), n.inputSize)
	}
	if dataset.OutputSize() != n.outputSize {
		return nil, fmt.Errorf("fit: dataset output width %d does not match network output %d",
			dataset.OutputSize(), n.outputSize)
	}

	loss := cfg.Loss
	if loss == nil {
		loss = MSELoss{}
	}

	var rng *rand.Rand
	if cfg.Shuffle {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	inW, outW := dataset.InputSize(), dataset.OutputSize()
	numBatches := dataset.NumBatches(cfg.BatchSize)
	gradBuf := make([]float32, n.outputSize)
	losses := make([]float32, 0, cfg.Epochs)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if cfg.Shuffle {
			dataset.Shuffle(rng)
		}

		var epochLoss float64
		seen := 0
		for b := 0; b < numBatches; b++ {
			inputs, targets := dataset.Batch(b, cfg.BatchSize)
			batchSamples := len(inputs) / inW
			if batchSamples == 0 {
				continue
			}

			n.ClearGradients()
			for s := 0; s < batchSamples; s++ {
				in := inputs[s*inW : (s+1)*inW]
				target := targets[s*outW : (s+1)*outW]

				// prediction is a scratch-buffer view; it is consumed
				// before Backward reuses the buffers
				prediction := n.forward(in)
				epochLoss += float64(loss.Compute(prediction, target))
				loss.Gradient(prediction, target, gradBuf)
				n.Backward(gradBuf)
			}

			n.ScaleGradients(1 / float32(batchSamples))
			for _, l := range n.layers {
				optimizer.Step(l)
			}
			seen += batchSamples
		}

		mean := float32(epochLoss / float64(seen))
		losses = append(losses, mean)
		if cfg.Progress != nil {
			cfg.Progress(epoch, mean)
		}
	}

	return losses, nil
}

// Builder assembles a network layer by layer from a single random source,
// so one seed makes the whole network's initialization reproducible.
//
//	net := nn.NewBuilder(42).
//	    Dense(nn.ReLU{}, 2, 4).
//	    Dense(nn.Sigmoid{}, 4, 1).
//	    Build()
type Builder struct {
	rng    *rand.Rand
	layers []Layer
}

// NewBuilder creates a builder whose layers draw their initial weights
// from a source seeded with seed.
func NewBuilder(seed int64) *Builder {
	return &Builder{rng: rand.New(rand.NewSource(seed))}
}

// Dense appends a fully connected layer and returns the builder for
// chaining.
func (b *Builder) Dense(activation Activation, inputSize, outputSize int) *Builder {
	b.layers = append(b.layers, NewDense(activation, inputSize, outputSize, b.rng))
	return b
}

// Add appends an already-constructed layer and returns the builder for
// chaining.
func (b *Builder) Add(layer Layer) *Builder {
	b.layers = append(b.layers, layer)
	return b
}

// Build validates the layer chain and returns the finished network.
// Panics, like NewNetwork, if the chain is empty or does not compose.
func (b *Builder) Build() *Network {
	return NewNetwork(b.layers...)
}
