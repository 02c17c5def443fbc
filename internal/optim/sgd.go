package optim

import (
	"fmt"

	"github.com/ffnet-ml/ffnet/internal/nn"
)

// SGD implements plain stochastic gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// No momentum, no weight decay; the learning rate is the only state. A
// learning rate of zero is valid and leaves parameters untouched.
type SGD struct {
	lr float32
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float32 // learning rate; zero is honored, not defaulted
}

// NewSGD creates an SGD optimizer. Panics if the learning rate is
// negative.
func NewSGD(config SGDConfig) *SGD {
	if config.LR < 0 {
		panic(fmt.Sprintf("optim.NewSGD: learning rate must be >= 0, got %g", config.LR))
	}
	return &SGD{lr: config.LR}
}

// Step applies param -= lr * grad across the layer's flat parameter
// buffer, covering weights and biases alike.
func (s *SGD) Step(layer nn.Layer) {
	params := layer.Params()
	grads := layer.Grads()
	for i, g := range grads {
		params[i] -= s.lr * g
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 { return s.lr }

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float32) { s.lr = lr }
