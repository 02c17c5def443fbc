// Package optim implements parameter-update rules for training networks.
//
// An optimizer consumes the gradients a layer accumulated over one batch
// and mutates the layer's parameters in place. The usual cycle, driven by
// Network.Fit:
//
//	layer.ClearGradients()
//	// ... per-sample forward/backward ...
//	layer.ScaleGradients(1 / float32(batchSize))
//	optimizer.Step(layer)
package optim

import "github.com/ffnet-ml/ffnet/internal/nn"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one parameter update to the layer from its accumulated
	// gradients, mutating the parameters in place.
	Step(layer nn.Layer)

	// GetLR returns the current learning rate.
	GetLR() float32

	// SetLR updates the learning rate. Useful for scheduling.
	SetLR(lr float32)
}
