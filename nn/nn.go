// Copyright 2025 FFNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/ffnet-ml/ffnet/internal/nn"
)

// Layer is the uniform forward/backward capability every network layer
// implements.
type Layer = nn.Layer

// Activation is a stateless element-wise nonlinearity with a derivative
// expressed in terms of the computed output.
type Activation = nn.Activation

// Activations.
type (
	// Identity is the no-op activation.
	Identity = nn.Identity
	// ReLU is the rectified linear unit activation.
	ReLU = nn.ReLU
	// Sigmoid is the logistic activation.
	Sigmoid = nn.Sigmoid
	// Tanh is the hyperbolic tangent activation.
	Tanh = nn.Tanh
)

// ActivationByName resolves a config-file activation name.
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Dense represents a fully connected layer.
type Dense = nn.Dense

// NewDense creates a fully connected layer with Xavier initialization
// drawn from the injected random source.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewDense(nn.ReLU{}, 784, 128, rng)
func NewDense(activation Activation, inputSize, outputSize int, rng *rand.Rand) *Dense {
	return nn.NewDense(activation, inputSize, outputSize, rng)
}

// Loss scores a prediction against a target.
type Loss = nn.Loss

// MSELoss computes mean squared error.
type MSELoss = nn.MSELoss

// Network is an ordered, fixed sequence of layers.
type Network = nn.Network

// NewNetwork creates a network from an ordered list of layers, validating
// that consecutive layer shapes compose.
func NewNetwork(layers ...Layer) *Network {
	return nn.NewNetwork(layers...)
}

// Builder assembles a network layer by layer from a single seeded random
// source.
type Builder = nn.Builder

// NewBuilder creates a builder seeded with seed.
//
// Example:
//
//	net := nn.NewBuilder(42).
//	    Dense(nn.ReLU{}, 2, 4).
//	    Dense(nn.Sigmoid{}, 4, 1).
//	    Build()
func NewBuilder(seed int64) *Builder {
	return nn.NewBuilder(seed)
}

// FitConfig holds the knobs for a training run.
type FitConfig = nn.FitConfig

// DefaultFitConfig returns standard training hyperparameters.
func DefaultFitConfig() FitConfig {
	return nn.DefaultFitConfig()
}

// Optimizer is the capability Fit needs from an optimization algorithm.
type Optimizer = nn.Optimizer

// XavierFill fills dst with Xavier (Glorot) uniform values.
func XavierFill(dst []float32, fanIn, fanOut int, rng *rand.Rand) {
	nn.XavierFill(dst, fanIn, fanOut, rng)
}
