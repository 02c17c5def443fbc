package nn

import (
	"fmt"
	"math"
)

// Activation is a stateless element-wise nonlinearity.
//
// Derivative is expressed in terms of the already-computed output y, not
// the pre-activation sum. This is what lets a layer run its backward pass
// from the cached forward output alone: sigmoid' = y(1-y), tanh' = 1-y²,
// relu' = 1 for y > 0.
type Activation interface {
	// Compute applies the nonlinearity to the weighted sum x.
	Compute(x float32) float32

	// Derivative returns d(activation)/dx given the activation output y.
	Derivative(y float32) float32
}

// Identity is the no-op activation: f(x) = x.
//
// Useful for linear output layers in regression tasks.
type Identity struct{}

// Compute returns x unchanged.
func (Identity) Compute(x float32) float32 { return x }

// Derivative returns 1.
func (Identity) Derivative(_ float32) float32 { return 1 }

// Name returns the config name of this activation.
func (Identity) Name() string { return "identity" }

// ReLU is the Rectified Linear Unit activation: f(x) = max(0, x).
//
// ReLU is the most commonly used hidden-layer activation. It helps with
// the vanishing gradient problem and is cheap to compute.
type ReLU struct{}

// Compute returns max(0, x).
func (ReLU) Compute(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 for positive outputs, 0 otherwise.
func (ReLU) Derivative(y float32) float32 {
	if y > 0 {
		return 1
	}
	return 0
}

// Name returns the config name of this activation.
func (ReLU) Name() string { return "relu" }

// Sigmoid is the logistic activation: σ(x) = 1 / (1 + exp(-x)).
//
// Squashes values into (0, 1), making it the standard choice for binary
// classification output layers.
type Sigmoid struct{}

// Compute returns σ(x), saturating for |x| > 500 where exp would
// overflow float precision anyway.
func (Sigmoid) Compute(x float32) float32 {
	if x > 500 {
		return 1
	}
	if x < -500 {
		return 0
	}
	return float32(1 / (1 + math.Exp(float64(-x))))
}

// Derivative returns y(1-y).
func (Sigmoid) Derivative(y float32) float32 { return y * (1 - y) }

// Name returns the config name of this activation.
func (Sigmoid) Name() string { return "sigmoid" }

// Tanh is the hyperbolic tangent activation.
//
// Squashes values into (-1, 1); zero-centered, which can help training.
type Tanh struct{}

// Compute returns tanh(x).
func (Tanh) Compute(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

// Derivative returns 1-y².
func (Tanh) Derivative(y float32) float32 { return 1 - y*y }

// Name returns the config name of this activation.
func (Tanh) Name() string { return "tanh" }

// ActivationByName resolves a config-file activation name to its
// implementation. Recognized names: "identity", "relu", "sigmoid", "tanh".
func ActivationByName(name string) (Activation, error) {
	switch name {
	case "identity":
		return Identity{}, nil
	case "relu":
		return ReLU{}, nil
	case "sigmoid":
		return Sigmoid{}, nil
	case "tanh":
		return Tanh{}, nil
	default:
		return nil, fmt.Errorf("unknown activation %q", name)
	}
}
