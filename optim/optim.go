// Copyright 2025 FFNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/ffnet-ml/ffnet/internal/optim"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer = optim.Optimizer

// SGD represents plain stochastic gradient descent.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
