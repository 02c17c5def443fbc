// Copyright 2025 FFNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward neural network building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Dense (fully connected)
//   - Activations: Identity, ReLU, Sigmoid, Tanh
//   - Loss functions: MSELoss
//   - Network: validated layer stack with Predict and Fit
//   - Builder: seeded, fluent network construction
//
// # Basic Usage
//
//	import (
//	    "github.com/ffnet-ml/ffnet/data"
//	    "github.com/ffnet-ml/ffnet/nn"
//	    "github.com/ffnet-ml/ffnet/optim"
//	)
//
//	func main() {
//	    net := nn.NewBuilder(42).
//	        Dense(nn.ReLU{}, 2, 4).
//	        Dense(nn.Sigmoid{}, 4, 1).
//	        Build()
//
//	    cfg := nn.DefaultFitConfig()
//	    cfg.Epochs = 100
//	    losses, err := net.Fit(dataset, optim.NewSGD(optim.SGDConfig{LR: 0.1}), cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out := net.Predict([]float32{0.5, -0.2})
//	}
//
// # Error Surface
//
// Shape mismatches, invalid batch parameters, and non-composing layer
// chains are programmer errors and panic immediately with a descriptive
// message. Fit validates its configuration against the dataset and network
// up front and returns an error before touching any parameters.
package nn
