// Copyright 2025 FFNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training networks.
//
// # Basic Usage
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	losses, err := net.Fit(dataset, optimizer, nn.DefaultFitConfig())
package optim
