// Copyright 2025 FFNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides sample storage and mini-batch extraction.
//
// # Basic Usage
//
//	dataset := data.New(2, 1)
//	dataset.AddSample([]float32{0.1, 0.7}, []float32{1})
//
//	rng := rand.New(rand.NewSource(42))
//	dataset.Shuffle(rng)
//	inputs, outputs := dataset.Batch(0, 32)
package data
