// Copyright 2025 FFNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import "github.com/ffnet-ml/ffnet/internal/data"

// Dataset owns a growable collection of fixed-width samples and hands out
// mini-batches in a shuffled order.
type Dataset = data.Dataset

// New creates an empty dataset with the given per-sample input and output
// widths.
func New(inputSize, outputSize int) *Dataset {
	return data.New(inputSize, outputSize)
}
