// Package data provides sample storage and mini-batch extraction for
// training.
package data

import (
	"fmt"
	"math/rand"
)

// Dataset owns a growable collection of fixed-width samples and hands out
// mini-batches in a shuffled order.
//
// Inputs and outputs are flat row-major buffers of numSamples·InputSize and
// numSamples·OutputSize values. Shuffling permutes only the index vector;
// the underlying rows never move. Batch gathers samples into internal
// scratch buffers that are grown as needed and never shrunk, so repeated
// batching does not allocate.
//
// Dataset is not safe for concurrent use.
type Dataset struct {
	inputSize  int
	outputSize int

	inputs     []float32
	outputs    []float32
	indices    []int
	numSamples int

	// batch gather scratch, reused across Batch calls
	batchInputs  []float32
	batchOutputs []float32
}

// New creates an empty dataset with the given per-sample input and output
// widths. Panics if either width is not positive.
func New(inputSize, outputSize int) *Dataset {
	if inputSize <= 0 || outputSize <= 0 {
		panic(fmt.Sprintf("data.New: sizes must be positive, got %dx%d", inputSize, outputSize))
	}
	return &Dataset{inputSize: inputSize, outputSize: outputSize}
}

// InputSize returns the per-sample input width.
func (d *Dataset) InputSize() int { return d.inputSize }

// OutputSize returns the per-sample output width.
func (d *Dataset) OutputSize() int { return d.outputSize }

// NumSamples returns the number of samples added so far.
func (d *Dataset) NumSamples() int { return d.numSamples }

// Reserve pre-allocates storage for the expected number of samples.
func (d *Dataset) Reserve(expectedSamples int) {
	if cap(d.inputs) < expectedSamples*d.inputSize {
		d.inputs = append(make([]float32, 0, expectedSamples*d.inputSize), d.inputs...)
	}
	if cap(d.outputs) < expectedSamples*d.outputSize {
		d.outputs = append(make([]float32, 0, expectedSamples*d.outputSize), d.outputs...)
	}
	if cap(d.indices) < expectedSamples {
		d.indices = append(make([]int, 0, expectedSamples), d.indices...)
	}
}

// AddSample appends one sample. The slices are copied, not retained.
// Panics if either length does not match the configured widths.
func (d *Dataset) AddSample(input, output []float32) {
	if len(input) != d.inputSize {
		panic(fmt.Sprintf("Dataset.AddSample: input length %d, want %d", len(input), d.inputSize))
	}
	if len(output) != d.outputSize {
		panic(fmt.Sprintf("Dataset.AddSample: output length %d, want %d", len(output), d.outputSize))
	}

	d.inputs = append(d.inputs, input...)
	d.outputs = append(d.outputs, output...)
	d.indices = append(d.indices, d.numSamples)
	d.numSamples++
}

// Shuffle permutes the sample order used by Batch. The permutation is drawn
// from rng, so a seeded source gives a reproducible order; a nil rng falls
// back to the package-global source.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		d.indices[i], d.indices[j] = d.indices[j], d.indices[i]
	}
	if rng != nil {
		rng.Shuffle(len(d.indices), swap)
	} else {
		rand.Shuffle(len(d.indices), swap)
	}
}

// Indices returns the current sample permutation. The slice is the
// dataset's own; callers must not modify it.
func (d *Dataset) Indices() []int { return d.indices }

// NumBatches returns ceil(numSamples/batchSize). Panics if batchSize is
// not positive.
func (d *Dataset) NumBatches(batchSize int) int {
	if batchSize <= 0 {
		panic(fmt.Sprintf("Dataset.NumBatches: batch size must be positive, got %d", batchSize))
	}
	return (d.numSamples + batchSize - 1) / batchSize
}

// Batch gathers the batchIndex'th batch of min(batchSize, remaining)
// samples, in the current permutation order, into reusable scratch storage
// and returns flat row-major views of it.
//
// The returned slices alias internal scratch buffers: they are valid until
// the next Batch call and must not be written to. Panics if batchSize is
// not positive or batchIndex is out of range.
func (d *Dataset) Batch(batchIndex, batchSize int) (inputs, outputs []float32) {
	if batchSize <= 0 {
		panic(fmt.Sprintf("Dataset.Batch: batch size must be positive, got %d", batchSize))
	}
	if batchIndex < 0 || batchIndex >= d.NumBatches(batchSize) {
		panic(fmt.Sprintf("Dataset.Batch: batch index %d out of range for %d batches", batchIndex, d.NumBatches(batchSize)))
	}

	start := batchIndex * batchSize
	end := start + batchSize
	if end > d.numSamples {
		end = d.numSamples
	}
	actual := end - start

	wantInputs := actual * d.inputSize
	wantOutputs := actual * d.outputSize
	if cap(d.batchInputs) < wantInputs {
		d.batchInputs = make([]float32, wantInputs)
	}
	if cap(d.batchOutputs) < wantOutputs {
		d.batchOutputs = make([]float32, wantOutputs)
	}
	d.batchInputs = d.batchInputs[:wantInputs]
	d.batchOutputs = d.batchOutputs[:wantOutputs]

	for i := 0; i < actual; i++ {
		sample := d.indices[start+i]
		copy(d.batchInputs[i*d.inputSize:(i+1)*d.inputSize],
			d.inputs[sample*d.inputSize:(sample+1)*d.inputSize])
		copy(d.batchOutputs[i*d.outputSize:(i+1)*d.outputSize],
			d.outputs[sample*d.outputSize:(sample+1)*d.outputSize])
	}
	return d.batchInputs, d.batchOutputs
}

// Input returns the stored input row for the sample at the given insertion
// index. The view must not be modified.
func (d *Dataset) Input(sample int) []float32 {
	return d.inputs[sample*d.inputSize : (sample+1)*d.inputSize]
}

// Output returns the stored output row for the sample at the given
// insertion index. The view must not be modified.
func (d *Dataset) Output(sample int) []float32 {
	return d.outputs[sample*d.outputSize : (sample+1)*d.outputSize]
}
