package nn

import (
	"math"
	"math/rand"
)

// XavierFill fills dst with Xavier (Glorot) uniform values.
//
// Values are drawn from U(-limit, limit) with limit = sqrt(6/(fanIn+fanOut)).
// This keeps the variance of activations roughly stable across layers, which
// stabilizes early training.
//
// The random source is injected so that a single seed makes an entire
// network's initialization reproducible.
func XavierFill(dst []float32, fanIn, fanOut int, rng *rand.Rand) {
	limit := math.Sqrt(6.0 / float64(fanIn+fanOut))
	for i := range dst {
		dst[i] = float32((rng.Float64()*2 - 1) * limit)
	}
}
