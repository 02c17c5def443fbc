package nn

import "fmt"

// Loss scores a prediction against a target and produces the gradient of
// that score in output space.
type Loss interface {
	// Compute returns the scalar loss for one prediction/target pair.
	// Panics if the lengths differ.
	Compute(prediction, target []float32) float32

	// Gradient writes d(loss)/d(prediction) into gradOut. Panics if the
	// lengths differ or gradOut is not the same length as prediction.
	Gradient(prediction, target, gradOut []float32)
}

// MSELoss computes mean squared error.
//
//	Compute  = Σ (prediction[i]-target[i])² / n
//	Gradient = (2/n)·(prediction[i]-target[i])
//
// MSELoss is stateless and safe to share.
type MSELoss struct{}

// Compute returns the mean squared error between prediction and target.
//
// The reduction runs eight elements per iteration over four independent
// accumulators with a scalar remainder loop; this only changes the
// association order of the float sum, not the contract.
func (MSELoss) Compute(prediction, target []float32) float32 {
	if len(prediction) != len(target) {
		panic(fmt.Sprintf("MSELoss.Compute: length mismatch %d vs %d", len(prediction), len(target)))
	}

	n := len(prediction)
	var s0, s1, s2, s3 float32
	i := 0
	for ; i+8 <= n; i += 8 {
		d0 := prediction[i] - target[i]
		d1 := prediction[i+1] - target[i+1]
		d2 := prediction[i+2] - target[i+2]
		d3 := prediction[i+3] - target[i+3]
		d4 := prediction[i+4] - target[i+4]
		d5 := prediction[i+5] - target[i+5]
		d6 := prediction[i+6] - target[i+6]
		d7 := prediction[i+7] - target[i+7]
		s0 += d0*d0 + d4*d4
		s1 += d1*d1 + d5*d5
		s2 += d2*d2 + d6*d6
		s3 += d3*d3 + d7*d7
	}
	sum := s0 + s1 + s2 + s3
	for ; i < n; i++ {
		d := prediction[i] - target[i]
		sum += d * d
	}
	return sum / float32(n)
}

// Gradient writes (2/n)·(prediction[i]-target[i]) into gradOut.
func (MSELoss) Gradient(prediction, target, gradOut []float32) {
	if len(prediction) != len(target) {
		panic(fmt.Sprintf("MSELoss.Gradient: length mismatch %d vs %d", len(prediction), len(target)))
	}
	if len(gradOut) != len(prediction) {
		panic(fmt.Sprintf("MSELoss.Gradient: gradient buffer length %d, want %d", len(gradOut), len(prediction)))
	}

	invN := 2 / float32(len(prediction))
	for i := range prediction {
		gradOut[i] = invN * (prediction[i] - target[i])
	}
}
