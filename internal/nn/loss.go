package nn

import (
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// MSELoss computes mean squared error: mean((predictions - targets)²).
//
// The loss is built from differentiable tensor operations, so it records on
// the tape and gradients flow back to the predictions.
type MSELoss[B tensor.Backend] struct{}

// NewMSELoss creates an MSE loss function.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return &MSELoss[B]{}
}

// Forward computes the scalar loss mean((predictions - targets)²).
func (m *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic("MSELoss: predictions and targets must have the same shape")
	}

	diff := predictions.Sub(targets)
	return diff.Square().Mean()
}

// Parameters returns nil; loss functions have no trainable parameters.
func (m *MSELoss[B]) Parameters() []*Parameter[B] {
	return nil
}
