package nn

import (
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// Parameter is a trainable tensor in a neural network, typically a layer's
// weight or bias. The wrapped tensor is named and marked as requiring
// gradients, so backward passes attach to it and the graph export shows it
// under its parameter name.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
}

// NewParameter creates a trainable parameter from an initialized tensor.
// The tensor is marked with the parameter name and requires-grad flag.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	t.Named(name).RequireGrad()
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Grad returns the gradient tensor, or nil before the first backward pass.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.tensor.Grad()
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.tensor.SetGrad(grad)
}

// ZeroGrad clears the gradient. Call before each training iteration to
// avoid accumulating gradients across iterations.
func (p *Parameter[B]) ZeroGrad() {
	p.tensor.ZeroGrad()
}
