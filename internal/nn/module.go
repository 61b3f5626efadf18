// Package nn implements neural network building blocks on top of the tensor
// and autodiff layers.
//
// Provided components:
//   - Module interface: common contract for all layers
//   - Parameter: trainable tensor with gradient tracking
//   - Linear: fully connected layer
//   - ReLU: rectified linear activation
//   - Sequential: container for stacking layers
//   - MSELoss: mean squared error
//
// Layers operate on float32 tensors, the working precision for training.
package nn

import (
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules compose into larger architectures:
//
//	model := nn.NewSequential[B](
//	    nn.NewLinear(4, 16, backend),
//	    nn.NewReLU[B](),
//	    nn.NewLinear(16, 1, backend),
//	)
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module,
	// including those of nested modules. Modules without trainable
	// parameters return an empty slice.
	Parameters() []*Parameter[B]
}
