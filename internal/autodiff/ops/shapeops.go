package ops

import "github.com/Ivisayanel/giagrad/internal/tensor"

// ReshapeOp represents a shape change that preserves element order.
//
// Backward: reshape the gradient back to the input shape.
type ReshapeOp struct{ unaryOp }

// NewReshapeOp creates a new ReshapeOp.
func NewReshapeOp(a, output *tensor.RawTensor) *ReshapeOp {
	return &ReshapeOp{unaryOp{input: a, output: output}}
}

// Backward restores the gradient to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.input.Shape())}
}

func (op *ReshapeOp) String() string { return "reshape" }

// TransposeOp represents an axes permutation.
//
// Backward: apply the inverse permutation to the gradient.
type TransposeOp struct {
	unaryOp
	axes []int // permutation applied in the forward pass
}

// NewTransposeOp creates a new TransposeOp. axes must hold the resolved
// permutation (reversed axes when the caller passed none).
func NewTransposeOp(a *tensor.RawTensor, axes []int, output *tensor.RawTensor) *TransposeOp {
	return &TransposeOp{unaryOp: unaryOp{input: a, output: output}, axes: axes}
}

// Backward applies the inverse axes permutation to the gradient.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inverse := make([]int, len(op.axes))
	for i, axis := range op.axes {
		inverse[axis] = i
	}
	return []*tensor.RawTensor{backend.Transpose(outputGrad, inverse...)}
}

func (op *TransposeOp) String() string { return "transpose" }
