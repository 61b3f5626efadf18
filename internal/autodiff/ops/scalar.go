package ops

import "github.com/Ivisayanel/giagrad/internal/tensor"

// scalarOp is the shared node layout for tensor-scalar operations. The
// scalar constant is stored on the node because only tensor inputs appear
// in the graph.
type scalarOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	scalar float64
}

// Inputs returns the single tensor input.
func (op *scalarOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *scalarOp) Output() *tensor.RawTensor {
	return op.output
}

// AddScalarOp represents output = a + s.
type AddScalarOp struct{ scalarOp }

// NewAddScalarOp creates a new AddScalarOp.
func NewAddScalarOp(a *tensor.RawTensor, scalar float64, output *tensor.RawTensor) *AddScalarOp {
	return &AddScalarOp{scalarOp{input: a, output: output, scalar: scalar}}
}

// Backward passes the gradient through unchanged.
func (op *AddScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad.Clone()}
}

func (op *AddScalarOp) String() string { return "add_scalar" }

// SubScalarOp represents output = a - s.
type SubScalarOp struct{ scalarOp }

// NewSubScalarOp creates a new SubScalarOp.
func NewSubScalarOp(a *tensor.RawTensor, scalar float64, output *tensor.RawTensor) *SubScalarOp {
	return &SubScalarOp{scalarOp{input: a, output: output, scalar: scalar}}
}

// Backward passes the gradient through unchanged.
func (op *SubScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad.Clone()}
}

func (op *SubScalarOp) String() string { return "sub_scalar" }

// MulScalarOp represents output = a * s.
type MulScalarOp struct{ scalarOp }

// NewMulScalarOp creates a new MulScalarOp.
func NewMulScalarOp(a *tensor.RawTensor, scalar float64, output *tensor.RawTensor) *MulScalarOp {
	return &MulScalarOp{scalarOp{input: a, output: output, scalar: scalar}}
}

// Backward computes grad_a = outputGrad * s.
func (op *MulScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.scalar)}
}

func (op *MulScalarOp) String() string { return "mul_scalar" }

// DivScalarOp represents output = a / s.
type DivScalarOp struct{ scalarOp }

// NewDivScalarOp creates a new DivScalarOp.
func NewDivScalarOp(a *tensor.RawTensor, scalar float64, output *tensor.RawTensor) *DivScalarOp {
	return &DivScalarOp{scalarOp{input: a, output: output, scalar: scalar}}
}

// Backward computes grad_a = outputGrad / s.
func (op *DivScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.DivScalar(outputGrad, op.scalar)}
}

func (op *DivScalarOp) String() string { return "div_scalar" }

// PowScalarOp represents output = a ^ s for a constant exponent.
//
// Backward: d(a^s)/da = s * a^(s-1).
type PowScalarOp struct{ scalarOp }

// NewPowScalarOp creates a new PowScalarOp.
func NewPowScalarOp(a *tensor.RawTensor, scalar float64, output *tensor.RawTensor) *PowScalarOp {
	return &PowScalarOp{scalarOp{input: a, output: output, scalar: scalar}}
}

// Backward computes grad_a = outputGrad * s * a^(s-1).
func (op *PowScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grad := backend.MulScalar(backend.PowScalar(op.input, op.scalar-1), op.scalar)
	return []*tensor.RawTensor{backend.Mul(outputGrad, grad)}
}

func (op *PowScalarOp) String() string { return "pow_scalar" }
