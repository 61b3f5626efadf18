package ops

import "github.com/Ivisayanel/giagrad/internal/tensor"

// unaryOp is the shared node layout for single-input operations.
type unaryOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
}

// Inputs returns the single input tensor.
func (op *unaryOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *unaryOp) Output() *tensor.RawTensor {
	return op.output
}

// ExpOp represents element-wise exponential: output = exp(a).
//
// Backward: d(exp(a))/da = exp(a), so grad_a = outputGrad * output.
type ExpOp struct{ unaryOp }

// NewExpOp creates a new ExpOp.
func NewExpOp(a, output *tensor.RawTensor) *ExpOp {
	return &ExpOp{unaryOp{input: a, output: output}}
}

// Backward reuses the forward output: grad_a = outputGrad * exp(a).
func (op *ExpOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, op.output)}
}

func (op *ExpOp) String() string { return "exp" }

// LogOp represents the element-wise natural logarithm: output = ln(a).
//
// Backward: d(ln(a))/da = 1/a, so grad_a = outputGrad / a.
type LogOp struct{ unaryOp }

// NewLogOp creates a new LogOp.
func NewLogOp(a, output *tensor.RawTensor) *LogOp {
	return &LogOp{unaryOp{input: a, output: output}}
}

// Backward computes grad_a = outputGrad / a.
func (op *LogOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Div(outputGrad, op.input)}
}

func (op *LogOp) String() string { return "log" }

// SqrtOp represents the element-wise square root.
//
// Backward: d(sqrt(a))/da = 1/(2*sqrt(a)), reusing the forward output.
type SqrtOp struct{ unaryOp }

// NewSqrtOp creates a new SqrtOp.
func NewSqrtOp(a, output *tensor.RawTensor) *SqrtOp {
	return &SqrtOp{unaryOp{input: a, output: output}}
}

// Backward computes grad_a = outputGrad / (2 * sqrt(a)).
func (op *SqrtOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Div(outputGrad, backend.MulScalar(op.output, 2))}
}

func (op *SqrtOp) String() string { return "sqrt" }

// SquareOp represents element-wise squaring: output = a².
//
// Backward: grad_a = outputGrad * 2a.
type SquareOp struct{ unaryOp }

// NewSquareOp creates a new SquareOp.
func NewSquareOp(a, output *tensor.RawTensor) *SquareOp {
	return &SquareOp{unaryOp{input: a, output: output}}
}

// Backward computes grad_a = outputGrad * 2a.
func (op *SquareOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, backend.MulScalar(op.input, 2))}
}

func (op *SquareOp) String() string { return "square" }

// ReciprocalOp represents element-wise inversion: output = 1/a.
//
// Backward: d(1/a)/da = -1/a² = -output², so grad_a = -outputGrad * output².
type ReciprocalOp struct{ unaryOp }

// NewReciprocalOp creates a new ReciprocalOp.
func NewReciprocalOp(a, output *tensor.RawTensor) *ReciprocalOp {
	return &ReciprocalOp{unaryOp{input: a, output: output}}
}

// Backward computes grad_a = -outputGrad * output².
func (op *ReciprocalOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Neg(backend.Mul(outputGrad, backend.Square(op.output)))}
}

func (op *ReciprocalOp) String() string { return "reciprocal" }

// AbsOp represents element-wise absolute value.
//
// Backward: grad_a = outputGrad * sign(a). The subgradient at 0 is 0.
type AbsOp struct{ unaryOp }

// NewAbsOp creates a new AbsOp.
func NewAbsOp(a, output *tensor.RawTensor) *AbsOp {
	return &AbsOp{unaryOp{input: a, output: output}}
}

// Backward computes grad_a = outputGrad * sign(a).
func (op *AbsOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, signOf(op.input))}
}

func (op *AbsOp) String() string { return "abs" }

// NegOp represents element-wise negation: output = -a.
type NegOp struct{ unaryOp }

// NewNegOp creates a new NegOp.
func NewNegOp(a, output *tensor.RawTensor) *NegOp {
	return &NegOp{unaryOp{input: a, output: output}}
}

// Backward computes grad_a = -outputGrad.
func (op *NegOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Neg(outputGrad)}
}

func (op *NegOp) String() string { return "neg" }

// ReLUOp represents the rectified linear unit: output = max(0, a).
//
// Backward: grad_a = outputGrad where a > 0, else 0.
type ReLUOp struct{ unaryOp }

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(a, output *tensor.RawTensor) *ReLUOp {
	return &ReLUOp{unaryOp{input: a, output: output}}
}

// Backward masks the gradient to positions where the input was positive.
func (op *ReLUOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Mul(outputGrad, positiveMask(op.input))}
}

func (op *ReLUOp) String() string { return "relu" }
