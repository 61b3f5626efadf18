// Package autodiff implements reverse-mode automatic differentiation using
// the decorator pattern.
//
// Backend wraps any tensor.Backend and adds gradient tracking through a
// GradientTape: every differentiable operation is forwarded to the wrapped
// backend and recorded as an ops.Operation node. Walking the tape in reverse
// applies the chain rule and accumulates gradients per input tensor.
//
// Usage:
//
//	ad := autodiff.New(cpu.New())
//	ad.Tape().StartRecording()
//
//	x := tensor.FromSlice([]float32{2}, tensor.Shape{1}, ad)
//	y := x.Mul(x)
//
//	grads := autodiff.Backward(y, ad)
//	fmt.Println(grads[x.Raw()]) // dy/dx = 2x = 4
package autodiff

import (
	"github.com/Ivisayanel/giagrad/internal/autodiff/ops"
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// Backend wraps a compute backend and records operations on a GradientTape.
// It implements tensor.Backend, so tensors built on it participate in
// gradient tracking transparently.
type Backend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New creates an autodiff Backend wrapping the given compute backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return &Backend[B]{
		inner: backend,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for manual control: starting and stopping
// recording, clearing between iterations, or exporting the recorded graph.
func (b *Backend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped backend for direct access.
func (b *Backend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name.
func (b *Backend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the compute device.
func (b *Backend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// NoGrad runs fn with recording suspended and restores the previous
// recording state afterwards. Calls may nest.
func (b *Backend[B]) NoGrad(fn func()) {
	wasRecording := b.tape.IsRecording()
	b.tape.StopRecording()
	defer func() {
		if wasRecording {
			b.tape.StartRecording()
		}
	}()
	fn()
}

// Add performs element-wise addition and records the operation.
func (b *Backend[B]) Add(a, c *tensor.RawTensor) *tensor.RawTensor {
	// Inputs must survive the forward pass unmodified: the recorded graph
	// references them, so inplace optimizations in the wrapped backend are
	// suppressed by making the buffers appear shared.
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Add(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewAddOp(a, c, result))
	}

	return result
}

// Sub performs element-wise subtraction and records the operation.
func (b *Backend[B]) Sub(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Sub(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSubOp(a, c, result))
	}

	return result
}

// Mul performs element-wise multiplication and records the operation.
func (b *Backend[B]) Mul(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Mul(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMulOp(a, c, result))
	}

	return result
}

// Div performs element-wise division and records the operation.
func (b *Backend[B]) Div(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Div(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewDivOp(a, c, result))
	}

	return result
}

// Pow performs element-wise exponentiation and records the operation.
func (b *Backend[B]) Pow(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.Pow(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewPowOp(a, c, result))
	}

	return result
}

// MatMul performs matrix multiplication and records the operation.
func (b *Backend[B]) MatMul(a, c *tensor.RawTensor) *tensor.RawTensor {
	defer a.ForceNonUnique()()
	defer c.ForceNonUnique()()

	result := b.inner.MatMul(a, c)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMatMulOp(a, c, result))
	}

	return result
}

// AddScalar adds a scalar element-wise and records the operation.
func (b *Backend[B]) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.AddScalar(x, scalar)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewAddScalarOp(x, scalar, result))
	}

	return result
}

// SubScalar subtracts a scalar element-wise and records the operation.
func (b *Backend[B]) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.SubScalar(x, scalar)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSubScalarOp(x, scalar, result))
	}

	return result
}

// MulScalar multiplies by a scalar element-wise and records the operation.
func (b *Backend[B]) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.MulScalar(x, scalar)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMulScalarOp(x, scalar, result))
	}

	return result
}

// DivScalar divides by a scalar element-wise and records the operation.
func (b *Backend[B]) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.DivScalar(x, scalar)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewDivScalarOp(x, scalar, result))
	}

	return result
}

// PowScalar raises to a scalar power element-wise and records the operation.
func (b *Backend[B]) PowScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.PowScalar(x, scalar)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewPowScalarOp(x, scalar, result))
	}

	return result
}

// Exp computes the element-wise exponential and records the operation.
func (b *Backend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Exp(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewExpOp(x, result))
	}

	return result
}

// Log computes the element-wise natural logarithm and records the operation.
func (b *Backend[B]) Log(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Log(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewLogOp(x, result))
	}

	return result
}

// Sqrt computes the element-wise square root and records the operation.
func (b *Backend[B]) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Sqrt(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSqrtOp(x, result))
	}

	return result
}

// Square computes the element-wise square and records the operation.
func (b *Backend[B]) Square(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Square(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSquareOp(x, result))
	}

	return result
}

// Reciprocal computes the element-wise inverse and records the operation.
func (b *Backend[B]) Reciprocal(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Reciprocal(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewReciprocalOp(x, result))
	}

	return result
}

// Abs computes the element-wise absolute value and records the operation.
func (b *Backend[B]) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Abs(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewAbsOp(x, result))
	}

	return result
}

// Neg computes the element-wise negation and records the operation.
func (b *Backend[B]) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Neg(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewNegOp(x, result))
	}

	return result
}

// ReLU applies the rectified linear unit and records the operation.
func (b *Backend[B]) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.ReLU(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewReLUOp(x, result))
	}

	return result
}

// Sum reduces to the scalar sum and records the operation.
func (b *Backend[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Sum(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSumOp(x, result))
	}

	return result
}

// Mean reduces to the scalar mean and records the operation.
func (b *Backend[B]) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Mean(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMeanOp(x, result))
	}

	return result
}

// Max reduces to the scalar maximum and records the operation.
func (b *Backend[B]) Max(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Max(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMaxOp(x, result))
	}

	return result
}

// Min reduces to the scalar minimum and records the operation.
func (b *Backend[B]) Min(x *tensor.RawTensor) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	result := b.inner.Min(x)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMinOp(x, result))
	}

	return result
}

// SumDim sums along a dimension and records the operation.
func (b *Backend[B]) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	defer x.ForceNonUnique()()

	if dim < 0 {
		dim += len(x.Shape())
	}

	result := b.inner.SumDim(x, dim, keepDim)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSumDimOp(x, dim, keepDim, result))
	}

	return result
}

// Reshape changes the tensor shape and records the operation.
//
// Reshape must be recorded: without a node on the tape, gradients computed
// for the reshaped tensor never reach the original one.
func (b *Backend[B]) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	result := b.inner.Reshape(t, newShape)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewReshapeOp(t, result))
	}

	return result
}

// Transpose permutes tensor axes and records the operation.
//
// Transpose is recorded even though it is conceptually a view: the wrapped
// backend materializes a new tensor, and gradients for that new tensor must
// flow back to the original through the inverse permutation.
func (b *Backend[B]) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	defer t.ForceNonUnique()()

	// Resolve the default permutation here so the recorded node always
	// knows the exact axes to invert.
	ndim := len(t.Shape())
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	result := b.inner.Transpose(t, axes...)

	if b.tape.IsRecording() {
		b.tape.Record(ops.NewTransposeOp(t, axes, result))
	}

	return result
}
