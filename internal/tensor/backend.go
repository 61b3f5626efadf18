package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations; the autodiff
// backend decorates another Backend and records operations for the backward
// pass.
type Backend interface {
	// Element-wise binary operations (with NumPy-style broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor
	Pow(a, b *RawTensor) *RawTensor

	// Matrix operations
	MatMul(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	SubScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	DivScalar(x *RawTensor, scalar float64) *RawTensor
	PowScalar(x *RawTensor, scalar float64) *RawTensor

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor        // exponential
	Log(x *RawTensor) *RawTensor        // natural logarithm
	Sqrt(x *RawTensor) *RawTensor       // square root
	Square(x *RawTensor) *RawTensor     // x*x
	Reciprocal(x *RawTensor) *RawTensor // 1/x
	Abs(x *RawTensor) *RawTensor        // absolute value
	Neg(x *RawTensor) *RawTensor        // -x
	ReLU(x *RawTensor) *RawTensor       // max(0, x)

	// Full reductions (scalar result, shape {})
	Sum(x *RawTensor) *RawTensor
	Mean(x *RawTensor) *RawTensor
	Max(x *RawTensor) *RawTensor
	Min(x *RawTensor) *RawTensor

	// SumDim sums along a dimension. Used by broadcast gradient reduction.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
