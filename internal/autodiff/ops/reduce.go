package ops

import (
	"fmt"

	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// SumOp represents full reduction: output = sum of all elements (0-D).
//
// Backward: every element contributed with weight 1, so the scalar output
// gradient is broadcast back to the input shape.
type SumOp struct{ unaryOp }

// NewSumOp creates a new SumOp.
func NewSumOp(a, output *tensor.RawTensor) *SumOp {
	return &SumOp{unaryOp{input: a, output: output}}
}

// Backward spreads the scalar gradient over the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	g := scalarValue(outputGrad)
	return []*tensor.RawTensor{spread(g, op.input.Shape(), op.input.DType(), op.input.Device())}
}

func (op *SumOp) String() string { return "sum" }

// MeanOp represents full reduction to the arithmetic mean (0-D).
//
// Backward: each element contributed with weight 1/N.
type MeanOp struct{ unaryOp }

// NewMeanOp creates a new MeanOp.
func NewMeanOp(a, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{unaryOp{input: a, output: output}}
}

// Backward spreads grad/N over the input shape.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	n := op.input.NumElements()
	g := scalarValue(outputGrad) / float64(n)
	return []*tensor.RawTensor{spread(g, op.input.Shape(), op.input.DType(), op.input.Device())}
}

func (op *MeanOp) String() string { return "mean" }

// SumDimOp represents reduction along a single dimension.
//
// Backward: the gradient is broadcast back along the reduced dimension.
type SumDimOp struct {
	unaryOp
	dim     int
	keepDim bool
}

// NewSumDimOp creates a new SumDimOp. dim must already be normalized
// (non-negative).
func NewSumDimOp(a *tensor.RawTensor, dim int, keepDim bool, output *tensor.RawTensor) *SumDimOp {
	return &SumDimOp{unaryOp: unaryOp{input: a, output: output}, dim: dim, keepDim: keepDim}
}

// Backward replicates the output gradient along the reduced dimension.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inShape := op.input.Shape()

	// Restore the reduced dimension as size 1 so broadcasting lines up,
	// then add to zeros of the input shape to materialize the expansion.
	grad := outputGrad
	if !op.keepDim {
		keep := inShape.Clone()
		keep[op.dim] = 1
		grad = backend.Reshape(grad, keep)
	}

	zeros, err := tensor.NewRaw(inShape, op.input.DType(), op.input.Device())
	if err != nil {
		panic(fmt.Sprintf("sum_dim backward: %v", err))
	}
	return []*tensor.RawTensor{backend.Add(zeros, grad)}
}

func (op *SumDimOp) String() string { return "sum_dim" }

// MaxOp represents full reduction to the maximum element (0-D).
//
// Backward: the gradient flows only to elements equal to the maximum.
// When several elements tie, the gradient is split evenly among them so
// the routed gradients still sum to the incoming gradient.
type MaxOp struct{ unaryOp }

// NewMaxOp creates a new MaxOp.
func NewMaxOp(a, output *tensor.RawTensor) *MaxOp {
	return &MaxOp{unaryOp{input: a, output: output}}
}

// Backward routes grad/ties to every position holding the maximum.
func (op *MaxOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{routeExtremum(op.input, op.output, outputGrad)}
}

func (op *MaxOp) String() string { return "max" }

// MinOp represents full reduction to the minimum element (0-D).
//
// Backward mirrors MaxOp: even split among tied minima.
type MinOp struct{ unaryOp }

// NewMinOp creates a new MinOp.
func NewMinOp(a, output *tensor.RawTensor) *MinOp {
	return &MinOp{unaryOp{input: a, output: output}}
}

// Backward routes grad/ties to every position holding the minimum.
func (op *MinOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{routeExtremum(op.input, op.output, outputGrad)}
}

func (op *MinOp) String() string { return "min" }

// routeExtremum builds the gradient of a max/min reduction: grad/count at
// every input position equal to the extremum value, zero elsewhere.
func routeExtremum(input, extremum, outputGrad *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(input.Shape(), input.DType(), input.Device())
	if err != nil {
		panic(fmt.Sprintf("extremum backward: %v", err))
	}

	g := scalarValue(outputGrad)

	switch input.DType() {
	case tensor.Float32:
		src := input.AsFloat32()
		val := extremum.AsFloat32()[0]
		count := 0
		for _, v := range src {
			if v == val {
				count++
			}
		}
		share := float32(g / float64(count))
		dst := result.AsFloat32()
		for i, v := range src {
			if v == val {
				dst[i] = share
			}
		}
	case tensor.Float64:
		src := input.AsFloat64()
		val := extremum.AsFloat64()[0]
		count := 0
		for _, v := range src {
			if v == val {
				count++
			}
		}
		share := g / float64(count)
		dst := result.AsFloat64()
		for i, v := range src {
			if v == val {
				dst[i] = share
			}
		}
	}

	return result
}
