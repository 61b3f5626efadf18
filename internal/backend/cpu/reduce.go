package cpu

import (
	"fmt"

	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// Sum reduces all elements to a scalar tensor (shape {}).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := mustNewRaw("sum", tensor.Shape{}, x.DType(), cpu.device)

	switch x.DType() {
	case tensor.Float32:
		var sum float32
		for _, v := range x.AsFloat32() {
			sum += v
		}
		result.AsFloat32()[0] = sum
	case tensor.Float64:
		var sum float64
		for _, v := range x.AsFloat64() {
			sum += v
		}
		result.AsFloat64()[0] = sum
	}

	return result
}

// Mean reduces all elements to their scalar mean.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.Sum(x)
	n := float64(x.NumElements())

	switch result.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] /= float32(n)
	case tensor.Float64:
		result.AsFloat64()[0] /= n
	}

	return result
}

// Max reduces all elements to their scalar maximum.
func (cpu *CPUBackend) Max(x *tensor.RawTensor) *tensor.RawTensor {
	result := mustNewRaw("max", tensor.Shape{}, x.DType(), cpu.device)

	switch x.DType() {
	case tensor.Float32:
		data := x.AsFloat32()
		best := data[0]
		for _, v := range data[1:] {
			if v > best {
				best = v
			}
		}
		result.AsFloat32()[0] = best
	case tensor.Float64:
		data := x.AsFloat64()
		best := data[0]
		for _, v := range data[1:] {
			if v > best {
				best = v
			}
		}
		result.AsFloat64()[0] = best
	}

	return result
}

// Min reduces all elements to their scalar minimum.
func (cpu *CPUBackend) Min(x *tensor.RawTensor) *tensor.RawTensor {
	result := mustNewRaw("min", tensor.Shape{}, x.DType(), cpu.device)

	switch x.DType() {
	case tensor.Float32:
		data := x.AsFloat32()
		best := data[0]
		for _, v := range data[1:] {
			if v < best {
				best = v
			}
		}
		result.AsFloat32()[0] = best
	case tensor.Float64:
		data := x.AsFloat64()
		best := data[0]
		for _, v := range data[1:] {
			if v < best {
				best = v
			}
		}
		result.AsFloat64()[0] = best
	}

	return result
}

// SumDim sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	x := tensor.Randn[float32](Shape{2, 3, 4}, backend)
//	y := backend.SumDim(x.Raw(), -1, true)  // shape: [2, 3, 1]
//	z := backend.SumDim(x.Raw(), -1, false) // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("sumdim: dimension %d out of range for %dD tensor", dim, ndim))
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
	}

	result := mustNewRaw("sumdim", outShape, x.DType(), cpu.device)

	// Accumulation indexes are computed against the keep-dim shape; dropping
	// the dimension afterwards is purely a metadata change.
	inStrides := shape.ComputeStrides()
	keepShape := shape.Clone()
	keepShape[dim] = 1
	outStrides := keepShape.ComputeStrides()

	switch x.DType() {
	case tensor.Float32:
		sumDimFloat32(x.AsFloat32(), result.AsFloat32(), inStrides, outStrides, dim)
	case tensor.Float64:
		sumDimFloat64(x.AsFloat64(), result.AsFloat64(), inStrides, outStrides, dim)
	}

	return result
}

// sumDimFloat32 accumulates each input element into its reduced slot.
func sumDimFloat32(data, result []float32, inStrides, outStrides []int, dim int) {
	for i, v := range data {
		rem := i
		outIdx := 0
		for d := 0; d < len(inStrides); d++ {
			coord := rem / inStrides[d]
			rem %= inStrides[d]
			if d != dim {
				outIdx += coord * outStrides[d]
			}
		}
		result[outIdx] += v
	}
}

func sumDimFloat64(data, result []float64, inStrides, outStrides []int, dim int) {
	for i, v := range data {
		rem := i
		outIdx := 0
		for d := 0; d < len(inStrides); d++ {
			coord := rem / inStrides[d]
			rem %= inStrides[d]
			if d != dim {
				outIdx += coord * outStrides[d]
			}
		}
		result[outIdx] += v
	}
}
