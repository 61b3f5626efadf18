// Package cpu implements the CPU compute backend for giagrad tensors.
package cpu

import (
	"fmt"
	"math"

	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// CPUBackend implements tensor operations on a single in-memory buffer with
// NumPy-style broadcasting.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
// Division by zero follows IEEE semantics (Inf/NaN), as in the float
// arrays this backend models.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// Pow raises a to the element-wise power b, with broadcasting.
func (cpu *CPUBackend) Pow(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("pow", a, b,
		func(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) },
		func(x, y float64) float64 { return math.Pow(x, y) })
}

// binaryOp applies an element-wise binary kernel with a fast path for equal
// shapes (inplace when the left operand's buffer is unique) and a
// stride-based slow path for broadcasting.
func (cpu *CPUBackend) binaryOp(
	name string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		// Fast path: same shape. Inplace when nothing else references a's
		// buffer (the autodiff backend suppresses this via ForceNonUnique).
		if a.IsUnique() {
			switch a.DType() {
			case tensor.Float32:
				dst, src := a.AsFloat32(), b.AsFloat32()
				for i := range dst {
					dst[i] = f32(dst[i], src[i])
				}
			case tensor.Float64:
				dst, src := a.AsFloat64(), b.AsFloat64()
				for i := range dst {
					dst[i] = f64(dst[i], src[i])
				}
			}
			return a
		}

		result := mustNewRaw(name, outShape, a.DType(), cpu.device)
		switch a.DType() {
		case tensor.Float32:
			dst, xs, ys := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
			for i := range dst {
				dst[i] = f32(xs[i], ys[i])
			}
		case tensor.Float64:
			dst, xs, ys := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
			for i := range dst {
				dst[i] = f64(xs[i], ys[i])
			}
		}
		return result
	}

	// Slow path: broadcasting via stride-0 index mapping.
	result := mustNewRaw(name, outShape, a.DType(), cpu.device)
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	n := outShape.NumElements()
	switch a.DType() {
	case tensor.Float32:
		dst, xs, ys := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		for i := 0; i < n; i++ {
			dst[i] = f32(xs[flatIndex(i, outStrides, aStrides)], ys[flatIndex(i, outStrides, bStrides)])
		}
	case tensor.Float64:
		dst, xs, ys := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := 0; i < n; i++ {
			dst[i] = f64(xs[flatIndex(i, outStrides, aStrides)], ys[flatIndex(i, outStrides, bStrides)])
		}
	}
	return result
}

// mustNewRaw allocates a result tensor or panics with operation context.
func mustNewRaw(op string, shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}
