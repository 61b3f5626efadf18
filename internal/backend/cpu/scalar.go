package cpu

import (
	"math"

	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// Scalar operations broadcast a single value over every element. The scalar
// is passed as float64 and narrowed per dtype.

// AddScalar adds a scalar to each element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	s32 := float32(scalar)
	return cpu.unaryOp("addscalar", x,
		func(v float32) float32 { return v + s32 },
		func(v float64) float64 { return v + scalar })
}

// SubScalar subtracts a scalar from each element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	s32 := float32(scalar)
	return cpu.unaryOp("subscalar", x,
		func(v float32) float32 { return v - s32 },
		func(v float64) float64 { return v - scalar })
}

// MulScalar multiplies each element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	s32 := float32(scalar)
	return cpu.unaryOp("mulscalar", x,
		func(v float32) float32 { return v * s32 },
		func(v float64) float64 { return v * scalar })
}

// DivScalar divides each element by a scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	s32 := float32(scalar)
	return cpu.unaryOp("divscalar", x,
		func(v float32) float32 { return v / s32 },
		func(v float64) float64 { return v / scalar })
}

// PowScalar raises each element to a scalar power.
func (cpu *CPUBackend) PowScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	return cpu.unaryOp("powscalar", x,
		func(v float32) float32 { return float32(math.Pow(float64(v), scalar)) },
		func(v float64) float64 { return math.Pow(v, scalar) })
}
