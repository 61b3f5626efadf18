package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// ZerosLike creates a zero tensor with the same shape as another tensor.
func ZerosLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return Zeros[T, B](t.Shape(), t.Backend())
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, 1, b)
}

// OnesLike creates a tensor of ones with the same shape as another tensor.
func OnesLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return Ones[T, B](t.Shape(), t.Backend())
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return Full[T, B](Shape{}, value, b)
}

// Randn creates a tensor with random values from a normal distribution
// (mean=0, std=1) using the Box-Muller transform.
// Note: uses math/rand (not crypto/rand) - appropriate for ML purposes.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	for i := 0; i < len(data); i += 2 {
		u1 := rand.Float64() //nolint:gosec // G404: math/rand intentionally, for reproducibility
		u2 := rand.Float64() //nolint:gosec // G404: math/rand intentionally, for reproducibility
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		data[i] = T(z0)
		if i+1 < len(data) {
			data[i+1] = T(z1)
		}
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.Float64()) //nolint:gosec // G404: math/rand intentionally
	}
	return t
}

// Uniform creates a tensor with random values uniformly distributed in (-1, 1).
func Uniform[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.Float64()*2 - 1) //nolint:gosec // G404: math/rand intentionally
	}
	return t
}

// ScaledUniform creates a U(-1, 1) tensor scaled by 1/sqrt(numElements).
func ScaledUniform[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Uniform[T, B](shape, b)
	scale := T(1.0 / math.Sqrt(float64(shape.NumElements())))
	data := t.Data()
	for i := range data {
		data[i] *= scale
	}
	return t
}

// GlorotUniform creates a tensor with Glorot (Xavier) uniform initialization:
// U(-1, 1) scaled by sqrt(6 / (fanIn + fanOut)), where fanIn is the first
// dimension and fanOut the product of the remaining dimensions.
func GlorotUniform[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	if len(shape) < 2 {
		panic("GlorotUniform requires at least 2 dimensions")
	}
	fanIn := shape[0]
	fanOut := 1
	for _, dim := range shape[1:] {
		fanOut *= dim
	}

	t := Uniform[T, B](shape, b)
	scale := T(math.Sqrt(6.0 / float64(fanIn+fanOut)))
	data := t.Data()
	for i := range data {
		data[i] *= scale
	}
	return t
}

// Arange creates a 1D tensor with values from start to end (exclusive),
// step 1. A fractional range rounds up, so Arange(0, 2.5) yields [0, 1, 2].
//
// Example:
//
//	t := tensor.Arange[float32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	numElements := int(math.Ceil(float64(end - start)))
	if numElements <= 0 {
		panic("end must be greater than start")
	}

	t := Zeros[T, B](Shape{numElements}, b)
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)
	}
	return t
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	t := tensor.Eye[float32](3, backend) // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	if n <= 0 {
		panic("Eye: size must be positive")
	}
	t := Zeros[T, B](Shape{n, n}, b)
	for i := 0; i < n; i++ {
		t.Set(1, i, i)
	}
	return t
}
