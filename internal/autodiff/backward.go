package autodiff

import (
	"fmt"

	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// BackwardCapable is the interface for backends that support the backward
// pass. Backend implements it.
type BackwardCapable interface {
	tensor.Backend
	// GetTape returns the gradient tape for backward computation.
	GetTape() *GradientTape
}

// GetTape returns the gradient tape (implements BackwardCapable).
func (b *Backend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward computes gradients of t with respect to every tensor that
// contributed to it, seeding the output gradient with ones of t's shape.
//
// Returns a map from RawTensor to gradient; look up inputs via Raw().
//
// Example:
//
//	ad := autodiff.New(cpu.New())
//	ad.Tape().StartRecording()
//	x := tensor.Ones[float32](tensor.Shape{2}, ad)
//	y := x.Mul(x)
//	grads := autodiff.Backward(y, ad)
//	dx := grads[x.Raw()]
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.GetTape()

	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	outputGrad, err := tensor.NewRaw(t.Shape(), t.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("backward: failed to create output gradient: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		data := outputGrad.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case tensor.Float64:
		data := outputGrad.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	}

	return tape.Backward(t.Raw(), outputGrad, backend)
}

// Attach stores gradients from a Backward result onto the given tensors.
// Tensors without RequiresGrad, or absent from the map, are left untouched.
// Gradients accumulate across calls until ZeroGrad, matching the usual
// training-loop contract.
func Attach[T tensor.DType, B tensor.Backend](grads map[*tensor.RawTensor]*tensor.RawTensor, backend B, tensors ...*tensor.Tensor[T, B]) {
	for _, tn := range tensors {
		if !tn.RequiresGrad() {
			continue
		}
		raw, ok := grads[tn.Raw()]
		if !ok {
			continue
		}
		if existing := tn.Grad(); existing != nil {
			raw = accumulateGrad(existing.Raw(), raw)
		}
		tn.SetGrad(tensor.New[T, B](raw, backend))
	}
}

// accumulateGrad sums two same-shaped gradients on the raw buffers, like the
// optimizers do, so the addition never ends up on the tape as a recorded
// operation.
func accumulateGrad(a, b *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(a.Shape(), a.DType(), a.Device())
	if err != nil {
		panic(fmt.Sprintf("attach: failed to accumulate gradient: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		x, y, dst := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
		for i := range dst {
			dst[i] = x[i] + y[i]
		}
	case tensor.Float64:
		x, y, dst := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
		for i := range dst {
			dst[i] = x[i] + y[i]
		}
	}

	return result
}
