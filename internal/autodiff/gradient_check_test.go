package autodiff_test

import (
	"math"
	"testing"

	"github.com/Ivisayanel/giagrad/internal/autodiff"
	"github.com/Ivisayanel/giagrad/internal/backend/cpu"
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// checkGradients compares analytic gradients against central differences
// for a scalar-valued function of one tensor. Uses float64 so the numeric
// estimate is trustworthy.
func checkGradients(
	t *testing.T,
	input []float64,
	shape tensor.Shape,
	f func(x *tensor.Tensor[float64, adBackend64]) *tensor.Tensor[float64, adBackend64],
) {
	t.Helper()

	const (
		h   = 1e-6
		tol = 1e-4
	)

	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice(input, shape, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	loss := f(x)
	grads := autodiff.Backward(loss, backend)
	analytic, ok := grads[x.Raw()]
	if !ok {
		t.Fatal("no gradient for input")
	}
	analyticData := analytic.AsFloat64()

	// Numeric gradients, one coordinate at a time, without recording.
	plain := cpu.New()
	eval := func(data []float64) float64 {
		xt, err := tensor.FromSlice(data, shape, autodiff.New(plain))
		if err != nil {
			t.Fatalf("FromSlice: %v", err)
		}
		return f(xt).Data()[0]
	}

	for i := range input {
		bumped := append([]float64(nil), input...)
		bumped[i] = input[i] + h
		fPlus := eval(bumped)
		bumped[i] = input[i] - h
		fMinus := eval(bumped)

		numeric := (fPlus - fMinus) / (2 * h)
		if math.Abs(numeric-analyticData[i]) > tol {
			t.Errorf("grad[%d]: analytic %v, numeric %v", i, analyticData[i], numeric)
		}
	}
}

type adBackend64 = *autodiff.Backend[*cpu.CPUBackend]

func TestGradientCheck_ExpSum(t *testing.T) {
	checkGradients(t, []float64{-1, 0.5, 2}, tensor.Shape{3},
		func(x *tensor.Tensor[float64, adBackend64]) *tensor.Tensor[float64, adBackend64] {
			return x.Exp().Sum()
		})
}

func TestGradientCheck_LogSqrt(t *testing.T) {
	checkGradients(t, []float64{0.5, 1.5, 4}, tensor.Shape{3},
		func(x *tensor.Tensor[float64, adBackend64]) *tensor.Tensor[float64, adBackend64] {
			return x.Sqrt().Log().Sum()
		})
}

func TestGradientCheck_Composite(t *testing.T) {
	// f(x) = mean(x² * exp(-x) + 1/x)
	checkGradients(t, []float64{0.7, 1.3, 2.1, 3.4}, tensor.Shape{4},
		func(x *tensor.Tensor[float64, adBackend64]) *tensor.Tensor[float64, adBackend64] {
			return x.Square().Mul(x.Neg().Exp()).Add(x.Reciprocal()).Mean()
		})
}

func TestGradientCheck_AbsSquare(t *testing.T) {
	checkGradients(t, []float64{-2, -0.5, 0.5, 3}, tensor.Shape{4},
		func(x *tensor.Tensor[float64, adBackend64]) *tensor.Tensor[float64, adBackend64] {
			return x.Abs().Square().Sum()
		})
}

func TestGradientCheck_MatMulChain(t *testing.T) {
	checkGradients(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2},
		func(x *tensor.Tensor[float64, adBackend64]) *tensor.Tensor[float64, adBackend64] {
			return x.MatMul(x).Sum()
		})
}

func TestGradientCheck_PowTensor(t *testing.T) {
	// Base must stay positive for pow gradients to be well defined.
	checkGradients(t, []float64{0.5, 1.5, 2.5}, tensor.Shape{3},
		func(x *tensor.Tensor[float64, adBackend64]) *tensor.Tensor[float64, adBackend64] {
			return x.PowScalar(2.5).Sum()
		})
}
