package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ivisayanel/giagrad/internal/autodiff"
	"github.com/Ivisayanel/giagrad/internal/backend/cpu"
	"github.com/Ivisayanel/giagrad/internal/nn"
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

type adBackend = *autodiff.Backend[*cpu.CPUBackend]

func TestParameter(t *testing.T) {
	backend := autodiff.New(cpu.New())

	w := tensor.Ones[float32](tensor.Shape{2, 2}, backend)
	p := nn.NewParameter("weight", w)

	assert.Equal(t, "weight", p.Name())
	assert.True(t, p.Tensor().RequiresGrad(), "parameter tensor should require grad")
	assert.Equal(t, "weight", p.Tensor().Raw().Name())
	assert.Nil(t, p.Grad())
}

func TestLinear_ForwardShape(t *testing.T) {
	backend := autodiff.New(cpu.New())

	layer := nn.NewLinear(4, 3, backend)
	input := tensor.Randn[float32](tensor.Shape{8, 4}, backend)

	output := layer.Forward(input)
	assert.True(t, output.Shape().Equal(tensor.Shape{8, 3}),
		"output shape = %v, want [8 3]", output.Shape())
}

func TestLinear_KnownValues(t *testing.T) {
	backend := autodiff.New(cpu.New())

	layer := nn.NewLinear(2, 1, backend)

	// Overwrite the random init with known values: y = 2a + 3b + 1.
	w := layer.Weight().Tensor()
	w.Set(2, 0, 0)
	w.Set(3, 0, 1)
	layer.Bias().Tensor().Set(1, 0)

	input, err := tensor.FromSlice([]float32{1, 1, 2, 0.5}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	output := layer.Forward(input)
	assert.InDelta(t, 6.0, float64(output.At(0, 0)), 1e-5)   // 2+3+1
	assert.InDelta(t, 6.5, float64(output.At(1, 0)), 1e-5)   // 4+1.5+1
}

func TestLinear_NoBias(t *testing.T) {
	backend := autodiff.New(cpu.New())

	layer := nn.NewLinearNoBias(2, 1, backend)
	require.Len(t, layer.Parameters(), 1)
	require.Nil(t, layer.Bias())

	w := layer.Weight().Tensor()
	w.Set(2, 0, 0)
	w.Set(3, 0, 1)

	input, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, float64(layer.Forward(input).At(0, 0)), 1e-5)
}

func TestLinear_BadInputPanics(t *testing.T) {
	backend := autodiff.New(cpu.New())
	layer := nn.NewLinear(4, 2, backend)

	bad := tensor.Ones[float32](tensor.Shape{8, 5}, backend)
	assert.Panics(t, func() { layer.Forward(bad) })
}

func TestLinear_GradientsReachParameters(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	layer := nn.NewLinear(2, 1, backend)
	input, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	loss := layer.Forward(input).Sum()
	grads := autodiff.Backward(loss, backend)

	// Transpose and reshape are recorded, so gradients must reach the
	// original parameter tensors, not their transient copies.
	require.Contains(t, grads, layer.Weight().Tensor().Raw())
	require.Contains(t, grads, layer.Bias().Tensor().Raw())

	wGrad := grads[layer.Weight().Tensor().Raw()].AsFloat32()
	assert.InDelta(t, 1.0, float64(wGrad[0]), 1e-5)
	assert.InDelta(t, 2.0, float64(wGrad[1]), 1e-5)

	bGrad := grads[layer.Bias().Tensor().Raw()].AsFloat32()
	assert.InDelta(t, 1.0, float64(bGrad[0]), 1e-5)
}

func TestReLU(t *testing.T) {
	backend := autodiff.New(cpu.New())

	relu := nn.NewReLU[adBackend]()
	input, err := tensor.FromSlice([]float32{-1, 0, 2}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	output := relu.Forward(input)
	assert.Equal(t, []float32{0, 0, 2}, output.Data())
	assert.Empty(t, relu.Parameters())
}

func TestSequential(t *testing.T) {
	backend := autodiff.New(cpu.New())

	model := nn.NewSequential[adBackend](
		nn.NewLinear(4, 8, backend),
		nn.NewReLU[adBackend](),
		nn.NewLinear(8, 2, backend),
	)

	input := tensor.Randn[float32](tensor.Shape{3, 4}, backend)
	output := model.Forward(input)

	assert.True(t, output.Shape().Equal(tensor.Shape{3, 2}))
	assert.Len(t, model.Parameters(), 4) // two weights, two biases
	assert.Len(t, model.Modules(), 3)
}

func TestMSELoss(t *testing.T) {
	backend := autodiff.New(cpu.New())

	lossFn := nn.NewMSELoss[adBackend]()

	pred, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float32{2, 2, 5}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	loss := lossFn.Forward(pred, target)
	// ((1)² + 0 + (2)²) / 3
	assert.InDelta(t, 5.0/3.0, float64(loss.Item()), 1e-5)
}

func TestMSELoss_ShapeMismatchPanics(t *testing.T) {
	backend := autodiff.New(cpu.New())

	lossFn := nn.NewMSELoss[adBackend]()
	a := tensor.Ones[float32](tensor.Shape{2}, backend)
	b := tensor.Ones[float32](tensor.Shape{3}, backend)

	assert.Panics(t, func() { lossFn.Forward(a, b) })
}

func TestMSELoss_BackwardFlows(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	pred, err := tensor.FromSlice([]float32{3, 5}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	target, err := tensor.FromSlice([]float32{1, 1}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	loss := nn.NewMSELoss[adBackend]().Forward(pred, target)
	grads := autodiff.Backward(loss, backend)

	require.Contains(t, grads, pred.Raw())
	// d/dp mean((p-t)²) = 2(p-t)/n
	predGrad := grads[pred.Raw()].AsFloat32()
	assert.InDelta(t, 2.0, float64(predGrad[0]), 1e-5)
	assert.InDelta(t, 4.0, float64(predGrad[1]), 1e-5)
}
