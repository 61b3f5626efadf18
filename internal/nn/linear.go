package nn

import (
	"fmt"

	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// Linear implements a fully connected layer: y = x @ Wᵀ + b.
//
// Shapes:
//   - x: [batch, inFeatures]
//   - W: [outFeatures, inFeatures]
//   - b: [outFeatures]
//   - y: [batch, outFeatures]
//
// Weights use Glorot uniform initialization, biases start at zero.
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B]
	bias        *Parameter[B]
	backend     B
}

// NewLinear creates a Linear layer with Glorot-initialized weights and zero
// biases.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	weight := NewParameter("weight",
		tensor.GlorotUniform[float32](tensor.Shape{outFeatures, inFeatures}, backend))
	bias := NewParameter("bias",
		tensor.Zeros[float32](tensor.Shape{outFeatures}, backend))

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
		backend:     backend,
	}
}

// NewLinearNoBias creates a Linear layer without a bias term: y = x @ Wᵀ.
func NewLinearNoBias[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	weight := NewParameter("weight",
		tensor.GlorotUniform[float32](tensor.Shape{outFeatures, inFeatures}, backend))

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		backend:     backend,
	}
}

// Forward computes y = x @ Wᵀ + b.
//
// The transpose and reshape go through the backend so they are recorded on
// the tape; otherwise gradients would stop at the transposed copy instead of
// reaching the weight parameter.
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2D input [batch, features], got shape %v", inputShape))
	}
	if inputShape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, inputShape[1]))
	}

	wT := l.weight.Tensor().Transpose() // [inFeatures, outFeatures]
	output := input.MatMul(wT)          // [batch, outFeatures]

	if l.bias == nil {
		return output
	}

	// Bias broadcasts over the batch dimension as [1, outFeatures].
	bReshaped := l.bias.Tensor().Reshape(1, l.outFeatures)
	return output.Add(bReshaped)
}

// Parameters returns [weight, bias], or [weight] if the layer has no bias.
func (l *Linear[B]) Parameters() []*Parameter[B] {
	if l.bias == nil {
		return []*Parameter[B]{l.weight}
	}
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
