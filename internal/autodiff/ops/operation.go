// Package ops defines the differentiable operation nodes recorded on the
// gradient tape during the forward pass.
//
// Each node keeps its input and output tensors and knows how to turn the
// gradient of its output into gradients of its inputs (the chain rule).
// Nodes also implement fmt.Stringer so the tape can render the recorded
// graph in Graphviz DOT form for debugging.
package ops

import "github.com/Ivisayanel/giagrad/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both inputs)
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor

	// String returns the operator name for graph visualization.
	String() string
}
