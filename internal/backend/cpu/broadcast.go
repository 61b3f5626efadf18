package cpu

import (
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Dimensions of size 1 (and dimensions padded on the left) get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			// Padded dimension, stride is 0
			strides[i] = 0
		case inShape[inIdx] == 1:
			// Broadcast dimension, stride is 0
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// flatIndex maps a flat output index to the flat index in a (possibly
// broadcast) source array.
// outStrides: strides of the output shape.
// inStrides: broadcast-adjusted strides of the input shape.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	ndim := len(outStrides)
	idx := 0

	for i := 0; i < ndim; i++ {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		idx += coord * inStrides[i]
	}

	return idx
}
