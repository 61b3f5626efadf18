// Copyright 2025 The giagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor construction and
// manipulation in giagrad.
//
// Core types:
//   - Tensor[T, B]: generic type-safe tensor over a compute backend
//   - RawTensor: low-level representation used by backends and autodiff
//   - Backend: interface for device-specific compute implementations
//   - Shape, DataType, Device: core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)
package tensor

import (
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// DType is the constraint for tensor element types: float32 or float64.
type DType = tensor.DType

// DataType represents the runtime data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Shape{} is a 0-D scalar; Shape{2, 3} is a 2×3 matrix.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// T is the element type (float32 or float64) and B the compute backend.
// Wrap the backend with autodiff.New to track gradients through operations.
//
// Example:
//
//	ad := autodiff.New(cpu.New())
//	ad.Tape().StartRecording()
//	x := tensor.Ones[float32](tensor.Shape{2}, ad).Named("x").RequireGrad()
//	y := x.Mul(x).Sum()
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// ZerosLike creates a zero tensor with the same shape as another tensor.
func ZerosLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return tensor.ZerosLike(t)
}

// OnesLike creates a tensor of ones with the same shape as another tensor.
func OnesLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return tensor.OnesLike(t)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar[T DType, B Backend](value T, b B) *Tensor[T, B] {
	return tensor.Scalar[T, B](value, b)
}

// Randn creates a tensor with values drawn from the standard normal
// distribution N(0, 1).
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Randn[T, B](shape, b)
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Rand[T, B](shape, b)
}

// Uniform creates a tensor with values uniformly distributed in (-1, 1).
func Uniform[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Uniform[T, B](shape, b)
}

// ScaledUniform creates a U(-1, 1) tensor scaled by 1/sqrt(numElements).
func ScaledUniform[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.ScaledUniform[T, B](shape, b)
}

// GlorotUniform creates a tensor with Glorot (Xavier) uniform
// initialization. Requires at least two dimensions.
func GlorotUniform[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.GlorotUniform[T, B](shape, b)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	x := tensor.Arange[float32](0, 10, backend) // [0, 1, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](start, end, b)
}

// Eye creates an n×n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](n, b)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor. Low-level; most callers should
// use the creation functions above.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// BroadcastShapes computes the NumPy-style broadcast shape for two shapes.
// Returns the resulting shape and whether either operand needs broadcasting.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
