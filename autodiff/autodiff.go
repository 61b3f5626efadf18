// Copyright 2025 The giagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// It wraps any compute backend with a gradient tape that records operations
// during the forward pass and replays them in reverse to compute gradients.
//
// Example:
//
//	ad := autodiff.New(cpu.New())
//	ad.Tape().StartRecording()
//
//	a, _ := tensor.FromSlice([]float32{-4, 2, 7}, tensor.Shape{3}, ad)
//	a.Named("a").RequireGrad()
//	loss := a.Min().Exp().Log().Sum()
//
//	grads := autodiff.Backward(loss, ad)
//	autodiff.Attach(grads, ad, a)
//	fmt.Println(a.Grad())
package autodiff

import (
	"github.com/Ivisayanel/giagrad/internal/autodiff"
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// Backend wraps a compute backend and records operations on a gradient tape.
type Backend[B tensor.Backend] = autodiff.Backend[B]

// GradientTape records operations for the backward pass and can render the
// recorded graph in Graphviz DOT format via its DOT method.
type GradientTape = autodiff.GradientTape

// BackwardCapable is the interface for backends that support backward.
type BackwardCapable = autodiff.BackwardCapable

// New creates an autodiff backend wrapping the given compute backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// NewGradientTape creates a standalone gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// Backward computes gradients of t with respect to every contributing
// tensor, seeding with ones of t's shape. Look up gradients via Raw().
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}

// Attach stores gradients from a Backward result onto tensors that require
// them, accumulating across calls until ZeroGrad.
func Attach[T tensor.DType, B tensor.Backend](grads map[*tensor.RawTensor]*tensor.RawTensor, backend B, tensors ...*tensor.Tensor[T, B]) {
	autodiff.Attach(grads, backend, tensors...)
}
