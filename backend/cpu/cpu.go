// Copyright 2025 The giagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for tensor operations.
//
// The backend implements every operation of tensor.Backend with
// NumPy-compatible broadcasting, float32 and float64 support, and inplace
// optimizations when a buffer has a single owner.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)
package cpu

import (
	internalcpu "github.com/Ivisayanel/giagrad/internal/backend/cpu"
	"github.com/Ivisayanel/giagrad/tensor"
)

// Backend is the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
