// Copyright 2025 The giagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// RawTensor is the low-level tensor representation: a reference-counted
// buffer plus shape, strides and runtime type. Backends operate on
// RawTensors, and the autodiff gradient map is keyed by *RawTensor.
type RawTensor = tensor.RawTensor

// NewRaw creates a raw tensor with the given shape, dtype, and device.
// Low-level; most callers should use the typed creation functions.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}
