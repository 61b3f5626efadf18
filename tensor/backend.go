// Copyright 2025 The giagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// Backend is the interface all compute backends implement. The cpu package
// provides the reference implementation; autodiff.Backend decorates any
// Backend with gradient recording.
type Backend = tensor.Backend
