package cpu_test

import (
	"testing"

	"github.com/Ivisayanel/giagrad/internal/backend/cpu"
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

func TestMatMul(t *testing.T) {
	backend := cpu.New()

	// [[1, 2, 3],     [[7,  8],
	//  [4, 5, 6]]  @   [9, 10],
	//                  [11, 12]]
	a := fromSlice32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := fromSlice32(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	result := backend.MatMul(a, b)
	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("MatMul shape = %v, want [2 2]", result.Shape())
	}
	assertFloat32s(t, result, []float32{58, 64, 139, 154})
}

func TestMatMul_Identity(t *testing.T) {
	backend := cpu.New()

	a := fromSlice32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	eye := tensor.Eye[float32](2, backend)

	result := backend.MatMul(a, eye.Raw())
	assertFloat32s(t, result, []float32{1, 2, 3, 4})
}

func TestMatMul_ShapeMismatchPanics(t *testing.T) {
	backend := cpu.New()

	a := fromSlice32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice32(t, []float32{1, 2, 3}, tensor.Shape{3, 1})

	defer func() {
		if recover() == nil {
			t.Error("MatMul with incompatible inner dimensions should panic")
		}
	}()
	backend.MatMul(a, b)
}

func TestReshape(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	result := backend.Reshape(x, tensor.Shape{3, 2})
	if !result.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Reshape shape = %v, want [3 2]", result.Shape())
	}
	// Row-major order preserved.
	assertFloat32s(t, result, []float32{1, 2, 3, 4, 5, 6})
}

func TestReshape_ElementCountMismatchPanics(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	defer func() {
		if recover() == nil {
			t.Error("Reshape with different element count should panic")
		}
	}()
	backend.Reshape(x, tensor.Shape{3})
}

func TestTranspose2D(t *testing.T) {
	backend := cpu.New()
	// [[1, 2, 3],      [[1, 4],
	//  [4, 5, 6]]  ->   [2, 5],
	//                   [3, 6]]
	x := fromSlice32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	result := backend.Transpose(x)
	if !result.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Transpose shape = %v, want [3 2]", result.Shape())
	}
	assertFloat32s(t, result, []float32{1, 4, 2, 5, 3, 6})
}

func TestTranspose_Axes(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 2, 2})

	// Swap the last two axes only.
	result := backend.Transpose(x, 0, 2, 1)
	if !result.Shape().Equal(tensor.Shape{2, 2, 2}) {
		t.Fatalf("Transpose shape = %v, want [2 2 2]", result.Shape())
	}
	assertFloat32s(t, result, []float32{1, 3, 2, 4, 5, 7, 6, 8})
}

func TestTranspose_DoubleIsIdentity(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	result := backend.Transpose(backend.Transpose(x))
	if !result.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("shape = %v, want [2 3]", result.Shape())
	}
	assertFloat32s(t, result, []float32{1, 2, 3, 4, 5, 6})
}
