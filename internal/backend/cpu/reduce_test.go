package cpu_test

import (
	"testing"

	"github.com/Ivisayanel/giagrad/internal/backend/cpu"
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

func TestSum(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	result := backend.Sum(x)
	if !result.Shape().Equal(tensor.Shape{}) {
		t.Fatalf("Sum shape = %v, want scalar", result.Shape())
	}
	if got := result.AsFloat32()[0]; got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
}

func TestMean(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{1, 2, 3, 4}, tensor.Shape{4})

	result := backend.Mean(x)
	if got := result.AsFloat32()[0]; got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
}

func TestMax(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{3, 1, 4, 1, 5, 9}, tensor.Shape{2, 3})

	result := backend.Max(x)
	if got := result.AsFloat32()[0]; got != 9 {
		t.Errorf("Max = %v, want 9", got)
	}
}

func TestMin(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{3, 1, 4, 1, 5, 9}, tensor.Shape{2, 3})

	result := backend.Min(x)
	if !result.Shape().Equal(tensor.Shape{}) {
		t.Fatalf("Min shape = %v, want scalar", result.Shape())
	}
	if got := result.AsFloat32()[0]; got != 1 {
		t.Errorf("Min = %v, want 1", got)
	}
}

func TestSumDim(t *testing.T) {
	backend := cpu.New()
	// [[1, 2, 3],
	//  [4, 5, 6]]
	x := fromSlice32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	rows := backend.SumDim(x, 0, false)
	if !rows.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("SumDim(0) shape = %v, want [3]", rows.Shape())
	}
	assertFloat32s(t, rows, []float32{5, 7, 9})

	cols := backend.SumDim(x, 1, false)
	if !cols.Shape().Equal(tensor.Shape{2}) {
		t.Fatalf("SumDim(1) shape = %v, want [2]", cols.Shape())
	}
	assertFloat32s(t, cols, []float32{6, 15})
}

func TestSumDim_KeepDim(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	result := backend.SumDim(x, 1, true)
	if !result.Shape().Equal(tensor.Shape{2, 1}) {
		t.Fatalf("SumDim(1, keepDim) shape = %v, want [2 1]", result.Shape())
	}
	assertFloat32s(t, result, []float32{6, 15})
}

func TestSumDim_NegativeDim(t *testing.T) {
	backend := cpu.New()
	x := fromSlice32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	result := backend.SumDim(x, -1, false)
	assertFloat32s(t, result, []float32{3, 7})
}

func TestSum_Float64(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{0.5, 1.5, 2}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatal(err)
	}

	result := backend.Sum(x.Raw())
	if got := result.AsFloat64()[0]; got != 4 {
		t.Errorf("Sum = %v, want 4", got)
	}
}
