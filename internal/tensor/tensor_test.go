package tensor_test

import (
	"math"
	"strings"
	"testing"

	"github.com/Ivisayanel/giagrad/internal/backend/cpu"
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice error: %v", err)
	}

	if !x.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", x.Shape())
	}
	if x.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", x.DType())
	}
	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
}

func TestFromSlice_ShapeMismatch(t *testing.T) {
	backend := cpu.New()

	_, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}, backend)
	if err == nil {
		t.Error("FromSlice should reject mismatched shape and data length")
	}
}

func TestTensor_SetAt(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float64](tensor.Shape{3, 3}, backend)
	x.Set(2.5, 1, 1)

	if got := x.At(1, 1); got != 2.5 {
		t.Errorf("At(1, 1) = %v, want 2.5", got)
	}
	if got := x.At(0, 0); got != 0 {
		t.Errorf("At(0, 0) = %v, want 0", got)
	}
}

func TestTensor_Item(t *testing.T) {
	backend := cpu.New()

	s := tensor.Scalar[float32](42, backend)
	if got := s.Item(); got != 42 {
		t.Errorf("Item() = %v, want 42", got)
	}
}

func TestTensor_Named(t *testing.T) {
	backend := cpu.New()

	x := tensor.Ones[float32](tensor.Shape{2}, backend).Named("weights")
	if x.Name() != "weights" {
		t.Errorf("Name() = %q, want %q", x.Name(), "weights")
	}
	if x.Raw().Name() != "weights" {
		t.Errorf("Raw().Name() = %q, want %q", x.Raw().Name(), "weights")
	}
}

func TestTensor_RequireGrad(t *testing.T) {
	backend := cpu.New()

	x := tensor.Ones[float32](tensor.Shape{2}, backend)
	if x.RequiresGrad() {
		t.Error("new tensor should not require grad")
	}

	x.RequireGrad()
	if !x.RequiresGrad() {
		t.Error("RequireGrad() should set the flag")
	}

	detached := x.Detach()
	if detached.RequiresGrad() {
		t.Error("Detach() should clear the flag")
	}
	if detached.Raw() != x.Raw() {
		t.Error("Detach() should share the underlying data")
	}
}

func TestArange(t *testing.T) {
	backend := cpu.New()

	x := tensor.Arange[float32](0, 5, backend)
	want := []float32{0, 1, 2, 3, 4}
	for i, v := range x.Data() {
		if v != want[i] {
			t.Errorf("Arange[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestArange_FractionalRange(t *testing.T) {
	backend := cpu.New()

	// A fractional range rounds up: [0, 2.5) holds 0, 1 and 2.
	x := tensor.Arange[float32](0, 2.5, backend)
	if !x.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("Arange(0, 2.5) shape = %v, want [3]", x.Shape())
	}
	want := []float32{0, 1, 2}
	for i, v := range x.Data() {
		if v != want[i] {
			t.Errorf("Arange[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestEye(t *testing.T) {
	backend := cpu.New()

	x := tensor.Eye[float32](3, backend)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if got := x.At(i, j); got != want {
				t.Errorf("Eye At(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestEye_NonPositivePanics(t *testing.T) {
	backend := cpu.New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Eye(0) should panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "must be positive") {
			t.Errorf("Eye(0) panic = %v, want a size message", r)
		}
	}()
	tensor.Eye[float32](0, backend)
}

func TestFull(t *testing.T) {
	backend := cpu.New()

	x := tensor.Full[float64](tensor.Shape{2, 2}, 3.14, backend)
	for _, v := range x.Data() {
		if v != 3.14 {
			t.Errorf("Full element = %v, want 3.14", v)
		}
	}
}

func TestGlorotUniform_Bounds(t *testing.T) {
	backend := cpu.New()

	shape := tensor.Shape{16, 8}
	x := tensor.GlorotUniform[float32](shape, backend)

	limit := math.Sqrt(6.0 / float64(16+8))
	for _, v := range x.Data() {
		if math.Abs(float64(v)) > limit {
			t.Errorf("GlorotUniform value %v outside [-%v, %v]", v, limit, limit)
		}
	}
}

func TestRandn_FillsAllElements(t *testing.T) {
	backend := cpu.New()

	x := tensor.Randn[float64](tensor.Shape{101}, backend) // odd length
	allZero := true
	for _, v := range x.Data() {
		if v != 0 {
			allZero = false
		}
		if math.IsNaN(v) {
			t.Fatal("Randn produced NaN")
		}
	}
	if allZero {
		t.Error("Randn left the tensor zeroed")
	}
}

func TestRawTensor_CloneSharesBuffer(t *testing.T) {
	backend := cpu.New()

	x := tensor.Ones[float32](tensor.Shape{4}, backend)
	raw := x.Raw()

	if !raw.IsUnique() {
		t.Error("fresh tensor should be unique")
	}

	clone := raw.Clone()
	if raw.IsUnique() || clone.IsUnique() {
		t.Error("after Clone neither reference should be unique")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("after Release the original should be unique again")
	}
}

func TestRawTensor_ForceNonUnique(t *testing.T) {
	backend := cpu.New()

	x := tensor.Ones[float32](tensor.Shape{4}, backend)
	raw := x.Raw()

	restore := raw.ForceNonUnique()
	if raw.IsUnique() {
		t.Error("ForceNonUnique should make the tensor appear shared")
	}
	restore()
	if !raw.IsUnique() {
		t.Error("cleanup should restore uniqueness")
	}
}
