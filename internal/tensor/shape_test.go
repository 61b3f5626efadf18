package tensor

import (
	"testing"
)

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1}, // scalar
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShape_ComputeStrides(t *testing.T) {
	shape := Shape{2, 3, 4}
	strides := shape.ComputeStrides()

	want := []int{12, 4, 1}
	for i, s := range strides {
		if s != want[i] {
			t.Errorf("ComputeStrides()[%d] = %d, want %d", i, s, want[i])
		}
	}
}

func TestShape_Validate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate() on valid shape returned error: %v", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("Validate() should reject negative dimensions")
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
	}{
		{"equal", Shape{2, 3}, Shape{2, 3}, Shape{2, 3}, false},
		{"scalar vs matrix", Shape{}, Shape{2, 3}, Shape{2, 3}, true},
		{"row broadcast", Shape{3, 1}, Shape{3, 4}, Shape{3, 4}, true},
		{"rank difference", Shape{3}, Shape{2, 3}, Shape{2, 3}, true},
		{"both broadcast", Shape{2, 1}, Shape{1, 3}, Shape{2, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, needsBroadcast, err := BroadcastShapes(tt.a, tt.b)
			if err != nil {
				t.Fatalf("BroadcastShapes(%v, %v) error: %v", tt.a, tt.b, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if needsBroadcast != tt.broadcast {
				t.Errorf("needsBroadcast = %v, want %v", needsBroadcast, tt.broadcast)
			}
		})
	}
}

func TestBroadcastShapes_Incompatible(t *testing.T) {
	if _, _, err := BroadcastShapes(Shape{2, 3}, Shape{2, 4}); err == nil {
		t.Error("BroadcastShapes should reject incompatible shapes")
	}
}
