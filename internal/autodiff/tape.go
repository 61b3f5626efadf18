package autodiff

import (
	"fmt"
	"strings"

	"github.com/Ivisayanel/giagrad/internal/autodiff/ops"
	"github.com/Ivisayanel/giagrad/internal/tensor"
)

// GradientTape records operations during the forward pass and replays them
// in reverse to compute gradients.
//
// Usage:
//
//	tape := NewGradientTape()
//	tape.StartRecording()
//	// ... perform operations ...
//	grads := tape.Backward(output, outputGrad, backend)
type GradientTape struct {
	operations []ops.Operation // in execution order
	recording  bool
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 64),
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape. No-op when not recording.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear removes all recorded operations. Recording state is preserved;
// call StopRecording explicitly if needed.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// Backward computes gradients for every tensor that contributed to root.
//
// Algorithm:
//  1. Seed the root tensor with outputGrad (typically ones).
//  2. Walk operations in reverse execution order. Reverse order is a valid
//     topological order of the recorded graph, since every operation ran
//     after all of its inputs were produced.
//  3. For each operation whose output has a gradient, apply its chain rule
//     and accumulate the resulting input gradients. Tensors used multiple
//     times accumulate by addition.
//
// Operations downstream of root, or on branches that never reach it,
// receive no output gradient and are skipped.
//
// Returns a map from RawTensor pointer to its accumulated gradient.
func (t *GradientTape) Backward(root, outputGrad *tensor.RawTensor, backend tensor.Backend) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	if len(t.operations) == 0 {
		return grads
	}

	// Gradient math must not grow the tape.
	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()

	grads[root] = outputGrad

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]

		opOutputGrad, ok := grads[op.Output()]
		if !ok {
			continue
		}

		inputGrads := op.Backward(opOutputGrad, backend)
		t.accumulate(op.Inputs(), inputGrads, grads, backend)
	}

	return grads
}

// accumulate merges freshly computed input gradients into the gradient map.
func (t *GradientTape) accumulate(
	inputs, inputGrads []*tensor.RawTensor,
	grads map[*tensor.RawTensor]*tensor.RawTensor,
	backend tensor.Backend,
) {
	for j, input := range inputs {
		if j >= len(inputGrads) || inputGrads[j] == nil {
			continue
		}
		if existing, ok := grads[input]; ok {
			grads[input] = backend.Add(existing, inputGrads[j])
		} else {
			grads[input] = inputGrads[j]
		}
	}
}

// DOT renders the recorded computation graph in Graphviz DOT format.
//
// Tensor nodes are boxes labeled with their debug name (when set) and shape.
// Operation nodes are ellipses labeled with the operator name. Edges follow
// the direction of the forward pass.
func (t *GradientTape) DOT() string {
	var sb strings.Builder
	sb.WriteString("digraph computation {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [fontsize=10];\n")

	tensorIDs := make(map[*tensor.RawTensor]string)
	tensorID := func(raw *tensor.RawTensor) string {
		id, ok := tensorIDs[raw]
		if !ok {
			id = fmt.Sprintf("t%d", len(tensorIDs))
			tensorIDs[raw] = id
			label := fmt.Sprintf("%v", raw.Shape())
			if name := raw.Name(); name != "" {
				label = name + "\\n" + label
			}
			fmt.Fprintf(&sb, "  %s [shape=box, label=\"%s\"];\n", id, label)
		}
		return id
	}

	for i, op := range t.operations {
		opID := fmt.Sprintf("op%d", i)
		fmt.Fprintf(&sb, "  %s [shape=ellipse, label=\"%s\"];\n", opID, op.String())
		for _, in := range op.Inputs() {
			fmt.Fprintf(&sb, "  %s -> %s;\n", tensorID(in), opID)
		}
		fmt.Fprintf(&sb, "  %s -> %s;\n", opID, tensorID(op.Output()))
	}

	sb.WriteString("}\n")
	return sb.String()
}
