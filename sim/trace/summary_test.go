package trace

import (
	"testing"
)

func TestSummarize_CountsPerNode(t *testing.T) {
	// GIVEN a trace of five activations across two nodes
	tr := New()
	tr.RecordActivation("a", true, 2)
	tr.RecordActivation("b", false, 1)
	tr.RecordActivation("a", true, 2)
	tr.RecordActivation("a", false, 1)
	tr.RecordActivation("b", false, 0)

	// WHEN it is summarized
	summary := Summarize(tr)

	// THEN totals and per-node counts line up
	if summary.TotalActivations != 5 {
		t.Errorf("TotalActivations: got %d, want 5", summary.TotalActivations)
	}
	if summary.Reactivations != 2 {
		t.Errorf("Reactivations: got %d, want 2", summary.Reactivations)
	}
	if summary.UniqueNodes != 2 {
		t.Errorf("UniqueNodes: got %d, want 2", summary.UniqueNodes)
	}
	if summary.NodeActivations["a"] != 3 || summary.NodeActivations["b"] != 2 {
		t.Errorf("NodeActivations: got %v, want a:3 b:2", summary.NodeActivations)
	}
	nodes := summary.Nodes()
	if len(nodes) != 2 || nodes[0] != "a" || nodes[1] != "b" {
		t.Errorf("Nodes: got %v, want [a b]", nodes)
	}
}

func TestSummarize_NilAndEmptyTraces(t *testing.T) {
	for name, tr := range map[string]*Trace{"nil": nil, "empty": New()} {
		summary := Summarize(tr)
		if summary.TotalActivations != 0 || summary.UniqueNodes != 0 {
			t.Errorf("%s trace: got %+v, want zero summary", name, summary)
		}
		if summary.NodeActivations == nil {
			t.Errorf("%s trace: NodeActivations map not initialized", name)
		}
	}
}
