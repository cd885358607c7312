package trace

import "sort"

// TraceSummary aggregates statistics from a Trace.
type TraceSummary struct {
	TotalActivations int
	Reactivations    int            // activations that asked to run again
	UniqueNodes      int            // distinct nodes that ran at least once
	NodeActivations  map[string]int // node name → activation count
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *TraceSummary {
	summary := &TraceSummary{
		NodeActivations: make(map[string]int),
	}
	if t == nil {
		return summary
	}

	summary.TotalActivations = len(t.records)
	for _, rec := range t.records {
		summary.NodeActivations[rec.Node]++
		if rec.Reactivate {
			summary.Reactivations++
		}
	}
	summary.UniqueNodes = len(summary.NodeActivations)

	return summary
}

// Nodes lists the summarized node names in sorted order, for stable display.
func (s *TraceSummary) Nodes() []string {
	nodes := make([]string, 0, len(s.NodeActivations))
	for node := range s.NodeActivations {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}
