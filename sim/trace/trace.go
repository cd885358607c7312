package trace

import "github.com/rs/xid"

// Trace collects activation records during a stepped run.
type Trace struct {
	records []ActivationRecord
}

// New creates a Trace ready for recording.
func New() *Trace {
	return &Trace{records: make([]ActivationRecord, 0)}
}

// RecordActivation appends one activation record and returns it.
func (t *Trace) RecordActivation(node string, reactivate bool, readyAfter int) ActivationRecord {
	rec := ActivationRecord{
		ID:         xid.New().String(),
		Seq:        len(t.records),
		Node:       node,
		Reactivate: reactivate,
		ReadyAfter: readyAfter,
	}
	t.records = append(t.records, rec)
	return rec
}

// Len returns the number of recorded activations.
func (t *Trace) Len() int {
	return len(t.records)
}

// Records returns the recorded activations in run order.
func (t *Trace) Records() []ActivationRecord {
	return t.records
}
