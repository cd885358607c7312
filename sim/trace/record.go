// Package trace provides activation-trace recording for stepped runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// ActivationRecord captures a single node activation performed by the stepper.
type ActivationRecord struct {
	ID         string // unique record ID
	Seq        int    // zero-based position within the run
	Node       string
	Reactivate bool // the activation asked to run again
	ReadyAfter int  // ready-set size observed after the activation
}
