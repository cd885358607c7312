// The stepper is the resumable form of the scheduling loop: one node
// activation per resumption, suspension between activations.

package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/meshsim/meshsim/sim/trace"
)

// Stepper drives a topology one activation at a time. Each StepOnce call
// removes one arbitrary name from the ready set, activates that node, and
// re-queues it if the activation asked to run again. Callers build
// "run N" and "run until converged" on top of StepOnce, and may simply
// stop resuming between activations: a partially-run topology is always
// fully consistent.
type Stepper struct {
	top *Topology
	tr  *trace.Trace
}

// Stepper returns a stepper over this topology. Steppers hold no state of
// their own beyond the trace; any number of them share the live ready set.
func (t *Topology) Stepper() *Stepper {
	return &Stepper{top: t}
}

// WithTrace attaches an activation trace collector.
func (s *Stepper) WithTrace(tr *trace.Trace) *Stepper {
	s.tr = tr
	return s
}

// StepOnce performs at most one activation. It returns false once the
// ready set is empty; external mutation (a new node, a message arrival)
// repopulates the set, after which StepOnce resumes working. A behavior
// error aborts the current resumption: the failed node is not re-queued
// and the topology stays consistent for the caller to inspect.
func (s *Stepper) StepOnce() (bool, error) {
	for {
		name, ok := s.top.takeReady()
		if !ok {
			return false, nil
		}
		node, ok := s.top.nodes[name]
		if !ok {
			// queued name went stale between resumptions
			continue
		}
		again, err := node.Activate()
		if err != nil {
			return true, err
		}
		if again {
			s.top.ready[name] = struct{}{}
		}
		logrus.Debugf("activated %s, again=%v, ready=%d", name, again, len(s.top.ready))
		if s.tr != nil {
			s.tr.RecordActivation(name, again, len(s.top.ready))
		}
		return true, nil
	}
}

// Run resumes until the ready set empties and returns the number of
// activations performed. Convergence is the behaviors' responsibility, not
// the stepper's: a behavior that always asks to run again never converges.
func (s *Stepper) Run() (int, error) {
	steps := 0
	for {
		worked, err := s.StepOnce()
		if err != nil {
			return steps, err
		}
		if !worked {
			return steps, nil
		}
		steps++
	}
}

// RunN performs at most n activations and returns how many actually ran.
func (s *Stepper) RunN(n int) (int, error) {
	steps := 0
	for steps < n {
		worked, err := s.StepOnce()
		if err != nil || !worked {
			return steps, err
		}
		steps++
	}
	return steps, nil
}
