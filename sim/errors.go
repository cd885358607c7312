// Structural error types returned by topology and node mutations. A failed
// mutation never leaves the topology partially changed.

package sim

import "fmt"

// DuplicateNameError reports an attempt to reuse a node name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("node name %q already in use", e.Name)
}

// DuplicateConnectionError reports an attempt to connect an already
// connected ordered pair of nodes.
type DuplicateConnectionError struct {
	Source      string
	Destination string
}

func (e *DuplicateConnectionError) Error() string {
	return fmt.Sprintf("connection %q -> %q already exists", e.Source, e.Destination)
}

// UnknownNodeError reports an operation referencing a node that is not
// registered in the topology.
type UnknownNodeError struct {
	Name string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("no such node %q", e.Name)
}

// UnknownPeerError reports a send toward a peer the node has no outgoing
// connection to.
type UnknownPeerError struct {
	Node string
	Peer string
}

func (e *UnknownPeerError) Error() string {
	return fmt.Sprintf("node %q has no connection to peer %q", e.Node, e.Peer)
}

// UnknownBehaviorError reports a reference to an unregistered behavior name.
type UnknownBehaviorError struct {
	Name string
}

func (e *UnknownBehaviorError) Error() string {
	return fmt.Sprintf("no such behavior %q", e.Name)
}

// BehaviorExecutionError wraps an error raised inside a behavior during an
// activation. It propagates out of the stepper's current resumption; the
// caller decides whether to halt, drop the node, or abort the run.
type BehaviorExecutionError struct {
	Node string
	Err  error
}

func (e *BehaviorExecutionError) Error() string {
	return fmt.Sprintf("behavior on node %q failed: %v", e.Node, e.Err)
}

func (e *BehaviorExecutionError) Unwrap() error {
	return e.Err
}
