// The Behavior extension point. Concrete implementations live in
// sim/behavior and are registered there by a kind keyword.

package sim

// NodeContext is the capability surface a behavior sees during one
// activation: the owning node's identity, state bag, and messaging
// primitives. *Node implements it.
type NodeContext interface {
	Name() string
	State() map[string]any
	Send(dst string, msg Message) error
	Receive() (Message, bool)
	Peers() []string
	Pending() bool
}

// Behavior is one unit of node logic, registered by name and shared by any
// number of nodes. Execute runs once per activation, to completion, and
// returns whether the node wants another activation without external
// stimulus. Spec returns the textual form persisted by snapshots; the
// engine round-trips that text verbatim and never interprets it.
type Behavior interface {
	Execute(ctx NodeContext) (again bool, err error)
	Spec() string
}

// BehaviorResolver turns a persisted (name, spec) pair back into a
// Behavior. Returning (nil, nil) means the resolver does not recognize the
// spec; the loader then falls back to an OpaqueBehavior so the text
// survives the next dump.
type BehaviorResolver func(name, spec string) (Behavior, error)

// OpaqueBehavior preserves behavior text the current process cannot
// execute. It performs no work and never asks for reactivation.
type OpaqueBehavior struct {
	spec string
}

// NewOpaqueBehavior wraps behavior text without interpreting it.
func NewOpaqueBehavior(spec string) *OpaqueBehavior {
	return &OpaqueBehavior{spec: spec}
}

func (b *OpaqueBehavior) Execute(NodeContext) (bool, error) {
	return false, nil
}

func (b *OpaqueBehavior) Spec() string {
	return b.spec
}
