package behavior

import (
	"fmt"

	"github.com/meshsim/meshsim/sim"
)

// Relay floods one pending message per activation to every peer. Cycles in
// the topology will circulate messages indefinitely; bounding that is the
// operator's concern, not the relay's.
type Relay struct {
	spec string
}

func newRelay(spec string, args []string) (sim.Behavior, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("relay takes no arguments, got %v", args)
	}
	return &Relay{spec: spec}, nil
}

func (r *Relay) Spec() string {
	return r.spec
}

func (r *Relay) Execute(ctx sim.NodeContext) (bool, error) {
	msg, ok := ctx.Receive()
	if !ok {
		return false, nil
	}
	for _, peer := range ctx.Peers() {
		if err := ctx.Send(peer, msg); err != nil {
			return false, err
		}
	}
	return ctx.Pending(), nil
}
