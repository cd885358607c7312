package behavior

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/meshsim/meshsim/sim"
)

// Hello is the two-node demo behavior: on its first activation a node
// greets its first peer and records initialized=true in its state bag;
// afterwards it consumes one pending message per activation.
type Hello struct {
	spec string
}

func newHello(spec string, args []string) (sim.Behavior, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("hello takes no arguments, got %v", args)
	}
	return &Hello{spec: spec}, nil
}

func (h *Hello) Spec() string {
	return h.spec
}

func (h *Hello) Execute(ctx sim.NodeContext) (bool, error) {
	state := ctx.State()
	initialized, _ := state["initialized"].(bool)
	if !initialized {
		peers := ctx.Peers()
		if len(peers) == 0 {
			return false, fmt.Errorf("node %s has no peer to greet", ctx.Name())
		}
		if err := ctx.Send(peers[0], "hello world"); err != nil {
			return false, err
		}
		state["initialized"] = true
	} else if msg, ok := ctx.Receive(); ok {
		logrus.Infof("%s got %v", ctx.Name(), msg)
	}
	initialized, _ = state["initialized"].(bool)
	return ctx.Pending() || !initialized, nil
}
