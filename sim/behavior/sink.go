package behavior

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/meshsim/meshsim/sim"
)

// Sink consumes one pending message per activation, counting what it ate
// under the "consumed" state key.
type Sink struct {
	spec string
}

func newSink(spec string, args []string) (sim.Behavior, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("sink takes no arguments, got %v", args)
	}
	return &Sink{spec: spec}, nil
}

func (s *Sink) Spec() string {
	return s.spec
}

func (s *Sink) Execute(ctx sim.NodeContext) (bool, error) {
	if msg, ok := ctx.Receive(); ok {
		count, _ := ctx.State()["consumed"].(int)
		ctx.State()["consumed"] = count + 1
		logrus.Infof("%s consumed %v", ctx.Name(), msg)
	}
	return ctx.Pending(), nil
}
