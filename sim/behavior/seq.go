package behavior

import (
	"fmt"
	"strconv"

	"github.com/meshsim/meshsim/sim"
)

// Seq emits the integers 0..total-1 to every peer, one value per
// activation, tracking progress under the "next" state key. It shows the
// bounded-reactivation pattern: the node keeps re-scheduling itself until
// the sequence is exhausted, then goes quiet.
type Seq struct {
	spec  string
	total int
}

func newSeq(spec string, args []string) (sim.Behavior, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("seq takes exactly one count argument, got %v", args)
	}
	total, err := strconv.Atoi(args[0])
	if err != nil || total < 0 {
		return nil, fmt.Errorf("seq count must be a non-negative integer, got %q", args[0])
	}
	return &Seq{spec: spec, total: total}, nil
}

func (s *Seq) Spec() string {
	return s.spec
}

func (s *Seq) Execute(ctx sim.NodeContext) (bool, error) {
	next, _ := ctx.State()["next"].(int)
	if next >= s.total {
		return false, nil
	}
	for _, peer := range ctx.Peers() {
		if err := ctx.Send(peer, next); err != nil {
			return false, err
		}
	}
	ctx.State()["next"] = next + 1
	return next+1 < s.total, nil
}
