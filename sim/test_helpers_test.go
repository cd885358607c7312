package sim

// Shared test doubles for the sim package tests.

// recordingRouter captures Delivered notifications for node-level tests
// that run without a topology.
type recordingRouter struct {
	calls [][2]string
	err   error
}

func (r *recordingRouter) Delivered(src, dst string) error {
	r.calls = append(r.calls, [2]string{src, dst})
	return r.err
}

// funcBehavior adapts a closure into a Behavior so tests can script node
// logic inline.
type funcBehavior struct {
	spec string
	fn   func(ctx NodeContext) (bool, error)
}

func (b *funcBehavior) Execute(ctx NodeContext) (bool, error) {
	return b.fn(ctx)
}

func (b *funcBehavior) Spec() string {
	return b.spec
}

// helloFn mirrors the hello demo behavior: greet the first peer once, then
// consume pending messages one per activation.
func helloFn(ctx NodeContext) (bool, error) {
	state := ctx.State()
	if initialized, _ := state["initialized"].(bool); !initialized {
		if err := ctx.Send(ctx.Peers()[0], "hello world"); err != nil {
			return false, err
		}
		state["initialized"] = true
	} else {
		ctx.Receive()
	}
	initialized, _ := state["initialized"].(bool)
	return ctx.Pending() || !initialized, nil
}
