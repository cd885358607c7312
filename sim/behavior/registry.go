// Package behavior provides the builtin behavior library and the resolver
// that turns persisted behavior text back into executable units.
//
// A behavior spec is a line of text whose first whitespace-separated token
// names the kind ("hello", "relay", "sink", "seq"); the remaining tokens
// are arguments to that kind's factory. Snapshots round-trip the full spec
// text verbatim, so a topology dumped here loads back to the same units.
package behavior

import (
	"sort"
	"strings"

	"github.com/meshsim/meshsim/sim"
)

// Factory builds a behavior from its full spec text and the arguments
// following the kind keyword.
type Factory func(spec string, args []string) (sim.Behavior, error)

var factories = map[string]Factory{
	"hello": newHello,
	"relay": newRelay,
	"sink":  newSink,
	"seq":   newSeq,
}

// Register adds a factory for a kind keyword. Later registrations replace
// earlier ones, letting embedders override builtins.
func Register(kind string, f Factory) {
	factories[kind] = f
}

// Kinds lists the registered kind keywords in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Resolve is a sim.BehaviorResolver over the registered factories. The
// first whitespace-separated token of the spec selects the factory;
// unrecognized specs return (nil, nil) so the loader keeps them opaque.
func Resolve(_ string, spec string) (sim.Behavior, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, nil
	}
	f, ok := factories[fields[0]]
	if !ok {
		return nil, nil
	}
	return f(spec, fields[1:])
}
