// Implements the Topology, which owns every node and link, the behavior
// registry, and the ready set the stepper drains.

package sim

import "sort"

// Topology is the registry and router for one simulation. All mutable
// state hangs off it; the single-activation-at-a-time rule in the stepper
// is the entire concurrency discipline, so no locking is needed.
type Topology struct {
	nodes map[string]*Node
	// links[src][dst] is the directional link carrying messages from src
	// to dst. The same *Link is the dst node's incoming half and the src
	// node's outgoing half.
	links        map[string]map[string]*Link
	behaviors    map[string]Behavior
	nodeBehavior map[string]string
	ready        map[string]struct{}
}

// NewTopology creates an empty topology.
func NewTopology() *Topology {
	return &Topology{
		nodes:        make(map[string]*Node),
		links:        make(map[string]map[string]*Link),
		behaviors:    make(map[string]Behavior),
		nodeBehavior: make(map[string]string),
		ready:        make(map[string]struct{}),
	}
}

// AddBehavior registers a named behavior unit. Re-registering a name
// replaces the unit for nodes bound afterwards; already-bound nodes keep
// the unit they were given.
func (t *Topology) AddBehavior(name string, b Behavior) {
	t.behaviors[name] = b
}

// AddNode registers a new node, optionally bound to a registered behavior,
// and seeds the ready set so initialization logic gets a first activation
// even before any message arrives.
func (t *Topology) AddNode(name, behaviorName string, state map[string]any) (*Node, error) {
	if _, ok := t.nodes[name]; ok {
		return nil, &DuplicateNameError{Name: name}
	}
	if behaviorName != "" {
		if _, ok := t.behaviors[behaviorName]; !ok {
			return nil, &UnknownBehaviorError{Name: behaviorName}
		}
	}
	node := NewNode(name, state, t)
	t.nodes[name] = node
	t.links[name] = make(map[string]*Link)
	if behaviorName != "" {
		node.SetBehavior(t.behaviors[behaviorName])
		t.nodeBehavior[name] = behaviorName
	}
	t.ready[name] = struct{}{}
	return node, nil
}

// DelNode removes a node, every link touching it, and its ready-set entry.
// Removing an unknown name is a no-op: cascading cleanup may call this
// more than once.
func (t *Topology) DelNode(name string) {
	if _, ok := t.nodes[name]; !ok {
		return
	}
	delete(t.nodes, name)
	delete(t.links, name)
	delete(t.nodeBehavior, name)
	delete(t.ready, name)
	for other, peerLinks := range t.links {
		delete(peerLinks, name)
		t.nodes[other].dropConnection(name)
	}
}

// AddConnection creates the two directional links of a duplex connection
// between a and b, both sharing maxDepth, and wires them into both nodes.
func (t *Topology) AddConnection(a, b string, maxDepth int) error {
	nodeA, ok := t.nodes[a]
	if !ok {
		return &UnknownNodeError{Name: a}
	}
	nodeB, ok := t.nodes[b]
	if !ok {
		return &UnknownNodeError{Name: b}
	}
	// a self connection would alias both directions onto one peer entry
	if a == b {
		return &DuplicateConnectionError{Source: a, Destination: b}
	}
	if _, ok := t.links[a][b]; ok {
		return &DuplicateConnectionError{Source: a, Destination: b}
	}
	ab, ba := NewLink(maxDepth), NewLink(maxDepth)
	if err := nodeA.AddConnection(b, ba, ab); err != nil {
		return err
	}
	if err := nodeB.AddConnection(a, ab, ba); err != nil {
		nodeA.dropConnection(b)
		return err
	}
	t.links[a][b] = ab
	t.links[b][a] = ba
	return nil
}

// SetNodeBehavior rebinds a node to a registered behavior, or detaches it
// when behaviorName is empty. Binding a behavior re-adds the node to the
// ready set so the new behavior's initialization can run.
func (t *Topology) SetNodeBehavior(name, behaviorName string) error {
	node, ok := t.nodes[name]
	if !ok {
		return &UnknownNodeError{Name: name}
	}
	if behaviorName == "" {
		node.SetBehavior(nil)
		t.nodeBehavior[name] = ""
		return nil
	}
	b, ok := t.behaviors[behaviorName]
	if !ok {
		return &UnknownBehaviorError{Name: behaviorName}
	}
	node.SetBehavior(b)
	t.nodeBehavior[name] = behaviorName
	t.ready[name] = struct{}{}
	return nil
}

// SetNodeState sets one key in a node's state bag; a nil value deletes the
// key instead.
func (t *Topology) SetNodeState(name, key string, value any) error {
	node, ok := t.nodes[name]
	if !ok {
		return &UnknownNodeError{Name: name}
	}
	if value == nil {
		delete(node.state, key)
		return nil
	}
	node.state[key] = value
	return nil
}

// Delivered implements Router: after src pushed a message toward dst, mark
// src as ready-to-receive on dst and schedule dst for activation.
func (t *Topology) Delivered(src, dst string) error {
	node, ok := t.nodes[dst]
	if !ok {
		return &UnknownNodeError{Name: dst}
	}
	node.markReady(src)
	t.ready[dst] = struct{}{}
	return nil
}

// Node returns the named node.
func (t *Topology) Node(name string) (*Node, bool) {
	node, ok := t.nodes[name]
	return node, ok
}

// NodeNames lists all node names in sorted order.
func (t *Topology) NodeNames() []string {
	return sortedKeys(t.nodes)
}

// Link returns the directional link carrying messages from src to dst.
func (t *Topology) Link(src, dst string) (*Link, bool) {
	link, ok := t.links[src][dst]
	return link, ok
}

// Behavior returns the registered behavior unit for name.
func (t *Topology) Behavior(name string) (Behavior, bool) {
	b, ok := t.behaviors[name]
	return b, ok
}

// BehaviorNames lists all registered behavior names in sorted order.
func (t *Topology) BehaviorNames() []string {
	return sortedKeys(t.behaviors)
}

// NodeBehaviorName returns the behavior name a node is bound to, empty
// when the node is unbound or unknown.
func (t *Topology) NodeBehaviorName(name string) string {
	return t.nodeBehavior[name]
}

// Ready returns a sorted copy of the ready set.
func (t *Topology) Ready() []string {
	return sortedKeys(t.ready)
}

// takeReady removes and returns one arbitrary name from the ready set.
func (t *Topology) takeReady() (string, bool) {
	for name := range t.ready {
		delete(t.ready, name)
		return name, true
	}
	return "", false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
