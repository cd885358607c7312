// Implements the Node, one addressable actor in the topology: a state bag,
// the two halves of each duplex connection keyed by peer name, the set of
// peers with unread messages, and an optional behavior.

package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Router is the delivery callback a node notifies after pushing onto an
// outgoing link. The topology implements it; every node receives it at
// construction instead of closing over its owner.
type Router interface {
	Delivered(src, dst string) error
}

// Node is one simulation actor. All of its mutable state is owned by the
// topology and only ever touched by one activation at a time.
type Node struct {
	name     string
	state    map[string]any
	rx       map[string]*Link
	tx       map[string]*Link
	rxReady  map[string]struct{}
	behavior Behavior
	router   Router
}

// NewNode creates a node with the given initial state (nil for empty) and
// router handle. Nodes are normally created through Topology.AddNode.
func NewNode(name string, state map[string]any, router Router) *Node {
	if state == nil {
		state = make(map[string]any)
	}
	return &Node{
		name:    name,
		state:   state,
		rx:      make(map[string]*Link),
		tx:      make(map[string]*Link),
		rxReady: make(map[string]struct{}),
		router:  router,
	}
}

// Name returns the node's immutable identity.
func (n *Node) Name() string {
	return n.name
}

// State returns the node's state bag. Behaviors may mutate it freely; the
// engine does not interpret its contents.
func (n *Node) State() map[string]any {
	return n.state
}

// Behavior returns the currently assigned behavior, nil when unassigned.
func (n *Node) Behavior() Behavior {
	return n.behavior
}

// SetBehavior assigns the node's behavior, or clears it when b is nil.
func (n *Node) SetBehavior(b Behavior) {
	n.behavior = b
}

// Peers lists connected peer names in sorted order.
func (n *Node) Peers() []string {
	peers := make([]string, 0, len(n.tx))
	for peer := range n.tx {
		peers = append(peers, peer)
	}
	sort.Strings(peers)
	return peers
}

// Pending reports whether any peer is marked as having unread messages.
func (n *Node) Pending() bool {
	return len(n.rxReady) > 0
}

// AddConnection registers both halves of a duplex connection to a peer.
// The incoming and outgoing link mappings always cover the same peers.
func (n *Node) AddConnection(peer string, rx, tx *Link) error {
	if _, ok := n.rx[peer]; ok {
		return &DuplicateConnectionError{Source: n.name, Destination: peer}
	}
	n.rx[peer] = rx
	n.tx[peer] = tx
	return nil
}

func (n *Node) dropConnection(peer string) {
	delete(n.rx, peer)
	delete(n.tx, peer)
	delete(n.rxReady, peer)
}

func (n *Node) markReady(peer string) {
	n.rxReady[peer] = struct{}{}
}

// Receive pops one message from some ready peer's incoming link. Which
// ready peer is chosen is unspecified. A peer stays in the ready set only
// while its link still holds messages. The second return value is false
// once every ready peer is exhausted.
func (n *Node) Receive() (Message, bool) {
	for peer := range n.rxReady {
		link, ok := n.rx[peer]
		if !ok || link.Depth() == 0 {
			// stale entry, e.g. the peer was removed after delivery
			delete(n.rxReady, peer)
			continue
		}
		msg, _ := link.Pop()
		if link.Depth() == 0 {
			delete(n.rxReady, peer)
		}
		return msg, true
	}
	return nil, false
}

// Send pushes a message onto the outgoing link to dst and notifies the
// router so the destination gets scheduled.
func (n *Node) Send(dst string, msg Message) error {
	link, ok := n.tx[dst]
	if !ok {
		return &UnknownPeerError{Node: n.name, Peer: dst}
	}
	logrus.Debugf("%s sends %s: %v", n.name, dst, msg)
	link.Push(msg)
	return n.router.Delivered(n.name, dst)
}

// Activate runs the assigned behavior exactly once, to completion, and
// returns its reactivation request. A node without a behavior performs no
// work and never asks to run again.
func (n *Node) Activate() (bool, error) {
	if n.behavior == nil {
		return false, nil
	}
	again, err := n.behavior.Execute(n)
	if err != nil {
		return false, &BehaviorExecutionError{Node: n.name, Err: err}
	}
	return again, nil
}
