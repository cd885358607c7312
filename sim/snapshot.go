// The persisted form of a topology and its YAML codec. Behavior text is
// round-tripped verbatim; the engine never interprets it.

package sim

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// linkKeySep joins the ordered (source, destination) pair in link keys.
// Node names must not contain it.
const linkKeySep = " -> "

// LinkSnapshot is the persisted form of one directional link.
type LinkSnapshot struct {
	MaxDepth int       `yaml:"maxDepth"`
	Queue    []Message `yaml:"queue"`
}

// NodeSnapshot is the persisted form of one node.
type NodeSnapshot struct {
	State        map[string]any `yaml:"state"`
	BehaviorName string         `yaml:"behaviorName"`
}

// TopologySnapshot is the persisted form of a whole topology: behavior
// texts, node states and bindings, and one entry per directional link
// present in the adjacency structure.
type TopologySnapshot struct {
	Behaviors map[string]string       `yaml:"behaviors"`
	Nodes     map[string]NodeSnapshot `yaml:"nodes"`
	Links     map[string]LinkSnapshot `yaml:"links"`
}

// LinkKey encodes the ordered (src, dst) pair used in the links section.
func LinkKey(src, dst string) string {
	return src + linkKeySep + dst
}

// ParseLinkKey splits a links-section key back into its ordered pair.
func ParseLinkKey(key string) (src, dst string, err error) {
	src, dst, ok := strings.Cut(key, linkKeySep)
	if !ok || src == "" || dst == "" {
		return "", "", fmt.Errorf("malformed link key %q", key)
	}
	return src, dst, nil
}

// Snapshot exports the full topology state. Queue contents and state bags
// are copied, so later mutation does not bleed into the snapshot.
func (t *Topology) Snapshot() *TopologySnapshot {
	snap := &TopologySnapshot{
		Behaviors: make(map[string]string, len(t.behaviors)),
		Nodes:     make(map[string]NodeSnapshot, len(t.nodes)),
		Links:     make(map[string]LinkSnapshot),
	}
	for name, b := range t.behaviors {
		snap.Behaviors[name] = b.Spec()
	}
	for name, node := range t.nodes {
		state := make(map[string]any, len(node.state))
		for k, v := range node.state {
			state[k] = v
		}
		snap.Nodes[name] = NodeSnapshot{State: state, BehaviorName: t.nodeBehavior[name]}
	}
	for src, peerLinks := range t.links {
		for dst, link := range peerLinks {
			snap.Links[LinkKey(src, dst)] = link.Snapshot()
		}
	}
	return snap
}

// RestoreTopology rebuilds a topology from a snapshot. Behaviors are
// registered first, resolved through resolve when one is supplied; specs
// the resolver does not recognize (or all specs, when resolve is nil) are
// kept as OpaqueBehavior so the text survives the next dump. Nodes come
// next, bound to their recorded behavior, then links: the duplex
// connection is created once per unordered pair, and each directional
// entry overwrites its link's depth limit and queue verbatim. Links that
// come back with queued messages re-mark their destination as
// ready-to-receive, since the dump format omits that transient state.
func RestoreTopology(snap *TopologySnapshot, resolve BehaviorResolver) (*Topology, error) {
	t := NewTopology()
	for _, name := range sortedKeys(snap.Behaviors) {
		spec := snap.Behaviors[name]
		var b Behavior
		if resolve != nil {
			resolved, err := resolve(name, spec)
			if err != nil {
				return nil, fmt.Errorf("resolving behavior %q: %w", name, err)
			}
			b = resolved
		}
		if b == nil {
			b = NewOpaqueBehavior(spec)
		}
		t.AddBehavior(name, b)
	}
	for _, name := range sortedKeys(snap.Nodes) {
		ns := snap.Nodes[name]
		state := make(map[string]any, len(ns.State))
		for k, v := range ns.State {
			state[k] = v
		}
		if _, err := t.AddNode(name, ns.BehaviorName, state); err != nil {
			return nil, err
		}
	}
	for _, key := range sortedKeys(snap.Links) {
		src, dst, err := ParseLinkKey(key)
		if err != nil {
			return nil, err
		}
		ls := snap.Links[key]
		if _, ok := t.links[src][dst]; !ok {
			if err := t.AddConnection(src, dst, ls.MaxDepth); err != nil {
				return nil, err
			}
		}
		link := t.links[src][dst]
		link.Restore(ls)
		if link.Depth() > 0 {
			if err := t.Delivered(src, dst); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// literalString marshals as a YAML literal block scalar, keeping
// multi-line behavior text readable and editable in dumps.
type literalString string

func (s literalString) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.LiteralStyle, Value: string(s)}, nil
}

// EncodeYAML renders the snapshot as YAML. The behaviors mapping is
// emitted first, block-styled, then the nodes and links mappings; the two
// chunks concatenate into a single document.
func (s *TopologySnapshot) EncodeYAML() ([]byte, error) {
	behaviors := make(map[string]literalString, len(s.Behaviors))
	for name, spec := range s.Behaviors {
		behaviors[name] = literalString(spec)
	}
	head, err := yaml.Marshal(struct {
		Behaviors map[string]literalString `yaml:"behaviors"`
	}{behaviors})
	if err != nil {
		return nil, fmt.Errorf("encoding behaviors: %w", err)
	}
	body, err := yaml.Marshal(struct {
		Nodes map[string]NodeSnapshot `yaml:"nodes"`
		Links map[string]LinkSnapshot `yaml:"links"`
	}{s.Nodes, s.Links})
	if err != nil {
		return nil, fmt.Errorf("encoding topology: %w", err)
	}
	return append(head, body...), nil
}

// DecodeYAML parses a snapshot produced by EncodeYAML or written by hand.
func DecodeYAML(data []byte) (*TopologySnapshot, error) {
	var snap TopologySnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing topology snapshot: %w", err)
	}
	return &snap, nil
}

// LoadTopologyFile reads a snapshot file and restores the topology.
func LoadTopologyFile(path string, resolve BehaviorResolver) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading topology file: %w", err)
	}
	snap, err := DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	return RestoreTopology(snap, resolve)
}

// DumpTopologyFile writes the topology's snapshot to path.
func DumpTopologyFile(t *Topology, path string) error {
	data, err := t.Snapshot().EncodeYAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
