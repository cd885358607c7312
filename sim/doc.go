// Package sim provides a steppable simulation of message-passing nodes.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - link.go: one directional half of a duplex connection, a bounded FIFO queue
//   - node.go: one actor, its state bag and send/receive primitives
//   - topology.go: node/link ownership, the behavior registry, routing, the ready set
//
// stepper.go drives the topology one activation at a time; snapshot.go
// defines the persisted YAML form and its load/dump contract.
//
// # Architecture
//
// The sim package defines the engine and its extension points; implementations
// live in sub-packages:
//   - sim/behavior/: the builtin behavior library and spec-text resolver
//   - sim/trace/: activation trace recording (pure data, no sim dependency)
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Behavior: one unit of node logic, run once per activation
//   - NodeContext: the capability surface a behavior sees (state, send, receive, peers)
//   - Router: the delivery callback injected into every node
//   - BehaviorResolver: turns persisted behavior text back into executable units
package sim
