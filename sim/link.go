// Implements the Link, one directional half of a duplex connection between
// two nodes. Messages are delivered in push order.

package sim

// Message is an opaque value carried between nodes. The engine never
// inspects message contents; only behaviors assign them meaning.
type Message = any

// Link is a FIFO queue of messages with an optional depth limit.
// A zero maxDepth means unbounded.
type Link struct {
	queue    []Message
	maxDepth int
}

// NewLink creates a Link with the given depth limit (0 = unbounded).
func NewLink(maxDepth int) *Link {
	return &Link{maxDepth: maxDepth}
}

// Depth returns the number of queued messages.
func (l *Link) Depth() int {
	return len(l.queue)
}

// MaxDepth returns the depth limit, 0 meaning unbounded.
func (l *Link) MaxDepth() int {
	return l.maxDepth
}

// Push appends a message at the tail. When the link is already at its
// depth limit the message is dropped: backpressure is lossy, not blocking.
func (l *Link) Push(msg Message) {
	if l.maxDepth > 0 && len(l.queue) >= l.maxDepth {
		return
	}
	l.queue = append(l.queue, msg)
}

// Pop removes and returns the head message. The second return value is
// false when the link is empty. Pop never blocks.
func (l *Link) Pop() (Message, bool) {
	if len(l.queue) == 0 {
		return nil, false
	}
	msg := l.queue[0]
	l.queue = l.queue[1:]
	return msg, true
}

// Snapshot exports the depth limit and queued messages for persistence.
func (l *Link) Snapshot() LinkSnapshot {
	queue := make([]Message, len(l.queue))
	copy(queue, l.queue)
	return LinkSnapshot{MaxDepth: l.maxDepth, Queue: queue}
}

// Restore replaces the depth limit and queue contents verbatim.
func (l *Link) Restore(snap LinkSnapshot) {
	l.maxDepth = snap.MaxDepth
	l.queue = make([]Message, len(snap.Queue))
	copy(l.queue, snap.Queue)
}
