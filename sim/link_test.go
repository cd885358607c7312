package sim

import "testing"

func TestLink_Push_BoundedDropsOverflow(t *testing.T) {
	// GIVEN a link with maximum depth 2
	l := NewLink(2)

	// WHEN three messages are pushed
	l.Push("one")
	l.Push("two")
	l.Push("three")

	// THEN depth stays at the limit and the retained messages pop in push order
	if l.Depth() != 2 {
		t.Fatalf("Depth: got %d, want 2", l.Depth())
	}
	for _, want := range []string{"one", "two"} {
		got, ok := l.Pop()
		if !ok || got != want {
			t.Errorf("Pop: got (%v, %v), want (%q, true)", got, ok, want)
		}
	}
	if _, ok := l.Pop(); ok {
		t.Error("Pop on drained link: got a message, want none")
	}
}

func TestLink_Push_UnboundedNeverDrops(t *testing.T) {
	// GIVEN a link with no depth limit
	l := NewLink(0)

	// WHEN many messages are pushed
	for i := 0; i < 100; i++ {
		l.Push(i)
	}

	// THEN every message is retained in order
	if l.Depth() != 100 {
		t.Fatalf("Depth: got %d, want 100", l.Depth())
	}
	for i := 0; i < 100; i++ {
		got, ok := l.Pop()
		if !ok || got != i {
			t.Fatalf("Pop %d: got (%v, %v), want (%d, true)", i, got, ok, i)
		}
	}
}

func TestLink_Pop_EmptyReturnsFalse(t *testing.T) {
	l := NewLink(3)
	if msg, ok := l.Pop(); ok {
		t.Errorf("Pop on empty link: got (%v, true), want (nil, false)", msg)
	}
}

func TestLink_SnapshotRestore_RoundTrip(t *testing.T) {
	// GIVEN a bounded link with queued messages
	l := NewLink(5)
	l.Push("a")
	l.Push("b")

	// WHEN its snapshot is restored into a fresh link
	restored := NewLink(0)
	restored.Restore(l.Snapshot())

	// THEN depth limit and contents carry over verbatim
	if restored.MaxDepth() != 5 {
		t.Errorf("MaxDepth: got %d, want 5", restored.MaxDepth())
	}
	if restored.Depth() != 2 {
		t.Fatalf("Depth: got %d, want 2", restored.Depth())
	}
	for _, want := range []string{"a", "b"} {
		if got, _ := restored.Pop(); got != want {
			t.Errorf("Pop: got %v, want %q", got, want)
		}
	}
}

func TestLink_Snapshot_IsolatedFromLaterPushes(t *testing.T) {
	// GIVEN a snapshot taken before further mutation
	l := NewLink(0)
	l.Push("kept")
	snap := l.Snapshot()

	// WHEN the live link keeps changing
	l.Push("later")
	l.Pop()

	// THEN the snapshot still holds only the original message
	if len(snap.Queue) != 1 || snap.Queue[0] != "kept" {
		t.Errorf("snapshot queue: got %v, want [kept]", snap.Queue)
	}
}
