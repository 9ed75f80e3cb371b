package tui

import "testing"

func TestHistoryPushAndPrev(t *testing.T) {
	h := NewHistory(10)
	h.Push("look")
	h.Push("north")

	if got, ok := h.Prev(); !ok || got != "north" {
		t.Errorf("Prev = %q, %v", got, ok)
	}
	if got, ok := h.Prev(); !ok || got != "look" {
		t.Errorf("Prev = %q, %v", got, ok)
	}
	// At the oldest entry, Prev stays put.
	if got, ok := h.Prev(); !ok || got != "look" {
		t.Errorf("Prev = %q, %v", got, ok)
	}
}

func TestHistoryNext(t *testing.T) {
	h := NewHistory(10)
	h.Push("look")
	h.Push("north")
	h.Prev()
	h.Prev()

	if got, ok := h.Next(); !ok || got != "north" {
		t.Errorf("Next = %q, %v", got, ok)
	}
	// Past the newest entry: back to fresh input.
	if _, ok := h.Next(); ok {
		t.Error("Next past the end should report false")
	}
	if _, ok := h.Next(); ok {
		t.Error("Next while not navigating should report false")
	}
}

func TestHistorySkipsConsecutiveDuplicates(t *testing.T) {
	h := NewHistory(10)
	h.Push("look")
	h.Push("look")
	h.Push("north")
	h.Push("look")

	// The stored sequence is look, north, look: the repeat was dropped.
	var got []string
	for i := 0; i < 3; i++ {
		entry, ok := h.Prev()
		if !ok {
			t.Fatal("history exhausted early")
		}
		got = append(got, entry)
	}
	if got[0] != "look" || got[1] != "north" || got[2] != "look" {
		t.Errorf("entries newest-first = %v", got)
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(2)
	h.Push("one")
	h.Push("two")
	h.Push("three")

	h.Prev()
	h.Prev()
	if got, _ := h.Prev(); got != "two" {
		t.Errorf("oldest = %q, want 'two' after eviction", got)
	}
}

func TestHistoryResetCursor(t *testing.T) {
	h := NewHistory(10)
	h.Push("look")
	h.Prev()
	h.ResetCursor()

	if got, ok := h.Prev(); !ok || got != "look" {
		t.Errorf("Prev after reset = %q, %v", got, ok)
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(10)
	if _, ok := h.Prev(); ok {
		t.Error("Prev on empty history should report false")
	}
	if _, ok := h.Next(); ok {
		t.Error("Next on empty history should report false")
	}
}
