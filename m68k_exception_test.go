package main

import "testing"

func TestExceptionManagerGroupPriority(t *testing.T) {
	m := NewExceptionManager()
	// Raise in a deliberately adverse order: group 1 first, then group 2,
	// then group 0, to confirm Next() ignores raise order entirely.
	m.Raise(pendingException{kind: excIllegal, vector: vecIllegal})
	m.Raise(pendingException{kind: excTrap, vector: vecTrapBase})
	m.Raise(pendingException{kind: excAddressError, vector: vecAddressError})

	e, ok := m.Next()
	if !ok || e.kind != excAddressError {
		t.Fatalf("first Next(): got kind %v ok=%v, want excAddressError", e.kind, ok)
	}
	e, ok = m.Next()
	if !ok || e.kind != excTrap {
		t.Fatalf("second Next(): got kind %v ok=%v, want excTrap", e.kind, ok)
	}
	e, ok = m.Next()
	if !ok || e.kind != excIllegal {
		t.Fatalf("third Next(): got kind %v ok=%v, want excIllegal", e.kind, ok)
	}
	if m.HasPending() {
		t.Fatal("expected no pending exceptions left")
	}
}

func TestExceptionManagerFIFOWithinGroup(t *testing.T) {
	m := NewExceptionManager()
	m.Raise(pendingException{kind: excIllegal, vector: vecIllegal})
	m.Raise(pendingException{kind: excTrace, vector: vecTrace})

	e, _ := m.Next()
	if e.kind != excIllegal {
		t.Fatalf("expected FIFO order within group 1: got %v first, want excIllegal", e.kind)
	}
	e, _ = m.Next()
	if e.kind != excTrace {
		t.Fatalf("expected FIFO order within group 1: got %v second, want excTrace", e.kind)
	}
}
