package main

import "testing"

func TestMemoryBuilderOverlapRejected(t *testing.T) {
	b := NewMemoryBuilder("test")
	if err := b.Add(0, 0x100, NewRAMUnit(0x100)); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := b.Add(0x80, 0x100, NewRAMUnit(0x100)); err == nil {
		t.Fatal("expected overlap error, got nil")
	}
}

func TestMemoryBuilderSizeMismatchRejected(t *testing.T) {
	b := NewMemoryBuilder("test")
	if err := b.Add(0, 0x200, NewRAMUnit(0x100)); err == nil {
		t.Fatal("expected unit size mismatch error, got nil")
	}
}

func TestMemoryBuilderDispatchesToOwningUnit(t *testing.T) {
	b := NewMemoryBuilder("test")
	ram := NewRAMUnit(0x100)
	rom := NewROMUnit([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	if err := b.Add(0x000, 0x100, ram); err != nil {
		t.Fatal(err)
	}
	if err := b.Add(0x100, 4, rom); err != nil {
		t.Fatal(err)
	}
	space := b.Build()

	space.InitWrite(0x10, byte(0x42))
	space.InitReadByte(0x10)
	if got := space.LatchedByte(0x10); got != 0x42 {
		t.Fatalf("RAM byte roundtrip: got 0x%02X, want 0x42", got)
	}

	space.InitReadWord(0x100)
	if got := space.LatchedWord(0x100); got != 0xAABB {
		t.Fatalf("ROM word read: got 0x%04X, want 0xAABB", got)
	}

	// Write to ROM is a silent no-op (read-only, /OE wired only).
	space.InitWrite(0x100, byte(0xFF))
	space.InitReadByte(0x100)
	if got := space.LatchedByte(0x100); got != 0xAA {
		t.Fatalf("ROM write should be ignored: got 0x%02X, want 0xAA", got)
	}
}

func TestMemoryBuilderMirrorSharesBackingUnit(t *testing.T) {
	b := NewMemoryBuilder("test")
	ram := NewRAMUnit(0x10)
	if err := b.Add(0x000, 0x10, ram); err != nil {
		t.Fatal(err)
	}
	if err := b.Mirror(0x010, 0x10, 0x10, 3, ram); err != nil {
		t.Fatal(err)
	}
	space := b.Build()

	space.InitWrite(0x005, byte(0x7A))
	for _, base := range []uint32{0x000, 0x010, 0x020, 0x030} {
		space.InitReadByte(base + 5)
		if got := space.LatchedByte(base + 5); got != 0x7A {
			t.Fatalf("mirror at 0x%03X: got 0x%02X, want 0x7A", base, got)
		}
	}
}

func TestMemoryBuilderUnmappedAddressIsOpenBus(t *testing.T) {
	b := NewMemoryBuilder("test")
	if err := b.Add(0, 0x10, NewRAMUnit(0x10)); err != nil {
		t.Fatal(err)
	}
	space := b.Build()

	space.InitReadByte(0xFFFF)
	if got := space.LatchedByte(0xFFFF); got != 0xFF {
		t.Fatalf("unmapped byte read: got 0x%02X, want 0xFF", got)
	}
	space.InitReadWord(0xFFFF)
	if got := space.LatchedWord(0xFFFF); got != 0xFFFF {
		t.Fatalf("unmapped word read: got 0x%04X, want 0xFFFF", got)
	}
	if !space.IsIdle(0xFFFF) {
		t.Fatal("unmapped address should report idle")
	}
	// A write to nowhere must not panic.
	space.InitWrite(0xFFFF, byte(0x00))
}
