package main

import "testing"

// TestVDPHCounterSkipH40 walks the H40 mode's documented H-counter skip
// (0xB6 -> 0xE4) rather than a natural rollover.
func TestVDPHCounterSkipH40(t *testing.T) {
	v := NewVDP()
	v.SetMode(true, false, false) // H40, V28, NTSC
	v.hv.H = 0xB5

	v.CycleHV() // H: 0xB5 -> 0xB6 (no skip yet, natural increment)
	if v.hv.H != 0xB6 {
		t.Fatalf("H after first cycle: got 0x%02X, want 0xB6", v.hv.H)
	}
	v.CycleHV() // H: 0xB6 -> skip to 0xE4
	if v.hv.H != 0xE4 {
		t.Fatalf("H after skip: got 0x%02X, want 0xE4", v.hv.H)
	}
}

// TestVDPHCounterSkipH32 walks the H32 mode's documented skip
// (0x93 -> 0xE9).
func TestVDPHCounterSkipH32(t *testing.T) {
	v := NewVDP()
	v.SetMode(false, false, false) // H32, V28, NTSC
	v.hv.H = 0x92

	v.CycleHV()
	if v.hv.H != 0x93 {
		t.Fatalf("H after first cycle: got 0x%02X, want 0x93", v.hv.H)
	}
	v.CycleHV()
	if v.hv.H != 0xE9 {
		t.Fatalf("H after skip: got 0x%02X, want 0xE9", v.hv.H)
	}
}

// TestVDPVCounterSkipNTSCH32V28 exercises the NTSC H32/V28 V-counter skip
// (0xEA -> 0xE5), which only fires when H crosses the H32 V-trigger point
// (0x85).
func TestVDPVCounterSkipNTSCH32V28(t *testing.T) {
	v := NewVDP()
	v.SetMode(false, false, false) // H32, V28, NTSC
	v.hv.V = 0xEA
	v.hv.H = 0x84

	v.CycleHV() // H: 0x84 -> 0x85, which is this mode's V-trigger point
	if v.hv.H != 0x85 {
		t.Fatalf("H: got 0x%02X, want 0x85", v.hv.H)
	}
	if v.hv.V != 0xE5 {
		t.Fatalf("V after NTSC H32/V28 skip: got 0x%02X, want 0xE5", v.hv.V)
	}
}

// TestVDPVCounterSkipPALV30 exercises the documented PAL V30 skip
// (0x0A -> 0xD2).
func TestVDPVCounterSkipPALV30(t *testing.T) {
	v := NewVDP()
	v.SetMode(true, true, true) // H40, V30, PAL
	v.hv.V = 0x0A
	v.hv.H = 0xA4

	v.CycleHV() // H: 0xA4 -> 0xA5, this mode's V-trigger point
	if v.hv.V != 0xD2 {
		t.Fatalf("V after PAL V30 skip: got 0x%02X, want 0xD2", v.hv.V)
	}
}

func TestVDPVBlankFlag(t *testing.T) {
	v := NewVDP()
	v.SetMode(true, false, false) // V28
	v.hv.V = 0xDF
	if v.vblankFlag() {
		t.Fatal("V=0xDF should be in the active display, not vblank")
	}
	v.hv.V = 0xE0
	if !v.vblankFlag() {
		t.Fatal("V=0xE0 should be in vblank")
	}
}

// TestVDPVInterruptLatchesAtDocumentedPoint confirms VINT latches at
// V==0xE0, H==0x02 and raises the M68K interrupt line when VBlankIE is set.
func TestVDPVInterruptLatchesAtDocumentedPoint(t *testing.T) {
	v := NewVDP()
	v.SetMode(true, false, false)
	v.Regs.R[1] = 0x20 // VBlankIE
	v.hv.V = 0xE0
	v.hv.H = 0x01

	var raisedLevel uint8
	v.RaiseM68KInterrupt = func(level uint8) { raisedLevel = level }

	v.CycleHV() // H: 0x01 -> 0x02, crossing the VINT latch point
	if !v.vintPending {
		t.Fatal("expected vintPending to latch at V=0xE0,H=0x02")
	}
	if raisedLevel != 6 {
		t.Fatalf("expected VINT to raise IPL 6, got %d", raisedLevel)
	}

	v.AcknowledgeInterrupt(6)
	if v.vintPending {
		t.Fatal("AcknowledgeInterrupt(6) should clear vintPending")
	}
}

func TestVDPActiveLinesAndLineWidth(t *testing.T) {
	v := NewVDP()
	v.SetMode(true, false, false) // H40, V28
	if v.activeLines() != 224 {
		t.Fatalf("activeLines() V28: got %d, want 224", v.activeLines())
	}
	if v.lineWidth() != 320 {
		t.Fatalf("lineWidth() H40: got %d, want 320", v.lineWidth())
	}
	v.SetMode(false, true, false) // H32, V30
	if v.activeLines() != 240 {
		t.Fatalf("activeLines() V30: got %d, want 240", v.activeLines())
	}
	if v.lineWidth() != 256 {
		t.Fatalf("lineWidth() H32: got %d, want 256", v.lineWidth())
	}
}
