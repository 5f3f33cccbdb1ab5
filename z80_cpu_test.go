package main

import "testing"

// newTestZ80 builds a Z80CPU over a flat 64KiB RAM so a test can plant
// a short program directly into the backing array before stepping.
func newTestZ80(t *testing.T) (*Z80CPU, *RAMUnit) {
	t.Helper()
	ram := NewRAMUnit(0x10000)
	b := NewMemoryBuilder("z80-test")
	if err := b.Add(0, 0x10000, ram); err != nil {
		t.Fatalf("MemoryBuilder.Add: %v", err)
	}
	space := b.Build()
	cpu := NewZ80CPU(space)
	cpu.SetHeld(false)
	return cpu, ram
}

func TestZ80LoadImmediateAndIncrement(t *testing.T) {
	cpu, ram := newTestZ80(t)
	// LD BC,0x1234 ; INC BC
	ram.data[0] = 0x01
	ram.data[1] = 0x34
	ram.data[2] = 0x12
	ram.data[3] = 0x03

	cpu.Step()
	if cpu.Regs.BC() != 0x1234 {
		t.Fatalf("BC after LD BC,nn: got 0x%04X, want 0x1234", cpu.Regs.BC())
	}
	cpu.Step()
	if cpu.Regs.BC() != 0x1235 {
		t.Fatalf("BC after INC BC: got 0x%04X, want 0x1235", cpu.Regs.BC())
	}
}

func TestZ80AddAccumulatorFlags(t *testing.T) {
	cpu, ram := newTestZ80(t)
	// LD A,0xFF ; ADD A,0x01 -> A=0, Z set, C set, H set
	ram.data[0] = 0x3E
	ram.data[1] = 0xFF
	ram.data[2] = 0xC6
	ram.data[3] = 0x01

	cpu.Step()
	cpu.Step()
	if cpu.Regs.A != 0x00 {
		t.Fatalf("A after ADD overflowing to zero: got 0x%02X, want 0x00", cpu.Regs.A)
	}
	if !cpu.Regs.Flag(z80FlagZ) {
		t.Fatal("Z should be set")
	}
	if !cpu.Regs.Flag(z80FlagC) {
		t.Fatal("C should be set: 0xFF+0x01 carries out of a byte")
	}
	if !cpu.Regs.Flag(z80FlagH) {
		t.Fatal("H should be set: 0xF+0x1 carries out of the low nibble")
	}
}

func TestZ80JumpAndCallReturn(t *testing.T) {
	cpu, ram := newTestZ80(t)
	cpu.Regs.SP = 0xFF00
	// CALL 0x0010 ; at 0x0010: RET
	ram.data[0] = 0xCD
	ram.data[1] = 0x10
	ram.data[2] = 0x00
	ram.data[0x10] = 0xC9

	cpu.Step() // CALL
	if cpu.Regs.PC != 0x0010 {
		t.Fatalf("PC after CALL: got 0x%04X, want 0x0010", cpu.Regs.PC)
	}
	if cpu.Regs.SP != 0xFEFE {
		t.Fatalf("SP after CALL pushed the return address: got 0x%04X, want 0xFEFE", cpu.Regs.SP)
	}
	cpu.Step() // RET
	if cpu.Regs.PC != 0x0003 {
		t.Fatalf("PC after RET: got 0x%04X, want 0x0003 (just past the CALL)", cpu.Regs.PC)
	}
	if cpu.Regs.SP != 0xFF00 {
		t.Fatalf("SP after RET: got 0x%04X, want 0xFF00", cpu.Regs.SP)
	}
}

// TestZ80MaskableInterruptIM1 exercises the IM1 interrupt response: a
// fixed RST-38-style vector regardless of the data bus value, only
// honored when IFF1 is set.
func TestZ80MaskableInterruptIM1(t *testing.T) {
	cpu, _ := newTestZ80(t)
	cpu.Regs.PC = 0x4000
	cpu.Regs.SP = 0xFF00
	cpu.Regs.IFF1 = true
	cpu.Regs.IM = z80IM1

	cpu.RaiseINT(0x00)
	cycles := cpu.Step()

	if cpu.Regs.PC != 0x0038 {
		t.Fatalf("PC after IM1 interrupt: got 0x%04X, want 0x0038", cpu.Regs.PC)
	}
	if cycles != 13 {
		t.Fatalf("IM1 interrupt acceptance cost: got %d, want 13", cycles)
	}
	if cpu.Regs.IFF1 || cpu.Regs.IFF2 {
		t.Fatal("accepting a maskable interrupt should clear both interrupt flip-flops")
	}
}

// TestZ80MaskableInterruptIgnoredWithIFF1Clear confirms DI leaves a
// pending INT un-serviced.
func TestZ80MaskableInterruptIgnoredWithIFF1Clear(t *testing.T) {
	cpu, ram := newTestZ80(t)
	ram.data[0x4000] = 0x00 // NOP
	cpu.Regs.PC = 0x4000
	cpu.Regs.IFF1 = false
	cpu.Regs.IM = z80IM1

	cpu.RaiseINT(0x00)
	cpu.Step()

	if cpu.Regs.PC != 0x4001 {
		t.Fatalf("a masked INT should not be serviced; PC got 0x%04X, want 0x4001 (NOP executed instead)", cpu.Regs.PC)
	}
}

// TestZ80NMITakesPriorityOverMaskableInterrupt confirms NMI always
// vectors to 0x0066 and is serviced ahead of a pending maskable INT,
// saving IFF1 into IFF2 and clearing IFF1.
func TestZ80NMITakesPriorityOverMaskableInterrupt(t *testing.T) {
	cpu, _ := newTestZ80(t)
	cpu.Regs.PC = 0x4000
	cpu.Regs.SP = 0xFF00
	cpu.Regs.IFF1 = true
	cpu.Regs.IM = z80IM1

	cpu.RaiseINT(0x00)
	cpu.RaiseNMI()
	cpu.Step()

	if cpu.Regs.PC != 0x0066 {
		t.Fatalf("PC after NMI: got 0x%04X, want 0x0066", cpu.Regs.PC)
	}
	if cpu.Regs.IFF1 {
		t.Fatal("NMI should clear IFF1")
	}
	if !cpu.Regs.IFF2 {
		t.Fatal("NMI should preserve the pre-NMI IFF1 value in IFF2")
	}
}

// TestZ80SetHeldResetsState confirms the reset-line handshake: holding
// the Z80 and releasing it again reinitializes PC/SP and the interrupt
// flip-flops, matching the console leaving the Z80 parked at 0xA11200
// until the 68000's boot code releases it.
func TestZ80SetHeldResetsState(t *testing.T) {
	cpu, _ := newTestZ80(t)
	cpu.Regs.PC = 0x1234
	cpu.Regs.SP = 0xABCD
	cpu.Regs.IFF1 = true

	cpu.SetHeld(true)
	if cpu.Step() != 0 {
		t.Fatal("Step() should cost 0 T-states while held")
	}
	cpu.SetHeld(false)

	if cpu.Regs.PC != 0 {
		t.Fatalf("PC after release from hold: got 0x%04X, want 0x0000", cpu.Regs.PC)
	}
	if cpu.Regs.IFF1 {
		t.Fatal("IFF1 should clear on release from hold")
	}
}
