package main

import "testing"

// TestVDPPortsRegisterWriteFastPath exercises the "10" top-bit single-word
// register write, which never enters the two-word pending protocol.
func TestVDPPortsRegisterWriteFastPath(t *testing.T) {
	v := NewVDP()
	p := NewVDPPorts(v)

	p.InitWrite(4, uint16(0x8105)) // reg 1 = 0x05 (DMA+display bits)
	if v.Regs.R[1] != 0x05 {
		t.Fatalf("R[1] after fast-path register write: got 0x%02X, want 0x05", v.Regs.R[1])
	}
	if v.pending {
		t.Fatal("a register fast-path write should not leave the control word pending")
	}
}

// TestVDPPortsTwoWordControlProtocol writes a VRAM-write control pair and
// confirms the address/target decode and that the protocol only commits
// after the second word.
func TestVDPPortsTwoWordControlProtocol(t *testing.T) {
	v := NewVDP()
	p := NewVDPPorts(v)

	p.InitWrite(4, uint16(0x4123)) // CP1: not the register fast-path (top bits 01)
	if !v.pending {
		t.Fatal("after CP1 the control word should be pending the second word")
	}
	p.InitWrite(4, uint16(0x0000)) // CP2
	if v.pending {
		t.Fatal("after CP2 the pending flag should clear")
	}
	if v.control.address != 0x0123 {
		t.Fatalf("decoded control address: got 0x%04X, want 0x0123", v.control.address)
	}
	if v.control.target() != vdpTargetVRAM {
		t.Fatalf("decoded target: got %v, want vdpTargetVRAM", v.control.target())
	}
}

func TestVDPPortsDataWriteAndAutoIncrement(t *testing.T) {
	v := NewVDP()
	p := NewVDPPorts(v)
	v.Regs.R[15] = 2 // auto-increment 2

	p.InitWrite(4, uint16(0x4000)) // CP1: VRAM write, addr 0
	p.InitWrite(4, uint16(0x0000)) // CP2
	p.InitWrite(0, uint16(0xCAFE)) // data port write

	if v.VRAM[0] != 0xCA || v.VRAM[1] != 0xFE {
		t.Fatalf("VRAM[0:2]: got %02X %02X, want CA FE", v.VRAM[0], v.VRAM[1])
	}
	if v.control.address != 2 {
		t.Fatalf("control.address after auto-increment: got %d, want 2", v.control.address)
	}
}

func TestVDPPortsCRAMWriteMasksTo9Bits(t *testing.T) {
	v := NewVDP()
	p := NewVDPPorts(v)

	p.InitWrite(4, uint16(0x0000)) // CP1: addr=0, CD0-1=0
	p.InitWrite(4, uint16(0x0020)) // CP2: CD2-3 bits select CRAM (code becomes 0x8)
	p.InitWrite(0, uint16(0xFFFF))

	if v.CRAM[0] != 0x0EEE {
		t.Fatalf("CRAM[0] should mask to the 9 documented color bits: got 0x%04X, want 0x0EEE", v.CRAM[0])
	}
}

func TestVDPPortsReadHVCounter(t *testing.T) {
	v := NewVDP()
	p := NewVDPPorts(v)
	v.hv.V = 0x12
	v.hv.H = 0x34

	p.InitReadWord(6)
	if p.wordVal != 0x1234 {
		t.Fatalf("HV counter port: got 0x%04X, want 0x1234", p.wordVal)
	}
}
