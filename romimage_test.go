package main

import "testing"

func buildTestROM(t *testing.T, bodySize int) []byte {
	t.Helper()
	data := make([]byte, ROMBodyStart+bodySize)
	// Reset vectors: SSP=0x00FFE000, PC=0x00000200.
	data[0], data[1], data[2], data[3] = 0x00, 0xFF, 0xE0, 0x00
	data[4], data[5], data[6], data[7] = 0x00, 0x00, 0x02, 0x00
	copy(data[ROMHdrSystemTypeOff:], []byte("SEGA MEGA DRIVE "))
	return data
}

func TestROMImageInitialVectors(t *testing.T) {
	data := buildTestROM(t, 16)
	rom, err := NewROMImage(data)
	if err != nil {
		t.Fatalf("NewROMImage: %v", err)
	}
	if got := rom.InitialSP(); got != 0x00FFE000 {
		t.Fatalf("InitialSP(): got 0x%X, want 0x00FFE000", got)
	}
	if got := rom.InitialPC(); got != 0x00000200 {
		t.Fatalf("InitialPC(): got 0x%X, want 0x00000200", got)
	}
	if rom.Header.SystemType != "SEGA MEGA DRIVE" {
		t.Fatalf("SystemType: got %q", rom.Header.SystemType)
	}
}

func TestROMImageRejectsUndersizedImage(t *testing.T) {
	if _, err := NewROMImage(make([]byte, 16)); err == nil {
		t.Fatal("expected error for an image smaller than the vector+header block")
	}
}

func TestROMImageRejectsOversizedImage(t *testing.T) {
	if _, err := NewROMImage(make([]byte, ROMMaxSize+1)); err == nil {
		t.Fatal("expected error for an image larger than ROMMaxSize")
	}
}

func TestROMImageChecksum(t *testing.T) {
	data := buildTestROM(t, 4)
	// Body bytes (from ROMBodyStart): 0x1234, 0x0001 -> sum 0x1235.
	data[ROMBodyStart] = 0x12
	data[ROMBodyStart+1] = 0x34
	data[ROMBodyStart+2] = 0x00
	data[ROMBodyStart+3] = 0x01

	rom, err := NewROMImage(data)
	if err != nil {
		t.Fatal(err)
	}
	want := uint16(0x1235)
	if got := rom.ComputeChecksum(); got != want {
		t.Fatalf("ComputeChecksum(): got 0x%04X, want 0x%04X", got, want)
	}
	if rom.VerifyChecksum() {
		t.Fatal("header checksum field is 0 by default, should not match the computed body sum")
	}
	rom.Header.Checksum = want
	if !rom.VerifyChecksum() {
		t.Fatal("VerifyChecksum should pass once the header checksum matches ComputeChecksum")
	}
}
