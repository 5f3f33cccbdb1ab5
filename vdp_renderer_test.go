package main

import "testing"

// TestPatternRowFlips confirms patternRow's vFlip selects the mirrored
// row and hFlip reverses the 8 decoded nibbles.
func TestPatternRowFlips(t *testing.T) {
	v := NewVDP()
	// Tile 0, row 0: nibbles 1,2,3,4,5,6,7,8; row 7: nibbles 8,7,6,5,4,3,2,1.
	v.VRAM[0], v.VRAM[1], v.VRAM[2], v.VRAM[3] = 0x12, 0x34, 0x56, 0x78
	v.VRAM[28], v.VRAM[29], v.VRAM[30], v.VRAM[31] = 0x87, 0x65, 0x43, 0x21

	pe := patternEntry{patternAddr: 0}
	row := v.patternRow(pe, 0)
	want := [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	if row != want {
		t.Fatalf("unflipped row 0: got %v, want %v", row, want)
	}

	peV := patternEntry{patternAddr: 0, vFlip: true}
	rowV := v.patternRow(peV, 0) // should read row 7 instead
	wantV := [8]byte{8, 7, 6, 5, 4, 3, 2, 1}
	if rowV != wantV {
		t.Fatalf("vFlip row 0 (reads row 7): got %v, want %v", rowV, wantV)
	}

	peH := patternEntry{patternAddr: 0, hFlip: true}
	rowH := v.patternRow(peH, 0)
	wantH := [8]byte{8, 7, 6, 5, 4, 3, 2, 1}
	if rowH != wantH {
		t.Fatalf("hFlip row 0: got %v, want %v", rowH, wantH)
	}
}

// TestPlaneLineSamplesScrolledRow confirms planeLine records the actual
// row-within-tile for the requested scanline rather than always row 0,
// and that compositeLayer samples that recorded row.
func TestPlaneLineSamplesScrolledRow(t *testing.T) {
	v := NewVDP()
	v.Regs.R[2] = 0x08 // plane A name table base = 0x2000
	v.Regs.R[13] = 0   // H-scroll table base = 0
	v.Regs.R[11] = 0   // full-screen H-scroll and V-scroll

	// Name table entry at (0x2000,0x2001): tile index 5, no flips/priority.
	v.VRAM[0x2000] = 0x00
	v.VRAM[0x2001] = 0x05

	// Tile 5's row 3 (patternAddr 160 + 3*4 = 172): nibbles 1..8.
	v.VRAM[172], v.VRAM[173], v.VRAM[174], v.VRAM[175] = 0x12, 0x34, 0x56, 0x78

	entries := v.planeLine(v.Regs.PlaneANameTable(), 3, 8)
	if len(entries) != 1 {
		t.Fatalf("expected 1 cell for an 8-pixel-wide line, got %d", len(entries))
	}
	if entries[0].row != 3 {
		t.Fatalf("recorded row: got %d, want 3", entries[0].row)
	}

	pixels := make([]uint16, 8)
	v.CRAM[1] = 0x0111
	v.compositeLayer(pixels, entries, 8, false)
	if pixels[0] != 0x0111 {
		t.Fatalf("compositeLayer should have sampled tile row 3 (nibble 1 at column 0): pixels[0] = 0x%04X, want 0x0111", pixels[0])
	}
}

// TestCompositeSpritesSamplesPerCellTile confirms a multi-cell-tall
// sprite pulls each 8-row band from its own tile in the column-major
// cell order the hardware stores them in, rather than repeating one
// tile (or one solid color) for the whole sprite.
func TestCompositeSpritesSamplesPerCellTile(t *testing.T) {
	v := NewVDP()
	v.CRAM[1] = 0x0111
	v.CRAM[2] = 0x0222

	// Tile 10 (patternAddr 320), row 0: all nibble 1.
	base0 := uint32(320)
	v.VRAM[base0], v.VRAM[base0+1], v.VRAM[base0+2], v.VRAM[base0+3] = 0x11, 0x11, 0x11, 0x11
	// Tile 11 (patternAddr 352), row 0: all nibble 2.
	base1 := uint32(352)
	v.VRAM[base1], v.VRAM[base1+1], v.VRAM[base1+2], v.VRAM[base1+3] = 0x22, 0x22, 0x22, 0x22

	sprite := spriteEntry{y: 0, x: 0, width: 8, height: 16, patternBase: base0}
	pixels := make([]uint16, 8)

	v.compositeSprites(pixels, []spriteEntry{sprite}, 0, false)
	for i, p := range pixels {
		if p != 0x0111 {
			t.Fatalf("line 0 (first cell) pixel %d: got 0x%04X, want 0x0111", i, p)
		}
	}

	for i := range pixels {
		pixels[i] = 0
	}
	v.compositeSprites(pixels, []spriteEntry{sprite}, 8, false)
	for i, p := range pixels {
		if p != 0x0222 {
			t.Fatalf("line 8 (second cell) pixel %d: got 0x%04X, want 0x0222", i, p)
		}
	}
}
