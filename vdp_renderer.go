// vdp_renderer.go - per-row plane/sprite/window compositing

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░░ ░░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
vdp_renderer.go

RenderLine has no UI dependency: it fills a caller-owned pixel buffer
with 9-bit CRAM-resolved RGB555-ish values and hands control back, so
it stays testable headlessly (§8's renderer invariants) while
displayfrontend.go supplies the row callback and does the actual
blit/present.
*/

package main

type patternEntry struct {
	patternAddr uint32
	hFlip, vFlip bool
	palette      int
	priority     bool
	row          int // row within the 8x8 tile this entry samples, set by planeLine
}

func decodeNameTableEntry(word uint16) patternEntry {
	return patternEntry{
		patternAddr: uint32(word&0x7FF) * 32,
		hFlip:       word&0x0800 != 0,
		vFlip:       word&0x1000 != 0,
		palette:     int((word >> 13) & 0x3),
		priority:    word&0x8000 != 0,
	}
}

// patternRow reads one 8-pixel row of a 4bpp 8x8 tile, applying flips.
func (v *VDP) patternRow(pe patternEntry, row int) [8]byte {
	if pe.vFlip {
		row = 7 - row
	}
	base := pe.patternAddr + uint32(row)*4
	var out [8]byte
	for col := 0; col < 4; col++ {
		b := v.VRAM[clampAddr(base+uint32(col), vdpVRAMSize)]
		hi := b >> 4
		lo := b & 0xF
		out[col*2] = hi
		out[col*2+1] = lo
	}
	if pe.hFlip {
		for i, j := 0, 7; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

const (
	planeWidthCells = 64 // max 128x64 or 64x32 etc.; name tables sized by R16 in a full implementation
)

// planeLine resolves one scanline of a name-table plane into palette,
// index, priority triples, following the documented per-plane pipeline:
// resolve H-scroll, then per-column V-scroll, then sample the tile.
func (v *VDP) planeLine(nameTableBase uint32, line int, widthPixels int) []patternEntry {
	cellsWide := widthPixels / 8
	out := make([]patternEntry, cellsWide)
	hScroll := v.resolveHScroll(line)
	for col := 0; col < cellsWide; col++ {
		vScroll := v.resolveVScroll(col)
		effRow := line + int(vScroll)
		cellRow := (effRow / 8) % 32
		effCol := (col*8 - int(hScroll)) / 8 % cellsWide
		if effCol < 0 {
			effCol += cellsWide
		}
		entryAddr := nameTableBase + uint32(cellRow*cellsWide+effCol)*2
		word := uint16(v.VRAM[clampAddr(entryAddr, vdpVRAMSize)])<<8 | uint16(v.VRAM[clampAddr(entryAddr+1, vdpVRAMSize)])
		pe := decodeNameTableEntry(word)
		pe.row = effRow % 8
		out[col] = pe
	}
	return out
}

func (v *VDP) resolveHScroll(line int) int16 {
	base := v.Regs.HScrollTableBase()
	var addr uint32
	switch v.Regs.HScrollMode() {
	case 0: // full screen
		addr = base
	case 2: // cell
		addr = base + uint32(line/8)*32
	case 3: // line
		addr = base + uint32(line)*4
	default: // invalid: documented as unspecified, treated as full-screen
		addr = base
	}
	word := uint16(v.VRAM[clampAddr(addr, vdpVRAMSize)])<<8 | uint16(v.VRAM[clampAddr(addr+1, vdpVRAMSize)])
	return int16(word & 0x3FF)
}

func (v *VDP) resolveVScroll(col int) int16 {
	if !v.Regs.VScrollMode() {
		return int16(v.VSRAM[0] & 0x3FF)
	}
	idx := (col / 2) % vdpVSRAMSize
	return int16(v.VSRAM[idx] & 0x3FF)
}

// RenderLine composites one scanline into pixels (len == display width)
// using the documented layer order: background, plane B low, plane A
// low, sprites low, plane B high, plane A high, sprites high. The window
// plane is not drawn: plane A covers the whole line and R17/R18 are not
// consulted.
func (v *VDP) RenderLine(line int, pixels []uint16) {
	width := len(pixels)
	bgPal, bgIdx := v.Regs.BackgroundColor()
	bg := v.lookupColor(bgPal, bgIdx)
	for i := range pixels {
		pixels[i] = bg
	}

	planeB := v.planeLine(v.Regs.PlaneBNameTable(), line, width)
	planeA := v.planeLine(v.Regs.PlaneANameTable(), line, width)
	sprites := v.spriteLine(line, width)

	v.compositeLayer(pixels, planeB, width, false)
	v.compositeLayer(pixels, planeA, width, false)
	v.compositeSprites(pixels, sprites, line, false)
	v.compositeLayer(pixels, planeB, width, true)
	v.compositeLayer(pixels, planeA, width, true)
	v.compositeSprites(pixels, sprites, line, true)
}

func (v *VDP) compositeLayer(pixels []uint16, entries []patternEntry, width int, highPriority bool) {
	cellsWide := width / 8
	for col := 0; col < cellsWide && col < len(entries); col++ {
		pe := entries[col]
		if pe.priority != highPriority {
			continue
		}
		row := v.patternRow(pe, pe.row)
		for x := 0; x < 8; x++ {
			idx := row[x]
			if idx == 0 {
				continue
			}
			px := col*8 + x
			if px >= width {
				continue
			}
			pixels[px] = v.lookupColor(pe.palette, int(idx))
		}
	}
}

type spriteEntry struct {
	y, x         int
	width, height int
	patternBase  uint32
	hFlip, vFlip bool
	palette      int
	priority     bool
}

// spriteLine walks the linked sprite attribute table for the given row,
// stopping at the documented per-line sprite limit and setting the
// sprite-overflow status bit when more sprites remain.
func (v *VDP) spriteLine(line int, width int) []spriteEntry {
	limit := 20
	if width <= 256 {
		limit = 16
	}
	base := v.Regs.SpriteTableBase()
	var out []spriteEntry
	link := byte(0)
	visited := map[byte]bool{}
	for i := 0; i < 80; i++ {
		if visited[link] {
			break
		}
		visited[link] = true
		addr := base + uint32(link)*8
		y := int(uint16(v.VRAM[clampAddr(addr, vdpVRAMSize)])<<8|uint16(v.VRAM[clampAddr(addr+1, vdpVRAMSize)])) & 0x3FF
		size := v.VRAM[clampAddr(addr+2, vdpVRAMSize)]
		hCells := int(size&0x3) + 1
		vCells := int((size>>2)&0x3) + 1
		nextLink := v.VRAM[clampAddr(addr+3, vdpVRAMSize)] & 0x7F
		attrWord := uint16(v.VRAM[clampAddr(addr+4, vdpVRAMSize)])<<8 | uint16(v.VRAM[clampAddr(addr+5, vdpVRAMSize)])
		xWord := uint16(v.VRAM[clampAddr(addr+6, vdpVRAMSize)])<<8 | uint16(v.VRAM[clampAddr(addr+7, vdpVRAMSize)])

		spriteY := y - 128
		if line >= spriteY && line < spriteY+vCells*8 {
			if len(out) >= limit {
				v.status |= vdpStatusSpriteOver
				break
			}
			pe := decodeNameTableEntry(attrWord)
			out = append(out, spriteEntry{
				y: spriteY, x: int(xWord&0x3FF) - 128,
				width: hCells * 8, height: vCells * 8,
				patternBase: pe.patternAddr, hFlip: pe.hFlip, vFlip: pe.vFlip,
				palette: pe.palette, priority: pe.priority,
			})
		}
		if nextLink == 0 {
			break
		}
		link = nextLink
	}
	return out
}

// compositeSprites samples each visible sprite's tiles for this scanline.
// Tiles within one sprite are stored column-major (down a column, then the
// next column to the right); hFlip/vFlip reverse the cell order across the
// whole sprite in addition to the per-tile pixel flip patternRow applies.
func (v *VDP) compositeSprites(pixels []uint16, sprites []spriteEntry, line int, highPriority bool) {
	for _, s := range sprites {
		if s.priority != highPriority {
			continue
		}
		hCells := s.width / 8
		vCells := s.height / 8
		dy := line - s.y
		if dy < 0 || dy >= s.height {
			continue
		}
		cellRow := dy / 8
		rowInCell := dy % 8
		if s.vFlip {
			cellRow = vCells - 1 - cellRow
		}
		for dx := 0; dx < s.width; dx++ {
			px := s.x + dx
			if px < 0 || px >= len(pixels) {
				continue
			}
			cellCol := dx / 8
			colInCell := dx % 8
			if s.hFlip {
				cellCol = hCells - 1 - cellCol
			}
			tileIndex := uint32(cellCol*vCells + cellRow)
			pe := patternEntry{patternAddr: s.patternBase + tileIndex*32, hFlip: s.hFlip, vFlip: s.vFlip, palette: s.palette}
			row := v.patternRow(pe, rowInCell)
			idx := row[colInCell]
			if idx == 0 {
				continue
			}
			pixels[px] = v.lookupColor(s.palette, int(idx))
		}
	}
}

// lookupColor converts a (palette, index) pair to 9-bit RGB stored in
// CRAM; index 0 is transparent at every layer and never reaches here
// for plane/sprite pixels (callers skip index==0 beforehand), so this
// is only reached for resolved opaque pixels and the background color.
func (v *VDP) lookupColor(palette, index int) uint16 {
	idx := clampAddr(uint32(palette*16+index), vdpCRAMSize)
	return v.CRAM[idx]
}
