// memorybuilder.go - Composite address space builder

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
memorybuilder.go - AddressSpace / MemoryBuilder

Composes a flat list of Addressable units, each claiming a disjoint
(or explicitly mirrored) range of the owning bus's address space, into
one AddressSpace that the bus manager (M68K) or the Z80 CPU's memory
access path can dispatch through with a single range lookup. Mirrors a
region onto the space without duplicating the backing unit, matching
the hardware's habit of repeating small decode blocks across unused
address lines (64KiB work RAM mirrored 32 times to 0xFFFFFF, VDP ports
mirrored across 0xC00000-0xC0000F, Z80 RAM mirrored 0x2000-0x3FFF).
*/

package main

import "fmt"

// mapping is one claimed range: [base, base+size) backed by unit, or a
// mirror of another mapping's unit re-based at a different address.
type mapping struct {
	base uint32
	size uint32
	unit Addressable
}

func (m mapping) end() uint32 { return m.base + m.size - 1 }

// AddressSpace dispatches reads/writes to the unit that owns an address.
type AddressSpace struct {
	name     string
	mappings []mapping
}

// MemoryBuilder accumulates mappings before producing an AddressSpace.
// Construction errors (overlap, zero size) are returned eagerly from Add
// and Mirror rather than deferred to Build, since every caller in this
// core builds its address space once at startup and wants to fail fast.
type MemoryBuilder struct {
	name     string
	mappings []mapping
}

func NewMemoryBuilder(name string) *MemoryBuilder {
	return &MemoryBuilder{name: name}
}

// Add claims [base, base+size) for unit. size must match unit.MaxAddress()+1.
func (b *MemoryBuilder) Add(base uint32, size uint32, unit Addressable) error {
	if size == 0 {
		return fmt.Errorf("memorybuilder %s: zero-sized mapping at 0x%06X", b.name, base)
	}
	if uint64(unit.MaxAddress())+1 != uint64(size) {
		return fmt.Errorf("memorybuilder %s: unit size mismatch at 0x%06X: unit answers for %d bytes, mapping claims %d",
			b.name, base, unit.MaxAddress()+1, size)
	}
	m := mapping{base: base, size: size, unit: unit}
	if err := b.checkOverlap(m); err != nil {
		return err
	}
	b.mappings = append(b.mappings, m)
	return nil
}

// Mirror repeats an already-added unit's range at a new base, count times,
// each stride bytes after the last. Used for work RAM's 32x
// mirror and the VDP port block's 8-byte mirror.
func (b *MemoryBuilder) Mirror(base uint32, size uint32, stride uint32, count int, unit Addressable) error {
	for i := 0; i < count; i++ {
		mirrorBase := base + uint32(i)*stride
		m := mapping{base: mirrorBase, size: size, unit: unit}
		if err := b.checkOverlap(m); err != nil {
			return err
		}
		b.mappings = append(b.mappings, m)
	}
	return nil
}

func (b *MemoryBuilder) checkOverlap(m mapping) error {
	for _, existing := range b.mappings {
		if m.base <= existing.end() && existing.base <= m.end() {
			return fmt.Errorf("memorybuilder %s: mapping 0x%06X-0x%06X overlaps existing 0x%06X-0x%06X",
				b.name, m.base, m.end(), existing.base, existing.end())
		}
	}
	return nil
}

// Build finalizes the address space. The mapping list is sorted by base
// so lookups can binary search, matching the builder's habit of being
// assembled once and read many times per frame.
func (b *MemoryBuilder) Build() *AddressSpace {
	sorted := make([]mapping, len(b.mappings))
	copy(sorted, b.mappings)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].base > sorted[j].base; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return &AddressSpace{name: b.name, mappings: sorted}
}

// find returns the mapping owning addr, or nil if the address is unmapped.
func (s *AddressSpace) find(addr uint32) *mapping {
	lo, hi := 0, len(s.mappings)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		m := &s.mappings[mid]
		switch {
		case addr < m.base:
			hi = mid - 1
		case addr > m.end():
			lo = mid + 1
		default:
			return m
		}
	}
	return nil
}

// InitWrite/InitReadByte/InitReadWord dispatch to the owning unit, offset
// to that unit's local address space. An unmapped address is silently
// dropped on write and reads back as 0xFF/0xFFFF, matching open-bus
// behavior on real hardware rather than panicking the emulator.
func (s *AddressSpace) InitWrite(addr uint32, data any) {
	m := s.find(addr)
	if m == nil {
		return
	}
	m.unit.InitWrite(addr-m.base, data)
}

func (s *AddressSpace) InitReadByte(addr uint32) {
	m := s.find(addr)
	if m == nil {
		return
	}
	m.unit.InitReadByte(addr - m.base)
}

func (s *AddressSpace) InitReadWord(addr uint32) {
	m := s.find(addr)
	if m == nil {
		return
	}
	m.unit.InitReadWord(addr - m.base)
}

// LatchedByte/LatchedWord return the last completed read for addr. Callers
// are expected to have already confirmed IsIdle(addr) per the bus manager's
// microcycle protocol.
func (s *AddressSpace) LatchedByte(addr uint32) byte {
	m := s.find(addr)
	if m == nil {
		return 0xFF
	}
	return m.unit.LatchedByte()
}

func (s *AddressSpace) LatchedWord(addr uint32) uint16 {
	m := s.find(addr)
	if m == nil {
		return 0xFFFF
	}
	return m.unit.LatchedWord()
}

func (s *AddressSpace) IsIdle(addr uint32) bool {
	m := s.find(addr)
	if m == nil {
		return true
	}
	return m.unit.IsIdle()
}

// RAMUnit is a flat read/write byte-addressable block, used for both the
// M68K's 64KiB work RAM and the Z80's 8KiB RAM.
type RAMUnit struct {
	latchState
	data []byte
}

func NewRAMUnit(size uint32) *RAMUnit {
	return &RAMUnit{data: make([]byte, size)}
}

func (r *RAMUnit) MaxAddress() uint32 { return uint32(len(r.data)) - 1 }

func (r *RAMUnit) InitWrite(addr uint32, data any) {
	switch v := data.(type) {
	case byte:
		r.data[addr] = v
	case uint16:
		r.data[addr] = byte(v >> 8)
		r.data[addr+1] = byte(v)
	}
}

func (r *RAMUnit) InitReadByte(addr uint32) {
	r.byteVal = r.data[addr]
}

func (r *RAMUnit) InitReadWord(addr uint32) {
	r.wordVal = uint16(r.data[addr])<<8 | uint16(r.data[addr+1])
}

// ROMUnit is a read-only byte-addressable block; writes are ignored, as
// on real cartridge hardware wired /OE only.
type ROMUnit struct {
	latchState
	data []byte
}

func NewROMUnit(data []byte) *ROMUnit {
	return &ROMUnit{data: data}
}

func (r *ROMUnit) MaxAddress() uint32 { return uint32(len(r.data)) - 1 }

func (r *ROMUnit) InitWrite(addr uint32, data any) {}

func (r *ROMUnit) InitReadByte(addr uint32) {
	if int(addr) < len(r.data) {
		r.byteVal = r.data[addr]
	} else {
		r.byteVal = 0xFF
	}
}

func (r *ROMUnit) InitReadWord(addr uint32) {
	if int(addr)+1 < len(r.data) {
		r.wordVal = uint16(r.data[addr])<<8 | uint16(r.data[addr+1])
	} else {
		r.wordVal = 0xFFFF
	}
}
