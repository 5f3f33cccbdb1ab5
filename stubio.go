// stubio.go - Minor M68K/Z80 memory-mapped stubs

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
stubio.go

Small Addressable units for the memory-mapped regions spec.md §6 names
but leaves unspecified in behavior: the version register (fixed read
value, writes dropped), TMSS (modeled as plain writable RAM with no
semantic effect per spec.md §9's explicit note), and the YM2612/PSG
stubs on the Z80 side (fixed/incrementing bytes, preserved as stubs
until audio is specified - spec.md §9). Also the Z80 bank register,
which is the one piece of bank-switching state that lives outside the
pure memory map: 8 single-bit writes build a 9-bit index (§6).
*/

package main

// VersionRegister is the fixed-value M68K read-only byte at 0xA10000;
// bit 5 reports overseas/domestic, bit 6 PAL/NTSC - both hardcoded to
// the common "domestic NTSC" case since no region switch is modeled.
type VersionRegister struct {
	latchState
	value byte
}

func NewVersionRegister() *VersionRegister { return &VersionRegister{value: 0x00} }

func (r *VersionRegister) MaxAddress() uint32    { return 1 }
func (r *VersionRegister) InitWrite(uint32, any) {}
func (r *VersionRegister) InitReadByte(addr uint32) {
	if addr == 1 {
		r.byteVal = r.value
	} else {
		r.byteVal = 0xFF
	}
}
func (r *VersionRegister) InitReadWord(addr uint32) {
	r.InitReadByte(addr)
	r.wordVal = uint16(r.byteVal)
}

// TMSSRegister is writable RAM with no semantic effect, per spec.md §9 -
// real hardware gates cartridge /OE on the "SEGA" string landing here,
// but that handshake isn't part of this core.
type TMSSRegister struct {
	latchState
	data [4]byte
}

func NewTMSSRegister() *TMSSRegister { return &TMSSRegister{} }

func (r *TMSSRegister) MaxAddress() uint32 { return 3 }

func (r *TMSSRegister) InitWrite(addr uint32, data any) {
	switch v := data.(type) {
	case byte:
		r.data[addr] = v
	case uint16:
		r.data[addr] = byte(v >> 8)
		if addr+1 <= 3 {
			r.data[addr+1] = byte(v)
		}
	}
}

func (r *TMSSRegister) InitReadByte(addr uint32) { r.byteVal = r.data[addr] }
func (r *TMSSRegister) InitReadWord(addr uint32) {
	r.wordVal = uint16(r.data[addr])<<8 | uint16(r.data[addr+1])
}

// ym2612Stub answers every read with 0x00 and drops every write, per
// spec.md §9's "intentional stub" note - no FM synthesis is modeled.
type ym2612Stub struct{ latchState }

func newYM2612Stub() *ym2612Stub { return &ym2612Stub{} }

func (s *ym2612Stub) MaxAddress() uint32         { return 3 }
func (s *ym2612Stub) InitWrite(uint32, any)      {}
func (s *ym2612Stub) InitReadByte(uint32)        {}
func (s *ym2612Stub) InitReadWord(uint32)        {}

// psgStub is the single-byte PSG control port at 0x7F11; writes are
// dropped and reads return an incrementing counter, matching the
// "fixed or incrementing bytes" stub behavior spec.md §9 requires be
// preserved until the PSG is specified.
type psgStub struct {
	latchState
	counter byte
}

func newPSGStub() *psgStub { return &psgStub{} }

func (s *psgStub) MaxAddress() uint32    { return 0 }
func (s *psgStub) InitWrite(uint32, any) {}
func (s *psgStub) InitReadByte(uint32) {
	s.byteVal = s.counter
	s.counter++
}
func (s *psgStub) InitReadWord(addr uint32) {
	s.InitReadByte(addr)
	s.wordVal = uint16(s.byteVal)
}

// z80BankRegister accumulates 8 single-bit writes, MSB-first, into a
// 9-bit bank index (§6), used by the Z80 bank window to offset into
// M68K memory.
type z80BankRegister struct {
	latchState
	bank  uint16
	shift uint
}

func newZ80BankRegister() *z80BankRegister { return &z80BankRegister{} }

func (r *z80BankRegister) MaxAddress() uint32 { return 0 }

func (r *z80BankRegister) InitWrite(addr uint32, data any) {
	var v byte
	switch d := data.(type) {
	case byte:
		v = d
	case uint16:
		v = byte(d >> 8)
	}
	bit := uint16(v & 1)
	r.bank = ((r.bank << 1) | bit) & 0x1FF
}

func (r *z80BankRegister) Bank() uint16 { return r.bank }

func (r *z80BankRegister) InitReadByte(uint32) {}
func (r *z80BankRegister) InitReadWord(uint32) {}

// addressSpaceBox breaks the chicken-and-egg dependency between the
// M68K and Z80 address spaces: each one's builder needs a unit that
// forwards into the other space, but neither space exists until its own
// builder finishes. system.go builds both units against empty boxes,
// then fills the boxes in once both MemoryBuilder.Build() calls return.
type addressSpaceBox struct {
	space *AddressSpace
}

// z80BankWindow is a back-reference (spec.md §9), not an owner: reads
// and writes to 0x8000-0xFFFF on the Z80 side are re-based through
// (bank<<15)|(addr&0x7FFF) into the M68K's own AddressSpace.
type z80BankWindow struct {
	latchState
	bank    *z80BankRegister
	m68kMem *addressSpaceBox
}

func newZ80BankWindow(bank *z80BankRegister, m68kMem *addressSpaceBox) *z80BankWindow {
	return &z80BankWindow{bank: bank, m68kMem: m68kMem}
}

func (w *z80BankWindow) MaxAddress() uint32 { return Z80BankWindow - 1 }

func (w *z80BankWindow) translate(addr uint32) uint32 {
	return (uint32(w.bank.Bank())<<15 | (addr & 0x7FFF)) & M68KAddressMask
}

func (w *z80BankWindow) InitWrite(addr uint32, data any) {
	w.m68kMem.space.InitWrite(w.translate(addr), data)
}

func (w *z80BankWindow) InitReadByte(addr uint32) {
	target := w.translate(addr)
	w.m68kMem.space.InitReadByte(target)
	w.byteVal = w.m68kMem.space.LatchedByte(target)
}

func (w *z80BankWindow) InitReadWord(addr uint32) {
	target := w.translate(addr)
	w.m68kMem.space.InitReadWord(target)
	w.wordVal = w.m68kMem.space.LatchedWord(target)
}

// z80SpaceWindow is the M68K-side mirror image: 0xA00000-0xA0FFFF only
// reaches the Z80's own RAM/IO map while the M68K actually holds the Z80
// bus (busArbiter granted), matching the hardware requirement that the
// bus be requested first. Reads while not granted return open bus.
type z80SpaceWindow struct {
	latchState
	z80Mem     *addressSpaceBox
	busArbiter *BusManager
}

func newZ80SpaceWindow(z80Mem *addressSpaceBox, busArbiter *BusManager) *z80SpaceWindow {
	return &z80SpaceWindow{z80Mem: z80Mem, busArbiter: busArbiter}
}

func (w *z80SpaceWindow) MaxAddress() uint32 { return Z80SpaceLimit - Z80SpaceBase }

func (w *z80SpaceWindow) granted() bool { return w.busArbiter.IsBusGranted() }

func (w *z80SpaceWindow) InitWrite(addr uint32, data any) {
	if !w.granted() {
		return
	}
	w.z80Mem.space.InitWrite(addr&Z80AddressMask, data)
}

func (w *z80SpaceWindow) InitReadByte(addr uint32) {
	if !w.granted() {
		w.byteVal = 0xFF
		return
	}
	target := addr & Z80AddressMask
	w.z80Mem.space.InitReadByte(target)
	w.byteVal = w.z80Mem.space.LatchedByte(target)
}

func (w *z80SpaceWindow) InitReadWord(addr uint32) {
	if !w.granted() {
		w.wordVal = 0xFFFF
		return
	}
	target := addr & Z80AddressMask
	w.z80Mem.space.InitReadWord(target)
	w.wordVal = w.z80Mem.space.LatchedWord(target)
}
