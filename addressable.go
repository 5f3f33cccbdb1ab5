// addressable.go - Uniform non-blocking memory-mapped unit contract

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
addressable.go - Addressable contract

Every leaf memory or IO unit on either bus (M68K 24-bit, Z80 16-bit)
implements Addressable. Reads and writes are split into a non-blocking
"init" phase and a separate "latch" phase so the bus manager's 4-state
microcycle (m68k_busmanager.go) can overlap unit access with the rest of
the cycle instead of blocking the whole emulator on every access. A unit
that can answer immediately (RAM, ROM) simply makes the latched value
available right after InitRead* returns; a unit with internal delay
(none in this core, but the contract allows for one) reports IsIdle()
false until ready.
*/

package main

// Addressable is implemented by every unit mapped into an AddressSpace
// (memorybuilder.go). addr is always pre-masked to the owning bus width
// by the caller; a unit never needs to know its own base address.
type Addressable interface {
	// MaxAddress returns the highest local address this unit answers for,
	// i.e. its size in bytes minus one.
	MaxAddress() uint32

	// IsIdle reports whether the unit has finished its previous operation
	// and can accept a new InitWrite/InitReadByte/InitReadWord.
	IsIdle() bool

	// InitWrite begins a write. data is either byte or uint16 depending
	// on the access width the caller is performing.
	InitWrite(addr uint32, data any)

	// InitReadByte/InitReadWord begin a read. The result becomes visible
	// through LatchedByte/LatchedWord once IsIdle() is true again.
	InitReadByte(addr uint32)
	InitReadWord(addr uint32)

	// LatchedByte/LatchedWord return the most recently completed read.
	LatchedByte() byte
	LatchedWord() uint16
}

// latchState is embedded by units whose reads complete immediately
// (every unit in this core); it gives them IsIdle/LatchedByte/LatchedWord
// for free and keeps the per-unit files free of repeated boilerplate.
type latchState struct {
	byteVal byte
	wordVal uint16
}

func (l *latchState) IsIdle() bool       { return true }
func (l *latchState) LatchedByte() byte  { return l.byteVal }
func (l *latchState) LatchedWord() uint16 { return l.wordVal }
