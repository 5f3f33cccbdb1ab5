// z80_control.go - Z80 bus-request/reset handshake registers

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
z80_control.go - Z80BusRequestRegister / Z80ResetRegister

Two word-wide registers mapped into M68K space (0xA11100, 0xA11200)
that let the M68K stop the Z80 and take its bus, or hold it in reset.
Values follow the documented hardware encoding directly: writing any
value with bit 8 set requests the bus, a read's bit 0 reports whether
the grant has actually been given yet (0 = granted, matching "bus
released" naming on the Z80 side rather than the M68K's grant line).
*/

package main

const (
	z80BusRequested uint16 = 0x0100
	z80BusReleased  uint16 = 0x0000
	z80BusGranted   uint16 = 0x0200 // internal state, not written by the M68K

	z80ResetRequested uint16 = 0x0000
	z80ResetCleared   uint16 = 0x0100
)

// Z80ControlRegisters exposes the bus-request and reset handshake as
// Addressable units over the M68K's 0xA11100/0xA11200 window.
type Z80ControlRegisters struct {
	latchState

	busRequested bool
	busGranted   bool
	resetAsserted bool

	bus *BusManager // the Z80's own bus manager, arbitrated when granted
}

func NewZ80ControlRegisters(z80Bus *BusManager) *Z80ControlRegisters {
	return &Z80ControlRegisters{bus: z80Bus, resetAsserted: true}
}

func (z *Z80ControlRegisters) MaxAddress() uint32 { return 1 }

func (z *Z80ControlRegisters) InitWrite(addr uint32, data any) {
	v, ok := data.(uint16)
	if !ok {
		if b, ok2 := data.(byte); ok2 {
			v = uint16(b) << 8
		}
	}
	z.busRequested = v&0x0100 != 0
	if z.busRequested {
		z.bus.RequestBus()
	} else {
		z.bus.ReleaseBus()
	}
}

func (z *Z80ControlRegisters) InitReadByte(addr uint32) { z.InitReadWord(addr) }

func (z *Z80ControlRegisters) InitReadWord(addr uint32) {
	z.busGranted = z.bus.IsBusGranted()
	if z.busGranted {
		z.wordVal = z80BusGranted
	} else {
		z.wordVal = z80BusRequested
	}
	z.byteVal = byte(z.wordVal >> 8)
}

// ResetRegister is the separate 0xA11200 handshake; a write with bit 8
// set clears reset (Z80 runs), clear asserts reset (Z80 held).
type Z80ResetRegister struct {
	latchState
	asserted bool
	onChange func(asserted bool)
}

func NewZ80ResetRegister(onChange func(asserted bool)) *Z80ResetRegister {
	return &Z80ResetRegister{asserted: true, onChange: onChange}
}

func (r *Z80ResetRegister) MaxAddress() uint32 { return 1 }

func (r *Z80ResetRegister) InitWrite(addr uint32, data any) {
	var v uint16
	switch d := data.(type) {
	case uint16:
		v = d
	case byte:
		v = uint16(d) << 8
	}
	asserted := v&0x0100 == 0
	if asserted != r.asserted {
		r.asserted = asserted
		if r.onChange != nil {
			r.onChange(asserted)
		}
	}
}

func (r *Z80ResetRegister) InitReadByte(addr uint32) { r.InitReadWord(addr) }

func (r *Z80ResetRegister) InitReadWord(addr uint32) {
	if r.asserted {
		r.wordVal = z80ResetRequested
	} else {
		r.wordVal = z80ResetCleared
	}
	r.byteVal = byte(r.wordVal >> 8)
}
