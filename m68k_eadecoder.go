// m68k_eadecoder.go - Effective address decoding

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
m68k_eadecoder.go - EADecoder

Resolves one of the 12 addressing modes the 68000 instruction set
exposes via its 3-bit mode field (plus 3-bit register field for the
extended 7-xxx encodings) into either an immediately-available register
value or a bus-scheduled memory fetch. Each mode is handled as its own
small state: register-direct modes resolve without touching the bus;
indirect modes schedule a read (and, for pre-decrement/post-increment,
mutate the address register as a side effect queued through the bus
scheduler so it lands in the correct cycle).
*/

package main

type eaMode int

const (
	eaDataRegister eaMode = iota
	eaAddressRegister
	eaIndirect
	eaIndirectPostInc
	eaIndirectPreDec
	eaIndirectDisp16
	eaIndirectIndex8
	eaPCDisp16
	eaPCIndex8
	eaAbsoluteShort
	eaAbsoluteLong
	eaImmediate
)

// decodedEA is the resolved form of one <ea>: either a register number
// (for register-direct modes) or a memory address (for the rest).
type decodedEA struct {
	mode eaMode
	reg  int
	addr uint32 // valid for every mode except eaDataRegister/eaAddressRegister
}

// EADecoder resolves <ea> fields against the live register file and
// schedules any extension-word fetches or address-register side effects
// through the bus scheduler.
type EADecoder struct {
	regs  *M68KRegisters
	sched *BusScheduler
}

func NewEADecoder(regs *M68KRegisters, sched *BusScheduler) *EADecoder {
	return &EADecoder{regs: regs, sched: sched}
}

// classify maps the 3-bit mode field (and for mode 7, the register field)
// to an eaMode.
func classify(mode, reg uint16) eaMode {
	switch mode {
	case 0:
		return eaDataRegister
	case 1:
		return eaAddressRegister
	case 2:
		return eaIndirect
	case 3:
		return eaIndirectPostInc
	case 4:
		return eaIndirectPreDec
	case 5:
		return eaIndirectDisp16
	case 6:
		return eaIndirectIndex8
	default: // mode == 7
		switch reg {
		case 0:
			return eaAbsoluteShort
		case 1:
			return eaAbsoluteLong
		case 2:
			return eaPCDisp16
		case 3:
			return eaPCIndex8
		case 4:
			return eaImmediate
		}
	}
	return eaDataRegister
}

// operandSize in bytes for size codes used throughout the opcode tables.
func operandSize(sz uint16) int {
	switch sz {
	case 0:
		return 1
	case 1:
		return 2
	default:
		return 4
	}
}

// Resolve decodes the <ea> at (mode,reg) for an access of the given byte
// size, scheduling whatever extension words and address-register side
// effects the mode requires, and invokes done once the address (or
// register selector) is known. Pre-decrement and post-increment mutate
// the address register themselves; the caller never adjusts An for these
// modes.
func (d *EADecoder) Resolve(mode, reg uint16, size int, done func(decodedEA)) {
	m := classify(mode, reg)
	switch m {
	case eaDataRegister, eaAddressRegister:
		done(decodedEA{mode: m, reg: int(reg)})

	case eaIndirect:
		done(decodedEA{mode: m, addr: d.regs.A[reg]})

	case eaIndirectPostInc:
		addr := d.regs.A[reg]
		done(decodedEA{mode: m, addr: addr})
		inc := uint32(size)
		if reg == 7 && size == 1 {
			inc = 2 // A7 stays word-aligned even for byte accesses
		}
		d.sched.ScheduleCall(func() { d.regs.A[reg] += inc })

	case eaIndirectPreDec:
		dec := uint32(size)
		if reg == 7 && size == 1 {
			dec = 2
		}
		d.sched.ScheduleCall(func() { d.regs.A[reg] -= dec })
		d.sched.ScheduleCall(func() { done(decodedEA{mode: m, addr: d.regs.A[reg]}) })

	case eaIndirectDisp16:
		d.sched.ScheduleRead(d.regs.PC, true, fcSuperData, func(ext uint16) {
			disp := int32(int16(ext))
			done(decodedEA{mode: m, addr: uint32(int32(d.regs.A[reg]) + disp)})
		})

	case eaIndirectIndex8:
		d.sched.ScheduleRead(d.regs.PC, true, fcSuperData, func(ext uint16) {
			done(decodedEA{mode: m, addr: d.resolveBriefExtension(d.regs.A[reg], ext)})
		})

	case eaPCDisp16:
		base := d.regs.PC
		d.sched.ScheduleRead(d.regs.PC, true, fcSuperData, func(ext uint16) {
			disp := int32(int16(ext))
			done(decodedEA{mode: m, addr: uint32(int32(base) + disp)})
		})

	case eaPCIndex8:
		base := d.regs.PC
		d.sched.ScheduleRead(d.regs.PC, true, fcSuperData, func(ext uint16) {
			done(decodedEA{mode: m, addr: d.resolveBriefExtension(base, ext)})
		})

	case eaAbsoluteShort:
		d.sched.ScheduleRead(d.regs.PC, true, fcSuperData, func(ext uint16) {
			done(decodedEA{mode: m, addr: uint32(int32(int16(ext)))})
		})

	case eaAbsoluteLong:
		d.sched.ScheduleRead(d.regs.PC, true, fcSuperData, func(hi uint16) {
			d.sched.ScheduleRead(d.regs.PC+2, true, fcSuperData, func(lo uint16) {
				done(decodedEA{mode: m, addr: uint32(hi)<<16 | uint32(lo)})
			})
		})

	case eaImmediate:
		done(decodedEA{mode: m, addr: d.regs.PC})
	}
}

// resolveBriefExtension applies a brief extension word (d8(An,Xn)) index
// addressing: an 8-bit displacement plus a data or address register,
// optionally sign-extended from word to long per the extension's size bit.
func (d *EADecoder) resolveBriefExtension(base uint32, ext uint16) uint32 {
	disp := int32(int8(ext))
	xreg := (ext >> 12) & 7
	isAddress := ext&0x8000 != 0
	longIndex := ext&0x0800 != 0

	var index int32
	if isAddress {
		index = int32(d.regs.A[xreg])
	} else {
		index = int32(d.regs.D[xreg])
	}
	if !longIndex {
		index = int32(int16(index))
	}
	return uint32(int32(base) + disp + index)
}
