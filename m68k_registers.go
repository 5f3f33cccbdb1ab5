// m68k_registers.go - M68K register file and status register layout

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
m68k_registers.go - M68KRegisters

Eight data registers, eight address registers (A7 banked between user
and supervisor stack pointers), PC, and a 16-bit status register split
into a user-visible condition code register (low byte) and a
supervisor-only system byte (high byte: trace, supervisor, interrupt
priority mask). Typed accessors stand in for the C/C++ original's
register-file unions: Dn/An index by 0-7, byte/word/long views are
explicit methods rather than punned storage.
*/

package main

const (
	srCarry     uint16 = 0x0001
	srOverflow  uint16 = 0x0002
	srZero      uint16 = 0x0004
	srNegative  uint16 = 0x0008
	srExtend    uint16 = 0x0010
	srCCRMask   uint16 = 0x001F
	srIPLMask   uint16 = 0x0700
	srIPLShift         = 8
	srSupervisor uint16 = 0x2000
	srTrace     uint16 = 0x8000
)

// M68KRegisters is the 68000-family programmer-visible register file.
type M68KRegisters struct {
	D [8]uint32
	A [8]uint32 // A[7] is the active stack pointer (user or supervisor)

	usp uint32 // banked when supervisor
	ssp uint32 // banked when user

	PC uint32
	SR uint16
}

func NewM68KRegisters() *M68KRegisters {
	return &M68KRegisters{}
}

func (r *M68KRegisters) Supervisor() bool { return r.SR&srSupervisor != 0 }

func (r *M68KRegisters) IPL() uint8 { return uint8((r.SR & srIPLMask) >> srIPLShift) }

func (r *M68KRegisters) SetIPL(level uint8) {
	r.SR = (r.SR &^ srIPLMask) | (uint16(level&7) << srIPLShift)
}

// SSP/USP manage the banked A7 half depending on current mode.
func (r *M68KRegisters) SSP() uint32 {
	if r.Supervisor() {
		return r.A[7]
	}
	return r.ssp
}

func (r *M68KRegisters) SetSSP(v uint32) {
	if r.Supervisor() {
		r.A[7] = v
	} else {
		r.ssp = v
	}
}

func (r *M68KRegisters) USP() uint32 {
	if r.Supervisor() {
		return r.usp
	}
	return r.A[7]
}

func (r *M68KRegisters) SetUSP(v uint32) {
	if r.Supervisor() {
		r.usp = v
	} else {
		r.A[7] = v
	}
}

// SwitchToSupervisor banks A7 into ssp/usp and activates SSP as A7,
// called when an exception raises privilege; SwitchToUser is its inverse,
// used by RTE when the saved SR has supervisor clear.
func (r *M68KRegisters) SwitchToSupervisor() {
	if r.Supervisor() {
		return
	}
	r.usp = r.A[7]
	r.SR |= srSupervisor
	r.A[7] = r.ssp
}

func (r *M68KRegisters) SwitchToUser() {
	if !r.Supervisor() {
		return
	}
	r.ssp = r.A[7]
	r.SR &^= srSupervisor
	r.A[7] = r.usp
}

// CCR flag helpers, used heavily by the arithmetic/logic op families.
func (r *M68KRegisters) SetFlag(mask uint16, set bool) {
	if set {
		r.SR |= mask
	} else {
		r.SR &^= mask
	}
}

func (r *M68KRegisters) Flag(mask uint16) bool { return r.SR&mask != 0 }

// SetNZ sets N and Z from a sign-extended result value at the given
// operand size (1, 2, or 4 bytes), the common tail of every arithmetic
// and logic instruction.
func (r *M68KRegisters) SetNZ(value uint32, size int) {
	var zero, negative bool
	switch size {
	case 1:
		v := uint8(value)
		zero = v == 0
		negative = v&0x80 != 0
	case 2:
		v := uint16(value)
		zero = v == 0
		negative = v&0x8000 != 0
	default:
		zero = value == 0
		negative = value&0x80000000 != 0
	}
	r.SetFlag(srZero, zero)
	r.SetFlag(srNegative, negative)
}
