// m68k_ops_ctrl.go - privileged/system instructions, opcode table wiring

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

package main

// requirePrivilege raises a privilege violation and returns false if the
// CPU is not currently in supervisor mode; the caller should bail out of
// the instruction immediately when this returns false.
func (u *InstructionUnit) requirePrivilege() bool {
	if u.Regs.Supervisor() {
		return true
	}
	u.Exceptions.Raise(pendingException{kind: excPrivilegeViolation, vector: vecPrivilegeViolation})
	return false
}

func (u *InstructionUnit) opNOP(word uint16) {}

func (u *InstructionUnit) opTRAP(word uint16) {
	n := word & 0xF
	u.Exceptions.Raise(pendingException{kind: excTrap, vector: uint8(vecTrapBase) + uint8(n)})
}

func (u *InstructionUnit) opTRAPV(word uint16) {
	if u.Regs.Flag(srOverflow) {
		u.Exceptions.Raise(pendingException{kind: excTrapV, vector: vecTrapV})
	}
}

func (u *InstructionUnit) opRESET(word uint16) {
	if !u.requirePrivilege() {
		return
	}
	// asserts the RESET line to external devices for 124 clocks on real
	// hardware; modeled here as the optional OnResetLine callback, which
	// system.go leaves unset, so peripherals are not reset.
	if u.OnResetLine != nil {
		u.OnResetLine()
	}
}

func (u *InstructionUnit) opSTOP(word uint16) {
	if !u.requirePrivilege() {
		return
	}
	u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(sr uint16) {
		u.Regs.SR = sr
		u.stopped = true
	})
}

func (u *InstructionUnit) opMOVESR(word uint16) {
	toEA := word&0x0200 == 0 // 0100011011 vs 0100011000-ish family; bit 9 distinguishes the few variants we model
	mode := (word >> 3) & 7
	eaReg := word & 7
	if !toEA {
		if !u.requirePrivilege() {
			return
		}
	}
	if toEA {
		u.writeEA(mode, eaReg, 2, uint32(u.Regs.SR))
		return
	}
	u.readEA(mode, eaReg, 2, func(v uint32) {
		u.Regs.SR = uint16(v)
	})
}

func (u *InstructionUnit) opANDISR(word uint16) {
	if !u.requirePrivilege() {
		return
	}
	u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(imm uint16) {
		u.Regs.SR &= imm
	})
}

func (u *InstructionUnit) opORISR(word uint16) {
	if !u.requirePrivilege() {
		return
	}
	u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(imm uint16) {
		u.Regs.SR |= imm
	})
}

func (u *InstructionUnit) opEORISR(word uint16) {
	if !u.requirePrivilege() {
		return
	}
	u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(imm uint16) {
		u.Regs.SR ^= imm
	})
}

func (u *InstructionUnit) opMOVEUSP(word uint16) {
	if !u.requirePrivilege() {
		return
	}
	reg := word & 7
	toUSP := word&0x0008 == 0
	if toUSP {
		u.Regs.SetUSP(u.Regs.A[reg])
	} else {
		u.Regs.A[reg] = u.Regs.USP()
	}
}

// buildOpTable wires every instType to its handler; instIllegal, which
// Decode returns for an unmatched word, is the only type without one.
func (u *InstructionUnit) buildOpTable() map[instType]func(word uint16) {
	return map[instType]func(word uint16){
		instMOVE:    u.opMOVE,
		instMOVEA:   u.opMOVEA,
		instMOVEQ:   u.opMOVEQ,
		instLEA:     u.opLEA,
		instPEA:     u.opPEA,
		instMOVEM:   u.opMOVEM,

		instADD:  u.opADD,
		instADDA: u.opADDA,
		instADDI: u.opADDI,
		instADDQ: u.opADDQ,
		instSUB:  u.opSUB,
		instSUBA: u.opSUBA,
		instSUBI: u.opSUBI,
		instSUBQ: u.opSUBQ,
		instCMP:  u.opCMP,
		instCMPA: u.opCMPA,
		instCMPI: u.opCMPI,
		instCMPM: u.opCMPM,
		instMULU: u.opMULU,
		instMULS: u.opMULS,
		instDIVU: u.opDIVU,
		instDIVS: u.opDIVS,
		instCHK:  u.opCHK,

		instAND:  u.opAND,
		instANDI: u.opANDI,
		instOR:   u.opOR,
		instORI:  u.opORI,
		instEOR:  u.opEOR,
		instEORI: u.opEORI,
		instNOT:  u.opNOT,
		instNEG:  u.opNEG,
		instNEGX: u.opNEGX,
		instCLR:  u.opCLR,
		instTST:  u.opTST,
		instEXT:  u.opEXT,
		instSWAP: u.opSWAP,

		instASL:  u.opASL,
		instASR:  u.opASR,
		instLSL:  u.opLSL,
		instLSR:  u.opLSR,
		instROL:  u.opROL,
		instROR:  u.opROR,
		instROXL: u.opROXL,
		instROXR: u.opROXR,

		instBTST: u.opBTST,
		instBSET: u.opBSET,
		instBCLR: u.opBCLR,
		instBCHG: u.opBCHG,
		instTAS:  u.opTAS,

		instABCD: u.opABCD,
		instSBCD: u.opSBCD,
		instNBCD: u.opNBCD,

		instBRA:  u.opBRA,
		instBSR:  u.opBSR,
		instBcc:  u.opBcc,
		instDBcc: u.opDBcc,
		instScc:  u.opScc,
		instJMP:  u.opJMP,
		instJSR:  u.opJSR,
		instRTS:  u.opRTS,
		instRTE:  u.opRTE,
		instRTR:  u.opRTR,
		instLINK: u.opLINK,
		instUNLK: u.opUNLK,

		instNOP:     u.opNOP,
		instTRAP:    u.opTRAP,
		instTRAPV:   u.opTRAPV,
		instRESET:   u.opRESET,
		instSTOP:    u.opSTOP,
		instMOVESR:  u.opMOVESR,
		instANDISR:  u.opANDISR,
		instORISR:   u.opORISR,
		instEORISR:  u.opEORISR,
		instMOVEUSP: u.opMOVEUSP,
	}
}
