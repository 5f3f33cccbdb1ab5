// m68k_ops_helpers.go - shared operand read/write helpers for the op families

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

// readEA resolves and reads an <ea> operand of the given byte size,
// handling the register-direct modes without touching the bus.
func (u *InstructionUnit) readEA(mode, reg uint16, size int, done func(uint32)) {
	u.EA.Resolve(mode, reg, size, func(ea decodedEA) {
		switch ea.mode {
		case eaDataRegister:
			done(maskToSize(u.Regs.D[ea.reg], size))
		case eaAddressRegister:
			done(maskToSize(u.Regs.A[ea.reg], size))
		case eaImmediate:
			if size == 4 {
				u.Scheduler.ScheduleRead(ea.addr, true, fcSuperData, func(hi uint16) {
					u.Scheduler.ScheduleRead(ea.addr+2, true, fcSuperData, func(lo uint16) {
						done(uint32(hi)<<16 | uint32(lo))
					})
				})
			} else {
				u.Scheduler.ScheduleRead(ea.addr, size == 2, fcSuperData, func(v uint16) {
					done(maskToSize(uint32(v), size))
				})
			}
		default:
			u.readMem(ea.addr, size, done)
		}
	})
}

// writeEA resolves an <ea> and writes value to it, respecting register vs
// memory destinations.
func (u *InstructionUnit) writeEA(mode, reg uint16, size int, value uint32) {
	u.EA.Resolve(mode, reg, size, func(ea decodedEA) {
		switch ea.mode {
		case eaDataRegister:
			u.Regs.D[ea.reg] = mergeSize(u.Regs.D[ea.reg], value, size)
		case eaAddressRegister:
			u.Regs.A[ea.reg] = maskToSize(value, size)
		default:
			u.writeMem(ea.addr, value, size)
		}
	})
}

// readMem schedules a byte/word/long read directly from memory at addr.
// A word or long access to an odd address is reported as an address
// error before the target unit is ever touched. The check is made here
// because the bus manager (m68k_busmanager.go) does not check alignment.
func (u *InstructionUnit) readMem(addr uint32, size int, done func(uint32)) {
	if size != 1 && addr&1 != 0 {
		u.raiseAddressError(addr, true)
		return
	}
	switch size {
	case 1:
		u.Scheduler.ScheduleRead(addr, false, fcSuperData, func(v uint16) { done(uint32(byte(v))) })
	case 2:
		u.Scheduler.ScheduleRead(addr, true, fcSuperData, func(v uint16) { done(uint32(v)) })
	default:
		u.Scheduler.ScheduleRead(addr, true, fcSuperData, func(hi uint16) {
			u.Scheduler.ScheduleRead(addr+2, true, fcSuperData, func(lo uint16) {
				done(uint32(hi)<<16 | uint32(lo))
			})
		})
	}
}

// writeMem schedules a byte/word/long write directly to memory at addr.
func (u *InstructionUnit) writeMem(addr uint32, value uint32, size int) {
	if size != 1 && addr&1 != 0 {
		u.raiseAddressError(addr, false)
		return
	}
	switch size {
	case 1:
		u.Scheduler.ScheduleWrite(addr, uint16(byte(value)), false, fcSuperData)
	case 2:
		u.Scheduler.ScheduleWrite(addr, uint16(value), true, fcSuperData)
	default:
		u.Scheduler.ScheduleWrite(addr, uint16(value>>16), true, fcSuperData)
		u.Scheduler.ScheduleWrite(addr+2, uint16(value), true, fcSuperData)
	}
}

// raiseAddressError cancels whatever bus activity the current instruction
// had already queued (nothing has committed to memory yet for this access)
// and hands a bus-error-group exception bundle to the exception manager;
// the next Step() services it instead of continuing this instruction.
func (u *InstructionUnit) raiseAddressError(addr uint32, isRead bool) {
	u.Scheduler.Reset()
	u.Exceptions.Raise(pendingException{kind: excAddressError, vector: vecAddressError, faultAddr: addr})
}

func maskToSize(v uint32, size int) uint32 {
	switch size {
	case 1:
		return uint32(byte(v))
	case 2:
		return uint32(uint16(v))
	default:
		return v
	}
}

// mergeSize writes value into the low size bytes of dst, preserving the
// upper bytes - byte/word writes to a data register never clobber the
// rest of the register.
func mergeSize(dst, value uint32, size int) uint32 {
	switch size {
	case 1:
		return (dst &^ 0xFF) | (value & 0xFF)
	case 2:
		return (dst &^ 0xFFFF) | (value & 0xFFFF)
	default:
		return value
	}
}
