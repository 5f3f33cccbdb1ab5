// m68k_ops_branch.go - Bcc/BSR/BRA/DBcc/Scc, JMP/JSR/RTS/RTE/RTR, LINK/UNLK

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

// branchTarget resolves a Bcc/BSR/BRA displacement: the 8-bit field in
// the opcode, or (if that field is 0) a following extension word.
func (u *InstructionUnit) branchTarget(word uint16, done func(target uint32)) {
	disp8 := int8(word & 0xFF)
	base := u.Prefetch.PC() - 2 // opcode address + 2, the base displacements are relative to
	if disp8 != 0 {
		done(uint32(int32(base) + int32(disp8)))
		return
	}
	u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(ext uint16) {
		done(uint32(int32(base) + int32(int16(ext))))
	})
}

func (u *InstructionUnit) opBRA(word uint16) {
	u.branchTarget(word, func(target uint32) {
		u.Prefetch.Flush(target)
		u.Regs.PC = target
		u.Scheduler.SchedulePrefetchIRC(target, fcSuperData)
	})
}

func (u *InstructionUnit) opBSR(word uint16) {
	u.branchTarget(word, func(target uint32) {
		ret := u.Prefetch.PC()
		sp := u.Regs.A[7] - 4
		u.Regs.A[7] = sp
		u.Scheduler.SchedulePush(sp, uint16(ret>>16), fcSuperData)
		u.Scheduler.SchedulePush(sp+2, uint16(ret), fcSuperData)
		u.Prefetch.Flush(target)
		u.Regs.PC = target
		u.Scheduler.SchedulePrefetchIRC(target, fcSuperData)
	})
}

func (u *InstructionUnit) opBcc(word uint16) {
	cond := (word >> 8) & 0xF
	if !condTrue(cond, u.Regs.SR) {
		// still consume the extension word if disp8 was 0
		if byte(word) == 0 {
			u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(uint16) {})
		}
		return
	}
	u.opBRA(word)
}

func (u *InstructionUnit) opDBcc(word uint16) {
	cond := (word >> 8) & 0xF
	reg := word & 7
	u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(ext uint16) {
		if condTrue(cond, u.Regs.SR) {
			return // condition true: loop does not continue, fall through
		}
		counter := int16(u.Regs.D[reg])
		counter--
		u.Regs.D[reg] = mergeSize(u.Regs.D[reg], uint32(uint16(counter)), 2)
		if counter == -1 {
			return // exhausted: fall through without branching
		}
		base := u.Prefetch.PC() - 2
		target := uint32(int32(base) + int32(int16(ext)))
		u.Prefetch.Flush(target)
		u.Regs.PC = target
		u.Scheduler.SchedulePrefetchIRC(target, fcSuperData)
	})
}

func (u *InstructionUnit) opScc(word uint16) {
	cond := (word >> 8) & 0xF
	mode := (word >> 3) & 7
	eaReg := word & 7
	v := uint32(0)
	if condTrue(cond, u.Regs.SR) {
		v = 0xFF
	}
	u.writeEA(mode, eaReg, 1, v)
}

func (u *InstructionUnit) opJMP(word uint16) {
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.EA.Resolve(mode, eaReg, 4, func(ea decodedEA) {
		u.Prefetch.Flush(ea.addr)
		u.Regs.PC = ea.addr
		u.Scheduler.SchedulePrefetchIRC(ea.addr, fcSuperData)
	})
}

func (u *InstructionUnit) opJSR(word uint16) {
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.EA.Resolve(mode, eaReg, 4, func(ea decodedEA) {
		ret := u.Prefetch.PC()
		sp := u.Regs.A[7] - 4
		u.Regs.A[7] = sp
		u.Scheduler.SchedulePush(sp, uint16(ret>>16), fcSuperData)
		u.Scheduler.SchedulePush(sp+2, uint16(ret), fcSuperData)
		u.Prefetch.Flush(ea.addr)
		u.Regs.PC = ea.addr
		u.Scheduler.SchedulePrefetchIRC(ea.addr, fcSuperData)
	})
}

func (u *InstructionUnit) opRTS(word uint16) {
	sp := u.Regs.A[7]
	u.Scheduler.ScheduleRead(sp, true, fcSuperData, func(hi uint16) {
		u.Scheduler.ScheduleRead(sp+2, true, fcSuperData, func(lo uint16) {
			u.Regs.A[7] = sp + 4
			target := uint32(hi)<<16 | uint32(lo)
			u.Prefetch.Flush(target)
			u.Regs.PC = target
			u.Scheduler.SchedulePrefetchIRC(target, fcSuperData)
		})
	})
}

func (u *InstructionUnit) opRTE(word uint16) {
	sp := u.Regs.A[7]
	u.Scheduler.ScheduleRead(sp, true, fcSuperData, func(sr uint16) {
		u.Scheduler.ScheduleRead(sp+2, true, fcSuperData, func(hi uint16) {
			u.Scheduler.ScheduleRead(sp+4, true, fcSuperData, func(lo uint16) {
				u.Regs.A[7] = sp + 6
				if u.Regs.Supervisor() && sr&srSupervisor == 0 {
					// Restored SR drops out of supervisor mode: bank the
					// just-popped SSP value (A[7] above) into ssp and
					// hand A[7] back to the real USP before the mode
					// bit actually flips, or RTE orphans whatever MOVE
					// USP,An last set.
					u.Regs.SwitchToUser()
				}
				u.Regs.SR = sr
				target := uint32(hi)<<16 | uint32(lo)
				u.Prefetch.Flush(target)
				u.Regs.PC = target
				u.Scheduler.SchedulePrefetchIRC(target, fcSuperData)
			})
		})
	})
}

func (u *InstructionUnit) opRTR(word uint16) {
	sp := u.Regs.A[7]
	u.Scheduler.ScheduleRead(sp, true, fcSuperData, func(ccr uint16) {
		u.Scheduler.ScheduleRead(sp+2, true, fcSuperData, func(hi uint16) {
			u.Scheduler.ScheduleRead(sp+4, true, fcSuperData, func(lo uint16) {
				u.Regs.A[7] = sp + 6
				u.Regs.SR = (u.Regs.SR &^ srCCRMask) | (ccr & srCCRMask)
				target := uint32(hi)<<16 | uint32(lo)
				u.Prefetch.Flush(target)
				u.Regs.PC = target
				u.Scheduler.SchedulePrefetchIRC(target, fcSuperData)
			})
		})
	})
}

func (u *InstructionUnit) opLINK(word uint16) {
	reg := word & 7
	u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(ext uint16) {
		disp := int32(int16(ext))
		sp := u.Regs.A[7] - 4
		u.Regs.A[7] = sp
		u.Scheduler.SchedulePush(sp, uint16(u.Regs.A[reg]>>16), fcSuperData)
		u.Scheduler.SchedulePush(sp+2, uint16(u.Regs.A[reg]), fcSuperData)
		u.Regs.A[reg] = sp
		u.Regs.A[7] = uint32(int32(sp) + disp)
	})
}

func (u *InstructionUnit) opUNLK(word uint16) {
	reg := word & 7
	fp := u.Regs.A[reg]
	u.Scheduler.ScheduleRead(fp, true, fcSuperData, func(hi uint16) {
		u.Scheduler.ScheduleRead(fp+2, true, fcSuperData, func(lo uint16) {
			u.Regs.A[7] = fp + 4
			u.Regs.A[reg] = uint32(hi)<<16 | uint32(lo)
		})
	})
}
