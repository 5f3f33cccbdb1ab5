// m68k_ops_move.go - MOVE family: MOVE, MOVEA, MOVEQ, LEA, PEA, MOVEM

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

// moveSize decodes MOVE's unusual 2-bit size field (01=byte, 11=word, 10=long).
func moveSize(bits uint16) int {
	switch bits {
	case 0b01:
		return 1
	case 0b11:
		return 2
	default:
		return 4
	}
}

func (u *InstructionUnit) opMOVE(word uint16) {
	sizeBits := (word >> 12) & 3
	size := moveSize(sizeBits)
	srcMode := (word >> 3) & 7
	srcReg := word & 7
	dstReg := (word >> 9) & 7
	dstMode := (word >> 6) & 7

	u.readEA(srcMode, srcReg, size, func(value uint32) {
		u.Regs.SetNZ(value, size)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
		u.writeEA(dstMode, dstReg, size, value)
	})
}

func (u *InstructionUnit) opMOVEA(word uint16) {
	srcMode := (word >> 3) & 7
	srcReg := word & 7
	dstReg := (word >> 9) & 7
	size := 2
	if (word>>12)&3 == 0b10 {
		size = 4
	}
	u.readEA(srcMode, srcReg, size, func(value uint32) {
		if size == 2 {
			value = uint32(int32(int16(value)))
		}
		u.Regs.A[dstReg] = value
	})
}

func (u *InstructionUnit) opMOVEQ(word uint16) {
	dstReg := (word >> 9) & 7
	data := int32(int8(word & 0xFF))
	u.Regs.D[dstReg] = uint32(data)
	u.Regs.SetNZ(uint32(data), 4)
	u.Regs.SetFlag(srOverflow, false)
	u.Regs.SetFlag(srCarry, false)
}

func (u *InstructionUnit) opLEA(word uint16) {
	mode := (word >> 3) & 7
	reg := word & 7
	dstReg := (word >> 9) & 7
	u.EA.Resolve(mode, reg, 4, func(ea decodedEA) {
		u.Regs.A[dstReg] = ea.addr
	})
}

func (u *InstructionUnit) opPEA(word uint16) {
	mode := (word >> 3) & 7
	reg := word & 7
	u.EA.Resolve(mode, reg, 4, func(ea decodedEA) {
		sp := u.Regs.A[7] - 4
		u.Regs.A[7] = sp
		u.Scheduler.SchedulePush(sp, uint16(ea.addr>>16), fcSuperData)
		u.Scheduler.SchedulePush(sp+2, uint16(ea.addr), fcSuperData)
	})
}

// opMOVEM handles register-list transfers to/from memory. The list mask
// is fetched as the extension word immediately following the opcode;
// pre-decrement destination mode reverses both the register scan order
// and the mask interpretation, matching the documented hardware quirk.
func (u *InstructionUnit) opMOVEM(word uint16) {
	toMemory := word&0x0400 == 0
	longSize := word&0x0040 != 0
	size := 2
	if longSize {
		size = 4
	}
	mode := (word >> 3) & 7
	reg := word & 7

	u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(mask uint16) {
		if toMemory && mode == 4 { // pre-decrement: store reversed, A7..D0
			u.EA.Resolve(mode, reg, size, func(ea decodedEA) {
				addr := ea.addr
				for i := 0; i < 16; i++ {
					if mask&(1<<i) == 0 {
						continue
					}
					regIdx := 15 - i
					var v uint32
					if regIdx < 8 {
						v = u.Regs.D[regIdx]
					} else {
						v = u.Regs.A[regIdx-8]
					}
					addr -= uint32(size)
					u.writeMem(addr, v, size)
				}
				u.Regs.A[reg] = addr
			})
			return
		}

		u.EA.Resolve(mode, reg, size, func(ea decodedEA) {
			addr := ea.addr
			for i := 0; i < 16; i++ {
				if mask&(1<<i) == 0 {
					continue
				}
				if toMemory {
					var v uint32
					if i < 8 {
						v = u.Regs.D[i]
					} else {
						v = u.Regs.A[i-8]
					}
					u.writeMem(addr, v, size)
				} else {
					u.readMem(addr, size, func(v uint32) {
						if size == 2 {
							v = uint32(int32(int16(v)))
						}
						if i < 8 {
							u.Regs.D[i] = v
						} else {
							u.Regs.A[i-8] = v
						}
					})
				}
				addr += uint32(size)
			}
			if mode == 3 { // post-increment
				u.Regs.A[reg] = addr
			}
		})
	})
}
