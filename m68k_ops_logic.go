// m68k_ops_logic.go - AND/OR/EOR/NOT/CLR/TST/NEG/NEGX/EXT/SWAP, shifts/rotates, immediate arithmetic

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

func (u *InstructionUnit) logicOp(word uint16, combine func(a, b uint32) uint32) {
	size := operandSize((word >> 6) & 3)
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	toEA := word&0x0100 != 0

	if toEA {
		d := maskToSize(u.Regs.D[reg], size)
		u.readEA(mode, eaReg, size, func(eaVal uint32) {
			result := maskToSize(combine(d, eaVal), size)
			u.Regs.SetNZ(result, size)
			u.Regs.SetFlag(srOverflow, false)
			u.Regs.SetFlag(srCarry, false)
			u.writeEA(mode, eaReg, size, result)
		})
		return
	}
	u.readEA(mode, eaReg, size, func(src uint32) {
		d := maskToSize(u.Regs.D[reg], size)
		result := maskToSize(combine(d, src), size)
		u.Regs.SetNZ(result, size)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
		u.Regs.D[reg] = mergeSize(u.Regs.D[reg], result, size)
	})
}

func (u *InstructionUnit) opAND(word uint16) { u.logicOp(word, func(a, b uint32) uint32 { return a & b }) }
func (u *InstructionUnit) opOR(word uint16)  { u.logicOp(word, func(a, b uint32) uint32 { return a | b }) }
func (u *InstructionUnit) opEOR(word uint16) { u.logicOp(word, func(a, b uint32) uint32 { return a ^ b }) }

// immediateOp handles ORI/ANDI/EORI/ADDI/SUBI/CMPI: read the immediate
// extension word(s), then the same shape as the register-form op but
// against an immediate rather than Dn.
func (u *InstructionUnit) immediateOp(word uint16, apply func(dst, imm uint32, size int) (result uint32, writeBack bool)) {
	size := operandSize((word >> 6) & 3)
	mode := (word >> 3) & 7
	eaReg := word & 7

	readImm := func(done func(uint32)) {
		if size == 4 {
			u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(hi uint16) {
				u.Scheduler.ScheduleRead(u.Prefetch.PC()+2, true, fcSuperData, func(lo uint16) {
					done(uint32(hi)<<16 | uint32(lo))
				})
			})
			return
		}
		u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(v uint16) {
			if size == 1 {
				done(uint32(byte(v)))
			} else {
				done(uint32(v))
			}
		})
	}

	readImm(func(imm uint32) {
		u.readEA(mode, eaReg, size, func(dst uint32) {
			result, writeBack := apply(dst, imm, size)
			if writeBack {
				u.writeEA(mode, eaReg, size, result)
			}
		})
	})
}

func (u *InstructionUnit) opORI(word uint16) {
	u.immediateOp(word, func(dst, imm uint32, size int) (uint32, bool) {
		r := maskToSize(dst|imm, size)
		u.Regs.SetNZ(r, size)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
		return r, true
	})
}

func (u *InstructionUnit) opANDI(word uint16) {
	u.immediateOp(word, func(dst, imm uint32, size int) (uint32, bool) {
		r := maskToSize(dst&imm, size)
		u.Regs.SetNZ(r, size)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
		return r, true
	})
}

func (u *InstructionUnit) opEORI(word uint16) {
	u.immediateOp(word, func(dst, imm uint32, size int) (uint32, bool) {
		r := maskToSize(dst^imm, size)
		u.Regs.SetNZ(r, size)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
		return r, true
	})
}

func (u *InstructionUnit) opADDI(word uint16) {
	u.immediateOp(word, func(dst, imm uint32, size int) (uint32, bool) {
		r := maskToSize(dst+imm, size)
		u.addFlags(dst, imm, r, size)
		return r, true
	})
}

func (u *InstructionUnit) opSUBI(word uint16) {
	u.immediateOp(word, func(dst, imm uint32, size int) (uint32, bool) {
		r := maskToSize(dst-imm, size)
		u.subFlags(dst, imm, r, size)
		return r, true
	})
}

func (u *InstructionUnit) opCMPI(word uint16) {
	u.immediateOp(word, func(dst, imm uint32, size int) (uint32, bool) {
		r := maskToSize(dst-imm, size)
		ds, ss, rs := signBit(dst, size), signBit(imm, size), signBit(r, size)
		u.Regs.SetFlag(srCarry, dst < imm)
		u.Regs.SetFlag(srOverflow, ds != ss && rs == ss)
		u.Regs.SetNZ(r, size)
		return r, false
	})
}

func (u *InstructionUnit) opADDQ(word uint16) {
	size := operandSize((word >> 6) & 3)
	mode := (word >> 3) & 7
	eaReg := word & 7
	data := (word >> 9) & 7
	if data == 0 {
		data = 8
	}
	if mode == 1 { // address register: no flags, always treated as long
		u.Regs.A[eaReg] += uint32(data)
		return
	}
	u.readEA(mode, eaReg, size, func(dst uint32) {
		r := maskToSize(dst+uint32(data), size)
		u.addFlags(dst, uint32(data), r, size)
		u.writeEA(mode, eaReg, size, r)
	})
}

func (u *InstructionUnit) opSUBQ(word uint16) {
	size := operandSize((word >> 6) & 3)
	mode := (word >> 3) & 7
	eaReg := word & 7
	data := (word >> 9) & 7
	if data == 0 {
		data = 8
	}
	if mode == 1 {
		u.Regs.A[eaReg] -= uint32(data)
		return
	}
	u.readEA(mode, eaReg, size, func(dst uint32) {
		r := maskToSize(dst-uint32(data), size)
		u.subFlags(dst, uint32(data), r, size)
		u.writeEA(mode, eaReg, size, r)
	})
}

func (u *InstructionUnit) opCLR(word uint16) {
	size := operandSize((word >> 6) & 3)
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.writeEA(mode, eaReg, size, 0)
	u.Regs.SetFlag(srZero, true)
	u.Regs.SetFlag(srNegative, false)
	u.Regs.SetFlag(srOverflow, false)
	u.Regs.SetFlag(srCarry, false)
}

func (u *InstructionUnit) opTST(word uint16) {
	size := operandSize((word >> 6) & 3)
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, size, func(v uint32) {
		u.Regs.SetNZ(v, size)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
	})
}

func (u *InstructionUnit) opNOT(word uint16) {
	size := operandSize((word >> 6) & 3)
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, size, func(v uint32) {
		r := maskToSize(^v, size)
		u.Regs.SetNZ(r, size)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
		u.writeEA(mode, eaReg, size, r)
	})
}

func (u *InstructionUnit) opNEG(word uint16) {
	size := operandSize((word >> 6) & 3)
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, size, func(v uint32) {
		r := maskToSize(0-v, size)
		u.subFlags(0, v, r, size)
		u.writeEA(mode, eaReg, size, r)
	})
}

func (u *InstructionUnit) opNEGX(word uint16) {
	size := operandSize((word >> 6) & 3)
	mode := (word >> 3) & 7
	eaReg := word & 7
	extend := uint32(0)
	if u.Regs.Flag(srExtend) {
		extend = 1
	}
	u.readEA(mode, eaReg, size, func(v uint32) {
		r := maskToSize(0-v-extend, size)
		u.subFlags(0, v+extend, r, size)
		u.writeEA(mode, eaReg, size, r)
	})
}

func (u *InstructionUnit) opEXT(word uint16) {
	reg := word & 7
	opmode := (word >> 6) & 7
	switch opmode {
	case 0b010: // byte to word
		v := int16(int8(u.Regs.D[reg]))
		u.Regs.D[reg] = mergeSize(u.Regs.D[reg], uint32(uint16(v)), 2)
		u.Regs.SetNZ(uint32(uint16(v)), 2)
	case 0b011: // word to long
		v := int32(int16(u.Regs.D[reg]))
		u.Regs.D[reg] = uint32(v)
		u.Regs.SetNZ(uint32(v), 4)
	case 0b111: // byte to long (68020+, kept for completeness)
		v := int32(int8(u.Regs.D[reg]))
		u.Regs.D[reg] = uint32(v)
		u.Regs.SetNZ(uint32(v), 4)
	}
	u.Regs.SetFlag(srOverflow, false)
	u.Regs.SetFlag(srCarry, false)
}

func (u *InstructionUnit) opSWAP(word uint16) {
	reg := word & 7
	v := u.Regs.D[reg]
	u.Regs.D[reg] = (v << 16) | (v >> 16)
	u.Regs.SetNZ(u.Regs.D[reg], 4)
	u.Regs.SetFlag(srOverflow, false)
	u.Regs.SetFlag(srCarry, false)
}

// shiftRotate implements ASL/ASR/LSL/LSR/ROL/ROR/ROXL/ROXR for register
// shifts (count in bits 9-11, or Dn bits 9-11 if bit 5 set = register
// count mode).
func (u *InstructionUnit) shiftRotate(word uint16, op instType) {
	size := operandSize((word >> 6) & 3)
	reg := word & 7
	countField := (word >> 9) & 7
	var count uint32
	if word&0x0020 != 0 {
		count = u.Regs.D[countField] % 64
	} else {
		count = uint32(countField)
		if count == 0 {
			count = 8
		}
	}
	v := maskToSize(u.Regs.D[reg], size)
	bits := size * 8
	var result uint32
	var lastOut bool

	for i := uint32(0); i < count; i++ {
		switch op {
		case instASL, instLSL:
			lastOut = v&(1<<(bits-1)) != 0
			v = maskToSize(v<<1, size)
		case instASR:
			signMask := uint32(0)
			if signBit(v, size) {
				signMask = 1 << (bits - 1)
			}
			lastOut = v&1 != 0
			v = maskToSize((v>>1)|signMask, size)
		case instLSR:
			lastOut = v&1 != 0
			v = maskToSize(v>>1, size)
		case instROL:
			top := v&(1<<(bits-1)) != 0
			v = maskToSize(v<<1, size)
			if top {
				v |= 1
			}
			lastOut = top
		case instROR:
			bot := v&1 != 0
			v = maskToSize(v>>1, size)
			if bot {
				v |= 1 << (bits - 1)
			}
			lastOut = bot
		case instROXL:
			extend := u.Regs.Flag(srExtend)
			top := v&(1<<(bits-1)) != 0
			v = maskToSize(v<<1, size)
			if extend {
				v |= 1
			}
			u.Regs.SetFlag(srExtend, top)
			lastOut = top
		case instROXR:
			extend := u.Regs.Flag(srExtend)
			bot := v&1 != 0
			v = maskToSize(v>>1, size)
			if extend {
				v |= 1 << (bits - 1)
			}
			u.Regs.SetFlag(srExtend, bot)
			lastOut = bot
		}
	}
	result = v
	u.Regs.D[reg] = mergeSize(u.Regs.D[reg], result, size)
	u.Regs.SetNZ(result, size)
	u.Regs.SetFlag(srOverflow, false)
	if count > 0 {
		u.Regs.SetFlag(srCarry, lastOut)
		if op != instROXL && op != instROXR {
			u.Regs.SetFlag(srExtend, lastOut)
		}
	} else {
		u.Regs.SetFlag(srCarry, false)
	}
}

func (u *InstructionUnit) opASL(word uint16)  { u.shiftRotate(word, instASL) }
func (u *InstructionUnit) opASR(word uint16)  { u.shiftRotate(word, instASR) }
func (u *InstructionUnit) opLSL(word uint16)  { u.shiftRotate(word, instLSL) }
func (u *InstructionUnit) opLSR(word uint16)  { u.shiftRotate(word, instLSR) }
func (u *InstructionUnit) opROL(word uint16)  { u.shiftRotate(word, instROL) }
func (u *InstructionUnit) opROR(word uint16)  { u.shiftRotate(word, instROR) }
func (u *InstructionUnit) opROXL(word uint16) { u.shiftRotate(word, instROXL) }
func (u *InstructionUnit) opROXR(word uint16) { u.shiftRotate(word, instROXR) }
