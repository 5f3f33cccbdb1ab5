// m68k_ops_arith.go - ADD/SUB/CMP family, MULU/MULS, DIVU/DIVS

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
m68k_ops_arith.go

ADD/SUB/CMP share one flag-computation routine each: carry and overflow
follow the standard sign-of-operands-vs-sign-of-result rule rather than
being derived from Go's overflow-silent arithmetic, since the M68K's
documented flag behavior must hold regardless of host integer width.
*/

package main

func signBit(v uint32, size int) bool {
	switch size {
	case 1:
		return v&0x80 != 0
	case 2:
		return v&0x8000 != 0
	default:
		return v&0x80000000 != 0
	}
}

// addFlags computes C/V/X for dst+src=result at the given size.
func (u *InstructionUnit) addFlags(dst, src, result uint32, size int) {
	ds, ss, rs := signBit(dst, size), signBit(src, size), signBit(result, size)
	carry := false
	switch size {
	case 1:
		carry = (uint32(byte(dst)) + uint32(byte(src))) > 0xFF
	case 2:
		carry = (uint32(uint16(dst)) + uint32(uint16(src))) > 0xFFFF
	default:
		carry = uint64(dst)+uint64(src) > 0xFFFFFFFF
	}
	overflow := ds == ss && rs != ds
	u.Regs.SetFlag(srCarry, carry)
	u.Regs.SetFlag(srExtend, carry)
	u.Regs.SetFlag(srOverflow, overflow)
	u.Regs.SetNZ(result, size)
}

// subFlags computes C/V/X for dst-src=result at the given size.
func (u *InstructionUnit) subFlags(dst, src, result uint32, size int) {
	ds, ss, rs := signBit(dst, size), signBit(src, size), signBit(result, size)
	var borrow bool
	switch size {
	case 1:
		borrow = uint32(byte(dst)) < uint32(byte(src))
	case 2:
		borrow = uint32(uint16(dst)) < uint32(uint16(src))
	default:
		borrow = dst < src
	}
	overflow := ds != ss && rs == ss
	u.Regs.SetFlag(srCarry, borrow)
	u.Regs.SetFlag(srExtend, borrow)
	u.Regs.SetFlag(srOverflow, overflow)
	u.Regs.SetNZ(result, size)
}

func (u *InstructionUnit) opADD(word uint16) {
	size := operandSize((word >> 6) & 3)
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	toEA := word&0x0100 != 0

	if toEA {
		dst := maskToSize(u.Regs.D[reg], size)
		u.readEA(mode, eaReg, size, func(eaVal uint32) {
			result := maskToSize(dst+eaVal, size)
			u.addFlags(dst, eaVal, result, size)
			u.writeEA(mode, eaReg, size, result)
		})
		return
	}
	u.readEA(mode, eaReg, size, func(src uint32) {
		dst := maskToSize(u.Regs.D[reg], size)
		result := maskToSize(dst+src, size)
		u.addFlags(dst, src, result, size)
		u.Regs.D[reg] = mergeSize(u.Regs.D[reg], result, size)
	})
}

func (u *InstructionUnit) opADDA(word uint16) {
	size := 2
	if (word>>8)&1 != 0 {
		size = 4
	}
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, size, func(src uint32) {
		if size == 2 {
			src = uint32(int32(int16(src)))
		}
		u.Regs.A[reg] += src
	})
}

func (u *InstructionUnit) opSUB(word uint16) {
	size := operandSize((word >> 6) & 3)
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	toEA := word&0x0100 != 0

	if toEA {
		dst := maskToSize(u.Regs.D[reg], size)
		u.readEA(mode, eaReg, size, func(eaVal uint32) {
			result := maskToSize(eaVal-dst, size)
			u.subFlags(eaVal, dst, result, size)
			u.writeEA(mode, eaReg, size, result)
		})
		return
	}
	u.readEA(mode, eaReg, size, func(src uint32) {
		dst := maskToSize(u.Regs.D[reg], size)
		result := maskToSize(dst-src, size)
		u.subFlags(dst, src, result, size)
		u.Regs.D[reg] = mergeSize(u.Regs.D[reg], result, size)
	})
}

func (u *InstructionUnit) opSUBA(word uint16) {
	size := 2
	if (word>>8)&1 != 0 {
		size = 4
	}
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, size, func(src uint32) {
		if size == 2 {
			src = uint32(int32(int16(src)))
		}
		u.Regs.A[reg] -= src
	})
}

func (u *InstructionUnit) opCMP(word uint16) {
	size := operandSize((word >> 6) & 3)
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, size, func(src uint32) {
		dst := maskToSize(u.Regs.D[reg], size)
		result := maskToSize(dst-src, size)
		ds, ss, rs := signBit(dst, size), signBit(src, size), signBit(result, size)
		var borrow bool
		switch size {
		case 1:
			borrow = uint32(byte(dst)) < uint32(byte(src))
		case 2:
			borrow = uint32(uint16(dst)) < uint32(uint16(src))
		default:
			borrow = dst < src
		}
		u.Regs.SetFlag(srCarry, borrow)
		u.Regs.SetFlag(srOverflow, ds != ss && rs == ss)
		u.Regs.SetNZ(result, size)
	})
}

func (u *InstructionUnit) opCMPA(word uint16) {
	size := 2
	if (word>>8)&1 != 0 {
		size = 4
	}
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, size, func(src uint32) {
		if size == 2 {
			src = uint32(int32(int16(src)))
		}
		dst := u.Regs.A[reg]
		result := dst - src
		u.Regs.SetFlag(srCarry, dst < src)
		u.Regs.SetNZ(result, 4)
	})
}

func (u *InstructionUnit) opCMPM(word uint16) {
	size := operandSize((word >> 6) & 3)
	ax := (word >> 9) & 7
	ay := word & 7
	u.readMem(u.Regs.A[ay], size, func(src uint32) {
		u.Regs.A[ay] += uint32(size)
		u.readMem(u.Regs.A[ax], size, func(dst uint32) {
			u.Regs.A[ax] += uint32(size)
			result := maskToSize(dst-src, size)
			u.subFlags(dst, src, result, size)
		})
	})
}

func (u *InstructionUnit) opMULU(word uint16) {
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, 2, func(src uint32) {
		result := uint32(uint16(u.Regs.D[reg])) * uint32(uint16(src))
		u.Regs.D[reg] = result
		u.Regs.SetNZ(result, 4)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
	})
}

func (u *InstructionUnit) opMULS(word uint16) {
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, 2, func(src uint32) {
		result := uint32(int32(int16(u.Regs.D[reg])) * int32(int16(src)))
		u.Regs.D[reg] = result
		u.Regs.SetNZ(result, 4)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
	})
}

func (u *InstructionUnit) opDIVU(word uint16) {
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, 2, func(src uint32) {
		divisor := uint16(src)
		if divisor == 0 {
			u.Exceptions.Raise(pendingException{kind: excDivideByZero, vector: vecDivideByZero})
			return
		}
		dividend := u.Regs.D[reg]
		q := dividend / uint32(divisor)
		r := dividend % uint32(divisor)
		if q > 0xFFFF {
			u.Regs.SetFlag(srOverflow, true)
			return
		}
		u.Regs.D[reg] = (r << 16) | (q & 0xFFFF)
		u.Regs.SetNZ(q, 2)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
	})
}

func (u *InstructionUnit) opDIVS(word uint16) {
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, 2, func(src uint32) {
		divisor := int32(int16(uint16(src)))
		if divisor == 0 {
			u.Exceptions.Raise(pendingException{kind: excDivideByZero, vector: vecDivideByZero})
			return
		}
		dividend := int32(u.Regs.D[reg])
		q := dividend / divisor
		r := dividend % divisor
		if q > 32767 || q < -32768 {
			u.Regs.SetFlag(srOverflow, true)
			return
		}
		u.Regs.D[reg] = (uint32(r) << 16) | (uint32(q) & 0xFFFF)
		u.Regs.SetNZ(uint32(q), 2)
		u.Regs.SetFlag(srOverflow, false)
		u.Regs.SetFlag(srCarry, false)
	})
}

func (u *InstructionUnit) opCHK(word uint16) {
	reg := (word >> 9) & 7
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.readEA(mode, eaReg, 2, func(bound uint32) {
		v := int16(u.Regs.D[reg])
		if v < 0 {
			u.Regs.SetFlag(srNegative, true)
			u.Exceptions.Raise(pendingException{kind: excCHK, vector: vecCHK})
			return
		}
		if uint16(v) > uint16(bound) {
			u.Regs.SetFlag(srNegative, false)
			u.Exceptions.Raise(pendingException{kind: excCHK, vector: vecCHK})
		}
	})
}
