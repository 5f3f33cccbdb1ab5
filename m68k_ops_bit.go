// m68k_ops_bit.go - BTST/BSET/BCLR/BCHG, TAS

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
Bit number is modulo 32 against a data register destination, modulo 8
against a memory destination - the instruction's addressing mode alone
decides which, so each op resolves the EA first and masks the bit index
accordingly.
*/

package main

func (u *InstructionUnit) bitOp(word uint16, dynamicCount bool, apply func(v uint32, bit uint32) uint32) {
	mode := (word >> 3) & 7
	eaReg := word & 7
	size := 4
	if mode != 0 {
		size = 1
	}

	doBit := func(bitNum uint32) {
		modulo := uint32(32)
		if mode != 0 {
			modulo = 8
		}
		bit := bitNum % modulo
		u.readEA(mode, eaReg, size, func(v uint32) {
			u.Regs.SetFlag(srZero, v&(1<<bit) == 0)
			r := apply(v, bit)
			if r != v {
				u.writeEA(mode, eaReg, size, r)
			}
		})
	}

	if dynamicCount {
		reg := (word >> 9) & 7
		doBit(u.Regs.D[reg])
	} else {
		u.Scheduler.ScheduleRead(u.Prefetch.PC(), true, fcSuperData, func(ext uint16) {
			doBit(uint32(ext))
		})
	}
}

func (u *InstructionUnit) opBTST(word uint16) {
	dynamic := word&0x0100 != 0
	u.bitOp(word, dynamic, func(v, bit uint32) uint32 { return v })
}

func (u *InstructionUnit) opBSET(word uint16) {
	dynamic := word&0x0100 != 0
	u.bitOp(word, dynamic, func(v, bit uint32) uint32 { return v | (1 << bit) })
}

func (u *InstructionUnit) opBCLR(word uint16) {
	dynamic := word&0x0100 != 0
	u.bitOp(word, dynamic, func(v, bit uint32) uint32 { return v &^ (1 << bit) })
}

func (u *InstructionUnit) opBCHG(word uint16) {
	dynamic := word&0x0100 != 0
	u.bitOp(word, dynamic, func(v, bit uint32) uint32 { return v ^ (1 << bit) })
}

// opTAS performs the locked test-and-set read-modify-write via the bus
// manager's RMW cycle so no other master can interleave between the test
// and the set.
func (u *InstructionUnit) opTAS(word uint16) {
	mode := (word >> 3) & 7
	eaReg := word & 7
	u.EA.Resolve(mode, eaReg, 1, func(ea decodedEA) {
		if ea.mode == eaDataRegister {
			v := byte(u.Regs.D[ea.reg])
			u.Regs.SetFlag(srZero, v == 0)
			u.Regs.SetFlag(srNegative, v&0x80 != 0)
			u.Regs.SetFlag(srOverflow, false)
			u.Regs.SetFlag(srCarry, false)
			u.Regs.D[ea.reg] = mergeSize(u.Regs.D[ea.reg], uint32(v|0x80), 1)
			return
		}
		addr := ea.addr
		u.scheduleRMWByte(addr, func(v byte) byte {
			u.Regs.SetFlag(srZero, v == 0)
			u.Regs.SetFlag(srNegative, v&0x80 != 0)
			u.Regs.SetFlag(srOverflow, false)
			u.Regs.SetFlag(srCarry, false)
			return v | 0x80
		})
	})
}

// scheduleRMWByte threads a byte-wide read-modify-write through the bus
// manager directly, bypassing the scheduler's plain read/write ops since
// TAS must not let another bus master interleave between them.
func (u *InstructionUnit) scheduleRMWByte(addr uint32, modify func(byte) byte) {
	u.Scheduler.ScheduleCall(func() {
		u.Scheduler.busy = true
		u.Scheduler.bus.BeginRMW(addr, fcSuperData, func(read uint16) uint16 {
			return uint16(modify(byte(read)))
		}, func(uint16) { u.Scheduler.busy = false })
	})
}
