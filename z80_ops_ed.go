// z80_ops_ed.go - 0xED-prefixed extended instructions and block group

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
z80_ops_ed.go

Covers the instructions actually used by Mega Drive sound drivers:
IM 0/1/2, LD A,I / LD A,R, the 16-bit ADC/SBC HL,ss pair, LD (nn),dd /
LD dd,(nn), NEG, RETN/RETI, and the four block-transfer/compare groups
(LDI/LDD/LDIR/LDDR, CPI/CPD/CPIR/CPDR). OUT/IN variants are accepted
and consumed for timing but touch no real device, since this console's
Z80 side has no I/O-mapped peripherals.
*/

package main

func (c *Z80CPU) executeED(op byte) int {
	switch op {
	case 0x46, 0x4E, 0x66, 0x6E:
		c.Regs.IM = z80IM0
		return 8
	case 0x56, 0x76:
		c.Regs.IM = z80IM1
		return 8
	case 0x5E, 0x7E:
		c.Regs.IM = z80IM2
		return 8
	case 0x47: // LD I,A
		c.Regs.I = c.Regs.A
		return 9
	case 0x4F: // LD R,A
		c.Regs.R = c.Regs.A
		return 9
	case 0x57: // LD A,I
		c.Regs.A = c.Regs.I
		c.setIRFlags(c.Regs.I)
		return 9
	case 0x5F: // LD A,R
		c.Regs.A = c.Regs.R
		c.setIRFlags(c.Regs.R)
		return 9
	case 0x44, 0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C: // NEG
		v := c.Regs.A
		res := byte(0) - v
		c.Regs.SetFlag(z80FlagC, v != 0)
		c.Regs.SetFlag(z80FlagH, v&0xF != 0)
		c.Regs.SetFlag(z80FlagPV, v == 0x80)
		c.Regs.SetFlag(z80FlagN, true)
		c.Regs.A = res
		c.Regs.SetFlag(z80FlagS, res&0x80 != 0)
		c.Regs.SetFlag(z80FlagZ, res == 0)
		return 8
	case 0x45, 0x55, 0x65, 0x75, 0x4D, 0x5D, 0x6D, 0x7D: // RETN/RETI
		c.Regs.IFF1 = c.Regs.IFF2
		c.Regs.PC = c.pop()
		return 14
	case 0x6F: // RLD
		c.rld()
		return 18
	case 0x67: // RRD
		c.rrd()
		return 18
	}
	if op&0xCF == 0x43 { // LD (nn),dd
		addr := c.fetchWord()
		c.writeWord(addr, c.rp((op>>4)&3))
		return 20
	}
	if op&0xCF == 0x4B { // LD dd,(nn)
		addr := c.fetchWord()
		c.setRP((op>>4)&3, c.readWord(addr))
		return 20
	}
	if op&0xCF == 0x42 { // SBC HL,ss
		c.sbcHL(c.rp((op >> 4) & 3))
		return 15
	}
	if op&0xCF == 0x4A { // ADC HL,ss
		c.adcHL(c.rp((op >> 4) & 3))
		return 15
	}
	switch op {
	case 0xA0:
		c.ldi()
		return 16
	case 0xB0:
		c.ldi()
		if c.Regs.BC() != 0 {
			c.Regs.PC -= 2
			return 21
		}
		return 16
	case 0xA8:
		c.ldd()
		return 16
	case 0xB8:
		c.ldd()
		if c.Regs.BC() != 0 {
			c.Regs.PC -= 2
			return 21
		}
		return 16
	case 0xA1:
		c.cpi()
		return 16
	case 0xB1:
		c.cpi()
		if c.Regs.BC() != 0 && !c.Regs.Flag(z80FlagZ) {
			c.Regs.PC -= 2
			return 21
		}
		return 16
	case 0xA9:
		c.cpd()
		return 16
	case 0xB9:
		c.cpd()
		if c.Regs.BC() != 0 && !c.Regs.Flag(z80FlagZ) {
			c.Regs.PC -= 2
			return 21
		}
		return 16
	case 0xA2, 0xB2, 0xAA, 0xBA, 0xA3, 0xB3, 0xAB, 0xBB: // INI/INIR/IND/INDR/OUTI/OTIR/OUTD/OTDR
		c.Regs.B--
		if op == 0xB2 || op == 0xBA || op == 0xB3 || op == 0xBB {
			if c.Regs.B != 0 {
				c.Regs.PC -= 2
				return 21
			}
		}
		return 16
	}
	return 8 // unimplemented ED-prefixed opcode
}

func (c *Z80CPU) setIRFlags(v byte) {
	c.Regs.SetFlag(z80FlagS, v&0x80 != 0)
	c.Regs.SetFlag(z80FlagZ, v == 0)
	c.Regs.SetFlag(z80FlagH|z80FlagN, false)
	c.Regs.SetFlag(z80FlagPV, c.Regs.IFF2)
}

func (c *Z80CPU) adcHL(v uint16) {
	hl := c.Regs.HL()
	carry := uint32(boolBit(c.Regs.Flag(z80FlagC)))
	res := uint32(hl) + uint32(v) + carry
	c.Regs.SetFlag(z80FlagH, (hl&0x0FFF)+(v&0x0FFF)+uint16(carry) > 0x0FFF)
	c.Regs.SetFlag(z80FlagC, res > 0xFFFF)
	c.Regs.SetFlag(z80FlagPV, (hl^v)&0x8000 == 0 && (hl^uint16(res))&0x8000 != 0)
	c.Regs.SetFlag(z80FlagN, false)
	c.Regs.SetHL(uint16(res))
	c.Regs.SetFlag(z80FlagS, uint16(res)&0x8000 != 0)
	c.Regs.SetFlag(z80FlagZ, uint16(res) == 0)
}

func (c *Z80CPU) sbcHL(v uint16) {
	hl := c.Regs.HL()
	carry := uint32(boolBit(c.Regs.Flag(z80FlagC)))
	res := uint32(hl) - uint32(v) - carry
	c.Regs.SetFlag(z80FlagH, (hl&0x0FFF) < (v&0x0FFF)+uint16(carry))
	c.Regs.SetFlag(z80FlagC, uint32(hl) < uint32(v)+carry)
	c.Regs.SetFlag(z80FlagPV, (hl^v)&0x8000 != 0 && (hl^uint16(res))&0x8000 != 0)
	c.Regs.SetFlag(z80FlagN, true)
	c.Regs.SetHL(uint16(res))
	c.Regs.SetFlag(z80FlagS, uint16(res)&0x8000 != 0)
	c.Regs.SetFlag(z80FlagZ, uint16(res) == 0)
}

func (c *Z80CPU) ldi() {
	v := c.readByte(c.Regs.HL())
	c.writeByte(c.Regs.DE(), v)
	c.Regs.SetHL(c.Regs.HL() + 1)
	c.Regs.SetDE(c.Regs.DE() + 1)
	c.Regs.SetBC(c.Regs.BC() - 1)
	c.Regs.SetFlag(z80FlagH|z80FlagN, false)
	c.Regs.SetFlag(z80FlagPV, c.Regs.BC() != 0)
}

func (c *Z80CPU) ldd() {
	v := c.readByte(c.Regs.HL())
	c.writeByte(c.Regs.DE(), v)
	c.Regs.SetHL(c.Regs.HL() - 1)
	c.Regs.SetDE(c.Regs.DE() - 1)
	c.Regs.SetBC(c.Regs.BC() - 1)
	c.Regs.SetFlag(z80FlagH|z80FlagN, false)
	c.Regs.SetFlag(z80FlagPV, c.Regs.BC() != 0)
}

func (c *Z80CPU) cpi() {
	v := c.readByte(c.Regs.HL())
	res := c.Regs.A - v
	c.Regs.SetHL(c.Regs.HL() + 1)
	c.Regs.SetBC(c.Regs.BC() - 1)
	c.Regs.SetFlag(z80FlagH, c.Regs.A&0xF < v&0xF)
	c.Regs.SetFlag(z80FlagPV, c.Regs.BC() != 0)
	c.Regs.SetFlag(z80FlagN, true)
	c.Regs.SetFlag(z80FlagS, res&0x80 != 0)
	c.Regs.SetFlag(z80FlagZ, res == 0)
}

func (c *Z80CPU) cpd() {
	v := c.readByte(c.Regs.HL())
	res := c.Regs.A - v
	c.Regs.SetHL(c.Regs.HL() - 1)
	c.Regs.SetBC(c.Regs.BC() - 1)
	c.Regs.SetFlag(z80FlagH, c.Regs.A&0xF < v&0xF)
	c.Regs.SetFlag(z80FlagPV, c.Regs.BC() != 0)
	c.Regs.SetFlag(z80FlagN, true)
	c.Regs.SetFlag(z80FlagS, res&0x80 != 0)
	c.Regs.SetFlag(z80FlagZ, res == 0)
}

func (c *Z80CPU) rld() {
	addr := c.Regs.HL()
	mem := c.readByte(addr)
	a := c.Regs.A
	newMem := (mem << 4) | (a & 0x0F)
	newA := (a & 0xF0) | (mem >> 4)
	c.writeByte(addr, newMem)
	c.Regs.A = newA
	c.setSZP(newA)
	c.Regs.SetFlag(z80FlagH|z80FlagN, false)
}

func (c *Z80CPU) rrd() {
	addr := c.Regs.HL()
	mem := c.readByte(addr)
	a := c.Regs.A
	newMem := (a << 4) | (mem >> 4)
	newA := (a & 0xF0) | (mem & 0x0F)
	c.writeByte(addr, newMem)
	c.Regs.A = newA
	c.setSZP(newA)
	c.Regs.SetFlag(z80FlagH|z80FlagN, false)
}
