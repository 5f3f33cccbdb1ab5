// vdp_dma.go - VDP DMA engine: fill, copy, M68K->VDP transfer

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░░ ░░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
vdp_dma.go

Mode selection reads R23's top two bits at DMA start, per §4.10: 10 is
VRAM fill, 11 is VRAM copy, 00/01 is an M68K->VDP word-at-a-time
transfer that borrows the 68K bus manager for the duration. Each runs
as a small state machine stepped once per VDP cycle from Cycle()
rather than all-at-once, so the M68K and Z80 keep advancing in lockstep
with the DMA per the single-threaded tick model in §5.
*/

package main

type vdpDMAMode int

const (
	dmaNone vdpDMAMode = iota
	dmaFill
	dmaCopy
	dmaTransfer
)

type vdpDMAState struct {
	active bool
	mode   vdpDMAMode

	srcAddr  uint32
	dstAddr  uint32
	length   uint32
	fillWord uint16
	haveFill bool
}

func (v *VDP) startDMA() {
	length := v.Regs.DMALength()
	if length == 0 {
		length = 65536
	}
	mode := v.Regs.DMAMode()
	src := uint32(v.Regs.DMASourceLow()) | uint32(v.Regs.DMASourceMid())<<8 | uint32(v.Regs.DMASourceHigh()&0x7F)<<16

	v.dma = vdpDMAState{
		active:  true,
		length:  length,
		srcAddr: src * 2,
		dstAddr: v.control.address,
	}
	switch mode {
	case 0x2: // 10
		v.dma.mode = dmaFill
		v.dma.length++ // hardware quirk: the FIFO-seeded first byte isn't counted by the length register
	case 0x3: // 11
		v.dma.mode = dmaCopy
		v.dma.srcAddr = src
	default:
		v.dma.mode = dmaTransfer
		if v.RequestM68KBus != nil {
			v.RequestM68KBus()
		}
	}
	v.status |= vdpStatusDMABusy
}

// CycleDMA performs one DMA step; called once per VDP clock from
// system.go's tick driver while dma.active is true.
func (v *VDP) CycleDMA() {
	if !v.dma.active {
		return
	}
	switch v.dma.mode {
	case dmaFill:
		v.stepFill()
	case dmaCopy:
		v.stepCopy()
	case dmaTransfer:
		v.stepTransfer()
	}
}

func (v *VDP) stepFill() {
	if !v.dma.haveFill {
		e, ok := v.fifo.Pop()
		if !ok {
			return // wait for the seeding data-port write
		}
		v.dma.fillWord = e.data
		v.dma.haveFill = true
		v.commitFillByte(v.dma.dstAddr, byte(v.dma.fillWord))
		v.dma.dstAddr += v.Regs.AutoIncrement()
		v.dma.length--
		if v.dma.length == 0 {
			v.finishDMA()
		}
		return
	}
	v.commitFillByte(v.dma.dstAddr, byte(v.dma.fillWord>>8))
	v.dma.dstAddr += v.Regs.AutoIncrement()
	v.dma.length--
	if v.dma.length == 0 {
		v.finishDMA()
	}
}

func (v *VDP) commitFillByte(addr uint32, b byte) {
	switch v.control.target() {
	case vdpTargetVRAM:
		v.VRAM[clampAddr(addr, vdpVRAMSize)] = b
	case vdpTargetCRAM:
		idx := clampAddr(addr/2, vdpCRAMSize)
		v.CRAM[idx] = uint16(b)<<8 | uint16(b)
	case vdpTargetVSRAM:
		idx := clampAddr(addr/2, vdpVSRAMSize)
		v.VSRAM[idx] = uint16(b)<<8 | uint16(b)
	}
}

func (v *VDP) stepCopy() {
	b := v.VRAM[clampAddr(v.dma.srcAddr, vdpVRAMSize)]
	v.VRAM[clampAddr(v.dma.dstAddr, vdpVRAMSize)] = b
	v.dma.srcAddr += v.Regs.AutoIncrement()
	v.dma.dstAddr += v.Regs.AutoIncrement()
	v.dma.length--
	if v.dma.length == 0 {
		v.finishDMA()
	}
}

func (v *VDP) stepTransfer() {
	if v.ReadM68KWord == nil {
		v.finishDMA()
		return
	}
	word := v.ReadM68KWord(v.dma.srcAddr)
	v.commitWrite(v.control, word)
	v.control.address += v.Regs.AutoIncrement()
	v.dma.srcAddr += 2
	v.dma.length--
	if v.dma.length == 0 {
		v.finishDMA()
	}
}

func (v *VDP) finishDMA() {
	v.dma.active = false
	v.dma.haveFill = false
	v.control.dmaStart = false
	v.status &^= vdpStatusDMABusy
	if v.dma.mode == dmaTransfer {
		v.Regs.R[1] &^= 0x10
		if v.ReleaseM68KBus != nil {
			v.ReleaseM68KBus()
		}
	}
}
