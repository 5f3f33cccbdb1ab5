// vdp.go - VDP aggregate: memories, status register, pending-flag state

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
vdp.go

Owns VRAM (64 KiB), CRAM (64 9-bit colors packed as 16-bit words) and
VSRAM (40 words), plus the status register and the single-owner
"pending" bit the two-word control protocol lives behind. vdp_ports.go,
vdp_dma.go, vdp_hv.go and vdp_renderer.go are all methods on this one
struct, matching the "pending flag owned by the ports component, not
scattered" design note.
*/

package main

const (
	vdpVRAMSize  = 64 * 1024
	vdpCRAMSize  = 64 // color entries
	vdpVSRAMSize = 40 // word entries
)

// Status register bits, per the documented layout.
const (
	vdpStatusFIFOFull    uint16 = 0x0100
	vdpStatusFIFOEmpty   uint16 = 0x0200
	vdpStatusVBlankFlag  uint16 = 0x0008
	vdpStatusHBlankFlag  uint16 = 0x0004
	vdpStatusDMABusy     uint16 = 0x0002
	vdpStatusVInterrupt  uint16 = 0x0080
	vdpStatusSpriteOver  uint16 = 0x0040
	vdpStatusOddFrame    uint16 = 0x0010
)

type VDP struct {
	Regs VDPRegisters

	VRAM  [vdpVRAMSize]byte
	CRAM  [vdpCRAMSize]uint16
	VSRAM [vdpVSRAMSize]uint16

	fifo vdpFIFO

	pending bool
	cp1     uint16
	haveCP1 bool

	control controlWord

	readBuffer   uint16
	readBuffered bool

	status uint16

	dma vdpDMAState

	hv VDPHVState

	vintPending, hintPending, extintPending bool

	// RaiseM68KInterrupt lets system.go wire VINT/HINT/EXTINT straight
	// into the M68K's IPL lines without the VDP owning the CPU.
	RaiseM68KInterrupt func(level uint8)

	// RequestM68KBus/ReleaseM68KBus let DMA mode 2 (M68K->VDP) borrow the
	// 68K's own bus manager for the duration of the transfer.
	RequestM68KBus func()
	ReleaseM68KBus func()
	ReadM68KWord   func(addr uint32) uint16

	RenderRow func(line int, pixels []uint16)
}

func NewVDP() *VDP {
	v := &VDP{}
	v.status = vdpStatusFIFOEmpty
	v.hv.widthH40 = false
	return v
}

func (v *VDP) updateFIFOStatus() {
	if v.fifo.Full() {
		v.status |= vdpStatusFIFOFull
	} else {
		v.status &^= vdpStatusFIFOFull
	}
	if v.fifo.Empty() {
		v.status |= vdpStatusFIFOEmpty
	} else {
		v.status &^= vdpStatusFIFOEmpty
	}
}

// Cycle advances the VDP by one VDP clock: DMA steps (when a transfer
// is active) ahead of the H/V counter tick, matching the system tick
// driver's ordering of smd::cycle()'s own m_vdp->cycle() call.
func (v *VDP) Cycle() {
	v.CycleDMA()
	v.CycleHV()
	v.updateFIFOStatus()
}

func clampAddr(addr uint32, size uint32) uint32 {
	if size == 0 {
		return 0
	}
	return addr % size
}
