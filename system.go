// system.go - Top-level system: address spaces, CPU/VDP wiring, clock

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
system.go - System

Builds the M68K and Z80 address spaces out of the leaf units the rest
of the package defines, wires the VDP's interrupt/bus-borrow callbacks
into the M68K CPU, and drives all three clock domains from a single
Tick(). Mirrors smd::cycle()'s sequencing (m68k, then vdp, then z80)
while keeping the Z80 in step via a credit counter rather than a true
shared oscillator, since nothing in this core needs cycle-exact
inter-CPU timing finer than "the Z80 gets its documented share of the
bus".
*/

package main

import "fmt"

// z80ClockRatio is the Z80's share of one M68K clock, derived from the
// NTSC crystal division (3.579545 MHz Z80 against 7.67 MHz M68K).
const z80ClockRatio = 3579545.0 / 7670000.0

// System owns both CPUs, the VDP, and the address spaces tying them to
// the controller ports, TMSS/version stubs and Z80 bank window.
type System struct {
	ROM *ROMImage

	M68K *M68KCPU
	Z80  *Z80CPU
	VDP  *VDP

	pad1 *ControllerPort
	pad2 *DisabledPort

	z80BusArbiter *BusManager
	resetAsserted bool

	z80Credit float64
}

// NewSystem builds the full memory map and returns a System ready for
// Reset().
func NewSystem(rom *ROMImage) (*System, error) {
	sys := &System{ROM: rom, resetAsserted: true}

	m68kBox := &addressSpaceBox{}
	z80Box := &addressSpaceBox{}

	// z80BusArbiter exists purely for its bus-grant bookkeeping (Request/
	// Release/IsGranted); nothing ever calls BeginRead/BeginWrite on it,
	// so the AddressSpace it would dispatch through is never touched.
	sys.z80BusArbiter = NewBusManager(nil)

	m68kBuilder := NewMemoryBuilder("m68k")

	romUnit := NewROMUnit(rom.Data)
	if err := m68kBuilder.Add(ROMBase, uint32(len(rom.Data)), romUnit); err != nil {
		return nil, err
	}

	z80Window := newZ80SpaceWindow(z80Box, sys.z80BusArbiter)
	if err := m68kBuilder.Add(Z80SpaceBase, Z80SpaceLimit-Z80SpaceBase+1, z80Window); err != nil {
		return nil, err
	}

	if err := m68kBuilder.Add(VersionRegBase, VersionRegLimit-VersionRegBase+1, NewVersionRegister()); err != nil {
		return nil, err
	}

	sys.pad1 = NewControllerPort()
	if err := m68kBuilder.Add(Controller1Base, Controller1Limit-Controller1Base+1, sys.pad1); err != nil {
		return nil, err
	}

	sys.pad2 = NewDisabledPort()
	if err := m68kBuilder.Add(Controller2Base, Controller2Limit-Controller2Base+1, sys.pad2); err != nil {
		return nil, err
	}

	z80CtrlRegs := NewZ80ControlRegisters(sys.z80BusArbiter)
	if err := m68kBuilder.Add(Z80BusReqBase, Z80BusReqLimit-Z80BusReqBase+1, z80CtrlRegs); err != nil {
		return nil, err
	}

	z80ResetReg := NewZ80ResetRegister(func(asserted bool) { sys.resetAsserted = asserted })
	if err := m68kBuilder.Add(Z80ResetBase, Z80ResetLimit-Z80ResetBase+1, z80ResetReg); err != nil {
		return nil, err
	}

	if err := m68kBuilder.Add(TMSSBase, TMSSLimit-TMSSBase+1, NewTMSSRegister()); err != nil {
		return nil, err
	}

	sys.VDP = NewVDP()
	vdpPorts := NewVDPPorts(sys.VDP)
	if err := m68kBuilder.Add(VDPPortBase, VDPPortLimit-VDPPortBase+1, vdpPorts); err != nil {
		return nil, err
	}
	if err := m68kBuilder.Mirror(VDPPortLimit+1, VDPPortLimit-VDPPortBase+1, VDPPortLimit-VDPPortBase+1, 1, vdpPorts); err != nil {
		return nil, err
	}

	workRAM := NewRAMUnit(WorkRAMSize)
	if err := m68kBuilder.Add(WorkRAMBase, WorkRAMSize, workRAM); err != nil {
		return nil, err
	}
	mirrorCount := (WorkRAMEnd+1-WorkRAMBase)/WorkRAMSize - 1
	if err := m68kBuilder.Mirror(WorkRAMBase+WorkRAMSize, WorkRAMSize, WorkRAMSize, mirrorCount, workRAM); err != nil {
		return nil, err
	}

	z80Builder := NewMemoryBuilder("z80")

	z80RAM := NewRAMUnit(Z80RAMSize)
	if err := z80Builder.Add(Z80RAMBase, Z80RAMSize, z80RAM); err != nil {
		return nil, err
	}
	if err := z80Builder.Mirror(Z80RAMBase+Z80RAMMirror, Z80RAMSize, Z80RAMMirror, 1, z80RAM); err != nil {
		return nil, err
	}

	if err := z80Builder.Add(Z80YM2612Base, Z80YM2612End-Z80YM2612Base+1, newYM2612Stub()); err != nil {
		return nil, err
	}

	bankReg := newZ80BankRegister()
	if err := z80Builder.Add(Z80BankReg, 1, bankReg); err != nil {
		return nil, err
	}

	if err := z80Builder.Add(Z80PSGPort, 1, newPSGStub()); err != nil {
		return nil, err
	}

	bankWindow := newZ80BankWindow(bankReg, m68kBox)
	if err := z80Builder.Add(Z80BankBase, Z80BankWindow, bankWindow); err != nil {
		return nil, err
	}

	m68kSpace := m68kBuilder.Build()
	z80Space := z80Builder.Build()
	m68kBox.space = m68kSpace
	z80Box.space = z80Space

	sys.M68K = NewM68KCPU(m68kSpace)
	sys.Z80 = NewZ80CPU(z80Space)

	sys.VDP.RequestM68KBus = sys.M68K.Bus.RequestBus
	sys.VDP.ReleaseM68KBus = sys.M68K.Bus.ReleaseBus
	sys.VDP.ReadM68KWord = func(addr uint32) uint16 {
		addr &= M68KAddressMask
		m68kSpace.InitReadWord(addr)
		return m68kSpace.LatchedWord(addr)
	}
	sys.VDP.RaiseM68KInterrupt = sys.M68K.RaiseInterrupt
	sys.M68K.OnInterruptAccepted(sys.VDP.AcknowledgeInterrupt)

	return sys, nil
}

// Reset runs the M68K's power-on sequence and parks the Z80 in reset,
// matching the console's own reset-line behavior (the Z80 only runs
// once the M68K's boot code explicitly clears 0xA11200).
func (sys *System) Reset() {
	sys.M68K.Reset()
	sys.resetAsserted = true
	sys.Z80.SetHeld(true)
}

// Tick advances every clock domain by one M68K cycle's worth of time,
// mirroring smd::cycle()'s m68k/vdp/z80 ordering.
func (sys *System) Tick() {
	sys.M68K.Cycle()
	sys.VDP.Cycle()
	sys.z80BusArbiter.Cycle()

	held := sys.resetAsserted || sys.z80BusArbiter.IsBusGranted()
	sys.Z80.SetHeld(held)
	if held {
		return
	}

	sys.z80Credit += z80ClockRatio
	for sys.z80Credit >= 1 {
		tStates := sys.Z80.Step()
		sys.z80Credit -= float64(tStates)
	}
}

// SetPad1Buttons feeds the live state of controller 1 to its port.
func (sys *System) SetPad1Buttons(b ControllerButtons) {
	sys.pad1.SetButtons(b)
}

// SanityCheckROM reports whether the loaded image's checksum matches
// its header, purely informational - the system runs regardless.
func (sys *System) SanityCheckROM() error {
	if !sys.ROM.VerifyChecksum() {
		return fmt.Errorf("ROM checksum mismatch (header vs computed)")
	}
	return nil
}
